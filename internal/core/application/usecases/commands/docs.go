// Package commands contains business operations that modify system state.
// Every command is validated at construction: identifiers are parsed and
// statuses are recognised before a handler runs, so malformed input never
// reaches a store.
//
// Handlers follow read → decide → write. Operations touching both stores go
// through the consistency.Coordinator: checks and the primary write decide
// the outcome, and secondary writes are best-effort.
package commands

import (
	"strings"

	"galapagos/internal/pkg/errs"
)

func requireText(paramName, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return trimmed, nil
}
