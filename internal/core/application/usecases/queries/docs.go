// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
//
// Queries never write. Every filter is optional and a query without filters
// returns the whole collection. Malformed identifiers and unknown statuses
// are rejected when the query is constructed, before any store is read.
package queries

import (
	"strings"

	"galapagos/internal/core/domain/model/kernel"
)

// parseOptional applies parse to value when it is set.
func parseOptional[T any](value *string, parse func(string) (T, error)) (*T, error) {
	if value == nil {
		return nil, nil //nolint:nilnil // absent filter
	}
	parsed, err := parse(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalText drops blank filters.
func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalID(paramName string, hex *string) (*kernel.ID, error) {
	return kernel.ParseOptionalID(paramName, optionalText(hex))
}
