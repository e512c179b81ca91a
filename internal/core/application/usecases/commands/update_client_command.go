package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand is a partial update. The order history is not part of
// it.
type UpdateClientCommand struct {
	clientID   kernel.ID
	name       *string
	clientType *string
	specialty  *string
	study      *string
	email      *string

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(
	clientID string,
	name, clientType, specialty, study, email *string,
) (UpdateClientCommand, error) {
	id, err := kernel.ParseID("clientId", clientID)
	if err != nil {
		return UpdateClientCommand{}, err
	}

	if name == nil && clientType == nil && specialty == nil && study == nil && email == nil {
		return UpdateClientCommand{}, errs.NewValueIsRequiredErrorWithCause("fields", ErrNothingToUpdate)
	}

	return UpdateClientCommand{
		clientID:   id,
		name:       name,
		clientType: clientType,
		specialty:  specialty,
		study:      study,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() kernel.ID {
	return c.clientID
}

func (c UpdateClientCommand) Name() *string {
	return c.name
}

func (c UpdateClientCommand) Type() *string {
	return c.clientType
}

func (c UpdateClientCommand) Specialty() *string {
	return c.specialty
}

func (c UpdateClientCommand) Study() *string {
	return c.study
}

func (c UpdateClientCommand) Email() *string {
	return c.email
}
