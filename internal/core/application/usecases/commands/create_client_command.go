package commands

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a client. Field rules live on the client
// itself.
type CreateClientCommand struct {
	name       string
	clientType string
	specialty  string
	study      string
	email      string

	guard guard.ConstructorGuard
}

func NewCreateClientCommand(name, clientType, specialty, study, email string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		clientType: clientType,
		specialty:  specialty,
		study:      study,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}

	var err error
	if cmd.name, err = requireText("name", name); err != nil {
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Name() string {
	return c.name
}

func (c CreateClientCommand) Type() string {
	return c.clientType
}

func (c CreateClientCommand) Specialty() string {
	return c.specialty
}

func (c CreateClientCommand) Study() string {
	return c.study
}

func (c CreateClientCommand) Email() string {
	return c.email
}
