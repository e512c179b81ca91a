package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var (
	ErrGetClientsQueryIsNotConstructed = errors.New(
		"GetClientsQuery must be created via NewGetClientsQuery constructor",
	)
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
)

// GetClientsQuery lists clients by id or by a case-insensitive name match.
type GetClientsQuery struct {
	id   *kernel.ID
	name *string

	guard guard.ConstructorGuard
}

func NewGetClientsQuery(id, name *string) (GetClientsQuery, error) {
	parsed, err := optionalID("id", id)
	if err != nil {
		return GetClientsQuery{}, err
	}
	return GetClientsQuery{id: parsed, name: optionalText(name), guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

func (q GetClientsQuery) ID() *kernel.ID {
	return q.id
}

func (q GetClientsQuery) Name() *string {
	return q.name
}

// GetProductsQuery lists products by id or by a case-insensitive name match.
type GetProductsQuery struct {
	id   *kernel.ID
	name *string

	guard guard.ConstructorGuard
}

func NewGetProductsQuery(id, name *string) (GetProductsQuery, error) {
	parsed, err := optionalID("id", id)
	if err != nil {
		return GetProductsQuery{}, err
	}
	return GetProductsQuery{id: parsed, name: optionalText(name), guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

func (q GetProductsQuery) ID() *kernel.ID {
	return q.id
}

func (q GetProductsQuery) Name() *string {
	return q.name
}
