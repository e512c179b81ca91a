package queries

import (
	"errors"

	"galapagos/internal/pkg/guard"
)

var (
	ErrGetPortsQueryIsNotConstructed = errors.New(
		"GetPortsQuery must be created via NewGetPortsQuery constructor",
	)
	ErrGetIslandsQueryIsNotConstructed = errors.New(
		"GetIslandsQuery must be created via NewGetIslandsQuery constructor",
	)
)

// GetPortsQuery lists ports with their islands.
//
// Filters:
//   - id: exact port id
//   - name: exact port name
//   - islandName: case-insensitive substring of the island name
//
// With withLockers set, each port carries its lockers read from the
// business store and its locker count is the size of that list instead of
// the stored counter.
//
// Example:
//
//	query := NewGetPortsQuery(nil, nil, ptr("santa cruz"), true)
//	views, err := handler.Handle(ctx, query)
type GetPortsQuery struct {
	id          *int
	name        *string
	islandName  *string
	withLockers bool

	guard guard.ConstructorGuard
}

func NewGetPortsQuery(id *int, name, islandName *string, withLockers bool) GetPortsQuery {
	return GetPortsQuery{
		id:          id,
		name:        optionalText(name),
		islandName:  optionalText(islandName),
		withLockers: withLockers,
		guard:       guard.NewConstructorGuard(),
	}
}

func (q GetPortsQuery) Validate() error {
	return q.guard.Validate(ErrGetPortsQueryIsNotConstructed)
}

func (q GetPortsQuery) ID() *int {
	return q.id
}

func (q GetPortsQuery) Name() *string {
	return q.name
}

func (q GetPortsQuery) IslandName() *string {
	return q.islandName
}

func (q GetPortsQuery) WithLockers() bool {
	return q.withLockers
}

// GetIslandsQuery lists islands whose name contains the given text.
type GetIslandsQuery struct {
	name *string

	guard guard.ConstructorGuard
}

func NewGetIslandsQuery(name *string) GetIslandsQuery {
	return GetIslandsQuery{name: optionalText(name), guard: guard.NewConstructorGuard()}
}

func (q GetIslandsQuery) Validate() error {
	return q.guard.Validate(ErrGetIslandsQueryIsNotConstructed)
}

func (q GetIslandsQuery) Name() *string {
	return q.name
}
