package commands

import (
	"errors"

	"galapagos/internal/core/domain/model/box"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var ErrUpdateBoxCommandIsNotConstructed = errors.New(
	"UpdateBoxCommand must be created via NewUpdateBoxCommand constructor",
)

// UpdateBoxCommand is a partial update. The order and client of a box are not
// part of it.
type UpdateBoxCommand struct {
	boxID   kernel.ID
	number  *int
	status  *box.Status
	content *string

	guard guard.ConstructorGuard
}

func NewUpdateBoxCommand(boxID string, number *int, status *string, content *string) (UpdateBoxCommand, error) {
	cmd := UpdateBoxCommand{
		number:  number,
		content: content,
		guard:   guard.NewConstructorGuard(),
	}

	var idErr, statusErr error
	cmd.boxID, idErr = kernel.ParseID("boxId", boxID)
	if status != nil {
		var parsed box.Status
		parsed, statusErr = box.ParseStatus(*status)
		cmd.status = &parsed
	}
	if err := errors.Join(idErr, statusErr); err != nil {
		return UpdateBoxCommand{}, err
	}

	if number == nil && status == nil && content == nil {
		return UpdateBoxCommand{}, errs.NewValueIsRequiredErrorWithCause("fields", ErrNothingToUpdate)
	}

	return cmd, nil
}

func (c UpdateBoxCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBoxCommandIsNotConstructed)
}

func (c UpdateBoxCommand) BoxID() kernel.ID {
	return c.boxID
}

func (c UpdateBoxCommand) Number() *int {
	return c.number
}

func (c UpdateBoxCommand) Status() *box.Status {
	return c.status
}

func (c UpdateBoxCommand) Content() *string {
	return c.content
}
