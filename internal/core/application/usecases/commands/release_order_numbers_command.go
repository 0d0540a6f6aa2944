package commands

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var (
	ErrReleaseOrderNumbersCommandIsNotConstructed = errors.New(
		"ReleaseOrderNumbersCommand must be created via NewReleaseOrderNumbersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff must not be the zero time")
)

// ReleaseOrderNumbersCommand represents a request to free the display numbers
// of paid orders whose numbers were assigned before a cutoff. Freed numbers
// return to the pool the cyclic allocator draws from.
type ReleaseOrderNumbersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewReleaseOrderNumbersCommand creates a command to release stale display numbers.
// Validates that the cutoff is set.
func NewReleaseOrderNumbersCommand(cutoff time.Time) (ReleaseOrderNumbersCommand, error) {
	command := ReleaseOrderNumbersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return ReleaseOrderNumbersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseOrderNumbersCommandIsNotConstructed if validation fails.
func (c ReleaseOrderNumbersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderNumbersCommandIsNotConstructed)
}

// Cutoff returns the assignment time before which numbers are released.
func (c ReleaseOrderNumbersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ReleaseOrderNumbersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
