package commands

import (
	"errors"
	"time"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrArchiveServedOrdersCommandIsNotConstructed = errors.New(
	"ArchiveServedOrdersCommand must be created via NewArchiveServedOrdersCommand constructor",
)

// ArchiveServedOrdersCommand represents a request to purge orders that were
// fully served longer than the retention period ago, keeping the active
// tables bounded.
type ArchiveServedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewArchiveServedOrdersCommand creates a command to purge old served
// orders. The retention period is the grace window a served order stays
// visible for.
func NewArchiveServedOrdersCommand(retention time.Duration) (ArchiveServedOrdersCommand, error) {
	cmd := ArchiveServedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return ArchiveServedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveServedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveServedOrdersCommandIsNotConstructed)
}

// Retention returns how long served orders are kept.
func (c ArchiveServedOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *ArchiveServedOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsOutOfRangeError("retention", retention, time.Nanosecond, "unbounded")
	}
	c.retention = retention
	return nil
}
