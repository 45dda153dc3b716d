package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations.
//
// Workflow transitions that touch two records (verification request + user,
// pool + case) run inside a single Do call so no reader observes an
// intermediate state. Functions passed to Do must not perform external calls.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
