package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction shared by the repositories it
// returns. Begin is idempotent; Commit and Rollback fail without an open
// transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories are bound to the open transaction, or to the plain
	// connection before Begin.
	OrderRepository() OrderRepository
	SchemeRepository() SchemeRepository
	ProofRepository() ProofRepository
}
