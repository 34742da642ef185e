// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shasanseva/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SchemeRepoFactory provides access to scheme repository within a transaction.
	SchemeRepoFactory interface {
		SchemeRepository() ports.SchemeRepository
	}

	// ProofRepoFactory provides access to proof repository within a transaction.
	ProofRepoFactory interface {
		ProofRepository() ports.ProofRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// status transitions, completion, notes and payment confirmation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW reads the scheme catalogue while creating an order.
	CatalogUoW interface {
		TxManager
		OrderRepoFactory
		SchemeRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// ProofUoW records a proof and re-checks the order in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   err = uow.ProofRepository().Add(ctx, proof)
	//
	//   err = uow.Commit(ctx)
	ProofUoW interface {
		TxManager
		OrderRepoFactory
		ProofRepoFactory
	}

	// ProofUoWFactory creates new proof unit of work instances.
	ProofUoWFactory interface {
		Create() ProofUoW
	}
)
