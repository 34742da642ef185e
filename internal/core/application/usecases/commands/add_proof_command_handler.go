package commands

import (
	"context"
	"log/slog"
	"time"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
)

// AddProofCommandHandler records a proof for an order in IN_PROGRESS or
// PROOF_UPLOADED. The order status is left alone; moving to PROOF_UPLOADED is a
// separate transition.
//
// The proof insert and a conditional touch of the order share one transaction,
// so a proof is never stored against an order that was cancelled or taken over
// after it was read.
type AddProofCommandHandler struct {
	uowFactory ProofUoWFactory
	lifecycle  services.OrderLifecycle
	logger     *slog.Logger
	now        func() time.Time
}

func NewAddProofCommandHandler(uowFactory ProofUoWFactory, logger *slog.Logger) AddProofCommandHandler {
	return AddProofCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
		logger:     logger.With("component", "add_proof"),
		now:        time.Now,
	}
}

func (h AddProofCommandHandler) Handle(ctx context.Context, cmd AddProofCommand) (order.Proof, error) {
	if err := cmd.Validate(); err != nil {
		return order.Proof{}, err
	}

	for range maxWriteAttempts {
		proof, applied, err := h.attempt(ctx, cmd)
		if err != nil {
			return order.Proof{}, err
		}
		if applied {
			h.logger.InfoContext(ctx, "proof added",
				"order_id", proof.OrderID.String(),
				"proof_id", proof.ID.String(),
				"type", string(proof.Type),
			)
			return proof, nil
		}
	}

	return order.Proof{}, ErrConcurrentModification
}

func (h AddProofCommandHandler) attempt(ctx context.Context, cmd AddProofCommand) (order.Proof, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Proof{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Proof{}, false, err
	}

	if err = h.lifecycle.AuthorizeProof(o, cmd.Actor()); err != nil {
		return order.Proof{}, false, err
	}

	now := h.now().UTC()
	proof, err := order.NewProof(o.ID(), cmd.Actor().ID(), cmd.ProofType(), cmd.FileKey(), cmd.FileName(), cmd.Description(), now)
	if err != nil {
		return order.Proof{}, false, err
	}

	applied, err := orderRepo.ApplyPatch(ctx, o.PatchTo(o.Status(), now))
	if err != nil || !applied {
		return order.Proof{}, false, err
	}

	if err = uow.ProofRepository().Add(ctx, proof); err != nil {
		return order.Proof{}, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Proof{}, false, err
	}

	return proof, true, nil
}
