package ports

import (
	"context"

	"shasanseva/internal/core/domain/model/order"
)

// ProofRepository stores proofs attached to orders.
type ProofRepository interface {
	Add(ctx context.Context, proof order.Proof) error
}
