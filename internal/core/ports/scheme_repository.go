package ports

import (
	"context"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/scheme"
)

// SchemeRepository gives read access to the scheme catalogue.
type SchemeRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*scheme.Scheme, error)
}
