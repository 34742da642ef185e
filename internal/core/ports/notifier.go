package ports

import (
	"context"

	"shasanseva/internal/core/domain/model/notification"
)

// Notifier enqueues a user-facing notification. Delivery is best effort:
// callers log a failure and carry on.
type Notifier interface {
	Enqueue(ctx context.Context, n notification.Notification) error
}
