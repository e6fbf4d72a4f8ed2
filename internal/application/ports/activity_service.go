package ports

import (
	"context"

	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
)

type ActivityService interface {
	// Record is best-effort: failures are logged, never returned.
	Record(ctx context.Context, userID user.ID, action activity.Action, description string)
	FindRecent(ctx context.Context) (activity.Entries, error)
}
