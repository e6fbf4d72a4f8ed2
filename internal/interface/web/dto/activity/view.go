package activity

import (
	"tienda-admin/internal/domain/activity"
)

const dateLayout = "2006-01-02 15:04:05"

type (
	View struct {
		ID          int64
		UserEmail   string
		Action      string
		Description string
		CreatedAt   string
	}
	Views []View
)

func ToViews(entries activity.Entries) Views {
	vs := make(Views, len(entries))
	for idx, e := range entries {
		vs[idx] = View{
			ID:          int64(e.ID),
			UserEmail:   e.UserEmail,
			Action:      string(e.Action),
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(dateLayout),
		}
	}

	return vs
}
