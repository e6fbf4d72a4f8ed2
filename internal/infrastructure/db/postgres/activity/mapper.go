package activity

import (
	domain "tienda-admin/internal/domain/activity"
	"tienda-admin/internal/domain/user"
)

func fromDBModel(model *Entry) *domain.Entry {
	return &domain.Entry{
		Record: domain.Record{
			ID:          domain.ID(model.ID),
			UserID:      user.ID(model.UserID),
			Action:      domain.Action(model.Action),
			Description: model.Description,
			CreatedAt:   model.CreatedAt,
		},
		UserEmail: model.UserEmail,
	}
}

func fromDBModels(models *Entries) domain.Entries {
	es := make(domain.Entries, len(*models))
	for idx, e := range *models {
		es[idx] = fromDBModel(e)
	}

	return es
}
