package user

import (
	domain "tienda-admin/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		PasswordHash: model.PasswordHash,
		Name:         model.Name,
		Lastname:     model.Lastname,
		Email:        model.Email,
		Phone:        model.Phone,
		Address:      model.Address,
		Active:       model.Active,

		CreatedAt: model.CreatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
