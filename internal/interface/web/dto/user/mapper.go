package user

import (
	"tienda-admin/internal/domain/user"
)

const (
	checkboxOn = "on"
	dateLayout = "2006-01-02 15:04"
)

func ToView(uDomain user.User) View {
	return View{
		ID:        int64(uDomain.ID),
		Email:     uDomain.Email,
		Name:      uDomain.Name,
		Lastname:  uDomain.Lastname,
		Phone:     uDomain.Phone,
		Address:   uDomain.Address,
		Active:    uDomain.Active,
		CreatedAt: uDomain.CreatedAt.Format(dateLayout),
	}
}

func ToViews(usDomain user.Users) Views {
	vs := make(Views, len(usDomain))
	for idx, u := range usDomain {
		vs[idx] = ToView(*u)
	}

	return vs
}

// ToDomainUser maps the editable fields; Active follows the checkbox value.
func ToDomainUser(f Form) user.User {
	return user.User{
		Email:    f.Email,
		Name:     f.Name,
		Lastname: f.Lastname,
		Phone:    f.Phone,
		Address:  f.Address,
		Active:   f.Active == checkboxOn,
	}
}
