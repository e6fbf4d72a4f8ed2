package validator

import (
	"strconv"
	"strings"

	"tienda-admin/internal/domain/user"
	userDTO "tienda-admin/internal/interface/web/dto/user"
)

// Errors maps a form field to the reason it was rejected.
type Errors map[string]string

const msgRequired = "required"

// trim is the only change applied to submitted values; everything else is stored as sent.
func trim(s string) string { return strings.TrimSpace(s) }

func NormalizeLogin(f userDTO.LoginForm) userDTO.LoginForm {
	return userDTO.LoginForm{
		Email:    trim(f.Email),
		Password: trim(f.Password),
	}
}

func NormalizeUser(f userDTO.Form) userDTO.Form {
	return userDTO.Form{
		Email:    trim(f.Email),
		Password: trim(f.Password),
		Name:     trim(f.Name),
		Lastname: trim(f.Lastname),
		Phone:    trim(f.Phone),
		Address:  trim(f.Address),
		Active:   trim(f.Active),
	}
}

func ValidateLogin(f userDTO.LoginForm) Errors {
	return required(map[string]string{
		"email":    f.Email,
		"password": f.Password,
	})
}

// ValidateNewUser covers both admin creation and self-registration.
func ValidateNewUser(f userDTO.Form) Errors {
	return required(map[string]string{
		"email":    f.Email,
		"password": f.Password,
		"nombre":   f.Name,
		"apellido": f.Lastname,
	})
}

func ValidateEditUser(f userDTO.Form) Errors {
	return required(map[string]string{
		"email":    f.Email,
		"nombre":   f.Name,
		"apellido": f.Lastname,
	})
}

func required(fields map[string]string) Errors {
	errs := make(Errors)
	for name, v := range fields {
		if v == "" {
			errs[name] = msgRequired
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ParseID accepts positive decimal identifiers only.
func ParseID(s string) (user.ID, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return user.ID(id), true
}
