package user

import (
	"time"
)

type (
	User struct {
		ID           int64
		PasswordHash string
		Name         string
		Lastname     string
		Email        string
		Phone        string
		Address      string
		Active       bool

		CreatedAt time.Time
	}
	Users []*User
)
