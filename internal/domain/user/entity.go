package user

import (
	"time"
)

type (
	ID   int64
	User struct {
		ID           ID
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
