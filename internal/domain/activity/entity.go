package activity

import (
	"time"

	"tienda-admin/internal/domain/user"
)

type Action string

const (
	ActionLogin      Action = "Login"
	ActionLogout     Action = "Logout"
	ActionRegister   Action = "Registro"
	ActionCreateUser Action = "Alta Usuario"
	ActionUpdateUser Action = "Modificación"
	ActionDeactivate Action = "Baja Usuario"
	ActionListUsers  Action = "Consulta"
)

// RecentLimit bounds the activity view.
const RecentLimit = 200

type (
	ID     int64
	Record struct {
		ID          ID
		UserID      user.ID
		Action      Action
		Description string
		CreatedAt   time.Time
	}
	// Entry is a Record joined with the acting user's email.
	Entry struct {
		Record
		UserEmail string
	}
	Entries []*Entry
)
