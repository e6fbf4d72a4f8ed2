package activity

import (
	"time"
)

type (
	Entry struct {
		ID          int64
		UserID      int64
		UserEmail   string
		Action      string
		Description string
		CreatedAt   time.Time
	}
	Entries []*Entry
)
