package activity

import (
	"context"
)

type Repository interface {
	InsertRecord(ctx context.Context, r Record) error
	FetchRecent(ctx context.Context, limit int) (Entries, error)
}
