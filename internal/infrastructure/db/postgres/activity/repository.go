package activity

import (
	"context"

	"tienda-admin/internal/domain/activity"
	"tienda-admin/internal/infrastructure/db/postgres"
)

type Repository struct {
	gw postgres.Gateway
}

func NewRepository(gw postgres.Gateway) activity.Repository {
	return &Repository{gw: gw}
}

func (r *Repository) InsertRecord(ctx context.Context, rec activity.Record) error {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, InsertRecord, int64(rec.UserID), string(rec.Action), rec.Description)

	return err
}

func (r *Repository) FetchRecent(ctx context.Context, limit int) (activity.Entries, error) {
	conn, err := r.gw.Acquire(ctx, true)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, SelectRecent, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	es := Entries{}
	for rows.Next() {
		e := new(Entry)
		if err = rows.Scan(
			&e.ID,
			&e.UserID,
			&e.UserEmail,
			&e.Action,
			&e.Description,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}

		es = append(es, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&es), nil
}
