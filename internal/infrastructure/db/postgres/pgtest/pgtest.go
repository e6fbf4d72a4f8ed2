// Package pgtest provides a postgres.Gateway backed by pgxmock for tests.
package pgtest

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"tienda-admin/internal/infrastructure/db/postgres"
)

type Gateway struct {
	Mock pgxmock.PgxConnIface
	// Err, when set, is returned by every Acquire.
	Err error

	Selects  []bool
	Released int
}

func New(t *testing.T) *Gateway {
	t.Helper()

	mock, err := pgxmock.NewConn(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(context.Background()) })

	return &Gateway{Mock: mock}
}

func (g *Gateway) Acquire(_ context.Context, selectDatabase bool) (postgres.Conn, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	g.Selects = append(g.Selects, selectDatabase)

	return &conn{PgxConnIface: g.Mock, gw: g}, nil
}

// AllReleased reports whether every acquired connection was released.
func (g *Gateway) AllReleased() bool { return g.Released == len(g.Selects) }

type conn struct {
	pgxmock.PgxConnIface
	gw *Gateway
}

func (c *conn) Release() { c.gw.Released++ }
