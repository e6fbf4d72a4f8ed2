package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"tienda-admin/config"
)

// ErrUnavailable marks a failure to obtain a database connection.
var ErrUnavailable = errors.New("database unavailable")

type (
	Conn interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Release()
	}
	// Gateway hands out one connection per operation. Callers must Release it
	// before returning.
	Gateway interface {
		Acquire(ctx context.Context, selectDatabase bool) (Conn, error)
	}
)

type PoolGateway struct {
	logger     *zap.Logger
	pool       *pgxpool.Pool
	serverConf *pgx.ConnConfig
}

// New builds the pool lazily so the schema initializer can create the
// database before the first pooled connection is opened.
func New(ctx context.Context, logger *zap.Logger, cfg config.Config) (*PoolGateway, error) {
	dsn, err := cfg.DBDSN(true)
	if err != nil {
		return nil, err
	}
	poolConf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	if cfg.DB.MaxConns > 0 {
		poolConf.MaxConns = cfg.DB.MaxConns
	}

	serverDsn, err := cfg.DBDSN(false)
	if err != nil {
		return nil, err
	}
	serverConf, err := pgx.ParseConfig(serverDsn)
	if err != nil {
		return nil, fmt.Errorf("parse db server config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	return &PoolGateway{
		logger:     logger,
		pool:       pool,
		serverConf: serverConf,
	}, nil
}

func (g *PoolGateway) Acquire(ctx context.Context, selectDatabase bool) (Conn, error) {
	if !selectDatabase {
		c, err := pgx.ConnectConfig(ctx, g.serverConf)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return &serverConn{Conn: c}, nil
	}

	c, err := g.pool.Acquire(ctx)
	if err != nil {
		g.logger.Warn("db acquire failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return c, nil
}

func (g *PoolGateway) Ping(ctx context.Context) error {
	if err := g.pool.Ping(ctx); err != nil {
		return fmt.Errorf("db ping failed: %w", err)
	}

	g.logger.Info("db connected successfully")

	return nil
}

func (g *PoolGateway) Close() { g.pool.Close() }

// serverConn is a direct, unpooled connection that is closed on Release.
type serverConn struct {
	*pgx.Conn
}

func (c *serverConn) Release() { _ = c.Conn.Close(context.Background()) }
