package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	SelectDatabaseExists = `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`
	CreateUsersTable     = `
		CREATE TABLE IF NOT EXISTS usuarios (
			id             BIGSERIAL PRIMARY KEY,
			password       VARCHAR(255) NOT NULL,
			nombre         VARCHAR(100) NOT NULL,
			apellido       VARCHAR(100) NOT NULL,
			email          VARCHAR(100) NOT NULL,
			telefono       VARCHAR(20)  NOT NULL DEFAULT '',
			direccion      VARCHAR(200) NOT NULL DEFAULT '',
			activo         BOOLEAN      NOT NULL DEFAULT TRUE,
			fecha_creacion TIMESTAMPTZ  NOT NULL DEFAULT now(),
			CONSTRAINT usuarios_email_key UNIQUE (email)
		)
	`
	CreateActivityTable = `
		CREATE TABLE IF NOT EXISTS actividad_usuarios (
			id          BIGSERIAL PRIMARY KEY,
			usuario_id  BIGINT       NOT NULL REFERENCES usuarios (id) ON DELETE CASCADE,
			accion      VARCHAR(100) NOT NULL,
			descripcion TEXT         NOT NULL DEFAULT '',
			fecha       TIMESTAMPTZ  NOT NULL DEFAULT now()
		)
	`
	CreateActivityDateIndex = `
		CREATE INDEX IF NOT EXISTS actividad_usuarios_fecha_idx
		ON actividad_usuarios (fecha DESC, id DESC)
	`
	InsertAdminUser = `
		INSERT INTO usuarios (password, nombre, apellido, email, activo)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT (email) DO NOTHING
	`
)

const (
	adminName     = "Super"
	adminLastname = "Usuario"
)

type SchemaConfig struct {
	Database    string
	AdminEmail  string
	AdminDigest string
}

// EnsureSchema creates the database, both tables and the administrative
// user. Every step is idempotent; any failure is returned.
func EnsureSchema(ctx context.Context, logger *zap.Logger, gw Gateway, cfg SchemaConfig) error {
	if err := ensureDatabase(ctx, logger, gw, cfg.Database); err != nil {
		return err
	}

	conn, err := gw.Acquire(ctx, true)
	if err != nil {
		return err
	}
	defer conn.Release()

	for _, stmt := range []struct {
		name string
		sql  string
	}{
		{"create usuarios", CreateUsersTable},
		{"create actividad_usuarios", CreateActivityTable},
		{"create actividad_usuarios index", CreateActivityDateIndex},
	} {
		if _, err = conn.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("%s: %w", stmt.name, err)
		}
	}

	tag, err := conn.Exec(ctx, InsertAdminUser, cfg.AdminDigest, adminName, adminLastname, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if tag.RowsAffected() > 0 {
		logger.Info("admin user created", zap.String("email", cfg.AdminEmail))
	}

	logger.Info("database schema ready", zap.String("database", cfg.Database))

	return nil
}

func ensureDatabase(ctx context.Context, logger *zap.Logger, gw Gateway, name string) error {
	conn, err := gw.Acquire(ctx, false)
	if err != nil {
		return err
	}
	defer conn.Release()

	var exists bool
	if err = conn.QueryRow(ctx, SelectDatabaseExists, name).Scan(&exists); err != nil {
		return fmt.Errorf("check database %s: %w", name, err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE takes no bind parameters; the identifier is quoted instead.
	if _, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize()); err != nil {
		// lost a race with another instance
		if IsPgDuplicateDatabase(err) {
			return nil
		}
		return fmt.Errorf("create database %s: %w", name, err)
	}

	logger.Info("database created", zap.String("database", name))

	return nil
}
