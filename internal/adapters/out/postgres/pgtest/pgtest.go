// Package pgtest starts a throwaway postgres container with the service schema
// applied, for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"shasanseva/internal/adapters/out/postgres/migrations"
	"shasanseva/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Database is a migrated postgres instance running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies the migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{Container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return d, err
	}

	d.DB, err = gorm.Open(gorm_postgres.Open(d.DSN), &gorm.Config{})
	if err != nil {
		return d, err
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return d, err
	}

	return d, migrations.Up(sqlDB)
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties every table.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).
		Exec("TRUNCATE TABLE notifications, proofs, orders, schemes, admins, users").Error
}

// InsertUser creates a user row and returns its id.
func (d *Database) InsertUser(ctx context.Context, name, phone string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := d.DB.WithContext(ctx).
		Exec("INSERT INTO users (id, name, phone) VALUES (?, ?, ?)", id.Bytes(), name, phone).Error
	return id, err
}

// InsertAdmin creates an admin row with role ADMIN or SUPER_ADMIN and returns its id.
func (d *Database) InsertAdmin(ctx context.Context, name, role string) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := d.DB.WithContext(ctx).
		Exec("INSERT INTO admins (id, name, email, role) VALUES (?, ?, ?, ?)",
			id.Bytes(), name, id.String()+"@admins.test", role).Error
	return id, err
}

// InsertScheme creates an active or inactive scheme with the given fee.
func (d *Database) InsertScheme(ctx context.Context, name, fee string, active bool) (kernel.UUID, error) {
	id := kernel.NewUUID()
	err := d.DB.WithContext(ctx).
		Exec("INSERT INTO schemes (id, name, service_fee, is_active) VALUES (?, ?, ?::numeric, ?)",
			id.Bytes(), name, fee, active).Error
	return id, err
}
