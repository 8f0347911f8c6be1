package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var ErrNotFound = errors.New("record not found")

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Repository struct {
	DB           *sql.DB
	User         UserRepository
	Shop         ShopRepository
	Product      ProductRepository
	Order        OrderRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wires every repository onto an already opened pool.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:           db,
		User:         NewUserRepo(db),
		Shop:         NewShopRepo(db),
		Product:      NewProductRepo(db),
		Order:        NewOrderRepo(db),
		Notification: NewNotificationRepo(db),
	}
}

// Migrate applies the embedded schema migrations. An up-to-date schema is not an error.
func (p *Repository) Migrate() error {

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratePostgres.WithInstance(p.DB, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	slog.Info("✅ Database migrations applied", slog.Uint64("version", uint64(version)))

	return nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	return hasPQCode(err, uniqueViolation)
}

// IsForeignKeyViolation reports whether err came from a row that is still referenced.
func IsForeignKeyViolation(err error) bool {
	return hasPQCode(err, foreignKeyViolation)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
