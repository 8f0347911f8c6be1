package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	models "github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListCustomers(ctx context.Context, page, size int) ([]*models.User, int, error)
	CountCustomers(ctx context.Context) (int, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	addresses, err := json.Marshal(nonNilStrings(user.Addresses))
	if err != nil {
		return fmt.Errorf("failed to marshal addresses: %w", err)
	}

	query := `
		INSERT INTO users(email, password, name, phone, role, addresses, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, user.Email, user.Password, user.Name, user.Phone, user.Role, addresses).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, email, password, name, phone, role, addresses, created_at, updated_at
			  FROM users
			  WHERE email = $1`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, email), true)

}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
	SELECT id, email, name, phone, role, addresses, created_at, updated_at
	FROM users
	WHERE id = $1
	`

	return scanUser(r.DB.QueryRowContext(dbCtx, query, id), false)

}

func (r *userRepository) ListCustomers(ctx context.Context, page, size int) ([]*models.User, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users WHERE role = 'customer'`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	offSet := (page - 1) * size

	query := `
		SELECT id, email, name, phone, role, addresses, created_at, updated_at
		FROM users
		WHERE role = 'customer'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offSet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}

	for rows.Next() {
		user, err := scanUser(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return users, total, nil

}

func (r *userRepository) CountCustomers(ctx context.Context) (int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM users WHERE role = 'customer'`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return total, nil

}

func scanUser(row rowScanner, withPassword bool) (*models.User, error) {

	user := &models.User{}
	var addresses []byte

	dest := []any{&user.ID, &user.Email}
	if withPassword {
		dest = append(dest, &user.Password)
	}
	dest = append(dest, &user.Name, &user.Phone, &user.Role, &addresses, &user.CreatedAt, &user.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if len(addresses) > 0 {
		if err := json.Unmarshal(addresses, &user.Addresses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal addresses: %w", err)
		}
	}

	return user, nil

}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
