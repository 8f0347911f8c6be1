package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

type ShopRepository interface {
	CreateShop(ctx context.Context, shop *models.Shop) error
	GetShopByID(ctx context.Context, id uuid.UUID) (*models.Shop, error)
	GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Shop, error)
	ListShops(ctx context.Context, status models.ShopStatus) ([]models.Shop, error)
	ListActiveShops(ctx context.Context, category string) ([]models.Shop, error)
	UpdateShopStatus(ctx context.Context, id uuid.UUID, status models.ShopStatus, isOpen bool) error
	UpdateCommissionRate(ctx context.Context, id uuid.UUID, rate float64) error
	UpdateShopSettings(ctx context.Context, shop *models.Shop) error
	DeleteShop(ctx context.Context, id uuid.UUID) error
	CountShopsByStatus(ctx context.Context) (map[models.ShopStatus]int, error)
}

type shopRepository struct {
	DB *sql.DB
}

func NewShopRepo(db *sql.DB) ShopRepository {
	return &shopRepository{DB: db}
}

const shopColumns = `id, owner_id, name, description, category, phone, address, image_url, delivery_charge, delivery_radius_km,
		business_hours, status, is_open, commission_rate, is_admin, rating, created_at, updated_at`

func scanShop(row rowScanner) (*models.Shop, error) {

	shop := &models.Shop{}
	var hours []byte

	err := row.Scan(&shop.ID, &shop.OwnerID, &shop.Name, &shop.Description, &shop.Category, &shop.Phone, &shop.Address,
		&shop.ImageURL, &shop.DeliveryCharge, &shop.DeliveryRadiusKm, &hours, &shop.Status, &shop.IsOpen,
		&shop.CommissionRate, &shop.IsAdmin, &shop.Rating, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &shop.BusinessHours); err != nil {
			return nil, fmt.Errorf("failed to unmarshal business hours: %w", err)
		}
	}

	return shop, nil
}

func scanShops(rows *sql.Rows) ([]models.Shop, error) {

	shops := []models.Shop{}

	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, *shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) CreateShop(ctx context.Context, shop *models.Shop) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	hours, err := json.Marshal(shop.BusinessHours)
	if err != nil {
		return fmt.Errorf("failed to marshal business hours: %w", err)
	}

	query := `
		INSERT INTO shops (owner_id, name, description, category, phone, address, image_url, delivery_charge, delivery_radius_km,
			business_hours, status, is_open, commission_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, shop.OwnerID, shop.Name, shop.Description, shop.Category, shop.Phone, shop.Address,
		shop.ImageURL, shop.DeliveryCharge, shop.DeliveryRadiusKm, hours, shop.Status, shop.IsOpen, shop.CommissionRate).
		Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shop: %w", err)
	}

	return nil
}

func (r *shopRepository) GetShopByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	return r.getShop(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id)
}

func (r *shopRepository) GetShopByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Shop, error) {
	return r.getShop(ctx, `SELECT `+shopColumns+` FROM shops WHERE owner_id = $1`, ownerID)
}

func (r *shopRepository) getShop(ctx context.Context, query string, arg uuid.UUID) (*models.Shop, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shop, err := scanShop(r.DB.QueryRowContext(dbCtx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get the shop: %w", err)
	}

	return shop, nil
}

// ListShops lists shops for administration. An empty status lists all of them.
func (r *shopRepository) ListShops(ctx context.Context, status models.ShopStatus) ([]models.Shop, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + shopColumns + ` FROM shops WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	return scanShops(rows)
}

// ListActiveShops lists approved shops for customers, optionally within one category.
func (r *shopRepository) ListActiveShops(ctx context.Context, category string) ([]models.Shop, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + shopColumns + ` FROM shops WHERE status = 'active' AND ($1 = '' OR category = $1) ORDER BY is_open DESC, name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query active shops: %w", err)
	}
	defer rows.Close()

	return scanShops(rows)
}

func (r *shopRepository) UpdateShopStatus(ctx context.Context, id uuid.UUID, status models.ShopStatus, isOpen bool) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE shops SET status = $1, is_open = $2, updated_at = NOW() WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, status, isOpen, id)
	if err != nil {
		return fmt.Errorf("failed to update shop status: %w", err)
	}

	return expectOneRow(result)
}

func (r *shopRepository) UpdateCommissionRate(ctx context.Context, id uuid.UUID, rate float64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE shops SET commission_rate = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, rate, id)
	if err != nil {
		return fmt.Errorf("failed to update commission rate: %w", err)
	}

	return expectOneRow(result)
}

// UpdateShopSettings writes the owner-editable fields.
func (r *shopRepository) UpdateShopSettings(ctx context.Context, shop *models.Shop) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	hours, err := json.Marshal(shop.BusinessHours)
	if err != nil {
		return fmt.Errorf("failed to marshal business hours: %w", err)
	}

	query := `
		UPDATE shops SET name = $1, description = $2, category = $3, phone = $4, address = $5, image_url = $6,
			delivery_charge = $7, delivery_radius_km = $8, business_hours = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, shop.Name, shop.Description, shop.Category, shop.Phone, shop.Address,
		shop.ImageURL, shop.DeliveryCharge, shop.DeliveryRadiusKm, hours, shop.ID).Scan(&shop.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update shop: %w", err)
	}

	return nil
}

func (r *shopRepository) DeleteShop(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	return expectOneRow(result)
}

func (r *shopRepository) CountShopsByStatus(ctx context.Context) (map[models.ShopStatus]int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT status, COUNT(*) FROM shops GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count shops: %w", err)
	}
	defer rows.Close()

	counts := map[models.ShopStatus]int{}

	for rows.Next() {
		var status models.ShopStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan shop count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return counts, nil
}
