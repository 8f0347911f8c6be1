package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SetInStock(ctx context.Context, id uuid.UUID, inStock bool) error
	ListProductsByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error)
	ListAvailableProducts(ctx context.Context) ([]models.ListedProduct, error)
	SearchProducts(ctx context.Context, term string) ([]models.ListedProduct, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.shop_id, p.name, p.description, p.category, p.unit, p.price, p.offer_price, p.in_stock,
		p.image_url, p.image_path, p.created_at, p.updated_at`

// available products: in stock and sold by an approved shop that is open
const availableFilter = `p.in_stock = TRUE AND s.status = 'active' AND s.is_open = TRUE`

func productFields(p *models.Product) []any {
	return []any{&p.ID, &p.ShopID, &p.Name, &p.Description, &p.Category, &p.Unit, &p.Price, &p.OfferPrice, &p.InStock,
		&p.ImageURL, &p.ImagePath, &p.CreatedAt, &p.UpdatedAt}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (shop_id, name, description, category, unit, price, offer_price, in_stock)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.ShopID, product.Name, product.Description, product.Category, product.Unit,
		product.Price, product.OfferPrice, product.InStock).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(productFields(product)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET name = $1, description = $2, category = $3, unit = $4, price = $5, offer_price = $6, in_stock = $7,
			image_url = $8, image_path = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Category, product.Unit, product.Price,
		product.OfferPrice, product.InStock, product.ImageURL, product.ImagePath, product.ID).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return expectOneRow(result)
}

func (r *productRepository) SetInStock(ctx context.Context, id uuid.UUID, inStock bool) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE products SET in_stock = $1, updated_at = NOW() WHERE id = $2`, inStock, id)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return expectOneRow(result)
}

func (r *productRepository) ListProductsByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.shop_id = $1 ORDER BY p.name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var product models.Product
		if err := rows.Scan(productFields(&product)...); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) ListAvailableProducts(ctx context.Context) ([]models.ListedProduct, error) {

	query := `
		SELECT ` + productColumns + `, s.name, s.delivery_charge
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		WHERE ` + availableFilter + `
		ORDER BY p.name ASC`

	return r.listListed(ctx, query)
}

// SearchProducts matches name or category, case-insensitively, among available products.
func (r *productRepository) SearchProducts(ctx context.Context, term string) ([]models.ListedProduct, error) {

	query := `
		SELECT ` + productColumns + `, s.name, s.delivery_charge
		FROM products p
		JOIN shops s ON s.id = p.shop_id
		WHERE ` + availableFilter + ` AND (p.name ILIKE $1 OR p.category ILIKE $1)
		ORDER BY p.name ASC`

	return r.listListed(ctx, query, "%"+term+"%")
}

func (r *productRepository) listListed(ctx context.Context, query string, args ...any) ([]models.ListedProduct, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.ListedProduct{}

	for rows.Next() {
		var listed models.ListedProduct
		dest := append(productFields(&listed.Product), &listed.ShopName, &listed.DeliveryCharge)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, listed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return products, nil
}
