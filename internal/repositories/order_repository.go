package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByCode(ctx context.Context, code string) (*models.Order, error)
	UpdateOrderLifecycle(ctx context.Context, order *models.Order) error
	SetCommissionPaid(ctx context.Context, id uuid.UUID, paid bool) error
	ListOrdersByShop(ctx context.Context, shopID uuid.UUID) ([]models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error)
	ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error)
	ListOrdersSince(ctx context.Context, since time.Time, shopID *uuid.UUID) ([]models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `id, order_id, customer_id, customer_name, customer_phone, delivery_address, shop_id, shop_name, items,
		subtotal, delivery_charge, total, payment_method, payment_status, status, commission_rate, commission_amount,
		commission_paid, rejection_reason, created_at, updated_at, accepted_at, packed_at, delivered_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {

	order := &models.Order{}
	var items []byte

	err := row.Scan(&order.ID, &order.OrderID, &order.CustomerID, &order.CustomerName, &order.CustomerPhone, &order.DeliveryAddress,
		&order.ShopID, &order.ShopName, &items, &order.Subtotal, &order.DeliveryCharge, &order.Total, &order.PaymentMethod,
		&order.PaymentStatus, &order.Status, &order.CommissionRate, &order.CommissionAmount, &order.CommissionPaid,
		&order.RejectionReason, &order.CreatedAt, &order.UpdatedAt, &order.AcceptedAt, &order.PackedAt, &order.DeliveredAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
	}

	return order, nil
}

func scanOrders(rows *sql.Rows) ([]models.Order, error) {

	orders := []models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err = r.DB.ExecContext(dbCtx, query, order.ID, order.OrderID, order.CustomerID, order.CustomerName, order.CustomerPhone,
		order.DeliveryAddress, order.ShopID, order.ShopName, items, order.Subtotal, order.DeliveryCharge, order.Total,
		order.PaymentMethod, order.PaymentStatus, order.Status, order.CommissionRate, order.CommissionAmount,
		order.CommissionPaid, order.RejectionReason, order.CreatedAt, order.UpdatedAt, order.AcceptedAt, order.PackedAt,
		order.DeliveredAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetOrderByCode(ctx context.Context, code string) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	order, err := scanOrder(r.DB.QueryRowContext(dbCtx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	return order, nil
}

// UpdateOrderLifecycle writes the lifecycle fields only. Last write wins.
func (r *orderRepository) UpdateOrderLifecycle(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE orders SET status = $1, payment_status = $2, rejection_reason = $3, accepted_at = $4, packed_at = $5,
			delivered_at = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.DB.ExecContext(dbCtx, query, order.Status, order.PaymentStatus, order.RejectionReason, order.AcceptedAt,
		order.PackedAt, order.DeliveredAt, order.UpdatedAt, order.ID)
	if err != nil {
		return fmt.Errorf("failed to update the order status: %w", err)
	}

	return expectOneRow(result)
}

func (r *orderRepository) SetCommissionPaid(ctx context.Context, id uuid.UUID, paid bool) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE orders SET commission_paid = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, paid, id)
	if err != nil {
		return fmt.Errorf("failed to update commission status: %w", err)
	}

	return expectOneRow(result)
}

// ListOrdersByShop returns every order of the shop, newest first.
func (r *orderRepository) ListOrdersByShop(ctx context.Context, shopID uuid.UUID) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + orderColumns + ` FROM orders WHERE shop_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shop orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM orders WHERE customer_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, customerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customer orders: %w", err)
	}

	offSet := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID, size, offSet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customer orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ListAllOrders pages through every order on the platform. An empty status means all statuses.
func (r *orderRepository) ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offSet := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, status, size, offSet)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ListOrdersSince feeds the analytics rollups. A nil shopID spans all shops.
func (r *orderRepository) ListOrdersSince(ctx context.Context, since time.Time, shopID *uuid.UUID) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var (
		rows *sql.Rows
		err  error
	)

	if shopID != nil {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= $1 AND shop_id = $2 ORDER BY created_at DESC`
		rows, err = r.DB.QueryContext(dbCtx, query, since, *shopID)
	} else {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= $1 ORDER BY created_at DESC`
		rows, err = r.DB.QueryContext(dbCtx, query, since)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func expectOneRow(result sql.Result) error {

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return ErrNotFound
	}

	return nil
}
