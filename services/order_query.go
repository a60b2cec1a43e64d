package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"
)

// LoadOrders fetches orders with their items, newest first. A nil since
// loads everything.
func LoadOrders(ctx context.Context, db *gorm.DB, since *time.Time) ([]models.Order, error) {
	q := db.WithContext(ctx).Model(&models.Order{}).Preload("Items")
	if since != nil {
		q = q.Where("COALESCE(order_created_at, created_at) >= ?", *since)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

// FindOrder loads one order and its items.
func FindOrder(ctx context.Context, db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found", Err: ErrOrderNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

// RowQuerier is the slice of pgxpool.Pool the CLI loader needs.
type RowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const analyticsOrdersSQL = `
SELECT o.id::text,
       o.financial_status,
       o.total_price::float8,
       o.order_created_at,
       o.created_at,
       COALESCE((SELECT SUM(i.quantity) FROM order_items i WHERE i.order_id = o.id), 0)::int
FROM orders o
WHERE $1::timestamptz IS NULL OR COALESCE(o.order_created_at, o.created_at) >= $1::timestamptz`

// LoadAnalyticsOrders reads just the columns analytics needs straight off a
// pgx pool. Each order carries one synthetic item holding its unit count.
func LoadAnalyticsOrders(ctx context.Context, pool RowQuerier, since *time.Time) ([]models.Order, error) {
	rows, err := pool.Query(ctx, analyticsOrdersSQL, since)
	if err != nil {
		return nil, fmt.Errorf("query analytics orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o     models.Order
			units int
		)
		if err := rows.Scan(&o.ID, &o.FinancialStatus, &o.TotalPrice, &o.OrderCreatedAt, &o.CreatedAt, &units); err != nil {
			return nil, fmt.Errorf("scan analytics order: %w", err)
		}
		o.Items = []models.OrderItem{{OrderID: o.ID, Quantity: units}}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
