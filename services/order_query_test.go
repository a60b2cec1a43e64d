package services

import (
	"context"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "order_number", "financial_status", "fulfillment_status", "order_status",
	"proof_status", "tracking_number", "total_price", "customer_email",
	"order_created_at", "created_at", "updated_at",
}

func TestLoadOrdersPreloadsItems(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow("0190a1b2-0000-7000-8000-000000000001", "SS-1001", "paid", "unfulfilled", "", "awaiting_approval", nil, 42.5, "jo@example.com", now, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_name", "quantity"}).
			AddRow("item-1", "0190a1b2-0000-7000-8000-000000000001", "Vinyl Stickers", 50).
			AddRow("item-2", "0190a1b2-0000-7000-8000-000000000001", "Vinyl Stickers", 25))

	orders, err := LoadOrders(context.Background(), db, nil)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "SS-1001", *orders[0].OrderNumber)
	require.NotNil(t, orders[0].ProofStatus)
	assert.Equal(t, "awaiting_approval", *orders[0].ProofStatus)
	assert.Len(t, orders[0].Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadOrdersWithCutoff(t *testing.T) {
	db, mock := setupMockDB(t)
	since := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE COALESCE(order_created_at, created_at) >= $1`)).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := LoadOrders(context.Background(), db, &since)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrderNotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	order, err := FindOrder(context.Background(), db, "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, order)

	status, msg := ResponseFor(err, "Failed to fetch order")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Order not found", msg)
}

func TestFindOrderDatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnError(assert.AnError)

	_, err := FindOrder(context.Background(), db, "any")
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrOrderNotFound)

	status, msg := ResponseFor(err, "Failed to fetch order")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to fetch order", msg)
}
