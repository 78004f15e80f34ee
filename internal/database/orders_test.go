package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"commercial-portal/internal/model"
)

// setupStorageWithMock настраивает postgresStorage с моком sqlx.DB
func setupStorageWithMock(t *testing.T) (*postgresStorage, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("не удалось создать sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "postgres")

	storage := &postgresStorage{
		db:     sqlxDB,
		tracer: otel.Tracer("postgres-storage-test"),
	}
	return storage, mock
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "date", "comment", "delivery", "is_closed"})
}

func TestGetOpenOrder(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectQuery(`SELECT \* FROM orders WHERE user_id = \$1 AND NOT is_closed`).
		WithArgs(7).
		WillReturnRows(orderRows().AddRow(42, 7, time.Now(), "", "", false))

	order, err := storage.GetOpenOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.False(t, order.IsClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOpenOrder_NotFound(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectQuery(`SELECT \* FROM orders WHERE user_id = \$1 AND NOT is_closed`).
		WithArgs(7).
		WillReturnRows(orderRows())

	_, err := storage.GetOpenOrder(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOpenOrder(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectQuery(`INSERT INTO orders \(user_id\) VALUES \(\$1\) RETURNING \*`).
		WithArgs(7).
		WillReturnRows(orderRows().AddRow(43, 7, time.Now(), "", "", false))

	order, err := storage.CreateOpenOrder(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 43, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddOrderItem_Accumulates(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	item := &model.OrderItem{
		OrderID:   42,
		ArticleID: "ART1",
		Name:      "Коляска",
		Count:     2,
		Price:     decimal.NewFromInt(900),
		FullPrice: decimal.NewFromInt(1000),
	}

	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := storage.AddOrderItem(context.Background(), item)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddOrderItem_ClosedOrder(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	// Заказ закрыт: WHERE EXISTS отфильтровал вставку, ни одной строки
	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := storage.AddOrderItem(context.Background(), &model.OrderItem{OrderID: 42, ArticleID: "ART1"})

	assert.ErrorIs(t, err, ErrOrderClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderItemCount_ClosedOrder(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectExec(`UPDATE order_items SET count = \$2`).
		WithArgs(5, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := storage.UpdateOrderItemCount(context.Background(), 5, 3)

	assert.ErrorIs(t, err, ErrOrderClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseOrder(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectExec(`UPDATE orders SET is_closed = TRUE`).
		WithArgs(42, "комментарий", "самовывоз").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := storage.CloseOrder(context.Background(), 42, "комментарий", "самовывоз")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseOrder_AlreadyClosed(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	// Повторное закрытие: фильтр NOT is_closed не нашел строк
	mock.ExpectExec(`UPDATE orders SET is_closed = TRUE`).
		WithArgs(42, "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := storage.CloseOrder(context.Background(), 42, "", "")

	assert.ErrorIs(t, err, ErrOrderClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListClosedOrders(t *testing.T) {
	storage, mock := setupStorageWithMock(t)
	defer storage.Close()

	mock.ExpectQuery(`SELECT \* FROM orders WHERE user_id = \$1 AND is_closed ORDER BY date DESC`).
		WithArgs(7).
		WillReturnRows(orderRows().
			AddRow(2, 7, time.Now(), "", "", true).
			AddRow(1, 7, time.Now().Add(-time.Hour), "", "", true))

	orders, err := storage.ListClosedOrders(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 2, orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
