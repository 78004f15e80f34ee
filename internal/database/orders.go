package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// GetOpenOrder возвращает открытый заказ пользователя либо ErrNotFound.
func (s *postgresStorage) GetOpenOrder(ctx context.Context, userID int) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOpenOrder")
	defer span.End()

	var order model.Order
	err := s.db.GetContext(ctx, &order,
		`SELECT * FROM orders WHERE user_id = $1 AND NOT is_closed ORDER BY id LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_open_order").Inc()
		return nil, fmt.Errorf("ошибка поиска открытого заказа: %w", err)
	}
	return &order, nil
}

// CreateOpenOrder создает открытый заказ. Частичный уникальный индекс
// не допустит второй открытый заказ того же пользователя — гонка
// разрешается вызывающей стороной.
func (s *postgresStorage) CreateOpenOrder(ctx context.Context, userID int) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.CreateOpenOrder")
	defer span.End()

	var order model.Order
	err := s.db.GetContext(ctx, &order,
		`INSERT INTO orders (user_id) VALUES ($1) RETURNING *`, userID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_order").Inc()
		return nil, fmt.Errorf("ошибка создания заказа: %w", err)
	}
	return &order, nil
}

// ListOpenOrders возвращает все открытые заказы пользователя.
// Больше одного — следствие гонки, которую разрешает корзина.
func (s *postgresStorage) ListOpenOrders(ctx context.Context, userID int) ([]model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListOpenOrders")
	defer span.End()

	var orders []model.Order
	err := s.db.SelectContext(ctx, &orders,
		`SELECT * FROM orders WHERE user_id = $1 AND NOT is_closed ORDER BY id`, userID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_open_orders").Inc()
		return nil, fmt.Errorf("ошибка чтения открытых заказов: %w", err)
	}
	return orders, nil
}

// DeleteOrder удаляет заказ вместе со строками (ON DELETE CASCADE).
func (s *postgresStorage) DeleteOrder(ctx context.Context, orderID int) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteOrder")
	defer span.End()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		metrics.DBErrors.WithLabelValues("delete_order").Inc()
		return fmt.Errorf("ошибка удаления заказа: %w", err)
	}
	return nil
}

// GetOrder возвращает заказ по id.
func (s *postgresStorage) GetOrder(ctx context.Context, orderID int) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrder")
	defer span.End()

	var order model.Order
	err := s.db.GetContext(ctx, &order, `SELECT * FROM orders WHERE id = $1`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_order").Inc()
		return nil, fmt.Errorf("ошибка чтения заказа: %w", err)
	}
	return &order, nil
}

// ListClosedOrders возвращает историю заказов пользователя.
func (s *postgresStorage) ListClosedOrders(ctx context.Context, userID int) ([]model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListClosedOrders")
	defer span.End()

	var orders []model.Order
	err := s.db.SelectContext(ctx, &orders,
		`SELECT * FROM orders WHERE user_id = $1 AND is_closed ORDER BY date DESC`, userID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_closed_orders").Inc()
		return nil, fmt.Errorf("ошибка чтения истории заказов: %w", err)
	}
	return orders, nil
}

// AddOrderItem добавляет строку заказа со снимком атрибутов витрины.
// Повторное добавление того же товара суммирует количество, не создавая
// дубликата. Закрытый заказ не изменяется.
func (s *postgresStorage) AddOrderItem(ctx context.Context, item *model.OrderItem) error {
	ctx, span := s.tracer.Start(ctx, "DB.AddOrderItem")
	defer span.End()

	query := `
        INSERT INTO order_items (
            order_id, article_id, name, count, price, full_price,
            volume, weight, barcode, company, image_url
        )
        SELECT :order_id, :article_id, :name, :count, :price, :full_price,
               :volume, :weight, :barcode, :company, :image_url
        WHERE EXISTS (SELECT 1 FROM orders WHERE id = :order_id AND NOT is_closed)
        ON CONFLICT (order_id, article_id) DO UPDATE SET
            count = order_items.count + EXCLUDED.count,
            price = EXCLUDED.price,
            full_price = EXCLUDED.full_price`
	res, err := s.db.NamedExecContext(ctx, query, item)
	if err != nil {
		metrics.DBErrors.WithLabelValues("add_order_item").Inc()
		return fmt.Errorf("ошибка добавления строки заказа: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderClosed
	}
	return nil
}

// GetOrderItem возвращает строку заказа по id.
func (s *postgresStorage) GetOrderItem(ctx context.Context, itemID int) (*model.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetOrderItem")
	defer span.End()

	var item model.OrderItem
	err := s.db.GetContext(ctx, &item, `SELECT * FROM order_items WHERE id = $1`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_order_item").Inc()
		return nil, fmt.Errorf("ошибка чтения строки заказа: %w", err)
	}
	return &item, nil
}

// UpdateOrderItemCount задает количество в строке открытого заказа.
func (s *postgresStorage) UpdateOrderItemCount(ctx context.Context, itemID, count int) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateOrderItemCount")
	defer span.End()

	query := `
        UPDATE order_items SET count = $2
        WHERE id = $1
          AND EXISTS (SELECT 1 FROM orders WHERE id = order_items.order_id AND NOT is_closed)`
	res, err := s.db.ExecContext(ctx, query, itemID, count)
	if err != nil {
		metrics.DBErrors.WithLabelValues("update_order_item").Inc()
		return fmt.Errorf("ошибка изменения количества: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderClosed
	}
	return nil
}

// DeleteOrderItem удаляет строку открытого заказа.
func (s *postgresStorage) DeleteOrderItem(ctx context.Context, itemID int) error {
	ctx, span := s.tracer.Start(ctx, "DB.DeleteOrderItem")
	defer span.End()

	query := `
        DELETE FROM order_items
        WHERE id = $1
          AND EXISTS (SELECT 1 FROM orders WHERE id = order_items.order_id AND NOT is_closed)`
	if _, err := s.db.ExecContext(ctx, query, itemID); err != nil {
		metrics.DBErrors.WithLabelValues("delete_order_item").Inc()
		return fmt.Errorf("ошибка удаления строки заказа: %w", err)
	}
	return nil
}

// ClearOrder удаляет все строки открытого заказа.
func (s *postgresStorage) ClearOrder(ctx context.Context, orderID int) error {
	ctx, span := s.tracer.Start(ctx, "DB.ClearOrder")
	defer span.End()

	query := `
        DELETE FROM order_items
        WHERE order_id = $1
          AND EXISTS (SELECT 1 FROM orders WHERE id = $1 AND NOT is_closed)`
	if _, err := s.db.ExecContext(ctx, query, orderID); err != nil {
		metrics.DBErrors.WithLabelValues("clear_order").Inc()
		return fmt.Errorf("ошибка очистки заказа: %w", err)
	}
	return nil
}

// ListOrderItems возвращает строки заказа.
func (s *postgresStorage) ListOrderItems(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListOrderItems")
	defer span.End()

	var items []model.OrderItem
	err := s.db.SelectContext(ctx, &items,
		`SELECT * FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_order_items").Inc()
		return nil, fmt.Errorf("ошибка чтения строк заказа: %w", err)
	}
	return items, nil
}

// CloseOrder закрывает заказ, фиксируя комментарий и способ доставки.
// Переход одноразовый: повторное закрытие возвращает ErrOrderClosed.
func (s *postgresStorage) CloseOrder(ctx context.Context, orderID int, comment, delivery string) error {
	ctx, span := s.tracer.Start(ctx, "DB.CloseOrder")
	defer span.End()

	query := `
        UPDATE orders SET is_closed = TRUE, comment = $2, delivery = $3
        WHERE id = $1 AND NOT is_closed`
	res, err := s.db.ExecContext(ctx, query, orderID, comment, delivery)
	if err != nil {
		metrics.DBErrors.WithLabelValues("close_order").Inc()
		return fmt.Errorf("ошибка закрытия заказа: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderClosed
	}
	return nil
}
