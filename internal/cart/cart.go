// Package cart реализует жизненный цикл заказа-корзины:
// нет заказа → открытый → закрытый (терминально). Открытый заказ создается
// лениво при первом добавлении товара; единственность открытого заказа
// гарантирует БД, сервис лишь разрешает последствия гонок.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/pricing"
	"commercial-portal/internal/queue"
)

// ErrInactiveUser - корзина доступна только активным пользователям.
var ErrInactiveUser = errors.New("пользователь неактивен")

// Service — операции корзины поверх Storage и очереди задач.
type Service struct {
	storage  database.Storage
	producer queue.Producer
	tracer   trace.Tracer // Для трассировки
}

// NewService создает сервис корзины.
func NewService(storage database.Storage, producer queue.Producer) *Service {
	return &Service{
		storage:  storage,
		producer: producer,
		tracer:   otel.Tracer("cart-service"),
	}
}

// GetDigits возвращает ведущие цифры строки; пустая строка дает "0".
// Так разбираются значения количеств из формы пересчета.
func GetDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			if i == 0 {
				return "0"
			}
			return s[:i]
		}
	}
	if s == "" {
		return "0"
	}
	return s
}

// OpenOrder возвращает открытый заказ пользователя, создавая его при
// отсутствии. Проигранная гонка создания разрешается повторным чтением;
// лишние дубликаты схлопываются до одного выжившего.
//
// Схлопывание уничтожает содержимое лишнего заказа — поведение унаследовано
// и видимо владельцу продукта.
func (s *Service) OpenOrder(ctx context.Context, userID int) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Cart.OpenOrder")
	defer span.End()

	if err := s.reconcileOpenOrders(ctx, userID); err != nil {
		return nil, err
	}

	order, err := s.storage.GetOpenOrder(ctx, userID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	order, err = s.storage.CreateOpenOrder(ctx, userID)
	if err != nil {
		// Проигранная гонка: параллельный запрос успел создать заказ.
		if existing, getErr := s.storage.GetOpenOrder(ctx, userID); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return order, nil
}

// reconcileOpenOrders схлопывает лишние открытые заказы, если ограничение
// уникальности по какой-то причине оказалось нарушено.
func (s *Service) reconcileOpenOrders(ctx context.Context, userID int) error {
	orders, err := s.storage.ListOpenOrders(ctx, userID)
	if err != nil {
		return err
	}
	for _, extra := range orders[min(len(orders), 1):] {
		log.Printf("ВНИМАНИЕ: лишний открытый заказ %d пользователя %d удален.", extra.ID, userID)
		if err := s.storage.DeleteOrder(ctx, extra.ID); err != nil {
			return err
		}
	}
	return nil
}

// AddToCart добавляет товар в корзину: цена для покупателя считается один
// раз и замораживается в снимке строки вместе с атрибутами витрины.
func (s *Service) AddToCart(ctx context.Context, user *model.User, articleID string, count int) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Cart.AddToCart")
	defer span.End()

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	props, err := s.storage.GetArticleProperties(ctx, user.DepartmentID, articleID)
	if err != nil {
		return nil, fmt.Errorf("товар %s: %w", articleID, err)
	}

	order, err := s.OpenOrder(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	item := &model.OrderItem{
		OrderID:   order.ID,
		ArticleID: props.ArticleID,
		Name:      props.Name,
		Count:     count,
		Price:     pricing.PriceForUser(props.Price, user.Discount),
		FullPrice: props.Price,
		Volume:    props.Volume,
		Weight:    props.Weight,
		Barcode:   props.Barcode,
		Company:   props.Company,
		ImageURL:  props.ImageLink,
	}
	if err := s.storage.AddOrderItem(ctx, item); err != nil {
		return nil, err
	}
	return order, nil
}

// Recalculate применяет массовую правку количеств из формы корзины за один
// проход: ключи "del_<id>" удаляют строку, числовые ключи задают количество
// (ноль удаляет), остальные поля формы игнорируются. Чужие строки
// пропускаются.
func (s *Service) Recalculate(ctx context.Context, userID int, form map[string]string) error {
	ctx, span := s.tracer.Start(ctx, "Cart.Recalculate")
	defer span.End()

	order, err := s.storage.GetOpenOrder(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil // нечего пересчитывать
		}
		return err
	}

	for key, value := range form {
		if id, ok := strings.CutPrefix(key, "del_"); ok {
			if err := s.deleteOwnItem(ctx, order.ID, id); err != nil {
				return err
			}
			continue
		}

		itemID, err := strconv.Atoi(key)
		if err != nil {
			continue // не ссылка на строку заказа
		}
		item, err := s.storage.GetOrderItem(ctx, itemID)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if item.OrderID != order.ID {
			continue
		}

		count, _ := strconv.Atoi(GetDigits(value))
		if count == 0 {
			if err := s.storage.DeleteOrderItem(ctx, item.ID); err != nil {
				return err
			}
			continue
		}
		if err := s.storage.UpdateOrderItemCount(ctx, item.ID, count); err != nil {
			return err
		}
	}
	return nil
}

// deleteOwnItem удаляет строку, только если она принадлежит заказу.
func (s *Service) deleteOwnItem(ctx context.Context, orderID int, rawItemID string) error {
	itemID, err := strconv.Atoi(rawItemID)
	if err != nil {
		return nil
	}
	item, err := s.storage.GetOrderItem(ctx, itemID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if item.OrderID != orderID {
		return nil
	}
	return s.storage.DeleteOrderItem(ctx, itemID)
}

// Clear опустошает корзину.
func (s *Service) Clear(ctx context.Context, userID int) error {
	ctx, span := s.tracer.Start(ctx, "Cart.Clear")
	defer span.End()

	order, err := s.storage.GetOpenOrder(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.storage.ClearOrder(ctx, order.ID)
}

// Checkout закрывает заказ. Переход одноразовый: заказ становится
// неизменяемым, рассылка ставится в очередь fire-and-forget — успех
// оформления не зависит от судьбы письма.
func (s *Service) Checkout(ctx context.Context, userID int, comment, delivery string) (*model.Order, error) {
	ctx, span := s.tracer.Start(ctx, "Cart.Checkout")
	defer span.End()

	order, err := s.storage.GetOpenOrder(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.storage.CloseOrder(ctx, order.ID, comment, delivery); err != nil {
		return nil, err
	}
	order.IsClosed = true
	order.Comment = comment
	order.Delivery = delivery

	if err := s.producer.Submit(ctx, queue.JobSendOrder, queue.OrderPayload{OrderID: order.ID}); err != nil {
		// Заказ уже закрыт; задача не встала в очередь - только логируем.
		log.Printf("Ошибка постановки задачи рассылки заказа %d: %v", order.ID, err)
	}
	return order, nil
}

// Totals считает суммы корзины/заказа для отображения и писем.
func (s *Service) Totals(ctx context.Context, user *model.User, orderID int) (pricing.Totals, []model.OrderItem, error) {
	ctx, span := s.tracer.Start(ctx, "Cart.Totals")
	defer span.End()

	items, err := s.storage.ListOrderItems(ctx, orderID)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	department, err := s.storage.GetDepartmentByID(ctx, user.DepartmentID)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	tiers, err := s.storage.ListDepartmentSales(ctx, department.ID)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	deliveryPrice, err := s.storage.GetDeliveryPrice(ctx, department.Country)
	if err != nil {
		return pricing.Totals{}, nil, err
	}
	return pricing.Calculate(items, tiers, user.Discount, deliveryPrice), items, nil
}
