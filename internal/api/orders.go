package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commercial-portal/internal/cart"
	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/pricing"
)

// OrdersHandler отдает историю отправленных заказов пользователя.
type OrdersHandler struct {
	storage database.OrderStorage
	cart    *cart.Service
}

func NewOrdersHandler(storage database.OrderStorage, cartService *cart.Service) *OrdersHandler {
	return &OrdersHandler{storage: storage, cart: cartService}
}

// List возвращает закрытые заказы пользователя, новые первыми.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	orders, err := h.storage.ListClosedOrders(r.Context(), user.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить заказы пользователя %d: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

type orderDetailResponse struct {
	Order  *model.Order      `json:"order"`
	Items  []model.OrderItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

// Detail возвращает заказ с позициями. Чужие заказы не отдаются.
func (h *OrdersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор заказа")
		return
	}

	order, err := h.storage.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Заказ не найден")
			return
		}
		log.Printf("ОШИБКА: не удалось получить заказ %d: %v", orderID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	if order.UserID != user.ID {
		respondWithError(w, http.StatusNotFound, "Заказ не найден")
		return
	}

	totals, items, err := h.cart.Totals(r.Context(), user, order.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось посчитать итоги заказа %d: %v", orderID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, orderDetailResponse{Order: order, Items: items, Totals: totals})
}
