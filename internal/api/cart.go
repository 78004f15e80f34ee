package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"commercial-portal/internal/cart"
	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/pricing"
)

// Имена кнопок формы корзины. Форма присылает имя нажатой кнопки,
// по нему выбирается действие.
const (
	cartActionClear       = "Очистить"
	cartActionRecalculate = "Пересчитать"
	cartActionCheckout    = "Отправить"
)

// CartHandler обслуживает корзину — открытый заказ пользователя.
type CartHandler struct {
	storage database.Storage
	cart    *cart.Service
}

func NewCartHandler(storage database.Storage, cartService *cart.Service) *CartHandler {
	return &CartHandler{storage: storage, cart: cartService}
}

type cartResponse struct {
	Order  *model.Order      `json:"order"`
	Items  []model.OrderItem `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

// Show возвращает открытый заказ пользователя с позициями и итогами.
func (h *CartHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	order, err := h.cart.OpenOrder(r.Context(), user.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить корзину пользователя %d: %v", user.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	totals, items, err := h.cart.Totals(r.Context(), user, order.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось посчитать итоги заказа %d: %v", order.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, cartResponse{Order: order, Items: items, Totals: totals})
}

type addToCartRequest struct {
	Count int `json:"count"`
}

// Add кладет товар в корзину. Повторное добавление того же артикула
// суммирует количество.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	articleID := chi.URLParam(r, "id")

	req := addToCartRequest{Count: 1}
	if r.Body != nil && r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса")
			return
		}
	}
	if req.Count <= 0 {
		respondWithError(w, http.StatusBadRequest, "Количество должно быть положительным")
		return
	}

	order, err := h.cart.AddToCart(r.Context(), user, articleID, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Товар не найден")
		case errors.Is(err, cart.ErrInactiveUser):
			respondWithError(w, http.StatusForbidden, "Пользователь деактивирован")
		default:
			log.Printf("ОШИБКА: не удалось добавить товар %s в корзину: %v", articleID, err)
			respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, order)
}

// Edit обрабатывает форму корзины: очистку, пересчет количеств либо
// оформление заказа — в зависимости от нажатой кнопки.
func (h *CartHandler) Edit(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректная форма")
		return
	}
	form := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		form[key] = r.PostForm.Get(key)
	}

	switch {
	case hasKey(form, cartActionClear):
		if err := h.cart.Clear(r.Context(), user.ID); err != nil {
			log.Printf("ОШИБКА: не удалось очистить корзину пользователя %d: %v", user.ID, err)
			respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	case hasKey(form, cartActionCheckout):
		order, err := h.cart.Checkout(r.Context(), user.ID, form["comment"], form["delivery"])
		if err != nil {
			if errors.Is(err, database.ErrOrderClosed) {
				respondWithError(w, http.StatusConflict, "Заказ уже отправлен")
				return
			}
			log.Printf("ОШИБКА: не удалось оформить заказ пользователя %d: %v", user.ID, err)
			respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}
		// После отправки заказа сессия завершается.
		if token := tokenFromContext(r.Context()); token != "" {
			if err := h.storage.DeleteSession(r.Context(), token); err != nil {
				log.Printf("ОШИБКА: не удалось удалить сессию после отправки заказа: %v", err)
			}
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})
		}
		respondWithJSON(w, http.StatusOK, order)

	default:
		// Без явной кнопки действия форма трактуется как пересчет.
		if err := h.cart.Recalculate(r.Context(), user.ID, form); err != nil {
			log.Printf("ОШИБКА: не удалось пересчитать корзину пользователя %d: %v", user.ID, err)
			respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "recalculated"})
	}
}

func hasKey(form map[string]string, key string) bool {
	_, ok := form[key]
	return ok
}
