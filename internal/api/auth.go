package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/validator"
)

// AuthHandler обрабатывает вход и выход из портала.
type AuthHandler struct {
	storage database.UserStorage
}

func NewAuthHandler(storage database.UserStorage) *AuthHandler {
	return &AuthHandler{storage: storage}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login проверяет учетные данные и выдает cookie сессии.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Логин и пароль обязательны")
		return
	}

	user, err := h.storage.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Неверный логин или пароль")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Неверный логин или пароль")
		return
	}
	if !user.IsActive {
		respondWithError(w, http.StatusForbidden, "Пользователь деактивирован")
		return
	}

	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := h.storage.CreateSession(r.Context(), session); err != nil {
		log.Printf("ОШИБКА: не удалось создать сессию для %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"is_staff": user.IsStaff,
	})
}

// Logout удаляет текущую сессию и гасит cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())
	if token != "" {
		if err := h.storage.DeleteSession(r.Context(), token); err != nil {
			log.Printf("ОШИБКА: не удалось удалить сессию: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
