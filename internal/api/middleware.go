package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

type contextKey string

const (
	userContextKey  contextKey = "user"
	tokenContextKey contextKey = "session_token"
)

// sessionCookie — имя cookie с токеном сессии.
const sessionCookie = "session_token"

// userFromContext достает аутентифицированного пользователя из контекста.
func userFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// tokenFromContext достает токен текущей сессии из контекста.
func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// httpMetrics фиксирует количество и длительность HTTP-запросов.
// Метки — шаблон маршрута и статус ответа; шаблон известен только
// после прохода по роутеру, поэтому метрики пишутся постфактум.
func httpMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HttpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		metrics.HttpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}

// sessionAuth резолвит пользователя по cookie сессии. Неактивный
// пользователь к порталу не допускается.
func (s *Server) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
			return
		}

		user, err := s.storage.GetSessionUser(r.Context(), cookie.Value)
		if err != nil {
			http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
			return
		}
		if !user.IsActive {
			// Неактивных разлогиниваем сразу.
			_ = s.storage.DeleteSession(r.Context(), cookie.Value)
			http.Error(w, "Пользователь деактивирован", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, tokenContextKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// staffOnly пропускает только сотрудников.
func (s *Server) staffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := userFromContext(r.Context())
		if user == nil || !user.IsStaff {
			http.Error(w, "Доступ только для сотрудников", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
