package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"commercial-portal/internal/cache"
	"commercial-portal/internal/database"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// CatalogHandler отдает каталог в витрине департамента пользователя.
type CatalogHandler struct {
	storage database.CatalogStorage
	cache   cache.Cache
}

func NewCatalogHandler(storage database.CatalogStorage, c cache.Cache) *CatalogHandler {
	return &CatalogHandler{storage: storage, cache: c}
}

// Menu возвращает дерево категорий департамента. Меню почти не меняется
// между импортами, поэтому живет в кэше.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	key := cache.MenuKey(user.DepartmentID)

	if cached, ok := h.cache.Get(r.Context(), key); ok {
		if menu, ok := cached.([]model.CategoryMenuItem); ok {
			metrics.CacheHits.Inc()
			respondWithJSON(w, http.StatusOK, menu)
			return
		}
	}
	metrics.CacheMisses.Inc()

	menu, err := h.storage.ListCategoryMenu(r.Context(), user.DepartmentID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить меню категорий: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	h.cache.Set(r.Context(), key, menu)

	respondWithJSON(w, http.StatusOK, menu)
}

// Articles возвращает опубликованные товары категории.
func (h *CatalogHandler) Articles(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	categoryID := chi.URLParam(r, "id")

	articles, err := h.storage.ListArticlesByCategory(r.Context(), user.DepartmentID, categoryID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить товары категории %s: %v", categoryID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, articles)
}

// New возвращает товары-новинки департамента.
func (h *CatalogHandler) New(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	articles, err := h.storage.ListNewArticles(r.Context(), user.DepartmentID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить новинки: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, articles)
}

// Special возвращает акционные товары департамента.
func (h *CatalogHandler) Special(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	articles, err := h.storage.ListSpecialArticles(r.Context(), user.DepartmentID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить акционные товары: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, articles)
}

// Search ищет товары по подстроке имени или артикулу.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "Пустой поисковый запрос")
		return
	}

	articles, err := h.storage.SearchArticles(r.Context(), user.DepartmentID, query)
	if err != nil {
		log.Printf("ОШИБКА: поиск по запросу %q не удался: %v", query, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, articles)
}
