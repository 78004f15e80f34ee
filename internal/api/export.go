package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"commercial-portal/internal/cache"
	"commercial-portal/internal/database"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/yml"
)

// exportCurrency — валюта выгрузки.
const exportCurrency = "RUB"

// ExportHandler отдает YML-выгрузку витрины департамента. Маршрут
// открытый: выгрузку забирают внешние маркетплейсы.
type ExportHandler struct {
	storage database.CatalogStorage
	cache   cache.Cache
}

func NewExportHandler(storage database.CatalogStorage, c cache.Cache) *ExportHandler {
	return &ExportHandler{storage: storage, cache: c}
}

// YML формирует выгрузку по коду страны департамента. Готовый документ
// кэшируется до следующего импорта.
func (h *ExportHandler) YML(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	key := cache.YMLKey(country)

	if cached, ok := h.cache.Get(r.Context(), key); ok {
		if body, ok := cached.([]byte); ok {
			metrics.CacheHits.Inc()
			w.Header().Set("Content-Type", "application/xml; charset=utf-8")
			w.Write(body)
			return
		}
	}
	metrics.CacheMisses.Inc()

	department, err := h.storage.GetDepartmentByCountry(r.Context(), country)
	if err != nil {
		if errors.Is(err, database.ErrDepartmentNotFound) {
			respondWithError(w, http.StatusNotFound, "Департамент не найден")
			return
		}
		log.Printf("ОШИБКА: не удалось получить департамент %s: %v", country, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	menu, err := h.storage.ListCategoryMenu(r.Context(), department.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить категории для выгрузки %s: %v", country, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	articles, err := h.storage.ListPublishedArticles(r.Context(), department.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить товары для выгрузки %s: %v", country, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	catalog := yml.Build(department, menu, articles, exportCurrency, time.Now())
	body, err := yml.Marshal(catalog)
	if err != nil {
		log.Printf("ОШИБКА: не удалось сериализовать выгрузку %s: %v", country, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
	h.cache.Set(r.Context(), key, body)

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}
