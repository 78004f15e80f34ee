package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"commercial-portal/internal/cache"
	cache_mocks "commercial-portal/internal/cache/mocks"
	db_mocks "commercial-portal/internal/database/mocks"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

func TestHttpMetrics_CountsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(httpMetrics)
	router.Get("/api/ping/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	counter := metrics.HttpRequestsTotal.WithLabelValues("/api/ping/{id}", "204")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/ping/7", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	// Запрос учтен по шаблону маршрута, а не по конкретному пути
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	// Длительность попала в гистограмму того же маршрута
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HttpRequestDuration), 1)
}

func TestHttpMetrics_UnmatchedRoute(t *testing.T) {
	router := chi.NewRouter()
	router.Use(httpMetrics)
	router.Get("/api/known", func(w http.ResponseWriter, r *http.Request) {})

	counter := metrics.HttpRequestsTotal.WithLabelValues("unmatched", "404")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestCatalogMenu_CacheCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := cache_mocks.NewMockCache(ctrl)
	mockStorage := db_mocks.NewMockStorage(ctrl)
	handler := NewCatalogHandler(mockStorage, mockCache)

	menu := []model.CategoryMenuItem{{CategoryID: "CAT1", Name: "Коляски"}}

	// Попадание
	mockCache.EXPECT().Get(gomock.Any(), cache.MenuKey(1)).Return(menu, true)
	hitsBefore := testutil.ToFloat64(metrics.CacheHits)

	rr := httptest.NewRecorder()
	handler.Menu(rr, requestWithUser(httptest.NewRequest("GET", "/api/categories", nil), helperTestUser))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(metrics.CacheHits))

	// Промах
	mockCache.EXPECT().Get(gomock.Any(), cache.MenuKey(1)).Return(nil, false)
	mockStorage.EXPECT().ListCategoryMenu(gomock.Any(), 1).Return(menu, nil)
	mockCache.EXPECT().Set(gomock.Any(), cache.MenuKey(1), menu)
	missesBefore := testutil.ToFloat64(metrics.CacheMisses)

	rr = httptest.NewRecorder()
	handler.Menu(rr, requestWithUser(httptest.NewRequest("GET", "/api/categories", nil), helperTestUser))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(metrics.CacheMisses))
}
