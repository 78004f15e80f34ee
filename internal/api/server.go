package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"commercial-portal/internal/cache"
	"commercial-portal/internal/cart"
	"commercial-portal/internal/database"
	"commercial-portal/internal/queue"
)

// Server представляет HTTP-сервер портала.
type Server struct {
	port      string
	router    *chi.Mux
	storage   database.Storage
	cache     cache.Cache
	cart      *cart.Service
	producer  queue.Producer
	uploadDir string
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, storage database.Storage, c cache.Cache, cartService *cart.Service, producer queue.Producer, uploadDir string) *Server {
	server := &Server{
		port:      port,
		storage:   storage,
		cache:     c,
		cart:      cartService,
		producer:  producer,
		uploadDir: uploadDir,
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	fmt.Printf("🚀 HTTP-сервер запущен на http://localhost%s\n", address)
	return http.ListenAndServe(address, otelhttp.NewHandler(s.router, "portal-http"))
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(httpMetrics)

	authHandler := NewAuthHandler(s.storage)
	catalogHandler := NewCatalogHandler(s.storage, s.cache)
	cartHandler := NewCartHandler(s.storage, s.cart)
	ordersHandler := NewOrdersHandler(s.storage, s.cart)
	complaintsHandler := NewComplaintsHandler(s.storage, s.producer, s.uploadDir)
	importsHandler := NewImportsHandler(s.storage, s.producer, s.uploadDir)
	exportHandler := NewExportHandler(s.storage, s.cache)

	// Открытые маршруты
	router.Post("/api/login", authHandler.Login)
	router.Get("/{country}/yml", exportHandler.YML)
	router.Handle("/metrics", promhttp.Handler())

	// Маршруты, требующие аутентифицированной активной сессии
	router.Group(func(r chi.Router) {
		r.Use(s.sessionAuth)

		r.Post("/api/logout", authHandler.Logout)

		r.Get("/api/categories", catalogHandler.Menu)
		r.Get("/api/category/{id}", catalogHandler.Articles)
		r.Get("/api/new", catalogHandler.New)
		r.Get("/api/sale", catalogHandler.Special)
		r.Get("/api/search", catalogHandler.Search)

		r.Get("/api/cart", cartHandler.Show)
		r.Post("/api/cart/add/{id}", cartHandler.Add)
		r.Post("/api/cart/edit", cartHandler.Edit)

		r.Get("/api/orders", ordersHandler.List)
		r.Get("/api/orders/{id}", ordersHandler.Detail)

		r.Post("/api/complaints", complaintsHandler.Create)
		r.Get("/api/complaints", complaintsHandler.List)
		r.Get("/api/complaints/{id}", complaintsHandler.Thread)
		r.Post("/api/complaints/{id}/messages", complaintsHandler.AddMessage)

		// Маршруты сотрудников
		r.Group(func(staff chi.Router) {
			staff.Use(s.staffOnly)
			staff.Post("/api/imports", importsHandler.Upload)
			staff.Post("/api/complaints/{id}/status", complaintsHandler.SetStatus)
		})
	})

	return router
}
