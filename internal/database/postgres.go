package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"commercial-portal/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/storage_mock.go -package=mocks Storage

// Сигнальные ошибки хранилища. Обработчики ветвятся по ним через errors.Is.
var (
	// ErrNotFound - запись не найдена.
	ErrNotFound = errors.New("запись не найдена")
	// ErrDepartmentNotFound - департамент не найден; для импорта это фатально.
	ErrDepartmentNotFound = errors.New("департамент не найден")
	// ErrOrderClosed - попытка изменить закрытый заказ.
	ErrOrderClosed = errors.New("заказ закрыт")
)

// UserStorage определяет операции с пользователями и сессиями.
type UserStorage interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	CreateSession(ctx context.Context, session *model.Session) error
	GetSessionUser(ctx context.Context, token string) (*model.User, error)
	DeleteSession(ctx context.Context, token string) error
}

// CatalogStorage определяет чтение каталога с наложением витрины департамента.
type CatalogStorage interface {
	GetDepartmentByID(ctx context.Context, id int) (*model.Department, error)
	GetDepartmentByCountry(ctx context.Context, country string) (*model.Department, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListDepartmentSales(ctx context.Context, departmentID int) ([]model.DepartmentSale, error)
	GetDeliveryPrice(ctx context.Context, country string) (decimal.Decimal, error)
	ListCategoryMenu(ctx context.Context, departmentID int) ([]model.CategoryMenuItem, error)
	ListArticlesByCategory(ctx context.Context, departmentID int, categoryID string) ([]model.ArticleProperties, error)
	ListNewArticles(ctx context.Context, departmentID int) ([]model.ArticleProperties, error)
	ListSpecialArticles(ctx context.Context, departmentID int) ([]model.ArticleProperties, error)
	SearchArticles(ctx context.Context, departmentID int, query string) ([]model.ArticleProperties, error)
	GetArticleProperties(ctx context.Context, departmentID int, articleID string) (*model.ArticleProperties, error)
	ListPublishedArticles(ctx context.Context, departmentID int) ([]model.PublishedArticle, error)
}

// ImportStorage определяет мутации каталога, которые выполняет импорт фидов.
type ImportStorage interface {
	CreateImport(ctx context.Context, imp *model.Import) error
	GetImport(ctx context.Context, id int) (*model.Import, error)
	UnpublishDepartment(ctx context.Context, departmentID int) error
	UpsertCategory(ctx context.Context, id string, parentID *string) error
	UpsertCategoryProperties(ctx context.Context, departmentID int, categoryID, name string) error
	UpsertArticle(ctx context.Context, id string, categoryID string, vendorCode string) error
	UpsertArticleProperties(ctx context.Context, props *model.ArticleProperties) error
	ResetArticleFlag(ctx context.Context, departmentID int, flag string) error
	SetArticleFlag(ctx context.Context, departmentID int, articleID, flag string) error
	ResetDebts(ctx context.Context, departmentID int) error
	AssertDebt(ctx context.Context, departmentID int, documentID string) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategoryTree(ctx context.Context, categories []model.Category) error
}

// OrderStorage определяет жизненный цикл заказа-корзины.
type OrderStorage interface {
	GetOpenOrder(ctx context.Context, userID int) (*model.Order, error)
	CreateOpenOrder(ctx context.Context, userID int) (*model.Order, error)
	ListOpenOrders(ctx context.Context, userID int) ([]model.Order, error)
	DeleteOrder(ctx context.Context, orderID int) error
	GetOrder(ctx context.Context, orderID int) (*model.Order, error)
	ListClosedOrders(ctx context.Context, userID int) ([]model.Order, error)
	AddOrderItem(ctx context.Context, item *model.OrderItem) error
	GetOrderItem(ctx context.Context, itemID int) (*model.OrderItem, error)
	UpdateOrderItemCount(ctx context.Context, itemID, count int) error
	DeleteOrderItem(ctx context.Context, itemID int) error
	ClearOrder(ctx context.Context, orderID int) error
	ListOrderItems(ctx context.Context, orderID int) ([]model.OrderItem, error)
	CloseOrder(ctx context.Context, orderID int, comment, delivery string) error
}

// ComplaintStorage определяет рекламации и их треды.
type ComplaintStorage interface {
	CreateComplaint(ctx context.Context, complaint *model.Complaint) error
	GetComplaint(ctx context.Context, id int) (*model.Complaint, error)
	ListComplaints(ctx context.Context, userID int) ([]model.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id int, status string) error
	CreateMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, id int) (*model.Message, error)
	ListMessages(ctx context.Context, complaintID int) ([]model.Message, error)
	MarkMessagesRead(ctx context.Context, complaintID int, fromStaff bool) error
	CreateAttachment(ctx context.Context, attachment *model.MessageAttachment) error
	ListAttachments(ctx context.Context, messageID int) ([]model.MessageAttachment, error)
}

// Storage объединяет все операции хранилища.
type Storage interface {
	UserStorage
	CatalogStorage
	ImportStorage
	OrderStorage
	ComplaintStorage
	Close() error
}

// postgresStorage обеспечивает взаимодействие с базой данных PostgreSQL.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := runMigrations(dbURL, migrationsPath); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"), // Инициализация трейсера
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}

	// Применяем миграции "вверх"
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
