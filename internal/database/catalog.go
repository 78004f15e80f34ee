package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"

	"github.com/shopspring/decimal"
)

// GetDepartmentByID возвращает департамент по идентификатору.
func (s *postgresStorage) GetDepartmentByID(ctx context.Context, id int) (*model.Department, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetDepartmentByID")
	defer span.End()

	var dep model.Department
	err := s.db.GetContext(ctx, &dep, `SELECT * FROM departments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_department").Inc()
		return nil, fmt.Errorf("ошибка поиска департамента: %w", err)
	}
	return &dep, nil
}

// GetDepartmentByCountry возвращает департамент страны. Для импорта
// отсутствие департамента — фатальная ошибка всего прогона.
func (s *postgresStorage) GetDepartmentByCountry(ctx context.Context, country string) (*model.Department, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetDepartmentByCountry")
	defer span.End()

	var dep model.Department
	err := s.db.GetContext(ctx, &dep, `SELECT * FROM departments WHERE country = $1`, country)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_department").Inc()
		return nil, fmt.Errorf("ошибка поиска департамента: %w", err)
	}
	return &dep, nil
}

// ListDepartments возвращает все департаменты.
func (s *postgresStorage) ListDepartments(ctx context.Context) ([]model.Department, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListDepartments")
	defer span.End()

	var deps []model.Department
	err := s.db.SelectContext(ctx, &deps, `SELECT * FROM departments ORDER BY id`)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_departments").Inc()
		return nil, fmt.Errorf("ошибка чтения департаментов: %w", err)
	}
	return deps, nil
}

// ListDepartmentSales возвращает ступени объемной скидки департамента
// по возрастанию порога.
func (s *postgresStorage) ListDepartmentSales(ctx context.Context, departmentID int) ([]model.DepartmentSale, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListDepartmentSales")
	defer span.End()

	var sales []model.DepartmentSale
	err := s.db.SelectContext(ctx, &sales,
		`SELECT * FROM department_sales WHERE department_id = $1 ORDER BY order_sum, sale`, departmentID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_sales").Inc()
		return nil, fmt.Errorf("ошибка чтения ступеней скидок: %w", err)
	}
	return sales, nil
}

// GetDeliveryPrice возвращает стоимость доставки для страны.
// Если запись не задана, возвращается ноль — не ошибка.
func (s *postgresStorage) GetDeliveryPrice(ctx context.Context, country string) (decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetDeliveryPrice")
	defer span.End()

	var price decimal.Decimal
	err := s.db.GetContext(ctx, &price, `SELECT price FROM deliveries WHERE country = $1`, country)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_delivery").Inc()
		return decimal.Zero, fmt.Errorf("ошибка чтения стоимости доставки: %w", err)
	}
	return price, nil
}

// ListCategoryMenu возвращает опубликованные категории департамента
// в порядке обхода дерева.
func (s *postgresStorage) ListCategoryMenu(ctx context.Context, departmentID int) ([]model.CategoryMenuItem, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListCategoryMenu")
	defer span.End()

	var items []model.CategoryMenuItem
	query := `
        SELECT c.id AS category_id, c.parent_id, cp.name, c.level
        FROM categories c
        JOIN category_properties cp ON cp.category_id = c.id
        WHERE cp.department_id = $1 AND cp.published
        ORDER BY c.tree_id, c.lft`
	if err := s.db.SelectContext(ctx, &items, query, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("list_menu").Inc()
		return nil, fmt.Errorf("ошибка чтения меню каталога: %w", err)
	}
	return items, nil
}

// ListArticlesByCategory возвращает опубликованные товары категории
// с витриной департамента, по имени.
func (s *postgresStorage) ListArticlesByCategory(ctx context.Context, departmentID int, categoryID string) ([]model.ArticleProperties, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListArticlesByCategory")
	defer span.End()

	var props []model.ArticleProperties
	query := `
        SELECT ap.* FROM article_properties ap
        JOIN articles a ON a.id = ap.article_id
        WHERE ap.department_id = $1 AND ap.published AND a.category_id = $2
        ORDER BY ap.ordering, ap.name`
	if err := s.db.SelectContext(ctx, &props, query, departmentID, categoryID); err != nil {
		metrics.DBErrors.WithLabelValues("list_articles").Inc()
		return nil, fmt.Errorf("ошибка чтения товаров категории: %w", err)
	}
	return props, nil
}

// ListNewArticles возвращает опубликованные новинки департамента.
func (s *postgresStorage) ListNewArticles(ctx context.Context, departmentID int) ([]model.ArticleProperties, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListNewArticles")
	defer span.End()

	var props []model.ArticleProperties
	err := s.db.SelectContext(ctx, &props,
		`SELECT * FROM article_properties WHERE department_id = $1 AND published AND is_new ORDER BY name`,
		departmentID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_articles").Inc()
		return nil, fmt.Errorf("ошибка чтения новинок: %w", err)
	}
	return props, nil
}

// ListSpecialArticles возвращает опубликованные акционные товары департамента.
func (s *postgresStorage) ListSpecialArticles(ctx context.Context, departmentID int) ([]model.ArticleProperties, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListSpecialArticles")
	defer span.End()

	var props []model.ArticleProperties
	err := s.db.SelectContext(ctx, &props,
		`SELECT * FROM article_properties WHERE department_id = $1 AND published AND is_special ORDER BY name`,
		departmentID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_articles").Inc()
		return nil, fmt.Errorf("ошибка чтения акционных товаров: %w", err)
	}
	return props, nil
}

// SearchArticles ищет опубликованные товары по подстроке имени или коду.
func (s *postgresStorage) SearchArticles(ctx context.Context, departmentID int, query string) ([]model.ArticleProperties, error) {
	ctx, span := s.tracer.Start(ctx, "DB.SearchArticles")
	defer span.End()

	var props []model.ArticleProperties
	sqlQuery := `
        SELECT * FROM article_properties
        WHERE department_id = $1 AND published
          AND (name ILIKE '%' || $2 || '%' OR article_id = $2)
        ORDER BY name`
	if err := s.db.SelectContext(ctx, &props, sqlQuery, departmentID, query); err != nil {
		metrics.DBErrors.WithLabelValues("search_articles").Inc()
		return nil, fmt.Errorf("ошибка поиска товаров: %w", err)
	}
	return props, nil
}

// GetArticleProperties возвращает витрину товара для департамента.
func (s *postgresStorage) GetArticleProperties(ctx context.Context, departmentID int, articleID string) (*model.ArticleProperties, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetArticleProperties")
	defer span.End()

	var props model.ArticleProperties
	err := s.db.GetContext(ctx, &props,
		`SELECT * FROM article_properties WHERE department_id = $1 AND article_id = $2`,
		departmentID, articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_article").Inc()
		return nil, fmt.Errorf("ошибка чтения товара: %w", err)
	}
	return &props, nil
}

// ListPublishedArticles возвращает все опубликованные товары департамента
// вместе с категорией (для выгрузки YML).
func (s *postgresStorage) ListPublishedArticles(ctx context.Context, departmentID int) ([]model.PublishedArticle, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListPublishedArticles")
	defer span.End()

	var articles []model.PublishedArticle
	query := `
        SELECT ap.*, COALESCE(a.category_id, '') AS category_id
        FROM article_properties ap
        JOIN articles a ON a.id = ap.article_id
        WHERE ap.department_id = $1 AND ap.published
        ORDER BY ap.article_id`
	if err := s.db.SelectContext(ctx, &articles, query, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("list_articles").Inc()
		return nil, fmt.Errorf("ошибка чтения опубликованных товаров: %w", err)
	}
	return articles, nil
}
