package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// Белый список переключаемых флагов витрины. Имена колонок подставляются
// в SQL, поэтому произвольные значения недопустимы.
var articleFlags = map[string]bool{
	"is_new":     true,
	"is_special": true,
}

// CreateImport сохраняет запись о загруженном фиде и возвращает ее id в imp.ID.
func (s *postgresStorage) CreateImport(ctx context.Context, imp *model.Import) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateImport")
	defer span.End()

	query := `
        INSERT INTO imports (kind, department_id, user_id, file_path, encoding)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.GetContext(ctx, &imp.ID, query, imp.Kind, imp.DepartmentID, imp.UserID, imp.FilePath, imp.Encoding)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_import").Inc()
		return fmt.Errorf("ошибка создания записи импорта: %w", err)
	}
	return nil
}

// GetImport возвращает запись импорта по id.
func (s *postgresStorage) GetImport(ctx context.Context, id int) (*model.Import, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetImport")
	defer span.End()

	var imp model.Import
	err := s.db.GetContext(ctx, &imp, `SELECT * FROM imports WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_import").Inc()
		return nil, fmt.Errorf("ошибка чтения записи импорта: %w", err)
	}
	return &imp, nil
}

// UnpublishDepartment снимает с публикации всю витрину департамента.
// Выполняется перед импортом прайса: фид заново публикует все, что в нем есть.
func (s *postgresStorage) UnpublishDepartment(ctx context.Context, departmentID int) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.UnpublishDepartment")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`UPDATE category_properties SET published = FALSE WHERE department_id = $1`, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("unpublish").Inc()
		return fmt.Errorf("ошибка снятия категорий с публикации: %w", err)
	}
	if _, err = tx.ExecContext(ctx,
		`UPDATE article_properties SET published = FALSE WHERE department_id = $1`, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("unpublish").Inc()
		return fmt.Errorf("ошибка снятия товаров с публикации: %w", err)
	}

	err = tx.Commit()
	return err
}

// UpsertCategory создает категорию либо обновляет ссылку на родителя.
func (s *postgresStorage) UpsertCategory(ctx context.Context, id string, parentID *string) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpsertCategory")
	defer span.End()

	query := `
        INSERT INTO categories (id, parent_id) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET parent_id = EXCLUDED.parent_id`
	if _, err := s.db.ExecContext(ctx, query, id, parentID); err != nil {
		metrics.DBErrors.WithLabelValues("upsert_category").Inc()
		return fmt.Errorf("ошибка сохранения категории %s: %w", id, err)
	}
	return nil
}

// UpsertCategoryProperties создает либо обновляет витрину категории
// и публикует ее.
func (s *postgresStorage) UpsertCategoryProperties(ctx context.Context, departmentID int, categoryID, name string) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpsertCategoryProperties")
	defer span.End()

	query := `
        INSERT INTO category_properties (department_id, category_id, name, published)
        VALUES ($1, $2, $3, TRUE)
        ON CONFLICT (department_id, category_id)
        DO UPDATE SET name = EXCLUDED.name, published = TRUE`
	if _, err := s.db.ExecContext(ctx, query, departmentID, categoryID, name); err != nil {
		metrics.DBErrors.WithLabelValues("upsert_category_props").Inc()
		return fmt.Errorf("ошибка сохранения витрины категории %s: %w", categoryID, err)
	}
	return nil
}

// UpsertArticle создает товар либо обновляет его категорию.
func (s *postgresStorage) UpsertArticle(ctx context.Context, id string, categoryID string, vendorCode string) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpsertArticle")
	defer span.End()

	query := `
        INSERT INTO articles (id, category_id, vendor_code) VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET category_id = EXCLUDED.category_id, vendor_code = EXCLUDED.vendor_code`
	if _, err := s.db.ExecContext(ctx, query, id, categoryID, vendorCode); err != nil {
		metrics.DBErrors.WithLabelValues("upsert_article").Inc()
		return fmt.Errorf("ошибка сохранения товара %s: %w", id, err)
	}
	return nil
}

// UpsertArticleProperties создает либо целиком обновляет витрину товара
// и публикует ее. Флаги is_new/is_special фид прайса не трогает.
func (s *postgresStorage) UpsertArticleProperties(ctx context.Context, p *model.ArticleProperties) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpsertArticleProperties")
	defer span.End()

	query := `
        INSERT INTO article_properties (
            department_id, article_id, name, description, price, retail_price,
            length, width, height, volume, weight, barcode, company,
            image_link, video_link, site_link, presence, published
        ) VALUES (
            :department_id, :article_id, :name, :description, :price, :retail_price,
            :length, :width, :height, :volume, :weight, :barcode, :company,
            :image_link, :video_link, :site_link, :presence, TRUE
        )
        ON CONFLICT (department_id, article_id) DO UPDATE SET
            name = EXCLUDED.name, description = EXCLUDED.description,
            price = EXCLUDED.price, retail_price = EXCLUDED.retail_price,
            length = EXCLUDED.length, width = EXCLUDED.width, height = EXCLUDED.height,
            volume = EXCLUDED.volume, weight = EXCLUDED.weight,
            barcode = EXCLUDED.barcode, company = EXCLUDED.company,
            image_link = EXCLUDED.image_link, video_link = EXCLUDED.video_link,
            site_link = EXCLUDED.site_link, presence = EXCLUDED.presence,
            published = TRUE`
	if _, err := s.db.NamedExecContext(ctx, query, p); err != nil {
		metrics.DBErrors.WithLabelValues("upsert_article_props").Inc()
		return fmt.Errorf("ошибка сохранения витрины товара %s: %w", p.ArticleID, err)
	}
	return nil
}

// ResetArticleFlag сбрасывает флаг у всей витрины департамента.
func (s *postgresStorage) ResetArticleFlag(ctx context.Context, departmentID int, flag string) error {
	ctx, span := s.tracer.Start(ctx, "DB.ResetArticleFlag")
	defer span.End()

	if !articleFlags[flag] {
		return fmt.Errorf("недопустимый флаг витрины: %s", flag)
	}
	query := fmt.Sprintf(`UPDATE article_properties SET %s = FALSE WHERE department_id = $1`, flag)
	if _, err := s.db.ExecContext(ctx, query, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("reset_flag").Inc()
		return fmt.Errorf("ошибка сброса флага %s: %w", flag, err)
	}
	return nil
}

// SetArticleFlag взводит флаг у товара департамента. Отсутствующий товар
// просто не затрагивается — строка фида с неизвестным id не ошибка.
func (s *postgresStorage) SetArticleFlag(ctx context.Context, departmentID int, articleID, flag string) error {
	ctx, span := s.tracer.Start(ctx, "DB.SetArticleFlag")
	defer span.End()

	if !articleFlags[flag] {
		return fmt.Errorf("недопустимый флаг витрины: %s", flag)
	}
	query := fmt.Sprintf(`UPDATE article_properties SET %s = TRUE WHERE department_id = $1 AND article_id = $2`, flag)
	if _, err := s.db.ExecContext(ctx, query, departmentID, articleID); err != nil {
		metrics.DBErrors.WithLabelValues("set_flag").Inc()
		return fmt.Errorf("ошибка установки флага %s: %w", flag, err)
	}
	return nil
}

// ResetDebts помечает все задолженности департамента неактуальными.
func (s *postgresStorage) ResetDebts(ctx context.Context, departmentID int) error {
	ctx, span := s.tracer.Start(ctx, "DB.ResetDebts")
	defer span.End()

	if _, err := s.db.ExecContext(ctx,
		`UPDATE debts SET is_actual = FALSE WHERE department_id = $1`, departmentID); err != nil {
		metrics.DBErrors.WithLabelValues("reset_debts").Inc()
		return fmt.Errorf("ошибка сброса задолженностей: %w", err)
	}
	return nil
}

// AssertDebt отмечает документ актуальной задолженностью, создавая запись
// при необходимости.
func (s *postgresStorage) AssertDebt(ctx context.Context, departmentID int, documentID string) error {
	ctx, span := s.tracer.Start(ctx, "DB.AssertDebt")
	defer span.End()

	query := `
        INSERT INTO debts (department_id, document_id, is_actual) VALUES ($1, $2, TRUE)
        ON CONFLICT (department_id, document_id) DO UPDATE SET is_actual = TRUE`
	if _, err := s.db.ExecContext(ctx, query, departmentID, documentID); err != nil {
		metrics.DBErrors.WithLabelValues("assert_debt").Inc()
		return fmt.Errorf("ошибка отметки задолженности %s: %w", documentID, err)
	}
	return nil
}

// ListCategories возвращает все категории каталога (для пересчета дерева).
func (s *postgresStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListCategories")
	defer span.End()

	var categories []model.Category
	if err := s.db.SelectContext(ctx, &categories, `SELECT * FROM categories ORDER BY id`); err != nil {
		metrics.DBErrors.WithLabelValues("list_categories").Inc()
		return nil, fmt.Errorf("ошибка чтения категорий: %w", err)
	}
	return categories, nil
}

// UpdateCategoryTree записывает пересчитанные поля порядка обхода
// одной транзакцией.
func (s *postgresStorage) UpdateCategoryTree(ctx context.Context, categories []model.Category) (err error) {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateCategoryTree")
	defer span.End()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("Ошибка отката транзакции (после ошибки: %v): %v", err, rbErr)
			}
		}
	}()

	query := `UPDATE categories SET tree_id = $2, lft = $3, rght = $4, level = $5 WHERE id = $1`
	for _, c := range categories {
		if _, err = tx.ExecContext(ctx, query, c.ID, c.TreeID, c.Lft, c.Rght, c.Level); err != nil {
			metrics.DBErrors.WithLabelValues("update_tree").Inc()
			return fmt.Errorf("ошибка обновления дерева для %s: %w", c.ID, err)
		}
	}

	err = tx.Commit()
	return err
}
