// Package importer выполняет импорт фидов поставщика: прайс перестраивает
// каталог и витрину департамента, узкие фиды (новинки, акции, задолженности)
// переключают по одному флагу. Битые строки пропускаются, импорт best-effort;
// фатален только неизвестный департамент.
package importer

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/database"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// Importer применяет фиды к каталогу через Storage.
type Importer struct {
	storage database.Storage
	tracer  trace.Tracer // Для трассировки
}

// New создает новый Importer.
func New(storage database.Storage) *Importer {
	return &Importer{
		storage: storage,
		tracer:  otel.Tracer("importer"),
	}
}

// ImportPrice выполняет полный импорт прайса для страны департамента:
// снять с публикации все, затем заново опубликовать содержимое фида,
// в конце пересчитать дерево категорий.
func (imp *Importer) ImportPrice(ctx context.Context, feed io.Reader, country string, enc string) error {
	ctx, span := imp.tracer.Start(ctx, "Importer.ImportPrice")
	defer span.End()

	department, err := imp.storage.GetDepartmentByCountry(ctx, country)
	if err != nil {
		// Нет департамента — фатально для всего прогона.
		return fmt.Errorf("импорт прайса для %s: %w", country, err)
	}

	decoded, err := DecodeReader(feed, enc)
	if err != nil {
		return err
	}

	if err := imp.storage.UnpublishDepartment(ctx, department.ID); err != nil {
		return err
	}

	reader := NewFeedReader(decoded)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Импорт прайса: битая строка пропущена: %v", err)
			metrics.ImportRows.WithLabelValues(model.ImportKindPrice, "skipped").Inc()
			continue
		}

		row, err := ParsePriceRow(record)
		if err != nil {
			log.Printf("Импорт прайса: строка пропущена: %v", err)
			metrics.ImportRows.WithLabelValues(model.ImportKindPrice, "skipped").Inc()
			continue
		}

		if err := imp.applyRow(ctx, department.ID, row); err != nil {
			return err
		}
		metrics.ImportRows.WithLabelValues(model.ImportKindPrice, "ok").Inc()
	}

	// Прямые правки parent_id требуют пересчета порядка обхода.
	categories, err := imp.storage.ListCategories(ctx)
	if err != nil {
		return err
	}
	if err := imp.storage.UpdateCategoryTree(ctx, RebuildTree(categories)); err != nil {
		return err
	}

	log.Printf("Импорт прайса для департамента %d завершен.", department.ID)
	return nil
}

// applyRow применяет одну строку фида: ветвление по признаку категории.
func (imp *Importer) applyRow(ctx context.Context, departmentID int, row PriceRow) error {
	if row.IsCategory {
		var parentID *string
		if row.ParentID != "" && row.ParentName != "" {
			if err := imp.upsertCategory(ctx, departmentID, row.ParentID, row.ParentName, nil); err != nil {
				return err
			}
			parentID = &row.ParentID
		}
		return imp.upsertCategory(ctx, departmentID, row.ID, row.Name, parentID)
	}

	// Товарная строка: сначала родительская категория, затем товар и витрина.
	if err := imp.upsertCategory(ctx, departmentID, row.ParentID, row.ParentName, nil); err != nil {
		return err
	}
	if err := imp.storage.UpsertArticle(ctx, row.ID, row.ParentID, row.VendorCode); err != nil {
		return err
	}
	return imp.storage.UpsertArticleProperties(ctx, &model.ArticleProperties{
		DepartmentID: departmentID,
		ArticleID:    row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Price:        row.TradePrice,
		RetailPrice:  row.RetailPrice,
		Length:       row.Length,
		Width:        row.Width,
		Height:       row.Height,
		Volume:       row.Volume,
		Weight:       row.Weight,
		Barcode:      row.Barcode,
		Company:      row.Company,
		ImageLink:    row.ImageLink,
		VideoLink:    row.VideoLink,
		SiteLink:     row.SiteLink,
		Presence:     row.Presence,
	})
}

// upsertCategory создает/обновляет категорию и публикует ее витрину
// для департамента.
func (imp *Importer) upsertCategory(ctx context.Context, departmentID int, id, name string, parentID *string) error {
	if err := imp.storage.UpsertCategory(ctx, id, parentID); err != nil {
		return err
	}
	return imp.storage.UpsertCategoryProperties(ctx, departmentID, id, name)
}

// ImportNovelty отмечает новинки: сбрасывает is_new у витрины департамента
// и взводит его для каждого id из фида.
func (imp *Importer) ImportNovelty(ctx context.Context, feed io.Reader, departmentID int, enc string) error {
	ctx, span := imp.tracer.Start(ctx, "Importer.ImportNovelty")
	defer span.End()
	return imp.importFlag(ctx, feed, departmentID, enc, model.ImportKindNovelty, "is_new")
}

// ImportSpecial отмечает акционные товары по той же схеме, что и новинки.
func (imp *Importer) ImportSpecial(ctx context.Context, feed io.Reader, departmentID int, enc string) error {
	ctx, span := imp.tracer.Start(ctx, "Importer.ImportSpecial")
	defer span.End()
	return imp.importFlag(ctx, feed, departmentID, enc, model.ImportKindSpecial, "is_special")
}

// importFlag — общий двухпроходный алгоритм узких фидов: сброс флага,
// затем установка для перечисленных id. Первая колонка — идентификатор,
// остальное игнорируется.
func (imp *Importer) importFlag(ctx context.Context, feed io.Reader, departmentID int, enc, kind, flag string) error {
	decoded, err := DecodeReader(feed, enc)
	if err != nil {
		return err
	}
	if err := imp.storage.ResetArticleFlag(ctx, departmentID, flag); err != nil {
		return err
	}

	reader := NewFeedReader(decoded)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Импорт %s: битая строка пропущена: %v", kind, err)
			metrics.ImportRows.WithLabelValues(kind, "skipped").Inc()
			continue
		}
		id := field(record, 0)
		if id == "" {
			metrics.ImportRows.WithLabelValues(kind, "skipped").Inc()
			continue
		}
		if err := imp.storage.SetArticleFlag(ctx, departmentID, id, flag); err != nil {
			return err
		}
		metrics.ImportRows.WithLabelValues(kind, "ok").Inc()
	}
	return nil
}

// ImportDebts актуализирует задолженности: сброс, затем отметка каждого
// номера документа из фида.
func (imp *Importer) ImportDebts(ctx context.Context, feed io.Reader, departmentID int, enc string) error {
	ctx, span := imp.tracer.Start(ctx, "Importer.ImportDebts")
	defer span.End()

	decoded, err := DecodeReader(feed, enc)
	if err != nil {
		return err
	}
	if err := imp.storage.ResetDebts(ctx, departmentID); err != nil {
		return err
	}

	reader := NewFeedReader(decoded)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Импорт задолженностей: битая строка пропущена: %v", err)
			metrics.ImportRows.WithLabelValues(model.ImportKindDebts, "skipped").Inc()
			continue
		}
		documentID := field(record, 0)
		if documentID == "" {
			metrics.ImportRows.WithLabelValues(model.ImportKindDebts, "skipped").Inc()
			continue
		}
		if err := imp.storage.AssertDebt(ctx, departmentID, documentID); err != nil {
			return err
		}
		metrics.ImportRows.WithLabelValues(model.ImportKindDebts, "ok").Inc()
	}
	return nil
}
