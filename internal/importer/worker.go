package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"commercial-portal/internal/cache"
	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/queue"
)

// Worker обрабатывает фоновые задачи импорта: по id записи импорта
// открывает загруженный файл и прогоняет его через Importer. Один вызов
// задачи — один файл.
type Worker struct {
	storage   database.Storage
	importer  *Importer
	cache     cache.Cache
	uploadDir string
}

// NewWorker создает воркер импорта.
func NewWorker(storage database.Storage, c cache.Cache, uploadDir string) *Worker {
	return &Worker{
		storage:   storage,
		importer:  New(storage),
		cache:     c,
		uploadDir: uploadDir,
	}
}

// Handle — обработчик задачи queue.JobImport.
func (w *Worker) Handle(ctx context.Context, payload json.RawMessage) error {
	var job queue.ImportPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("некорректная нагрузка задачи импорта: %w", err)
	}

	imp, err := w.storage.GetImport(ctx, job.ImportID)
	if err != nil {
		return fmt.Errorf("запись импорта %d: %w", job.ImportID, err)
	}

	department, err := w.storage.GetDepartmentByID(ctx, imp.DepartmentID)
	if err != nil {
		return fmt.Errorf("импорт %d: %w", imp.ID, err)
	}

	file, err := os.Open(filepath.Join(w.uploadDir, imp.FilePath))
	if err != nil {
		return fmt.Errorf("не удалось открыть файл фида: %w", err)
	}
	defer file.Close()

	switch imp.Kind {
	case model.ImportKindPrice:
		err = w.importer.ImportPrice(ctx, file, department.Country, imp.Encoding)
	case model.ImportKindNovelty:
		err = w.importer.ImportNovelty(ctx, file, department.ID, imp.Encoding)
	case model.ImportKindSpecial:
		err = w.importer.ImportSpecial(ctx, file, department.ID, imp.Encoding)
	case model.ImportKindDebts:
		err = w.importer.ImportDebts(ctx, file, department.ID, imp.Encoding)
	default:
		return fmt.Errorf("неизвестный вид импорта: %s", imp.Kind)
	}
	if err != nil {
		return err
	}

	// Витрина изменилась — сбрасываем кэшированные меню и выгрузку.
	w.cache.Delete(ctx, cache.MenuKey(department.ID))
	w.cache.Delete(ctx, cache.YMLKey(department.Country))

	log.Printf("Импорт %d (%s) выполнен.", imp.ID, imp.Kind)
	return nil
}
