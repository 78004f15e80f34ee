package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"commercial-portal/internal/config"
	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/queue"
	"commercial-portal/internal/validator"
)

// Утилита постановки импорта из локального файла фида: копирует файл
// в каталог загрузок, регистрирует импорт и ставит задачу воркеру.
// То же самое делает HTTP-загрузка, но без браузера.
func main() {
	var (
		filePath     = flag.String("file", "", "путь к файлу фида")
		kind         = flag.String("kind", model.ImportKindPrice, "вид импорта: price, novelty, special, debts")
		departmentID = flag.Int("department", 0, "идентификатор департамента")
		enc          = flag.String("encoding", model.EncodingCP1251, "кодировка фида: cp1251 или utf-8-sig")
	)
	flag.Parse()

	if *filePath == "" || *departmentID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Get()
	ctx := context.Background()

	storage, err := database.New(cfg.Postgres.URL, "./internal/database/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	if _, err := storage.GetDepartmentByID(ctx, *departmentID); err != nil {
		log.Fatalf("Департамент %d: %v", *departmentID, err)
	}

	imp := &model.Import{
		Kind:         *kind,
		DepartmentID: *departmentID,
		Encoding:     *enc,
	}
	if err := validator.ValidateStruct(imp); err != nil {
		log.Fatalf("Недопустимые параметры импорта: %v", err)
	}

	name, err := copyToUploads(*filePath, cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Не удалось скопировать файл фида: %v", err)
	}
	imp.FilePath = name

	if err := storage.CreateImport(ctx, imp); err != nil {
		log.Fatalf("Не удалось зарегистрировать импорт: %v", err)
	}

	producer := queue.NewProducer(cfg.Kafka)
	defer producer.Close()

	if err := producer.Submit(ctx, queue.JobImport, queue.ImportPayload{ImportID: imp.ID}); err != nil {
		log.Fatalf("Не удалось поставить задачу импорта: %v", err)
	}

	fmt.Printf("Импорт %d (%s) департамента %d поставлен в очередь\n", imp.ID, imp.Kind, imp.DepartmentID)
}

// copyToUploads копирует файл в каталог загрузок под UUID-именем.
func copyToUploads(src, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	name := uuid.NewString() + filepath.Ext(src)
	out, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", err
	}
	return name, nil
}
