package api

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/queue"
	"commercial-portal/internal/validator"
)

const maxImportForm = 128 << 20

// ImportsHandler принимает файлы фидов от сотрудников.
type ImportsHandler struct {
	storage   database.Storage
	producer  queue.Producer
	uploadDir string
}

func NewImportsHandler(storage database.Storage, producer queue.Producer, uploadDir string) *ImportsHandler {
	return &ImportsHandler{storage: storage, producer: producer, uploadDir: uploadDir}
}

// Upload сохраняет файл фида, регистрирует импорт и ставит задачу
// воркеру. Сам разбор файла в HTTP-запросе не выполняется.
func (h *ImportsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := r.ParseMultipartForm(maxImportForm); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректная форма")
		return
	}

	departmentID, err := strconv.Atoi(r.FormValue("department_id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный департамент")
		return
	}

	imp := &model.Import{
		Kind:         r.FormValue("kind"),
		DepartmentID: departmentID,
		UserID:       user.ID,
		Encoding:     r.FormValue("encoding"),
	}
	if imp.Encoding == "" {
		imp.Encoding = model.EncodingCP1251
	}
	if err := validator.ValidateStruct(imp); err != nil {
		respondWithError(w, http.StatusBadRequest, "Недопустимый вид импорта или кодировка")
		return
	}

	if _, err := h.storage.GetDepartmentByID(r.Context(), departmentID); err != nil {
		respondWithError(w, http.StatusBadRequest, "Департамент не найден")
		return
	}

	src, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Файл фида обязателен")
		return
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		log.Printf("ОШИБКА: не удалось сохранить файл фида: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось сохранить файл")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Printf("ОШИБКА: не удалось записать файл фида: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось сохранить файл")
		return
	}
	imp.FilePath = name

	if err := h.storage.CreateImport(r.Context(), imp); err != nil {
		log.Printf("ОШИБКА: не удалось зарегистрировать импорт: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	payload := queue.ImportPayload{ImportID: imp.ID}
	if err := h.producer.Submit(r.Context(), queue.JobImport, payload); err != nil {
		log.Printf("ОШИБКА: не удалось поставить задачу импорта %d: %v", imp.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось поставить задачу импорта")
		return
	}

	log.Printf("Импорт %d (%s) департамента %d поставлен в очередь", imp.ID, imp.Kind, imp.DepartmentID)
	respondWithJSON(w, http.StatusAccepted, imp)
}
