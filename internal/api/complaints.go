package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"commercial-portal/internal/database"
	"commercial-portal/internal/model"
	"commercial-portal/internal/queue"
	"commercial-portal/internal/validator"
)

// Лимиты размера вложений по типу содержимого.
const (
	maxImageSize    = 5 << 20  // 5 МБ
	maxVideoSize    = 50 << 20 // 50 МБ
	maxDocumentSize = 5 << 20

	maxComplaintForm = 64 << 20
)

// Типы документов, допустимые во вложениях помимо изображений и видео.
var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
}

// ComplaintsHandler обслуживает рекламации и их переписку.
type ComplaintsHandler struct {
	storage   database.ComplaintStorage
	producer  queue.Producer
	uploadDir string
}

func NewComplaintsHandler(storage database.ComplaintStorage, producer queue.Producer, uploadDir string) *ComplaintsHandler {
	return &ComplaintsHandler{storage: storage, producer: producer, uploadDir: uploadDir}
}

// validateAttachment проверяет тип и размер вложения.
func validateAttachment(header *multipart.FileHeader) error {
	contentType := header.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "image/"):
		if header.Size > maxImageSize {
			return fmt.Errorf("изображение %s больше 5 МБ", header.Filename)
		}
	case strings.HasPrefix(contentType, "video/"):
		if header.Size > maxVideoSize {
			return fmt.Errorf("видео %s больше 50 МБ", header.Filename)
		}
	case allowedDocumentTypes[contentType]:
		if header.Size > maxDocumentSize {
			return fmt.Errorf("документ %s больше 5 МБ", header.Filename)
		}
	default:
		return fmt.Errorf("недопустимый тип файла: %s", contentType)
	}
	return nil
}

// saveAttachment сохраняет вложение под UUID-именем в каталоге загрузок.
func (h *ComplaintsHandler) saveAttachment(header *multipart.FileHeader) (*model.MessageAttachment, error) {
	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть вложение: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return nil, fmt.Errorf("не удалось сохранить вложение: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("не удалось записать вложение: %w", err)
	}

	return &model.MessageAttachment{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Path:        name,
	}, nil
}

// Create регистрирует рекламацию. Форма multipart: артикул, описание,
// дата покупки и произвольное число вложений в поле files.
func (h *ComplaintsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := r.ParseMultipartForm(maxComplaintForm); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректная форма")
		return
	}

	dateOfPurchase, err := time.Parse("2006-01-02", r.FormValue("date_of_purchase"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректная дата покупки")
		return
	}
	if dateOfPurchase.After(time.Now()) {
		respondWithError(w, http.StatusBadRequest, "Дата покупки не может быть в будущем")
		return
	}

	complaint := &model.Complaint{
		UserID:         user.ID,
		ArticleID:      strings.TrimSpace(r.FormValue("article_id")),
		Description:    strings.TrimSpace(r.FormValue("description")),
		DateOfPurchase: dateOfPurchase,
		Status:         model.ComplaintOpened,
	}
	if err := validator.ValidateStruct(complaint); err != nil {
		respondWithError(w, http.StatusBadRequest, "Артикул и описание обязательны")
		return
	}

	// Вложения валидируются до записи чего-либо в БД.
	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["files"]
	}
	for _, header := range files {
		if err := validateAttachment(header); err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.storage.CreateComplaint(r.Context(), complaint); err != nil {
		log.Printf("ОШИБКА: не удалось создать рекламацию: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	// Описание становится первым сообщением треда.
	message := &model.Message{
		ComplaintID: complaint.ID,
		AuthorID:    user.ID,
		IsStaff:     user.IsStaff,
		Text:        complaint.Description,
	}
	if err := h.storage.CreateMessage(r.Context(), message); err != nil {
		log.Printf("ОШИБКА: не удалось создать первое сообщение рекламации %d: %v", complaint.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	for _, header := range files {
		attachment, err := h.saveAttachment(header)
		if err != nil {
			log.Printf("ОШИБКА: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Не удалось сохранить вложение")
			return
		}
		attachment.MessageID = message.ID
		if err := h.storage.CreateAttachment(r.Context(), attachment); err != nil {
			log.Printf("ОШИБКА: не удалось сохранить вложение %s: %v", attachment.FileName, err)
			respondWithError(w, http.StatusInternalServerError, "Не удалось сохранить вложение")
			return
		}
	}

	h.enqueueMessage(r, message.ID)

	respondWithJSON(w, http.StatusCreated, complaint)
}

// List возвращает рекламации: пользователю — его, сотруднику — все.
func (h *ComplaintsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	userID := user.ID
	if user.IsStaff {
		userID = 0 // все рекламации
	}
	complaints, err := h.storage.ListComplaints(r.Context(), userID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить рекламации: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	respondWithJSON(w, http.StatusOK, complaints)
}

type messageView struct {
	model.Message
	Attachments []model.MessageAttachment `json:"attachments,omitempty"`
}

type complaintThreadResponse struct {
	Complaint *model.Complaint `json:"complaint"`
	Messages  []messageView    `json:"messages"`
}

// Thread возвращает рекламацию с перепиской и помечает прочитанными
// сообщения противоположной стороны.
func (h *ComplaintsHandler) Thread(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	complaint, ok := h.loadComplaint(w, r, user)
	if !ok {
		return
	}

	messages, err := h.storage.ListMessages(r.Context(), complaint.ID)
	if err != nil {
		log.Printf("ОШИБКА: не удалось получить сообщения рекламации %d: %v", complaint.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	views := make([]messageView, 0, len(messages))
	for _, message := range messages {
		attachments, err := h.storage.ListAttachments(r.Context(), message.ID)
		if err != nil {
			log.Printf("ОШИБКА: не удалось получить вложения сообщения %d: %v", message.ID, err)
			respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
			return
		}
		views = append(views, messageView{Message: message, Attachments: attachments})
	}

	// Читатель видит сообщения другой стороны, значит они прочитаны.
	if err := h.storage.MarkMessagesRead(r.Context(), complaint.ID, !user.IsStaff); err != nil {
		log.Printf("ОШИБКА: не удалось отметить сообщения прочитанными: %v", err)
	}

	respondWithJSON(w, http.StatusOK, complaintThreadResponse{Complaint: complaint, Messages: views})
}

type addMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// AddMessage добавляет сообщение в тред и ставит задачу на почтовое
// уведомление второй стороны.
func (h *ComplaintsHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	complaint, ok := h.loadComplaint(w, r, user)
	if !ok {
		return
	}

	var req addMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Текст сообщения обязателен")
		return
	}

	message := &model.Message{
		ComplaintID: complaint.ID,
		AuthorID:    user.ID,
		IsStaff:     user.IsStaff,
		Text:        strings.TrimSpace(req.Text),
	}
	if err := h.storage.CreateMessage(r.Context(), message); err != nil {
		log.Printf("ОШИБКА: не удалось создать сообщение рекламации %d: %v", complaint.ID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	h.enqueueMessage(r, message.ID)

	respondWithJSON(w, http.StatusCreated, message)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=opened in_progress closed no_answer"`
}

// Допустимые переходы статуса рекламации.
var statusTransitions = map[string][]string{
	model.ComplaintOpened:     {model.ComplaintInProgress, model.ComplaintNoAnswer},
	model.ComplaintInProgress: {model.ComplaintClosed, model.ComplaintNoAnswer},
}

// SetStatus переводит рекламацию по жизненному циклу. Только для
// сотрудников.
func (h *ComplaintsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	complaintID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор рекламации")
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Недопустимый статус")
		return
	}

	complaint, err := h.storage.GetComplaint(r.Context(), complaintID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Рекламация не найдена")
			return
		}
		log.Printf("ОШИБКА: не удалось получить рекламацию %d: %v", complaintID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	if !transitionAllowed(complaint.Status, req.Status) {
		respondWithError(w, http.StatusConflict,
			fmt.Sprintf("Переход %s -> %s недопустим", complaint.Status, req.Status))
		return
	}

	if err := h.storage.UpdateComplaintStatus(r.Context(), complaintID, req.Status); err != nil {
		log.Printf("ОШИБКА: не удалось обновить статус рекламации %d: %v", complaintID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	complaint.Status = req.Status
	respondWithJSON(w, http.StatusOK, complaint)
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// loadComplaint достает рекламацию и проверяет право доступа:
// сотрудник видит все, покупатель — только свои.
func (h *ComplaintsHandler) loadComplaint(w http.ResponseWriter, r *http.Request, user *model.User) (*model.Complaint, bool) {
	complaintID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор рекламации")
		return nil, false
	}

	complaint, err := h.storage.GetComplaint(r.Context(), complaintID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Рекламация не найдена")
			return nil, false
		}
		log.Printf("ОШИБКА: не удалось получить рекламацию %d: %v", complaintID, err)
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return nil, false
	}
	if !user.IsStaff && complaint.UserID != user.ID {
		respondWithError(w, http.StatusNotFound, "Рекламация не найдена")
		return nil, false
	}
	return complaint, true
}

// enqueueMessage ставит задачу на уведомление о новом сообщении.
// Сбой очереди не валит запрос: сообщение уже сохранено.
func (h *ComplaintsHandler) enqueueMessage(r *http.Request, messageID int) {
	payload := queue.ComplaintMessagePayload{MessageID: messageID}
	if err := h.producer.Submit(r.Context(), queue.JobSendComplaintMessage, payload); err != nil {
		log.Printf("ОШИБКА: не удалось поставить задачу уведомления для сообщения %d: %v", messageID, err)
	}
}
