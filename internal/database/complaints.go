package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
)

// CreateComplaint сохраняет новую рекламацию и возвращает ее id в complaint.ID.
func (s *postgresStorage) CreateComplaint(ctx context.Context, complaint *model.Complaint) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateComplaint")
	defer span.End()

	query := `
        INSERT INTO complaints (user_id, article_id, description, date_of_purchase, status)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.GetContext(ctx, &complaint.ID, query,
		complaint.UserID, complaint.ArticleID, complaint.Description, complaint.DateOfPurchase, complaint.Status)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_complaint").Inc()
		return fmt.Errorf("ошибка создания рекламации: %w", err)
	}
	return nil
}

// GetComplaint возвращает рекламацию по id.
func (s *postgresStorage) GetComplaint(ctx context.Context, id int) (*model.Complaint, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetComplaint")
	defer span.End()

	var complaint model.Complaint
	err := s.db.GetContext(ctx, &complaint, `SELECT * FROM complaints WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_complaint").Inc()
		return nil, fmt.Errorf("ошибка чтения рекламации: %w", err)
	}
	return &complaint, nil
}

// ListComplaints возвращает рекламации пользователя, новые сверху.
func (s *postgresStorage) ListComplaints(ctx context.Context, userID int) ([]model.Complaint, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListComplaints")
	defer span.End()

	// userID = 0 — выборка по всем пользователям (режим сотрудника).
	var complaints []model.Complaint
	err := s.db.SelectContext(ctx, &complaints,
		`SELECT * FROM complaints WHERE ($1 = 0 OR user_id = $1) ORDER BY created_at DESC`, userID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_complaints").Inc()
		return nil, fmt.Errorf("ошибка чтения рекламаций: %w", err)
	}
	return complaints, nil
}

// UpdateComplaintStatus меняет статус рекламации.
func (s *postgresStorage) UpdateComplaintStatus(ctx context.Context, id int, status string) error {
	ctx, span := s.tracer.Start(ctx, "DB.UpdateComplaintStatus")
	defer span.End()

	res, err := s.db.ExecContext(ctx, `UPDATE complaints SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		metrics.DBErrors.WithLabelValues("update_complaint").Inc()
		return fmt.Errorf("ошибка смены статуса рекламации: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMessage сохраняет сообщение треда и возвращает его id в message.ID.
func (s *postgresStorage) CreateMessage(ctx context.Context, message *model.Message) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateMessage")
	defer span.End()

	query := `
        INSERT INTO complaint_messages (complaint_id, author_id, is_staff, text)
        VALUES ($1, $2, $3, $4) RETURNING id`
	err := s.db.GetContext(ctx, &message.ID, query,
		message.ComplaintID, message.AuthorID, message.IsStaff, message.Text)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_message").Inc()
		return fmt.Errorf("ошибка создания сообщения: %w", err)
	}
	return nil
}

// GetMessage возвращает сообщение по id.
func (s *postgresStorage) GetMessage(ctx context.Context, id int) (*model.Message, error) {
	ctx, span := s.tracer.Start(ctx, "DB.GetMessage")
	defer span.End()

	var message model.Message
	err := s.db.GetContext(ctx, &message, `SELECT * FROM complaint_messages WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.DBErrors.WithLabelValues("get_message").Inc()
		return nil, fmt.Errorf("ошибка чтения сообщения: %w", err)
	}
	return &message, nil
}

// ListMessages возвращает тред рекламации в хронологическом порядке.
func (s *postgresStorage) ListMessages(ctx context.Context, complaintID int) ([]model.Message, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListMessages")
	defer span.End()

	var messages []model.Message
	err := s.db.SelectContext(ctx, &messages,
		`SELECT * FROM complaint_messages WHERE complaint_id = $1 ORDER BY created_at, id`, complaintID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_messages").Inc()
		return nil, fmt.Errorf("ошибка чтения треда: %w", err)
	}
	return messages, nil
}

// MarkMessagesRead отмечает прочитанными сообщения противоположной стороны.
func (s *postgresStorage) MarkMessagesRead(ctx context.Context, complaintID int, fromStaff bool) error {
	ctx, span := s.tracer.Start(ctx, "DB.MarkMessagesRead")
	defer span.End()

	query := `UPDATE complaint_messages SET is_read = TRUE WHERE complaint_id = $1 AND is_staff = $2`
	if _, err := s.db.ExecContext(ctx, query, complaintID, fromStaff); err != nil {
		metrics.DBErrors.WithLabelValues("mark_read").Inc()
		return fmt.Errorf("ошибка отметки прочтения: %w", err)
	}
	return nil
}

// CreateAttachment сохраняет метаданные приложенного файла.
func (s *postgresStorage) CreateAttachment(ctx context.Context, attachment *model.MessageAttachment) error {
	ctx, span := s.tracer.Start(ctx, "DB.CreateAttachment")
	defer span.End()

	query := `
        INSERT INTO message_attachments (message_id, file_name, content_type, size, path)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := s.db.GetContext(ctx, &attachment.ID, query,
		attachment.MessageID, attachment.FileName, attachment.ContentType, attachment.Size, attachment.Path)
	if err != nil {
		metrics.DBErrors.WithLabelValues("create_attachment").Inc()
		return fmt.Errorf("ошибка сохранения вложения: %w", err)
	}
	return nil
}

// ListAttachments возвращает вложения сообщения.
func (s *postgresStorage) ListAttachments(ctx context.Context, messageID int) ([]model.MessageAttachment, error) {
	ctx, span := s.tracer.Start(ctx, "DB.ListAttachments")
	defer span.End()

	var attachments []model.MessageAttachment
	err := s.db.SelectContext(ctx, &attachments,
		`SELECT * FROM message_attachments WHERE message_id = $1 ORDER BY id`, messageID)
	if err != nil {
		metrics.DBErrors.WithLabelValues("list_attachments").Inc()
		return nil, fmt.Errorf("ошибка чтения вложений: %w", err)
	}
	return attachments, nil
}
