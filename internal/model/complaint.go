package model

import "time"

// Статусы рекламации. Порядок жизненного цикла:
// opened → in_progress → closed, либо no_answer.
const (
	ComplaintOpened     = "opened"
	ComplaintInProgress = "in_progress"
	ComplaintClosed     = "closed"
	ComplaintNoAnswer   = "no_answer"
)

// Complaint — рекламация покупателя по товару.
type Complaint struct {
	ID             int       `json:"id" db:"id"`
	UserID         int       `json:"user_id" db:"user_id"`
	ArticleID      string    `json:"article_id" db:"article_id" validate:"required"`
	Description    string    `json:"description" db:"description" validate:"required"`
	DateOfPurchase time.Time `json:"date_of_purchase" db:"date_of_purchase"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Message — сообщение в треде рекламации. IsStaff отмечает авторство
// сотрудника, IsRead — прочитано ли сообщение второй стороной.
type Message struct {
	ID          int       `json:"id" db:"id"`
	ComplaintID int       `json:"complaint_id" db:"complaint_id"`
	AuthorID    int       `json:"author_id" db:"author_id"`
	IsStaff     bool      `json:"is_staff" db:"is_staff"`
	Text        string    `json:"text" db:"text" validate:"required"`
	IsRead      bool      `json:"is_read" db:"is_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MessageAttachment — файл, приложенный к сообщению. Path — имя в каталоге
// загрузок (UUID), FileName — исходное имя для отображения.
type MessageAttachment struct {
	ID          int    `json:"id" db:"id"`
	MessageID   int    `json:"message_id" db:"message_id"`
	FileName    string `json:"file_name" db:"file_name"`
	ContentType string `json:"content_type" db:"content_type"`
	Size        int64  `json:"size" db:"size"`
	Path        string `json:"path" db:"path"`
}
