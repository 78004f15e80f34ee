package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User — покупатель либо сотрудник департамента. Discount — персональная
// фиксированная скидка в процентах; если она задана, объемная скидка
// департамента к заказам не применяется. AdditionalEmails — адреса через
// запятую, получают копии всех уведомлений.
type User struct {
	ID               int             `json:"id" db:"id"`
	Username         string          `json:"username" db:"username" validate:"required,max=150"`
	PasswordHash     string          `json:"-" db:"password_hash"`
	Email            string          `json:"email" db:"email" validate:"omitempty,email"`
	AdditionalEmails string          `json:"additional_emails" db:"additional_emails"`
	DepartmentID     int             `json:"department_id" db:"department_id"`
	Discount         decimal.Decimal `json:"discount" db:"discount"`
	IsActive         bool            `json:"is_active" db:"is_active"`
	IsStaff          bool            `json:"is_staff" db:"is_staff"`
}

// Session — серверная сессия, токен уходит в cookie.
type Session struct {
	Token     string    `json:"token" db:"token"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
