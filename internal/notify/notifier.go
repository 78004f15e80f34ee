// Package notify рассылает уведомления: подтверждение закрытого заказа
// с CSV-выгрузкой по поставщикам и письма о новых сообщениях рекламаций.
// Обе рассылки — фоновые задачи fire-and-forget.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/database"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/model"
	"commercial-portal/internal/pricing"
	"commercial-portal/internal/queue"
)

// Notifier — обработчик почтовых задач.
type Notifier struct {
	storage     database.Storage
	sender      Sender
	defaultFrom string
	tracer      trace.Tracer // Для трассировки
}

// NewNotifier создает Notifier.
func NewNotifier(storage database.Storage, sender Sender, defaultFrom string) *Notifier {
	return &Notifier{
		storage:     storage,
		sender:      sender,
		defaultFrom: defaultFrom,
		tracer:      otel.Tracer("notifier"),
	}
}

// splitEmails разбирает список адресов через запятую.
func splitEmails(raw string) []string {
	var emails []string
	for _, email := range strings.Split(raw, ",") {
		if email = strings.TrimSpace(email); email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// recipients собирает адресатов: отправитель по умолчанию, почта
// департамента, почта покупателя (если есть) и дополнительные адреса
// профиля. Дубликаты схлопываются.
func (n *Notifier) recipients(user *model.User, department *model.Department) []string {
	seen := make(map[string]bool)
	var to []string
	add := func(email string) {
		if email != "" && !seen[email] {
			seen[email] = true
			to = append(to, email)
		}
	}
	add(n.defaultFrom)
	add(department.Email)
	add(user.Email)
	for _, email := range splitEmails(user.AdditionalEmails) {
		add(email)
	}
	return to
}

// HandleOrder — обработчик задачи queue.JobSendOrder: письмо-подтверждение
// закрытого заказа с CSV-файлами по поставщикам.
func (n *Notifier) HandleOrder(ctx context.Context, payload json.RawMessage) error {
	ctx, span := n.tracer.Start(ctx, "Notifier.HandleOrder")
	defer span.End()

	var job queue.OrderPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("некорректная нагрузка задачи рассылки: %w", err)
	}

	order, err := n.storage.GetOrder(ctx, job.OrderID)
	if err != nil {
		return fmt.Errorf("заказ %d: %w", job.OrderID, err)
	}
	user, err := n.storage.GetUserByID(ctx, order.UserID)
	if err != nil {
		return err
	}
	department, err := n.storage.GetDepartmentByID(ctx, user.DepartmentID)
	if err != nil {
		return err
	}
	items, err := n.storage.ListOrderItems(ctx, order.ID)
	if err != nil {
		return err
	}
	tiers, err := n.storage.ListDepartmentSales(ctx, department.ID)
	if err != nil {
		return err
	}
	deliveryPrice, err := n.storage.GetDeliveryPrice(ctx, department.Country)
	if err != nil {
		return err
	}

	totals := pricing.Calculate(items, tiers, user.Discount, deliveryPrice)
	text, html, err := renderOrder(orderContext{
		Order:  order,
		User:   user,
		Items:  items,
		Totals: totals,
	})
	if err != nil {
		return err
	}
	attachments, err := BuildOrderCSVs(user.Username, order, items)
	if err != nil {
		return err
	}

	mail := &Mail{
		To:          n.recipients(user, department),
		Subject:     fmt.Sprintf("Заказ №%d", order.ID),
		Text:        text,
		HTML:        html,
		Attachments: attachments,
	}
	if err := n.sender.Send(mail); err != nil {
		metrics.MailsSent.WithLabelValues("order", "error").Inc()
		return err
	}
	metrics.MailsSent.WithLabelValues("order", "ok").Inc()

	log.Printf("Письмо по заказу %d отправлено (%d адресатов, %d вложений).",
		order.ID, len(mail.To), len(attachments))
	return nil
}

// HandleComplaintMessage — обработчик задачи queue.JobSendComplaintMessage:
// уведомление о новом сообщении в треде рекламации, без вложений.
func (n *Notifier) HandleComplaintMessage(ctx context.Context, payload json.RawMessage) error {
	ctx, span := n.tracer.Start(ctx, "Notifier.HandleComplaintMessage")
	defer span.End()

	var job queue.ComplaintMessagePayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("некорректная нагрузка уведомления: %w", err)
	}

	message, err := n.storage.GetMessage(ctx, job.MessageID)
	if err != nil {
		return fmt.Errorf("сообщение %d: %w", job.MessageID, err)
	}
	complaint, err := n.storage.GetComplaint(ctx, message.ComplaintID)
	if err != nil {
		return err
	}
	user, err := n.storage.GetUserByID(ctx, complaint.UserID)
	if err != nil {
		return err
	}
	department, err := n.storage.GetDepartmentByID(ctx, user.DepartmentID)
	if err != nil {
		return err
	}

	text, err := renderMessage(messageContext{Complaint: complaint, Message: message})
	if err != nil {
		return err
	}

	mail := &Mail{
		To:      n.recipients(user, department),
		Subject: fmt.Sprintf("Рекламация №%d: новое сообщение", complaint.ID),
		Text:    text,
	}
	if err := n.sender.Send(mail); err != nil {
		metrics.MailsSent.WithLabelValues("complaint", "error").Inc()
		return err
	}
	metrics.MailsSent.WithLabelValues("complaint", "ok").Inc()

	log.Printf("Уведомление по рекламации %d отправлено.", complaint.ID)
	return nil
}
