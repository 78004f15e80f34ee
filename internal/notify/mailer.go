package notify

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"commercial-portal/internal/config"
)

//go:generate mockgen -source=mailer.go -destination=./mocks/sender_mock.go -package=mocks Sender

// Mail — письмо: адресаты, оба тела и CSV-вложения.
type Mail struct {
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Sender отправляет письма. Доставка fire-and-forget: повторы на совести
// исполнителя фоновых задач, не этого компонента.
type Sender interface {
	Send(mail *Mail) error
}

// gomailSender шлет письма через SMTP.
type gomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender создает SMTP-отправителя из конфигурации.
func NewSender(cfg config.SMTPConfig) Sender {
	return &gomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.DefaultFrom,
	}
}

// Send собирает multipart-письмо и отправляет его одним соединением.
func (s *gomailSender) Send(mail *Mail) error {
	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", mail.To...)
	message.SetHeader("Subject", mail.Subject)
	message.SetBody("text/plain", mail.Text)
	if mail.HTML != "" {
		message.AddAlternative("text/html", mail.HTML)
	}
	for _, attachment := range mail.Attachments {
		content := attachment.Content
		message.Attach(attachment.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(content))
			return err
		}))
	}

	if err := s.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}
	return nil
}
