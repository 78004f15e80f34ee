package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"commercial-portal/internal/model"
	"commercial-portal/internal/pricing"
)

// orderContext — данные для писем о заказе.
type orderContext struct {
	Order  *model.Order
	User   *model.User
	Items  []model.OrderItem
	Totals pricing.Totals
}

const orderTextTemplate = `Заказ №{{.Order.ID}} от {{.Order.Date.Format "02.01.2006 15:04"}}
Покупатель: {{.User.Username}}
{{range .Items}}{{.ArticleID}}; {{.Name}}; {{.Count}} шт.; {{.Price.StringFixed 3}}; {{.Sum.StringFixed 3}}
{{end}}Сумма без скидки: {{.Totals.FullSum.StringFixed 3}}
Скидка: {{.Totals.Discount.Sum.StringFixed 3}} ({{.Totals.Discount.Percent.StringFixed 2}}%)
Итого с доставкой: {{.Totals.TotalWithDelivery.StringFixed 3}}
{{if .Order.Delivery}}Доставка: {{.Order.Delivery}}
{{end}}{{if .Order.Comment}}Комментарий: {{.Order.Comment}}{{end}}`

const orderHTMLTemplate = `<h2>Заказ №{{.Order.ID}} от {{.Order.Date.Format "02.01.2006 15:04"}}</h2>
<p>Покупатель: {{.User.Username}}</p>
<table border="1" cellpadding="4">
<tr><th>Артикул</th><th>Наименование</th><th>Кол-во</th><th>Цена</th><th>Сумма</th></tr>
{{range .Items}}<tr><td>{{.ArticleID}}</td><td>{{.Name}}</td><td>{{.Count}}</td><td>{{.Price.StringFixed 3}}</td><td>{{.Sum.StringFixed 3}}</td></tr>
{{end}}</table>
<p>Сумма без скидки: {{.Totals.FullSum.StringFixed 3}}<br>
Скидка: {{.Totals.Discount.Sum.StringFixed 3}} ({{.Totals.Discount.Percent.StringFixed 2}}%)<br>
<b>Итого с доставкой: {{.Totals.TotalWithDelivery.StringFixed 3}}</b></p>
{{if .Order.Delivery}}<p>Доставка: {{.Order.Delivery}}</p>{{end}}
{{if .Order.Comment}}<p>Комментарий: {{.Order.Comment}}</p>{{end}}`

// messageContext — данные для уведомления о сообщении рекламации.
type messageContext struct {
	Complaint *model.Complaint
	Message   *model.Message
}

const messageTextTemplate = `По рекламации №{{.Complaint.ID}} получено новое сообщение:

{{.Message.Text}}

Статус рекламации: {{.Complaint.Status}}`

var (
	orderText   = texttemplate.Must(texttemplate.New("order_text").Parse(orderTextTemplate))
	orderHTML   = htmltemplate.Must(htmltemplate.New("order_html").Parse(orderHTMLTemplate))
	messageText = texttemplate.Must(texttemplate.New("message_text").Parse(messageTextTemplate))
)

// renderOrder рендерит оба тела письма о заказе: текстовое и HTML.
func renderOrder(ctx orderContext) (text string, html string, err error) {
	var textBuffer, htmlBuffer bytes.Buffer
	if err := orderText.Execute(&textBuffer, ctx); err != nil {
		return "", "", fmt.Errorf("ошибка рендеринга текста письма: %w", err)
	}
	if err := orderHTML.Execute(&htmlBuffer, ctx); err != nil {
		return "", "", fmt.Errorf("ошибка рендеринга HTML письма: %w", err)
	}
	return textBuffer.String(), htmlBuffer.String(), nil
}

// renderMessage рендерит текст уведомления о сообщении рекламации.
func renderMessage(ctx messageContext) (string, error) {
	var buffer bytes.Buffer
	if err := messageText.Execute(&buffer, ctx); err != nil {
		return "", fmt.Errorf("ошибка рендеринга уведомления: %w", err)
	}
	return buffer.String(), nil
}
