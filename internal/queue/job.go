package queue

import "encoding/json"

// Типы фоновых задач.
const (
	JobImport               = "import"
	JobSendOrder            = "send_order"
	JobSendComplaintMessage = "send_complaint_message"
)

// Job — конверт задачи в топике: тип и произвольная JSON-нагрузка.
type Job struct {
	Type    string          `json:"type" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// ImportPayload — нагрузка задачи импорта: id записи о загруженном фиде.
// Файл принадлежит фоновой задаче, HTTP-запрос его не обрабатывает.
type ImportPayload struct {
	ImportID int `json:"import_id" validate:"required"`
}

// OrderPayload — нагрузка задачи рассылки закрытого заказа.
type OrderPayload struct {
	OrderID int `json:"order_id" validate:"required"`
}

// ComplaintMessagePayload — нагрузка уведомления о сообщении рекламации.
type ComplaintMessagePayload struct {
	MessageID int `json:"message_id" validate:"required"`
}
