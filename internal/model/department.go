package model

import "github.com/shopspring/decimal"

// Department — арендатор (тенант): страна + e-mail отдела продаж.
// Вся витрина (названия, цены, публикация) накладывается поверх общего
// каталога через строки *Properties, привязанные к департаменту.
type Department struct {
	ID      int    `json:"id" db:"id"`
	Country string `json:"country" db:"country" validate:"required,iso3166_1_alpha2"`
	Email   string `json:"email" db:"email" validate:"required,email"`
}

// DepartmentSale — ступень объемной скидки: при сумме заказа от OrderSum
// действует скидка Sale процентов. Уникальность (department, order_sum, sale)
// гарантируется БД.
type DepartmentSale struct {
	ID           int             `json:"id" db:"id"`
	DepartmentID int             `json:"department_id" db:"department_id"`
	OrderSum     decimal.Decimal `json:"order_sum" db:"order_sum"`
	Sale         decimal.Decimal `json:"sale" db:"sale" validate:"omitempty"`
}

// Delivery — стоимость доставки единицы товара для страны.
type Delivery struct {
	ID      int             `json:"id" db:"id"`
	Country string          `json:"country" db:"country" validate:"required,iso3166_1_alpha2"`
	Price   decimal.Decimal `json:"price" db:"price"`
}
