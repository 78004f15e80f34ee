package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order — заказ. Пока IsClosed=false, это корзина пользователя: у одного
// пользователя не может быть двух открытых заказов (частичный уникальный
// индекс в БД). После закрытия заказ неизменяем.
type Order struct {
	ID       int       `json:"id" db:"id"`
	UserID   int       `json:"user_id" db:"user_id"`
	Date     time.Time `json:"date" db:"date"`
	Comment  string    `json:"comment" db:"comment"`
	Delivery string    `json:"delivery" db:"delivery"`
	IsClosed bool      `json:"is_closed" db:"is_closed"`
}

// OrderItem — строка заказа. Все товарные атрибуты (имя, цены, объем, вес,
// штрихкод, поставщик, картинка) копируются из витрины в момент добавления
// в корзину: последующие правки каталога не меняют уже оформленные заказы.
// На пару (заказ, товар) существует не больше одной строки — повторное
// добавление меняет количество.
type OrderItem struct {
	ID        int             `json:"id" db:"id"`
	OrderID   int             `json:"order_id" db:"order_id"`
	ArticleID string          `json:"article_id" db:"article_id"`
	Name      string          `json:"name" db:"name"`
	Count     int             `json:"count" db:"count" validate:"gte=0"`
	Price     decimal.Decimal `json:"price" db:"price"`
	FullPrice decimal.Decimal `json:"full_price" db:"full_price"`
	Volume    decimal.Decimal `json:"volume" db:"volume"`
	Weight    decimal.Decimal `json:"weight" db:"weight"`
	Barcode   string          `json:"barcode" db:"barcode"`
	Company   string          `json:"company" db:"company"`
	ImageURL  string          `json:"image_url" db:"image_url"`
}

// Sum возвращает стоимость строки (цена × количество).
func (i OrderItem) Sum() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Count)))
}
