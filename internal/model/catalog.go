package model

import "github.com/shopspring/decimal"

// Category — узел дерева каталога. Идентификатор задается поставщиком
// (строковый код из фида), а не генерируется БД. Поля TreeID/Lft/Rght/Level
// хранят материализованный порядок обхода и пересчитываются после импорта.
type Category struct {
	ID       string  `json:"id" db:"id" validate:"required,max=25"`
	ParentID *string `json:"parent_id" db:"parent_id"`
	TreeID   int     `json:"tree_id" db:"tree_id"`
	Lft      int     `json:"lft" db:"lft"`
	Rght     int     `json:"rght" db:"rght"`
	Level    int     `json:"level" db:"level"`
}

// CategoryProperties — витрина категории для конкретного департамента.
// На пару (департамент, категория) существует не больше одной строки.
type CategoryProperties struct {
	ID           int    `json:"id" db:"id"`
	DepartmentID int    `json:"department_id" db:"department_id"`
	CategoryID   string `json:"category_id" db:"category_id"`
	Name         string `json:"name" db:"name" validate:"required,max=255"`
	Published    bool   `json:"published" db:"published"`
}

// CategoryMenuItem — опубликованная категория в меню департамента:
// узел дерева вместе с именем из витрины.
type CategoryMenuItem struct {
	CategoryID string  `json:"category_id" db:"category_id"`
	ParentID   *string `json:"parent_id" db:"parent_id"`
	Name       string  `json:"name" db:"name"`
	Level      int     `json:"level" db:"level"`
}

// PublishedArticle — витрина товара вместе с его категорией
// (для YML-выгрузки).
type PublishedArticle struct {
	ArticleProperties
	CategoryID string `json:"category_id" db:"category_id"`
}

// Article — товар общего каталога, принадлежит ровно одной категории.
type Article struct {
	ID         string  `json:"id" db:"id" validate:"required,max=25"`
	CategoryID *string `json:"category_id" db:"category_id"`
	VendorCode string  `json:"vendor_code" db:"vendor_code"`
}

// ArticleProperties — витрина товара для департамента: цены, публикация,
// габариты. Цены хранятся с точностью 3 знака после запятой.
type ArticleProperties struct {
	ID           int             `json:"id" db:"id"`
	DepartmentID int             `json:"department_id" db:"department_id"`
	ArticleID    string          `json:"article_id" db:"article_id"`
	Name         string          `json:"name" db:"name" validate:"required,max=255"`
	Description  string          `json:"description" db:"description"`
	Price        decimal.Decimal `json:"price" db:"price"`
	RetailPrice  decimal.Decimal `json:"retail_price" db:"retail_price"`
	Published    bool            `json:"published" db:"published"`
	IsNew        bool            `json:"is_new" db:"is_new"`
	IsSpecial    bool            `json:"is_special" db:"is_special"`
	Length       decimal.Decimal `json:"length" db:"length"`
	Width        decimal.Decimal `json:"width" db:"width"`
	Height       decimal.Decimal `json:"height" db:"height"`
	Volume       decimal.Decimal `json:"volume" db:"volume"`
	Weight       decimal.Decimal `json:"weight" db:"weight"`
	Barcode      string          `json:"barcode" db:"barcode"`
	Company      string          `json:"company" db:"company"`
	ImageLink    string          `json:"image_link" db:"image_link"`
	VideoLink    string          `json:"video_link" db:"video_link"`
	SiteLink     string          `json:"site_link" db:"site_link"`
	Presence     string          `json:"presence" db:"presence"`
	Ordering     int             `json:"ordering" db:"ordering"`
}
