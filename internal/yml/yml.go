// Package yml собирает каталожную выгрузку в формате YML для внешних
// прайс-агрегаторов: валюты, опубликованные категории и товары департамента.
package yml

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"commercial-portal/internal/model"
)

// Catalog — корневой элемент документа.
type Catalog struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Date    string   `xml:"date,attr"`
	Shop    Shop     `xml:"shop"`
}

// Shop — магазин одного департамента.
type Shop struct {
	Name       string     `xml:"name"`
	Currencies []Currency `xml:"currencies>currency"`
	Categories []Category `xml:"categories>category"`
	Offers     []Offer    `xml:"offers>offer"`
}

// Currency — валюта магазина.
type Currency struct {
	ID   string `xml:"id,attr"`
	Rate string `xml:"rate,attr"`
}

// Category — опубликованная категория.
type Category struct {
	ID   string `xml:"id,attr"`
	Name string `xml:",chardata"`
}

// Offer — опубликованный товар.
type Offer struct {
	ID          string `xml:"id,attr"`
	Price       string `xml:"price"`
	CurrencyID  string `xml:"currencyId"`
	CategoryID  string `xml:"categoryId"`
	Picture     string `xml:"picture,omitempty"`
	Name        string `xml:"name"`
	Description string `xml:"description,omitempty"`
	Barcode     string `xml:"barcode,omitempty"`
}

// Build собирает документ выгрузки из опубликованной витрины департамента.
// Цены форматируются с запятой в качестве десятичного разделителя —
// так их ждет потребитель выгрузки.
func Build(
	department *model.Department,
	menu []model.CategoryMenuItem,
	articles []model.PublishedArticle,
	currency string,
	now time.Time,
) *Catalog {
	shop := Shop{
		Name:       fmt.Sprintf("shop-%s", department.Country),
		Currencies: []Currency{{ID: currency, Rate: "1"}},
	}

	for _, item := range menu {
		shop.Categories = append(shop.Categories, Category{ID: item.CategoryID, Name: item.Name})
	}
	for _, article := range articles {
		shop.Offers = append(shop.Offers, Offer{
			ID:          article.ArticleID,
			Price:       strings.ReplaceAll(article.RetailPrice.StringFixed(2), ".", ","),
			CurrencyID:  currency,
			CategoryID:  article.CategoryID,
			Picture:     article.ImageLink,
			Name:        article.Name,
			Description: article.Description,
			Barcode:     article.Barcode,
		})
	}

	return &Catalog{
		Date: now.Format("2006-01-02 15:04"),
		Shop: shop,
	}
}

// Marshal сериализует документ с XML-заголовком.
func Marshal(catalog *Catalog) ([]byte, error) {
	body, err := xml.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации YML: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
