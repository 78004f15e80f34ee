package yml

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commercial-portal/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCatalog() *Catalog {
	department := &model.Department{ID: 1, Country: "by"}
	menu := []model.CategoryMenuItem{
		{CategoryID: "CAT1", Name: "Коляски"},
		{CategoryID: "CAT2", Name: "Кроватки"},
	}
	articles := []model.PublishedArticle{
		{
			ArticleProperties: model.ArticleProperties{
				ArticleID:   "ART1",
				Name:        "Коляска прогулочная",
				RetailPrice: dec("1999.9"),
				ImageLink:   "http://img/art1.jpg",
				Barcode:     "4600000000001",
			},
			CategoryID: "CAT1",
		},
	}
	return Build(department, menu, articles, "RUB", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC))
}

func TestBuild(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, "2026-03-15 10:30", catalog.Date)
	assert.Equal(t, "shop-by", catalog.Shop.Name)
	require.Len(t, catalog.Shop.Currencies, 1)
	assert.Equal(t, "RUB", catalog.Shop.Currencies[0].ID)
	require.Len(t, catalog.Shop.Categories, 2)
	assert.Equal(t, "CAT1", catalog.Shop.Categories[0].ID)
	assert.Equal(t, "Коляски", catalog.Shop.Categories[0].Name)

	require.Len(t, catalog.Shop.Offers, 1)
	offer := catalog.Shop.Offers[0]
	assert.Equal(t, "ART1", offer.ID)
	assert.Equal(t, "CAT1", offer.CategoryID)
	// Десятичный разделитель - запятая
	assert.Equal(t, "1999,90", offer.Price)
}

func TestMarshal(t *testing.T) {
	body, err := Marshal(testCatalog())

	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, text, `<yml_catalog date="2026-03-15 10:30">`)
	assert.Contains(t, text, `<offer id="ART1">`)
	assert.Contains(t, text, `<price>1999,90</price>`)
	assert.Contains(t, text, `<category id="CAT1">Коляски</category>`)
}
