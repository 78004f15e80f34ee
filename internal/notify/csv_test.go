package notify

import (
	"encoding/csv"
	"strings"
	"testing"

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

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	return records
}

func TestBuildOrderCSVs_GroupsByCompany(t *testing.T) {
	order := &model.Order{ID: 42}
	items := []model.OrderItem{
		{ArticleID: "ART1", Name: "Коляска", Count: 2, Price: dec("1000"), Company: "Бета"},
		{ArticleID: "ART2", Name: "Кроватка", Count: 1, Price: dec("500"), Company: "Альфа"},
		{ArticleID: "ART3", Name: "Манеж", Count: 1, Price: dec("700"), Company: "Бета"},
	}

	attachments, err := BuildOrderCSVs("buyer", order, items)

	require.NoError(t, err)
	require.Len(t, attachments, 2)
	// Файлы идут в алфавитном порядке поставщиков
	assert.Equal(t, "zakaz42 Альфа.csv", attachments[0].Name)
	assert.Equal(t, "zakaz42 Бета.csv", attachments[1].Name)

	alfa := parseCSV(t, attachments[0].Content)
	require.Len(t, alfa, 2)
	// Заголовок: покупатель, пустая колонка, номер заказа
	assert.Equal(t, []string{"buyer", "", "42"}, alfa[0])
	assert.Equal(t, "ART2", alfa[1][0])

	beta := parseCSV(t, attachments[1].Content)
	require.Len(t, beta, 3)
	assert.Equal(t, "ART1", beta[1][0])
	assert.Equal(t, "ART3", beta[2][0])
}

func TestBuildOrderCSVs_RowFormat(t *testing.T) {
	order := &model.Order{ID: 7}
	items := []model.OrderItem{
		{
			ArticleID: "ART1",
			Name:      "Коляска",
			Count:     3,
			Price:     dec("1500.5"),
			Volume:    dec("0.5"),
			Weight:    dec("12.3"),
			Barcode:   "4600000000001",
			Company:   "ООО Поставщик",
		},
	}

	attachments, err := BuildOrderCSVs("buyer", order, items)

	require.NoError(t, err)
	require.Len(t, attachments, 1)

	records := parseCSV(t, attachments[0].Content)
	require.Len(t, records, 2)
	// Цены с тремя знаками, сумма = цена * количество
	assert.Equal(t, []string{
		"ART1", "Коляска", "3", "1500.500", "4501.500",
		"0.5", "12.3", "4600000000001", "ООО Поставщик",
	}, records[1])
}

func TestBuildOrderCSVs_EmptyOrder(t *testing.T) {
	attachments, err := BuildOrderCSVs("buyer", &model.Order{ID: 1}, nil)

	require.NoError(t, err)
	assert.Empty(t, attachments)
}
