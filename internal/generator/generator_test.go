package generator

import (
	"bytes"
	"io"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commercial-portal/internal/importer"
)

// Сгенерированный фид должен без пропусков разбираться парсером импорта.
func TestWrite_FeedParsesBack(t *testing.T) {
	gofakeit.Seed(42)

	var buf bytes.Buffer
	err := Write(&buf, Feed{Categories: 3, ArticlesPerCategory: 4})
	require.NoError(t, err)

	reader := importer.NewFeedReader(&buf)

	categories := 0
	articles := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		// Генератор всегда пишет строку полной ширины
		assert.Len(t, record, importer.PriceFeedColumns)

		row, err := importer.ParsePriceRow(record)
		require.NoError(t, err, "строка %s не разобралась", record[0])

		if row.IsCategory {
			categories++
			assert.NotEmpty(t, row.Name)
		} else {
			articles++
			assert.NotEmpty(t, row.ParentID)
			assert.True(t, row.TradePrice.IsPositive(), "оптовая цена товара %s", row.ID)
			assert.True(t, row.RetailPrice.IsPositive(), "розничная цена товара %s", row.ID)
			assert.NotEmpty(t, row.Barcode)
			assert.NotEmpty(t, row.Company)
		}
	}

	assert.Equal(t, 3, categories)
	assert.Equal(t, 12, articles)
}

// Пустой фид не пишет ни одной строки.
func TestWrite_EmptyFeed(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Feed{})
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
