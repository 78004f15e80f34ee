package importer

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"commercial-portal/internal/model"
)

// record строит строку фида из префикса колонок.
func record(cols ...string) []string {
	return cols
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParsePriceRow_Category(t *testing.T) {
	row, err := ParsePriceRow(record("CAT1", "Электроника", "", "1"))

	require.NoError(t, err)
	assert.True(t, row.IsCategory)
	assert.Equal(t, "CAT1", row.ID)
	assert.Equal(t, "Электроника", row.Name)
}

func TestParsePriceRow_Article(t *testing.T) {
	row, err := ParsePriceRow(record(
		"ART1", "Коляска", "VC-1", "", "CAT1", "Электроника",
		"1500,50", "1999.99", "",
		"10", "20", "30", "0,5", "12.3",
		"", "", "4600000000001", "Описание", "http://img", "http://video",
		"да", "http://site", "ООО Поставщик",
	))

	require.NoError(t, err)
	assert.False(t, row.IsCategory)
	assert.Equal(t, "CAT1", row.ParentID)
	// Запятая в цене равнозначна точке
	assert.True(t, row.TradePrice.Equal(dec("1500.50")), "получено %s", row.TradePrice)
	assert.True(t, row.RetailPrice.Equal(dec("1999.99")))
	assert.True(t, row.Volume.Equal(dec("0.5")))
	assert.True(t, row.Weight.Equal(dec("12.3")))
	assert.Equal(t, "4600000000001", row.Barcode)
	assert.Equal(t, "ООО Поставщик", row.Company)
}

func TestParsePriceRow_SkipRows(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"строка без идентификатора", record("", "Имя")},
		{"категория без имени", record("CAT1", "", "", "1")},
		{"товар без категории", record("ART1", "Коляска", "VC-1", "", "")},
		{"мусор в цене", record("ART1", "Коляска", "VC-1", "", "CAT1", "", "не цена")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePriceRow(tc.record)
			assert.Error(t, err)
		})
	}
}

func TestParsePriceRow_GarbageDimensions(t *testing.T) {
	// Мусор в габаритах не повод выбрасывать строку
	row, err := ParsePriceRow(record(
		"ART1", "Коляска", "VC-1", "", "CAT1", "",
		"100", "150", "",
		"мусор", "", "abc", "xx", "yy",
	))

	require.NoError(t, err)
	assert.True(t, row.Length.IsZero())
	assert.True(t, row.Volume.IsZero())
	assert.True(t, row.Weight.IsZero())
}

func TestParsePriceRow_ShortRecord(t *testing.T) {
	// Короткие строки фида не паникуют: недостающие колонки пустые
	row, err := ParsePriceRow(record("CAT9", "Кроватки", "", "1"))

	require.NoError(t, err)
	assert.Empty(t, row.Company)
	assert.Empty(t, row.Barcode)
}

func TestDecodeReader_CP1251(t *testing.T) {
	// Кодируем строку в cp1251, как в выгрузках поставщика
	raw, _, err := transform.String(charmap.Windows1251.NewEncoder(), "ART1;Коляска прогулочная")
	require.NoError(t, err)

	decoded, err := DecodeReader(strings.NewReader(raw), model.EncodingCP1251)
	require.NoError(t, err)

	data, err := io.ReadAll(decoded)
	require.NoError(t, err)
	assert.Equal(t, "ART1;Коляска прогулочная", string(data))
}

func TestDecodeReader_UTF8BOM(t *testing.T) {
	raw := "\xEF\xBB\xBFART1;Коляска"

	decoded, err := DecodeReader(strings.NewReader(raw), model.EncodingUTF8BOM)
	require.NoError(t, err)

	data, err := io.ReadAll(decoded)
	require.NoError(t, err)
	// BOM отрезан
	assert.Equal(t, "ART1;Коляска", string(data))
}

func TestDecodeReader_UnknownEncoding(t *testing.T) {
	_, err := DecodeReader(strings.NewReader(""), "koi8-r")
	assert.Error(t, err)
}

func TestNewFeedReader_VariableWidth(t *testing.T) {
	feed := "CAT1;Электроника;;1\nART1;Коляска;VC-1;;CAT1;;100;150\n"

	reader := NewFeedReader(strings.NewReader(feed))

	first, err := reader.Read()
	require.NoError(t, err)
	assert.Len(t, first, 4)

	second, err := reader.Read()
	require.NoError(t, err)
	assert.Len(t, second, 8)
}
