package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"commercial-portal/internal/model"
)

// Позиции колонок фида прайса. Формат позиционный, без строки заголовка.
const (
	colID = iota
	colName
	colVendorCode
	colIsCategory
	colParentID
	colParentName
	colTradePrice
	colRetailPrice
	_ // зарезервировано поставщиком
	colLength
	colWidth
	colHeight
	colVolume
	colWeight
	_ // зарезервировано
	_ // зарезервировано
	colBarcode
	colDescription
	colImageLink
	colVideoLink
	colPresence
	colSiteLink
	colCompany

	// PriceFeedColumns — полная ширина строки фида прайса. Парсер
	// терпим к коротким строкам, но генератор пишет строки целиком.
	PriceFeedColumns
)

// PriceRow — разобранная строка фида прайса: либо категория, либо товар.
type PriceRow struct {
	ID          string
	Name        string
	VendorCode  string
	IsCategory  bool
	ParentID    string
	ParentName  string
	TradePrice  decimal.Decimal
	RetailPrice decimal.Decimal
	Length      decimal.Decimal
	Width       decimal.Decimal
	Height      decimal.Decimal
	Volume      decimal.Decimal
	Weight      decimal.Decimal
	Barcode     string
	Description string
	ImageLink   string
	VideoLink   string
	Presence    string
	SiteLink    string
	Company     string
}

// DecodeReader оборачивает фид декодером его кодировки. Старые выгрузки
// идут в cp1251, новые — в utf-8 с BOM; выбор задается записью импорта.
func DecodeReader(r io.Reader, enc string) (io.Reader, error) {
	switch enc {
	case model.EncodingCP1251:
		return transform.NewReader(r, charmap.Windows1251.NewDecoder()), nil
	case model.EncodingUTF8BOM:
		return transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())), nil
	default:
		return nil, fmt.Errorf("неизвестная кодировка фида: %s", enc)
	}
}

// NewFeedReader настраивает CSV-ридер под формат фидов поставщика.
func NewFeedReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // длина строк в фидах гуляет
	reader.LazyQuotes = true
	return reader
}

// field безопасно достает колонку: короткие строки дают пустое значение.
func field(record []string, index int) string {
	if index >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[index])
}

// parseMoney разбирает денежное поле. Запятая как десятичный разделитель
// в фидах встречается наравне с точкой.
func parseMoney(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// parseDimension разбирает габаритное поле; мусор в габаритах не повод
// выбрасывать строку — значение обнуляется.
func parseDimension(raw string) decimal.Decimal {
	value, err := parseMoney(raw)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// ParsePriceRow разбирает строку фида прайса. Ошибка означает, что строку
// нужно пропустить, а не прерывать импорт.
func ParsePriceRow(record []string) (PriceRow, error) {
	row := PriceRow{
		ID:          field(record, colID),
		Name:        field(record, colName),
		VendorCode:  field(record, colVendorCode),
		IsCategory:  field(record, colIsCategory) == "1",
		ParentID:    field(record, colParentID),
		ParentName:  field(record, colParentName),
		Barcode:     field(record, colBarcode),
		Description: field(record, colDescription),
		ImageLink:   field(record, colImageLink),
		VideoLink:   field(record, colVideoLink),
		Presence:    field(record, colPresence),
		SiteLink:    field(record, colSiteLink),
		Company:     field(record, colCompany),
	}

	if row.ID == "" {
		return row, fmt.Errorf("строка без идентификатора")
	}
	if row.IsCategory {
		if row.Name == "" {
			return row, fmt.Errorf("категория %s без имени", row.ID)
		}
		return row, nil
	}

	if row.ParentID == "" {
		return row, fmt.Errorf("товар %s без категории", row.ID)
	}

	var err error
	if row.TradePrice, err = parseMoney(field(record, colTradePrice)); err != nil {
		return row, fmt.Errorf("товар %s: некорректная цена: %w", row.ID, err)
	}
	if row.RetailPrice, err = parseMoney(field(record, colRetailPrice)); err != nil {
		return row, fmt.Errorf("товар %s: некорректная розничная цена: %w", row.ID, err)
	}

	row.Length = parseDimension(field(record, colLength))
	row.Width = parseDimension(field(record, colWidth))
	row.Height = parseDimension(field(record, colHeight))
	row.Volume = parseDimension(field(record, colVolume))
	row.Weight = parseDimension(field(record, colWeight))

	return row, nil
}
