package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"commercial-portal/internal/importer"
)

// Генератор тестовых фидов прайса. Формат строк позиционный, без
// заголовка, разделитель — точка с запятой; воспроизводит выгрузку
// поставщика для локальной отладки импорта.

// Feed описывает размер генерируемого фида.
type Feed struct {
	Categories          int
	ArticlesPerCategory int
}

// row собирает одну строку фида нужной ширины.
func row(values map[int]string) []string {
	record := make([]string, importer.PriceFeedColumns)
	for i, v := range values {
		record[i] = v
	}
	return record
}

// money форматирует цену с запятой в качестве десятичного разделителя,
// как в выгрузках поставщика.
func money(min, max float64) string {
	price := gofakeit.Price(min, max)
	return strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

// categoryRow генерирует строку категории: флаг категории взведен,
// цены пустые.
func categoryRow(id string) []string {
	return row(map[int]string{
		0: id,
		1: gofakeit.ProductCategory(),
		3: "1",
	})
}

// articleRow генерирует строку товара в категории parentID.
func articleRow(id, parentID string) []string {
	return row(map[int]string{
		0:  id,
		1:  gofakeit.ProductName(),
		2:  fmt.Sprintf("VC-%d", gofakeit.Number(10000, 99999)),
		4:  parentID,
		6:  money(100, 5000),   // оптовая цена
		7:  money(150, 9000),   // розничная цена
		9:  money(10, 200),     // длина
		10: money(10, 200),     // ширина
		11: money(10, 200),     // высота
		12: money(0.01, 2),     // объем
		13: money(0.1, 25),     // вес
		16: gofakeit.DigitN(13), // штрихкод
		17: gofakeit.ProductDescription(),
		18: gofakeit.URL(),
		20: "да",
		22: gofakeit.Company(),
	})
}

// Write пишет случайный фид прайса в w.
func Write(w io.Writer, feed Feed) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	for c := 0; c < feed.Categories; c++ {
		categoryID := fmt.Sprintf("CAT%03d", c+1)
		if err := writer.Write(categoryRow(categoryID)); err != nil {
			return fmt.Errorf("ошибка записи строки категории: %w", err)
		}
		for a := 0; a < feed.ArticlesPerCategory; a++ {
			articleID := fmt.Sprintf("ART%03d-%03d", c+1, a+1)
			if err := writer.Write(articleRow(articleID, categoryID)); err != nil {
				return fmt.Errorf("ошибка записи строки товара: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
