package notify

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"commercial-portal/internal/model"
)

// Attachment — готовый CSV-файл для письма.
type Attachment struct {
	Name    string
	Content []byte
}

// BuildOrderCSVs собирает выгрузку заказа: по одному файлу на каждого
// поставщика (company) среди строк заказа. Первая строка — покупатель и
// номер заказа, дальше строки позиций.
func BuildOrderCSVs(username string, order *model.Order, items []model.OrderItem) ([]Attachment, error) {
	byCompany := make(map[string][]model.OrderItem)
	for _, item := range items {
		byCompany[item.Company] = append(byCompany[item.Company], item)
	}

	companies := make([]string, 0, len(byCompany))
	for company := range byCompany {
		companies = append(companies, company)
	}
	sort.Strings(companies)

	attachments := make([]Attachment, 0, len(companies))
	for _, company := range companies {
		var buffer bytes.Buffer
		writer := csv.NewWriter(&buffer)
		writer.Comma = ';'

		if err := writer.Write([]string{username, "", fmt.Sprintf("%d", order.ID)}); err != nil {
			return nil, fmt.Errorf("ошибка записи заголовка CSV: %w", err)
		}
		for _, item := range byCompany[company] {
			record := []string{
				item.ArticleID,
				item.Name,
				fmt.Sprintf("%d", item.Count),
				item.Price.StringFixed(3),
				item.Sum().StringFixed(3),
				item.Volume.String(),
				item.Weight.String(),
				item.Barcode,
				item.Company,
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("ошибка записи строки CSV: %w", err)
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, fmt.Errorf("ошибка сборки CSV: %w", err)
		}

		attachments = append(attachments, Attachment{
			Name:    fmt.Sprintf("zakaz%d %s.csv", order.ID, company),
			Content: buffer.Bytes(),
		})
	}

	return attachments, nil
}
