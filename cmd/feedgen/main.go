package main

import (
	"flag"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"commercial-portal/internal/generator"
	"commercial-portal/internal/model"
)

// Генератор тестового фида прайса для локальной отладки импорта.
func main() {
	var (
		out        = flag.String("out", "feed.csv", "путь к выходному файлу")
		categories = flag.Int("categories", 5, "число категорий")
		articles   = flag.Int("articles", 20, "число товаров в категории")
		enc        = flag.String("encoding", model.EncodingCP1251, "кодировка фида: cp1251 или utf-8-sig")
		seed       = flag.Int64("seed", 0, "зерно генератора (0 — случайное)")
	)
	flag.Parse()

	gofakeit.Seed(*seed)

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Не удалось создать файл: %v", err)
	}
	defer file.Close()

	feed := generator.Feed{Categories: *categories, ArticlesPerCategory: *articles}

	switch *enc {
	case model.EncodingCP1251:
		writer := transform.NewWriter(file, charmap.Windows1251.NewEncoder())
		defer writer.Close()
		err = generator.Write(writer, feed)
	case model.EncodingUTF8BOM:
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			log.Fatalf("Не удалось записать BOM: %v", err)
		}
		err = generator.Write(file, feed)
	default:
		log.Fatalf("Неизвестная кодировка: %s", *enc)
	}
	if err != nil {
		log.Fatalf("Ошибка генерации фида: %v", err)
	}

	log.Printf("Фид записан в %s: %d категорий по %d товаров", *out, *categories, *articles)
}
