package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"commercial-portal/internal/api"
	"commercial-portal/internal/cache"
	"commercial-portal/internal/cart"
	"commercial-portal/internal/config"
	"commercial-portal/internal/database"
	"commercial-portal/internal/importer"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/notify"
	"commercial-portal/internal/queue"
	"commercial-portal/internal/tracing"
)

func main() {
	cfg := config.Get()

	metrics.Init()

	// Инициализация трассировки
	shutdownTracing := tracing.InitTracerProvider("commercial-portal", cfg.Jaeger.URL)
	defer shutdownTracing()

	// Инициализация хранилища
	storage, err := database.New(cfg.Postgres.URL, "./internal/database/migrations")
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Ошибка создания каталога загрузок: %v", err)
	}

	// Инициализация кэша меню и выгрузок
	portalCache := cache.NewLRUCache(cfg.Cache.Size)
	if err := cache.WarmUp(context.Background(), storage, portalCache); err != nil {
		log.Printf("Ошибка при прогреве кэша: %v", err)
	}

	// Продюсер задач
	producer := queue.NewProducer(cfg.Kafka)
	defer producer.Close()

	cartService := cart.NewService(storage, producer)

	// Фоновые обработчики: импорт фидов и почтовые уведомления
	importWorker := importer.NewWorker(storage, portalCache, cfg.Upload.Dir)
	notifier := notify.NewNotifier(storage, notify.NewSender(cfg.SMTP), cfg.SMTP.DefaultFrom)

	ctx, cancel := context.WithCancel(context.Background())
	consumer := queue.NewConsumer(cfg.Kafka)
	consumer.Register(queue.JobImport, importWorker.Handle)
	consumer.Register(queue.JobSendOrder, notifier.HandleOrder)
	consumer.Register(queue.JobSendComplaintMessage, notifier.HandleComplaintMessage)
	go consumer.Run(ctx)

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, storage, portalCache, cartService, producer, cfg.Upload.Dir)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()
	log.Println("Сервис успешно остановлен.")
}
