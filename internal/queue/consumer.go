package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/config"
	"commercial-portal/internal/metrics"
	"commercial-portal/internal/validator"
)

// HandlerFunc обрабатывает нагрузку задачи одного типа.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) error

// Consumer читает задачи из Kafka и раздает их обработчикам по типу.
type Consumer struct {
	reader     *kafka.Reader
	dlqWriter  *kafka.Writer // Продюсер для отправки "битых" задач в DLQ
	handlers   map[string]HandlerFunc
	tracer     trace.Tracer // Для трассировки
	maxRetries int          // Количество попыток для временных ошибок
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты выполняются вручную после успешной обработки.
	})

	// Продюсер для DLQ
	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:     reader,
		dlqWriter:  dlqWriter,
		handlers:   make(map[string]HandlerFunc),
		tracer:     otel.Tracer("queue-consumer"),
		maxRetries: 3, // 3 попытки на обработку
	}
}

// Register привязывает обработчик к типу задачи. Вызывается до Run.
func (c *Consumer) Register(jobType string, handler HandlerFunc) {
	c.handlers[jobType] = handler
}

// Run запускает цикл чтения задач из Kafka.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Воркер фоновых задач запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Воркер фоновых задач останавливается.")
			return
		default:
			// FetchMessage используется для ручного контроля коммитов
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				log.Printf("Ошибка чтения задачи из Kafka: %v", err)
				continue
			}

			// Обрабатываем задачу
			procErr := c.processMessage(ctx, msg)

			if procErr != nil {
				// Ошибка = нужна повторная обработка.
				// Мы НЕ коммитим сообщение, Kafka доставит его повторно.
				log.Printf("Ошибка обработки задачи (%s): %v. Не коммитим, ждем retry.", string(msg.Key), procErr)
			} else {
				// nil = обработка успешна (в т.ч. уход в DLQ).
				// Коммитим, чтобы Kafka не присылала задачу снова.
				if err := c.reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("Ошибка коммита задачи: %v", err)
				}
			}
		}
	}
}

// processMessage выполняет десериализацию, валидацию и обработку задачи.
// Возвращает error, если нужен Kafka-retry (например, БД временно недоступна).
// Возвращает nil, если обработка успешна или задача ушла в DLQ.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var job Job
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		log.Printf("Невалидная JSON-задача, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.JobsProcessed.WithLabelValues("unknown", "dlq_validation").Inc()
		return nil // Коммитим (не ретраим "битый" JSON)
	}

	// Валидация конверта
	if err := validator.ValidateStruct(&job); err != nil {
		log.Printf("Ошибка валидации задачи %s, отправка в DLQ: %v", job.Type, err)
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.JobsProcessed.WithLabelValues(job.Type, "dlq_validation").Inc()
		return nil // Коммитим (не ретраим невалидные задачи)
	}

	handler, ok := c.handlers[job.Type]
	if !ok {
		log.Printf("Нет обработчика для задачи %s, отправка в DLQ.", job.Type)
		c.sendToDLQ(ctx, msg, "unknown_job_type", nil)
		metrics.JobsProcessed.WithLabelValues(job.Type, "dlq_validation").Inc()
		return nil
	}

	// Обработка с внутренним Retry-циклом
	var procErr error
	for i := 0; i < c.maxRetries; i++ {
		procErr = handler(ctx, job.Payload)
		if procErr == nil {
			break // Успешно
		}
		log.Printf("Ошибка обработки задачи %s (попытка %d/%d): %v", job.Type, i+1, c.maxRetries, procErr)
		time.Sleep(time.Second * time.Duration(i+1)) // Простой backoff
	}

	// Если после всех попыток ошибка осталась
	if procErr != nil {
		log.Printf("Не удалось обработать задачу %s после %d попыток, отправка в DLQ.", job.Type, c.maxRetries)
		c.sendToDLQ(ctx, msg, "handler_error", procErr)
		metrics.JobsProcessed.WithLabelValues(job.Type, "dlq_error").Inc()
		return nil // Коммитим (не ретраим, т.к. исчерпали попытки)
	}

	metrics.JobsProcessed.WithLabelValues(job.Type, "success").Inc()
	return nil
}

// sendToDLQ отправляет "битую" задачу в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	details := ""
	if procErr != nil {
		details = procErr.Error()
	}

	// Отправляем задачу в DLQ с доп. заголовками об ошибке
	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(details)},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить задачу %s в DLQ: %v", string(originalMsg.Key), err)
	} else {
		log.Printf("Задача %s отправлена в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
