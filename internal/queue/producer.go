package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"commercial-portal/internal/config"
)

//go:generate mockgen -source=producer.go -destination=./mocks/producer_mock.go -package=mocks Producer

// Producer ставит фоновые задачи в очередь. Семантика at-least-once:
// подтверждение доставки гарантирует исполнение хотя бы один раз,
// повторная доставка возможна.
type Producer interface {
	Submit(ctx context.Context, jobType string, payload interface{}) error
	Close() error
}

// kafkaProducer публикует задачи в Kafka-топик.
type kafkaProducer struct {
	writer *kafka.Writer
	tracer trace.Tracer // Для трассировки
}

// NewProducer создает продюсера задач.
func NewProducer(cfg config.KafkaConfig) Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &kafkaProducer{
		writer: writer,
		tracer: otel.Tracer("queue-producer"),
	}
}

// Submit сериализует нагрузку и публикует конверт задачи.
func (p *kafkaProducer) Submit(ctx context.Context, jobType string, payload interface{}) error {
	ctx, span := p.tracer.Start(ctx, "Queue.Submit")
	defer span.End()

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации нагрузки задачи: %w", err)
	}
	body, err := json.Marshal(Job{Type: jobType, Payload: rawPayload})
	if err != nil {
		return fmt.Errorf("ошибка сериализации задачи: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(jobType),
		Value: body,
	})
	if err != nil {
		return fmt.Errorf("ошибка публикации задачи %s: %w", jobType, err)
	}

	log.Printf("Задача %s поставлена в очередь.", jobType)
	return nil
}

// Close закрывает соединение с брокером.
func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
