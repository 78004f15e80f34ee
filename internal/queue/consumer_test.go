package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// setupConsumer - хелпер для инициализации консюмера без брокера
func setupConsumer() *Consumer {
	return &Consumer{
		dlqWriter:  &kafka.Writer{}, // Инициализируем, чтобы избежать nil panic в тестах на DLQ
		handlers:   make(map[string]HandlerFunc),
		tracer:     otel.Tracer("test-tracer"),
		maxRetries: 1,
	}
}

func jobMessage(t *testing.T, jobType string, payload interface{}) kafka.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	value, err := json.Marshal(Job{Type: jobType, Payload: raw})
	require.NoError(t, err)
	return kafka.Message{Key: []byte(jobType), Value: value}
}

func TestProcessMessage_DispatchesByType(t *testing.T) {
	consumer := setupConsumer()

	var got ImportPayload
	consumer.Register(JobImport, func(ctx context.Context, payload json.RawMessage) error {
		return json.Unmarshal(payload, &got)
	})
	// Обработчик другого типа не должен вызываться
	consumer.Register(JobSendOrder, func(ctx context.Context, payload json.RawMessage) error {
		t.Fatal("вызван чужой обработчик")
		return nil
	})

	err := consumer.processMessage(context.Background(), jobMessage(t, JobImport, ImportPayload{ImportID: 5}))

	require.NoError(t, err)
	assert.Equal(t, 5, got.ImportID)
}

func TestProcessMessage_InvalidJSON(t *testing.T) {
	consumer := setupConsumer()

	// Битый JSON уходит в DLQ и коммитится (nil), а не ретраится
	err := consumer.processMessage(context.Background(), kafka.Message{Value: []byte(`{broken`)})

	assert.NoError(t, err)
}

func TestProcessMessage_MissingPayload(t *testing.T) {
	consumer := setupConsumer()

	value, _ := json.Marshal(map[string]string{"type": JobImport})
	err := consumer.processMessage(context.Background(), kafka.Message{Value: value})

	// Конверт не прошел валидацию - DLQ, коммит
	assert.NoError(t, err)
}

func TestProcessMessage_UnknownType(t *testing.T) {
	consumer := setupConsumer()

	err := consumer.processMessage(context.Background(), jobMessage(t, "unknown_job", ImportPayload{ImportID: 1}))

	assert.NoError(t, err)
}

func TestProcessMessage_HandlerErrorGoesToDLQ(t *testing.T) {
	consumer := setupConsumer()

	calls := 0
	consumer.Register(JobImport, func(ctx context.Context, payload json.RawMessage) error {
		calls++
		return errors.New("постоянная ошибка")
	})

	err := consumer.processMessage(context.Background(), jobMessage(t, JobImport, ImportPayload{ImportID: 5}))

	// Попытки исчерпаны - задача в DLQ, сообщение коммитится
	assert.NoError(t, err)
	assert.Equal(t, consumer.maxRetries, calls)
}
