// Package kafka publishes resolved county records to a sink topic for
// downstream join services. The sink is optional; the CSV outputs remain
// the canonical artifacts.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
)

// Writer produces resolved county records to a Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(brokers []string, topic string, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishBatch serializes and publishes the resolved records in a single
// WriteMessages call for efficiency.
func (w *Writer) PublishBatch(ctx context.Context, records []domain.ResolvedCountyRecord) error {
	if len(records) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(records))
	for i := range records {
		msg, err := serializeToMessage(records[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish resolved records: %w", err)
	}
	w.logger.Debug("published resolved records", "topic", w.writer.Topic, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a resolved record into a Kafka message. The
// key is the downstream join key so partitioning keeps a county's records
// together.
func serializeToMessage(rec domain.ResolvedCountyRecord) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize resolved record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(fmt.Sprintf("%s|%s|%d", rec.Storm, rec.FIPS, rec.Year)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "state", Value: []byte(rec.State)},
			{Key: "fips_source", Value: []byte(rec.FIPSSource)},
			{Key: "resolved_at", Value: []byte(rec.ResolvedAt.Format(time.RFC3339))},
		},
	}, nil
}
