package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/dreambabycare/babycare/config"
)

const channelKafka = "kafka"

// NotificationMessage is the event published for each notification
type NotificationMessage struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// messageWriter is the part of *kafka.Writer the notifier uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes notifications as JSON events for downstream consumers
type KafkaNotifier struct {
	writer messageWriter
	topic  string
	logger zerolog.Logger
}

// NewKafkaNotifier creates a producer for the configured topic
func NewKafkaNotifier(cfg config.KafkaConfig, logger zerolog.Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka notifier initialized")

	return newKafkaNotifier(writer, cfg.Topic, logger)
}

func newKafkaNotifier(writer messageWriter, topic string, logger zerolog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: writer,
		topic:  topic,
		logger: logger.With().Str("channel", channelKafka).Logger(),
	}
}

// Notify implements Notifier
func (n *KafkaNotifier) Notify(ctx context.Context, subject, body string) bool {
	data, err := json.Marshal(NotificationMessage{
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		n.logger.Error().Err(err).Msg("Failed to marshal notification")
		record(channelKafka, false)
		return false
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(subject),
		Value: data,
	})
	if err != nil {
		n.logger.Warn().Err(err).Str("topic", n.topic).Msg("Failed to publish notification")
		record(channelKafka, false)
		return false
	}

	n.logger.Debug().Str("topic", n.topic).Msg("Notification published")
	record(channelKafka, true)
	return true
}

// Close flushes and closes the producer
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
