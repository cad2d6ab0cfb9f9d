package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"sales/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// OrderChangedProducer publishes OrderChangedEvent messages keyed by order id,
// so every change of one order lands on the same partition.
type OrderChangedProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Entry
}

// NewOrderChangedProducer connects a synchronous, idempotent producer to the brokers.
func NewOrderChangedProducer(brokers []string, topic string) (*OrderChangedProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return newOrderChangedProducer(producer, topic), nil
}

func newOrderChangedProducer(producer sarama.SyncProducer, topic string) *OrderChangedProducer {
	return &OrderChangedProducer{
		producer: producer,
		topic:    topic,
		logger:   log.WithField("component", "kafka-producer"),
	}
}

// PublishOrderChanged sends one event and waits for the broker acknowledgement.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, kind order.ChangeKind, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	now := time.Now()
	event := NewOrderChangedEvent(kind, o, now)
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := strconv.FormatInt(o.ID(), 10)
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(eventData),
		Timestamp: now,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.EventType)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"topic": p.topic,
			"key":   key,
		}).Error("failed to send message to kafka")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"topic":      p.topic,
		"key":        key,
		"event_type": event.EventType,
		"partition":  partition,
		"offset":     offset,
	}).Debug("message sent to kafka")

	return nil
}

func (p *OrderChangedProducer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
