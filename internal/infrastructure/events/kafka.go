package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"laundrypos/internal/config"
)

type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topicPrefix string
	logger      *zap.Logger
	now         func() time.Time
}

func NewKafkaPublisher(cfg config.EventsConfig, logger *zap.Logger) (*KafkaPublisher, error) {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 5
	sc.Producer.Return.Successes = true
	sc.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}

	return NewKafkaPublisherWithProducer(producer, cfg.TopicPrefix, logger), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer:    producer,
		topicPrefix: topicPrefix,
		logger:      logger,
		now:         time.Now,
	}
}

func (p *KafkaPublisher) OrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	event.EventTime = p.now().UTC()
	return p.send(ctx, OrderCreatedTopic, event.OrderID, event)
}

func (p *KafkaPublisher) OrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error {
	event.EventTime = p.now().UTC()
	return p.send(ctx, OrderStatusChangedTopic, event.OrderID, event)
}

// Topic prefixes the event name, "laundry" + "order.created" becoming
// "laundry.order.created".
func (p *KafkaPublisher) Topic(name string) string {
	if p.topicPrefix == "" {
		return name
	}
	return p.topicPrefix + "." + name
}

func (p *KafkaPublisher) send(ctx context.Context, name, key string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling %s event: %w", name, err)
	}

	topic := p.Topic(name)
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to send message to kafka", zap.String("topic", topic), zap.String("orderId", key), zap.Error(err))
		return fmt.Errorf("sending %s event: %w", name, err)
	}

	p.logger.Info("event published",
		zap.String("topic", topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("orderId", key),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
