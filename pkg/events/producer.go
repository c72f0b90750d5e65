package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

// Event types published to the order topic.
const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status.changed"
)

// Publisher emits order lifecycle events. Implementations must be
// best-effort: callers log failures and carry on.
type Publisher interface {
	OrderCreated(order *models.Order, items []models.OrderItem) error
	OrderStatusChanged(orderID, oldStatus, newStatus string) error
	Close() error
}

type orderCreatedEvent struct {
	Type  string             `json:"type"`
	At    int64              `json:"at"`
	Order *models.Order      `json:"order"`
	Items []models.OrderItem `json:"items"`
}

type statusChangedEvent struct {
	Type      string `json:"type"`
	At        int64  `json:"at"`
	OrderID   string `json:"orderId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

// KafkaPublisher pushes events to a single Kafka topic via a synchronous
// producer.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Kafka producer: %w", err)
	}

	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}, nil
}

func (p *KafkaPublisher) push(key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	p.logger.Debug("event published",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *KafkaPublisher) OrderCreated(order *models.Order, items []models.OrderItem) error {
	return p.push(order.ID, orderCreatedEvent{
		Type:  TypeOrderCreated,
		At:    time.Now().UnixMilli(),
		Order: order,
		Items: items,
	})
}

func (p *KafkaPublisher) OrderStatusChanged(orderID, oldStatus, newStatus string) error {
	return p.push(orderID, statusChangedEvent{
		Type:      TypeOrderStatusChanged,
		At:        time.Now().UnixMilli(),
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(*models.Order, []models.OrderItem) error { return nil }
func (NopPublisher) OrderStatusChanged(string, string, string) error      { return nil }
func (NopPublisher) Close() error                                         { return nil }
