package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishAffiliate(event AffiliateEvent) error {
	return k.publishJSON(TopicAffiliateEvents, event.AffiliateID, event)
}

func (k *DefaultKafkaPublisher) PublishConversion(event ConversionEvent) error {
	return k.publishJSON(TopicConversionEvents, event.AffiliateID, event)
}

func (k *DefaultKafkaPublisher) PublishPayout(event PayoutEvent) error {
	return k.publishJSON(TopicPayoutEvents, event.AffiliateID, event)
}

func (k *DefaultKafkaPublisher) PublishTierTable(event TierTableEvent) error {
	return k.publishJSON(TopicTierEvents, "tier-table", event)
}

func (k *DefaultKafkaPublisher) publishJSON(topic, key string, event any) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(key), Value: v})
}
