package timeclock

import (
	"context"
	"encoding/json"

	"fichaje/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishClockEvent(ctx context.Context, event events.ClockEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishClockEvent(context.Context, events.ClockEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer *kafka.Writer
}

func NewKafkaEventPublisher(writer *kafka.Writer) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) PublishClockEvent(
	ctx context.Context,
	event events.ClockEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.ClockEventTopic,
		Key:   []byte(event.PersonName),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
