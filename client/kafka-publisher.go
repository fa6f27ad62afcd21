package client

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher forwards registration messages to a topic, keyed by participant
// so that all messages of one participant stay ordered on a partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Name() string {
	return "kafka"
}

func (p *KafkaPublisher) Publish(ctx context.Context, message *RegistrationMessage) error {
	value, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.ParticipantId.String()),
		Value: value,
		Time:  message.Timestamp,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(message.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
