package event

import (
	"RBR_Server_Side/internal/server-service/model"
	"RBR_Server_Side/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// Producer publishes server lifecycle events. Messages are keyed by server id
// so all events of one server land in the same partition, in order.
type Producer interface {
	PublishServerEvent(ctx context.Context, event model.ServerEvent) error
}

type producer struct {
	writer infra.KafkaWriter
}

func (p *producer) PublishServerEvent(ctx context.Context, event model.ServerEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("Producer.PublishServerEvent: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.ServerID)),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("Producer.PublishServerEvent: %w", err)
	}
	return nil
}

func NewProducer(writer infra.KafkaWriter) Producer {
	return &producer{
		writer: writer,
	}
}
