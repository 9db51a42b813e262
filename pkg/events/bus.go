package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const topic = "system_events"

// envelope is the wire form of an event on the bus.
type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Bus is an in-process pub/sub for domain events, backed by watermill's
// gochannel transport. Publishing never blocks request handling beyond the
// channel hand-off; slow subscribers only delay themselves.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewStdLogger(false, false),
		),
	}
}

func (b *Bus) Publish(ctx context.Context, evt Event) error {
	payload, err := json.Marshal(envelope{
		Type:       evt.EventType(),
		Data:       evt.Payload(),
		OccurredAt: evt.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return b.pubSub.Publish(topic, msg)
}

// Subscribe delivers every published event to handler on a dedicated
// goroutine until ctx is cancelled.
func (b *Bus) Subscribe(ctx context.Context, handler func(Event)) error {
	messages, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var env envelope
			if err := json.Unmarshal(msg.Payload, &env); err != nil {
				msg.Ack()
				continue
			}
			handler(BaseEvent{
				Type:       env.Type,
				Data:       env.Data,
				OccurredAt: env.OccurredAt,
			})
			msg.Ack()
		}
	}()
	return nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}
