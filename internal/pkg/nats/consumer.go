package nats

import (
	"github.com/code01-66/Digi-Sanchaar/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer manages subscriptions for one service
type Consumer struct {
	client *Client
	subs   []*nats.Subscription
}

// NewConsumer creates a consumer backed by a shared NATS client
func NewConsumer(client *Client) *Consumer {
	return &Consumer{
		client: client,
		subs:   make([]*nats.Subscription, 0),
	}
}

// Subscribe registers a handler for a subject. When queueGroup is
// non-empty the subscription joins that queue group.
func (c *Consumer) Subscribe(subject, queueGroup string, handler MessageHandler) error {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}

	var sub *nats.Subscription
	var err error
	if queueGroup != "" {
		sub, err = c.client.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		sub, err = c.client.Subscribe(subject, wrapped)
	}
	if err != nil {
		return err
	}

	c.subs = append(c.subs, sub)
	return nil
}

// Stop drains all subscriptions
func (c *Consumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Drain(); err != nil {
			logger.Warn("Failed to drain subscription", logger.Err(err))
		}
	}
	c.subs = nil
}
