// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dbirtolo/bookstore/pkg/events"
	broker "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// ErrEmptyConsumer is returned when consumer name is empty.
var ErrEmptyConsumer = errors.New("consumer name cannot be empty")

var _ events.Subscriber = (*subEventStore)(nil)

type subEventStore struct {
	conn     *broker.Conn
	js       jetstream.JetStream
	stream   string
	consumer string
	logger   *slog.Logger
}

// NewSubscriber returns a NATS JetStream event store subscriber consuming
// JSON encoded events from the given stream subject.
func NewSubscriber(ctx context.Context, url, stream, consumer string, logger *slog.Logger) (events.Subscriber, error) {
	if stream == "" {
		return nil, ErrEmptyStream
	}
	if consumer == "" {
		return nil, ErrEmptyConsumer
	}

	conn, err := broker.Connect(url, broker.MaxReconnects(maxReconnects))
	if err != nil {
		return nil, err
	}
	js, err := jetstream.New(conn)
	if err != nil {
		return nil, err
	}
	if _, err := js.CreateStream(ctx, jsStreamConfig); err != nil {
		return nil, err
	}

	return &subEventStore{
		conn:     conn,
		js:       js,
		stream:   eventsPrefix + "." + stream,
		consumer: consumer,
		logger:   logger,
	}, nil
}

func (es *subEventStore) Subscribe(ctx context.Context, handler events.EventHandler) error {
	consumer, err := es.js.CreateOrUpdateConsumer(ctx, jsStreamConfig.Name, jetstream.ConsumerConfig{
		Durable:       es.consumer,
		FilterSubject: es.stream,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return err
	}

	_, err = consumer.Consume(func(msg jetstream.Msg) {
		event := rawEvent{
			data: make(map[string]interface{}),
		}
		if err := json.Unmarshal(msg.Data(), &event.data); err != nil {
			es.logger.Warn(fmt.Sprintf("failed to unmarshal event: %s", err))
			return
		}

		if err := handler.Handle(ctx, event); err != nil {
			es.logger.Warn(fmt.Sprintf("failed to handle event: %s", err))
			return
		}

		if err := msg.Ack(); err != nil {
			es.logger.Warn(fmt.Sprintf("failed to ack event: %s", err))
		}
	})

	return err
}

func (es *subEventStore) Close() error {
	es.conn.Close()
	return nil
}

type rawEvent struct {
	data map[string]interface{}
}

func (re rawEvent) Encode() (map[string]interface{}, error) {
	return re.data, nil
}
