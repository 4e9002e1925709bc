// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package nats contains the NATS JetStream implementation of the event
// store publisher and subscriber.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dbirtolo/bookstore/pkg/events"
	broker "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// A maximum number of reconnect attempts before NATS connection closes
// permanently. Value -1 represents an unlimited number of reconnect retries.
const maxReconnects = -1

const eventsPrefix = "events"

var jsStreamConfig = jetstream.StreamConfig{
	Name:              "events",
	Description:       "Bookstore stream for sending and receiving events between Bookstore services",
	Subjects:          []string{"events.>"},
	Retention:         jetstream.LimitsPolicy,
	MaxMsgsPerSubject: 1e6,
	MaxAge:            time.Hour * 24,
	MaxMsgSize:        1024 * 1024,
	Discard:           jetstream.DiscardOld,
	Storage:           jetstream.FileStorage,
}

// ErrEmptyStream is returned when stream name is empty.
var ErrEmptyStream = errors.New("stream name cannot be empty")

var _ events.Publisher = (*pubEventStore)(nil)

type pubEventStore struct {
	conn   *broker.Conn
	js     jetstream.JetStream
	stream string
}

// NewPublisher returns a NATS JetStream event store publisher that publishes
// JSON encoded events to the given stream subject.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	if stream == "" {
		return nil, ErrEmptyStream
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

	return &pubEventStore{
		conn:   conn,
		js:     js,
		stream: eventsPrefix + "." + stream,
	}, nil
}

func (es *pubEventStore) Publish(ctx context.Context, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	values["occurred_at"] = time.Now().UnixNano()

	data, err := json.Marshal(values)
	if err != nil {
		return err
	}

	_, err = es.js.Publish(ctx, es.stream, data)

	return err
}

func (es *pubEventStore) Close() error {
	es.conn.Close()
	return nil
}
