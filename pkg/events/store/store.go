// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package store hides the broker behind the event store constructors.
package store

import (
	"context"
	"log/slog"

	"github.com/dbirtolo/bookstore/pkg/events"
	"github.com/dbirtolo/bookstore/pkg/events/nats"
)

// NewPublisher returns an event store publisher over the configured broker.
func NewPublisher(ctx context.Context, url, stream string) (events.Publisher, error) {
	pb, err := nats.NewPublisher(ctx, url, stream)
	if err != nil {
		return nil, err
	}

	return pb, nil
}

// NewSubscriber returns an event store subscriber over the configured broker.
func NewSubscriber(ctx context.Context, url, stream, consumer string, logger *slog.Logger) (events.Subscriber, error) {
	sub, err := nats.NewSubscriber(ctx, url, stream, consumer, logger)
	if err != nil {
		return nil, err
	}

	return sub, nil
}
