// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event store contracts used to stream service
// and database changes to interested consumers.
package events

import "context"

// Event represents an event.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]interface{}, error)
}

// Publisher specifies events publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}

// EventHandler represents event handler for Subscriber.
type EventHandler interface {
	// Handle handles events passed by underlying implementation.
	Handle(ctx context.Context, event Event) error
}

// Subscriber specifies event subscription API.
type Subscriber interface {
	// Subscribe subscribes to the event stream and consumes events.
	Subscribe(ctx context.Context, handler EventHandler) error

	// Close gracefully closes event subscriber's connection.
	Close() error
}

// Read reads value from event map. If value is not of type T, returns the
// default value.
func Read[T any](event map[string]interface{}, key string, def T) T {
	val, ok := event[key].(T)
	if !ok {
		return def
	}

	return val
}
