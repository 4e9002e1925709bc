// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event-sourcing decorator of the orders service.
package events

import (
	"context"

	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/events"
	"github.com/dbirtolo/bookstore/pkg/events/store"
)

const streamID = "bookstore.orders"

var _ orders.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc orders.Service
}

// NewEventStoreMiddleware returns wrapper around the orders service that
// sends events to the event store.
func NewEventStoreMiddleware(ctx context.Context, svc orders.Service, url string) (orders.Service, error) {
	publisher, err := store.NewPublisher(ctx, url, streamID)
	if err != nil {
		return nil, err
	}

	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}, nil
}

func (es *eventStore) PlaceOrder(ctx context.Context, order orders.Order) (orders.Order, error) {
	placed, err := es.svc.PlaceOrder(ctx, order)
	if err != nil {
		return placed, err
	}

	event := placeOrderEvent{placed}
	if err := es.Publish(ctx, event); err != nil {
		return placed, err
	}

	return placed, nil
}

func (es *eventStore) ViewOrder(ctx context.Context, id string) (orders.Order, error) {
	return es.svc.ViewOrder(ctx, id)
}

func (es *eventStore) ListOrders(ctx context.Context, pm orders.PageMetadata) (orders.Page, error) {
	return es.svc.ListOrders(ctx, pm)
}

func (es *eventStore) ShipOrder(ctx context.Context, id string) (orders.Order, error) {
	shipped, err := es.svc.ShipOrder(ctx, id)
	if err != nil {
		return shipped, err
	}

	event := changeStatusEvent{operation: orderShip, order: shipped}
	if err := es.Publish(ctx, event); err != nil {
		return shipped, err
	}

	return shipped, nil
}

func (es *eventStore) CancelOrder(ctx context.Context, id string) (orders.Order, error) {
	cancelled, err := es.svc.CancelOrder(ctx, id)
	if err != nil {
		return cancelled, err
	}

	event := changeStatusEvent{operation: orderCancel, order: cancelled}
	if err := es.Publish(ctx, event); err != nil {
		return cancelled, err
	}

	return cancelled, nil
}

func (es *eventStore) TotalRevenue(ctx context.Context) (float64, error) {
	return es.svc.TotalRevenue(ctx)
}
