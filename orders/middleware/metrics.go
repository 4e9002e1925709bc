// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore/orders"
	"github.com/go-kit/kit/metrics"
)

var _ orders.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service orders.Service
}

// MetricsMiddleware instruments the orders service with request count and
// latency metrics.
func MetricsMiddleware(service orders.Service, counter metrics.Counter, latency metrics.Histogram) orders.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) PlaceOrder(ctx context.Context, order orders.Order) (orders.Order, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "place_order").Add(1)
		mm.latency.With("method", "place_order").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.PlaceOrder(ctx, order)
}

func (mm *metricsMiddleware) ViewOrder(ctx context.Context, id string) (orders.Order, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_order").Add(1)
		mm.latency.With("method", "view_order").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ViewOrder(ctx, id)
}

func (mm *metricsMiddleware) ListOrders(ctx context.Context, pm orders.PageMetadata) (orders.Page, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_orders").Add(1)
		mm.latency.With("method", "list_orders").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ListOrders(ctx, pm)
}

func (mm *metricsMiddleware) ShipOrder(ctx context.Context, id string) (orders.Order, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "ship_order").Add(1)
		mm.latency.With("method", "ship_order").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ShipOrder(ctx, id)
}

func (mm *metricsMiddleware) CancelOrder(ctx context.Context, id string) (orders.Order, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "cancel_order").Add(1)
		mm.latency.With("method", "cancel_order").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.CancelOrder(ctx, id)
}

func (mm *metricsMiddleware) TotalRevenue(ctx context.Context) (float64, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "total_revenue").Add(1)
		mm.latency.With("method", "total_revenue").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.TotalRevenue(ctx)
}
