// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package middleware contains the orders service decorators for logging
// and metrics.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/dbirtolo/bookstore/orders"
)

var _ orders.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service orders.Service
}

// LoggingMiddleware adds logging facilities to the orders service.
func LoggingMiddleware(service orders.Service, logger *slog.Logger) orders.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) PlaceOrder(ctx context.Context, order orders.Order) (o orders.Order, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("order",
				slog.String("id", o.ID),
				slog.String("buyer", order.Buyer),
				slog.Int("items", len(order.Items)),
				slog.Float64("total", o.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Place order failed", args...)
			return
		}
		lm.logger.Info("Place order completed successfully", args...)
	}(time.Now())

	return lm.service.PlaceOrder(ctx, order)
}

func (lm *loggingMiddleware) ViewOrder(ctx context.Context, id string) (o orders.Order, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View order failed", args...)
			return
		}
		lm.logger.Info("View order completed successfully", args...)
	}(time.Now())

	return lm.service.ViewOrder(ctx, id)
}

func (lm *loggingMiddleware) ListOrders(ctx context.Context, pm orders.PageMetadata) (page orders.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.String("buyer", pm.Buyer),
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List orders failed", args...)
			return
		}
		lm.logger.Info("List orders completed successfully", args...)
	}(time.Now())

	return lm.service.ListOrders(ctx, pm)
}

func (lm *loggingMiddleware) ShipOrder(ctx context.Context, id string) (o orders.Order, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Ship order failed", args...)
			return
		}
		lm.logger.Info("Ship order completed successfully", args...)
	}(time.Now())

	return lm.service.ShipOrder(ctx, id)
}

func (lm *loggingMiddleware) CancelOrder(ctx context.Context, id string) (o orders.Order, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Cancel order failed", args...)
			return
		}
		lm.logger.Info("Cancel order completed successfully", args...)
	}(time.Now())

	return lm.service.CancelOrder(ctx, id)
}

func (lm *loggingMiddleware) TotalRevenue(ctx context.Context) (revenue float64, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Float64("revenue", revenue),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Total revenue failed", args...)
			return
		}
		lm.logger.Info("Total revenue completed successfully", args...)
	}(time.Now())

	return lm.service.TotalRevenue(ctx)
}
