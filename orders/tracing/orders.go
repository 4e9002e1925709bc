// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracing contains the tracing decorator for the orders repository.
package tracing

import (
	"context"

	"github.com/dbirtolo/bookstore/orders"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveOrderOp         = "save_order"
	retrieveOrderByIDOp = "retrieve_order_by_id"
	retrieveAllOrdersOp = "retrieve_all_orders"
	updateStatusOp      = "update_order_status"
	cancelOrderOp       = "cancel_order"
	totalRevenueOp      = "total_revenue"
)

var _ orders.Repository = (*orderRepositoryMiddleware)(nil)

type orderRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   orders.Repository
}

// RepositoryMiddleware tracks requests and their latency, and adds spans to context.
func RepositoryMiddleware(tracer trace.Tracer, repo orders.Repository) orders.Repository {
	return orderRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (orm orderRepositoryMiddleware) Save(ctx context.Context, order orders.Order) (orders.Order, error) {
	ctx, span := orm.tracer.Start(ctx, saveOrderOp)
	defer span.End()

	return orm.repo.Save(ctx, order)
}

func (orm orderRepositoryMiddleware) RetrieveByID(ctx context.Context, id string) (orders.Order, error) {
	ctx, span := orm.tracer.Start(ctx, retrieveOrderByIDOp)
	defer span.End()

	return orm.repo.RetrieveByID(ctx, id)
}

func (orm orderRepositoryMiddleware) RetrieveAll(ctx context.Context, pm orders.PageMetadata) (orders.Page, error) {
	ctx, span := orm.tracer.Start(ctx, retrieveAllOrdersOp)
	defer span.End()

	return orm.repo.RetrieveAll(ctx, pm)
}

func (orm orderRepositoryMiddleware) UpdateStatus(ctx context.Context, id string, status orders.Status) (orders.Order, error) {
	ctx, span := orm.tracer.Start(ctx, updateStatusOp)
	defer span.End()

	return orm.repo.UpdateStatus(ctx, id, status)
}

func (orm orderRepositoryMiddleware) Cancel(ctx context.Context, id string) (orders.Order, error) {
	ctx, span := orm.tracer.Start(ctx, cancelOrderOp)
	defer span.End()

	return orm.repo.Cancel(ctx, id)
}

func (orm orderRepositoryMiddleware) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, span := orm.tracer.Start(ctx, totalRevenueOp)
	defer span.End()

	return orm.repo.TotalRevenue(ctx)
}
