// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains an in-memory implementation of the orders
// repository used in unit tests.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/orders"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
)

var _ orders.Repository = (*orderRepositoryMock)(nil)

type orderRepositoryMock struct {
	mu      sync.Mutex
	orders  map[string]orders.Order
	catalog books.Repository
}

// NewRepository creates an in-memory order repository. Stock reservation
// is emulated against the provided catalog repository.
func NewRepository(catalog books.Repository) orders.Repository {
	return &orderRepositoryMock{
		orders:  make(map[string]orders.Order),
		catalog: catalog,
	}
}

func (orm *orderRepositoryMock) Save(ctx context.Context, order orders.Order) (orders.Order, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	if _, ok := orm.orders[order.ID]; ok {
		return orders.Order{}, repoerr.ErrConflict
	}

	decremented := []orders.OrderItem{}
	for _, item := range order.Items {
		if _, err := orm.catalog.UpdateCopies(ctx, item.BookID, -item.Quantity); err != nil {
			for _, done := range decremented {
				if _, err := orm.catalog.UpdateCopies(ctx, done.BookID, done.Quantity); err != nil {
					return orders.Order{}, err
				}
			}
			return orders.Order{}, err
		}
		decremented = append(decremented, item)
	}

	orm.orders[order.ID] = order

	return order, nil
}

func (orm *orderRepositoryMock) RetrieveByID(_ context.Context, id string) (orders.Order, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	if order, ok := orm.orders[id]; ok {
		return order, nil
	}

	return orders.Order{}, repoerr.ErrNotFound
}

func (orm *orderRepositoryMock) RetrieveAll(_ context.Context, pm orders.PageMetadata) (orders.Page, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	matched := make([]orders.Order, 0)
	for _, order := range orm.orders {
		if pm.Buyer != "" && order.Buyer != pm.Buyer {
			continue
		}
		if pm.Status != "" && order.Status != pm.Status {
			continue
		}
		matched = append(matched, order)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	page := orders.Page{
		PageMetadata: orders.PageMetadata{
			Total:  uint64(len(matched)),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Orders: []orders.Order{},
	}

	if pm.Offset >= uint64(len(matched)) {
		return page, nil
	}
	end := pm.Offset + pm.Limit
	if pm.Limit == 0 || end > uint64(len(matched)) {
		end = uint64(len(matched))
	}
	page.Orders = matched[pm.Offset:end]

	return page, nil
}

func (orm *orderRepositoryMock) UpdateStatus(_ context.Context, id string, status orders.Status) (orders.Order, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	order, ok := orm.orders[id]
	if !ok {
		return orders.Order{}, repoerr.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	orm.orders[id] = order

	return order, nil
}

func (orm *orderRepositoryMock) Cancel(ctx context.Context, id string) (orders.Order, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	order, ok := orm.orders[id]
	if !ok {
		return orders.Order{}, repoerr.ErrNotFound
	}
	if order.Status != orders.StatusPlaced {
		return orders.Order{}, svcerr.ErrInvalidOrderState
	}

	for _, item := range order.Items {
		if _, err := orm.catalog.UpdateCopies(ctx, item.BookID, item.Quantity); err != nil {
			return orders.Order{}, err
		}
	}

	order.Status = orders.StatusCancelled
	order.UpdatedAt = time.Now()
	orm.orders[id] = order

	return order, nil
}

func (orm *orderRepositoryMock) TotalRevenue(_ context.Context) (float64, error) {
	orm.mu.Lock()
	defer orm.mu.Unlock()

	var revenue float64
	for _, order := range orm.orders {
		if order.Status == orders.StatusCancelled {
			continue
		}
		revenue += order.Total
	}

	return revenue, nil
}
