// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/pkg/errors"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
)

// Service specifies an API that must be fullfiled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// PlaceOrder resolves unit prices from the catalog, computes the order
	// total and persists the order together with the stock decrements.
	PlaceOrder(ctx context.Context, order Order) (Order, error)

	// ViewOrder retrieves the order with the provided ID.
	ViewOrder(ctx context.Context, id string) (Order, error)

	// ListOrders retrieves a page of orders matching the provided filters.
	ListOrders(ctx context.Context, pm PageMetadata) (Page, error)

	// ShipOrder marks a placed order as shipped.
	ShipOrder(ctx context.Context, id string) (Order, error)

	// CancelOrder cancels a placed order and returns its stock.
	CancelOrder(ctx context.Context, id string) (Order, error)

	// TotalRevenue sums the total of all non-cancelled orders.
	TotalRevenue(ctx context.Context) (float64, error)
}

type service struct {
	repo       Repository
	catalog    books.Repository
	idProvider bookstore.IDProvider
}

var _ Service = (*service)(nil)

// New instantiates the orders service implementation.
func New(repo Repository, catalog books.Repository, idp bookstore.IDProvider) Service {
	return &service{
		repo:       repo,
		catalog:    catalog,
		idProvider: idp,
	}
}

func (svc *service) PlaceOrder(ctx context.Context, order Order) (Order, error) {
	if order.Buyer == "" || len(order.Items) == 0 {
		return Order{}, svcerr.ErrMalformedEntity
	}
	for _, item := range order.Items {
		if item.BookID == "" || item.Quantity < 1 {
			return Order{}, svcerr.ErrMalformedEntity
		}
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return Order{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	order.ID = id

	order.Total = 0
	for i, item := range order.Items {
		book, err := svc.catalog.RetrieveByID(ctx, item.BookID)
		if err != nil {
			return Order{}, errors.Wrap(svcerr.ErrCreateEntity, err)
		}
		order.Items[i].UnitPrice = book.Price
		order.Total += book.Price * float64(item.Quantity)
	}

	order.Status = StatusPlaced
	order.CreatedAt = time.Now()

	placed, err := svc.repo.Save(ctx, order)
	if err != nil {
		return Order{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return placed, nil
}

func (svc *service) ViewOrder(ctx context.Context, id string) (Order, error) {
	order, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Order{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return order, nil
}

func (svc *service) ListOrders(ctx context.Context, pm PageMetadata) (Page, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) ShipOrder(ctx context.Context, id string) (Order, error) {
	order, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Order{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}
	if order.Status != StatusPlaced {
		return Order{}, svcerr.ErrInvalidOrderState
	}

	shipped, err := svc.repo.UpdateStatus(ctx, id, StatusShipped)
	if err != nil {
		return Order{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return shipped, nil
}

func (svc *service) CancelOrder(ctx context.Context, id string) (Order, error) {
	cancelled, err := svc.repo.Cancel(ctx, id)
	if err != nil {
		if errors.Contains(err, svcerr.ErrInvalidOrderState) {
			return Order{}, err
		}
		return Order{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return cancelled, nil
}

func (svc *service) TotalRevenue(ctx context.Context) (float64, error) {
	revenue, err := svc.repo.TotalRevenue(ctx)
	if err != nil {
		return 0, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return revenue, nil
}
