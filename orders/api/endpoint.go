// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func placeOrderEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(placeOrderReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		placed, err := svc.PlaceOrder(ctx, req.order)
		if err != nil {
			return nil, err
		}

		return orderRes{Order: placed, created: true}, nil
	}
}

func viewOrderEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewOrderReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		order, err := svc.ViewOrder(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return orderRes{Order: order}, nil
	}
}

func listOrdersEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listOrdersReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListOrders(ctx, req.pm)
		if err != nil {
			return nil, err
		}

		return orderPageRes{Page: page}, nil
	}
}

func shipOrderEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(changeOrderStatusReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		order, err := svc.ShipOrder(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return orderRes{Order: order}, nil
	}
}

func cancelOrderEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(changeOrderStatusReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		order, err := svc.CancelOrder(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return orderRes{Order: order}, nil
	}
}

func totalRevenueEndpoint(svc orders.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(totalRevenueReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		revenue, err := svc.TotalRevenue(ctx)
		if err != nil {
			return nil, err
		}

		return revenueRes{Revenue: revenue}, nil
	}
}
