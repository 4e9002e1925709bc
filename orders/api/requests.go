// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/dbirtolo/bookstore/internal/api"
	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
)

type placeOrderReq struct {
	token string
	order orders.Order
}

func (req placeOrderReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.order.Buyer == "" {
		return apiutil.ErrMissingBuyer
	}
	if len(req.order.Items) == 0 {
		return apiutil.ErrEmptyList
	}
	for _, item := range req.order.Items {
		if item.BookID == "" {
			return apiutil.ErrMissingID
		}
		if item.Quantity < 1 {
			return apiutil.ErrInvalidQuantity
		}
	}

	return nil
}

type viewOrderReq struct {
	token string
	id    string
}

func (req viewOrderReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type listOrdersReq struct {
	token string
	pm    orders.PageMetadata
}

func (req listOrdersReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.pm.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}

	return nil
}

type changeOrderStatusReq struct {
	token string
	id    string
}

func (req changeOrderStatusReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type totalRevenueReq struct {
	token string
}

func (req totalRevenueReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}

	return nil
}
