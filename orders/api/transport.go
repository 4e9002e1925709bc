// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package api contains the orders service HTTP API.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dbirtolo/bookstore/internal/api"
	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler registers the orders routes on the provided router.
func MakeHandler(svc orders.Service, mux *chi.Mux, logger *slog.Logger) *chi.Mux {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Route("/orders", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			placeOrderEndpoint(svc),
			decodePlaceOrderReq,
			api.EncodeResponse,
			opts...,
		), "place_order").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listOrdersEndpoint(svc),
			decodeListOrdersReq,
			api.EncodeResponse,
			opts...,
		), "list_orders").ServeHTTP)

		r.Get("/revenue", otelhttp.NewHandler(kithttp.NewServer(
			totalRevenueEndpoint(svc),
			decodeTotalRevenueReq,
			api.EncodeResponse,
			opts...,
		), "total_revenue").ServeHTTP)

		r.Get("/{orderID}", otelhttp.NewHandler(kithttp.NewServer(
			viewOrderEndpoint(svc),
			decodeViewOrderReq,
			api.EncodeResponse,
			opts...,
		), "view_order").ServeHTTP)

		r.Post("/{orderID}/ship", otelhttp.NewHandler(kithttp.NewServer(
			shipOrderEndpoint(svc),
			decodeChangeOrderStatusReq,
			api.EncodeResponse,
			opts...,
		), "ship_order").ServeHTTP)

		r.Post("/{orderID}/cancel", otelhttp.NewHandler(kithttp.NewServer(
			cancelOrderEndpoint(svc),
			decodeChangeOrderStatusReq,
			api.EncodeResponse,
			opts...,
		), "cancel_order").ServeHTTP)
	})

	return mux
}

func decodePlaceOrderReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := placeOrderReq{token: apiutil.ExtractBearerToken(r)}
	if err := json.NewDecoder(r.Body).Decode(&req.order); err != nil {
		return nil, errors.Wrap(errors.ErrMalformedEntity, err)
	}

	return req, nil
}

func decodeViewOrderReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewOrderReq{
		token: apiutil.ExtractBearerToken(r),
		id:    chi.URLParam(r, "orderID"),
	}

	return req, nil
}

func decodeListOrdersReq(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	buyer, err := apiutil.ReadStringQuery(r, api.BuyerKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	status, err := apiutil.ReadStringQuery(r, api.StatusKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listOrdersReq{
		token: apiutil.ExtractBearerToken(r),
		pm: orders.PageMetadata{
			Offset: offset,
			Limit:  limit,
			Buyer:  buyer,
			Status: orders.Status(status),
		},
	}

	return req, nil
}

func decodeChangeOrderStatusReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := changeOrderStatusReq{
		token: apiutil.ExtractBearerToken(r),
		id:    chi.URLParam(r, "orderID"),
	}

	return req, nil
}

func decodeTotalRevenueReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := totalRevenueReq{token: apiutil.ExtractBearerToken(r)}

	return req, nil
}
