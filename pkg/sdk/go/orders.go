// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dbirtolo/bookstore/pkg/errors"
)

// OrderItem represents a single line of an order.
type OrderItem struct {
	BookID    string  `json:"book_id"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

// Order represents bookstore order.
type Order struct {
	ID        string      `json:"id,omitempty"`
	Buyer     string      `json:"buyer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total,omitempty"`
	Status    string      `json:"status,omitempty"`
	CreatedAt time.Time   `json:"created_at,omitempty"`
	UpdatedAt time.Time   `json:"updated_at,omitempty"`
}

// OrdersPage contains list of orders in a page with proper metadata.
type OrdersPage struct {
	Orders []Order `json:"orders"`
	PageMetadata
}

func (sdk bsSDK) PlaceOrder(order Order, token string) (Order, errors.SDKError) {
	data, err := json.Marshal(order)
	if err != nil {
		return Order{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s", sdk.bookstoreURL, ordersEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return Order{}, sdkerr
	}

	order = Order{}
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, errors.NewSDKError(err)
	}

	return order, nil
}

func (sdk bsSDK) Order(id, token string) (Order, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.bookstoreURL, ordersEndpoint, id)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Order{}, sdkerr
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, errors.NewSDKError(err)
	}

	return order, nil
}

func (sdk bsSDK) Orders(pm PageMetadata, token string) (OrdersPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.bookstoreURL, ordersEndpoint, pm)
	if err != nil {
		return OrdersPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return OrdersPage{}, sdkerr
	}

	var op OrdersPage
	if err := json.Unmarshal(body, &op); err != nil {
		return OrdersPage{}, errors.NewSDKError(err)
	}

	return op, nil
}

func (sdk bsSDK) ShipOrder(id, token string) (Order, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s/ship", sdk.bookstoreURL, ordersEndpoint, id)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Order{}, sdkerr
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, errors.NewSDKError(err)
	}

	return order, nil
}

func (sdk bsSDK) CancelOrder(id, token string) (Order, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s/cancel", sdk.bookstoreURL, ordersEndpoint, id)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Order{}, sdkerr
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return Order{}, errors.NewSDKError(err)
	}

	return order, nil
}

func (sdk bsSDK) Revenue(token string) (float64, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/revenue", sdk.bookstoreURL, ordersEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return 0, sdkerr
	}

	var rr struct {
		Revenue float64 `json:"revenue"`
	}
	if err := json.Unmarshal(body, &rr); err != nil {
		return 0, errors.NewSDKError(err)
	}

	return rr.Revenue, nil
}
