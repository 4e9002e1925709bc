// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"net/http"
	"testing"

	sdk "github.com/dbirtolo/bookstore/pkg/sdk/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	ts := newBookstoreServer()
	defer ts.Close()
	bsdk := sdk.NewSDK(sdk.Config{BookstoreURL: ts.URL})

	created, err := bsdk.CreateBook(book(1), token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	cases := []struct {
		desc   string
		order  sdk.Order
		token  string
		status int
	}{
		{
			desc: "place order for two copies",
			order: sdk.Order{
				Buyer: "alice",
				Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 2}},
			},
			token:  token,
			status: 0,
		},
		{
			desc: "place order exceeding stock",
			order: sdk.Order{
				Buyer: "bob",
				Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 100}},
			},
			token:  token,
			status: http.StatusUnprocessableEntity,
		},
		{
			desc: "place order without buyer",
			order: sdk.Order{
				Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 1}},
			},
			token:  token,
			status: http.StatusBadRequest,
		},
		{
			desc: "place order without items",
			order: sdk.Order{
				Buyer: "alice",
			},
			token:  token,
			status: http.StatusBadRequest,
		},
		{
			desc: "place order without token",
			order: sdk.Order{
				Buyer: "alice",
				Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 1}},
			},
			token:  "",
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		order, err := bsdk.PlaceOrder(tc.order, tc.token)
		if tc.status == 0 {
			require.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
			assert.NotEmpty(t, order.ID, fmt.Sprintf("%s: expected order ID to be assigned", tc.desc))
			assert.Equal(t, created.Price*2, order.Total, fmt.Sprintf("%s: expected total %f, got %f", tc.desc, created.Price*2, order.Total))
			assert.Equal(t, "placed", order.Status, fmt.Sprintf("%s: expected placed status, got %s", tc.desc, order.Status))
			continue
		}
		require.NotNil(t, err, fmt.Sprintf("%s: expected error", tc.desc))
		assert.Equal(t, tc.status, err.StatusCode(), fmt.Sprintf("%s: expected status %d, got %d", tc.desc, tc.status, err.StatusCode()))
	}
}

func TestOrders(t *testing.T) {
	ts := newBookstoreServer()
	defer ts.Close()
	bsdk := sdk.NewSDK(sdk.Config{BookstoreURL: ts.URL})

	created, err := bsdk.CreateBook(book(1), token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	buyers := []string{"alice", "bob", "alice"}
	for _, buyer := range buyers {
		_, err := bsdk.PlaceOrder(sdk.Order{
			Buyer: buyer,
			Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 1}},
		}, token)
		require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	}

	page, err := bsdk.Orders(sdk.PageMetadata{Offset: 0, Limit: 10}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Len(t, page.Orders, 3, fmt.Sprintf("expected 3 orders, got %d", len(page.Orders)))

	page, err = bsdk.Orders(sdk.PageMetadata{Offset: 0, Limit: 10, Buyer: "alice"}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Len(t, page.Orders, 2, fmt.Sprintf("expected 2 orders for alice, got %d", len(page.Orders)))

	order, err := bsdk.Order(page.Orders[0].ID, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, page.Orders[0].ID, order.ID, fmt.Sprintf("expected order %s, got %s", page.Orders[0].ID, order.ID))

	_, err = bsdk.Order("wrong", token)
	require.NotNil(t, err, "expected error for unknown order")
	assert.Equal(t, http.StatusNotFound, err.StatusCode(), fmt.Sprintf("expected status %d, got %d", http.StatusNotFound, err.StatusCode()))
}

func TestOrderLifecycle(t *testing.T) {
	ts := newBookstoreServer()
	defer ts.Close()
	bsdk := sdk.NewSDK(sdk.Config{BookstoreURL: ts.URL})

	created, err := bsdk.CreateBook(book(1), token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	placed, err := bsdk.PlaceOrder(sdk.Order{
		Buyer: "alice",
		Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 2}},
	}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	shipped, err := bsdk.ShipOrder(placed.ID, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, "shipped", shipped.Status, fmt.Sprintf("expected shipped status, got %s", shipped.Status))

	_, err = bsdk.CancelOrder(placed.ID, token)
	require.NotNil(t, err, "expected error cancelling shipped order")
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode(), fmt.Sprintf("expected status %d, got %d", http.StatusUnprocessableEntity, err.StatusCode()))

	cancellable, err := bsdk.PlaceOrder(sdk.Order{
		Buyer: "bob",
		Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 3}},
	}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	cancelled, err := bsdk.CancelOrder(cancellable.ID, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, "cancelled", cancelled.Status, fmt.Sprintf("expected cancelled status, got %s", cancelled.Status))

	restocked, err := bsdk.Book(created.ID, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, created.Copies-2, restocked.Copies, fmt.Sprintf("expected %d copies after cancellation, got %d", created.Copies-2, restocked.Copies))
}

func TestRevenue(t *testing.T) {
	ts := newBookstoreServer()
	defer ts.Close()
	bsdk := sdk.NewSDK(sdk.Config{BookstoreURL: ts.URL})

	created, err := bsdk.CreateBook(book(1), token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	placed, err := bsdk.PlaceOrder(sdk.Order{
		Buyer: "alice",
		Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 2}},
	}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	cancellable, err := bsdk.PlaceOrder(sdk.Order{
		Buyer: "bob",
		Items: []sdk.OrderItem{{BookID: created.ID, Quantity: 1}},
	}, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	_, err = bsdk.CancelOrder(cancellable.ID, token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))

	revenue, err := bsdk.Revenue(token)
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, placed.Total, revenue, fmt.Sprintf("expected revenue %f, got %f", placed.Total, revenue))
}
