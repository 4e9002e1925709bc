// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"time"

	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/events"
)

const (
	orderPrefix = "order."

	orderPlace  = orderPrefix + "place"
	orderShip   = orderPrefix + "ship"
	orderCancel = orderPrefix + "cancel"
)

var (
	_ events.Event = (*placeOrderEvent)(nil)
	_ events.Event = (*changeStatusEvent)(nil)
)

type placeOrderEvent struct {
	orders.Order
}

func (poe placeOrderEvent) Encode() (map[string]interface{}, error) {
	items := make([]map[string]interface{}, 0, len(poe.Items))
	for _, item := range poe.Items {
		items = append(items, map[string]interface{}{
			"book_id":    item.BookID,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
		})
	}

	return map[string]interface{}{
		"operation":  orderPlace,
		"id":         poe.ID,
		"buyer":      poe.Buyer,
		"items":      items,
		"total":      poe.Total,
		"status":     string(poe.Status),
		"created_at": poe.CreatedAt.Format(time.RFC3339),
	}, nil
}

type changeStatusEvent struct {
	operation string
	order     orders.Order
}

func (cse changeStatusEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": cse.operation,
		"id":        cse.order.ID,
		"buyer":     cse.order.Buyer,
		"status":    string(cse.order.Status),
	}, nil
}
