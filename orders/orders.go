// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"time"
)

// Status represents the order lifecycle state.
type Status string

const (
	// StatusPlaced marks an order that reserved its stock.
	StatusPlaced Status = "placed"
	// StatusShipped marks an order that left the warehouse.
	StatusShipped Status = "shipped"
	// StatusCancelled marks an order whose stock was returned.
	StatusCancelled Status = "cancelled"
)

// OrderItem is a single order line.
type OrderItem struct {
	BookID    string  `json:"book_id" bson:"book_id"`
	Quantity  int64   `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
}

// Order represents a purchase of one or more books. Placing an order and
// the matching stock decrements happen atomically.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Buyer     string      `json:"buyer" bson:"buyer"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Status    Status      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// PageMetadata contains page metadata that helps navigation.
type PageMetadata struct {
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
	Buyer  string `json:"buyer,omitempty"`
	Status Status `json:"status,omitempty"`
}

// Page contains page related metadata as well as a list of orders that
// belong to this page.
type Page struct {
	PageMetadata
	Orders []Order `json:"orders"`
}

// Repository specifies an order persistence API.
type Repository interface {
	// Save persists the order and decrements the stock of every ordered
	// book in a single transaction. The transaction aborts when any book
	// lacks sufficient copies.
	Save(ctx context.Context, order Order) (Order, error)

	// RetrieveByID retrieves the order having the provided identifier.
	RetrieveByID(ctx context.Context, id string) (Order, error)

	// RetrieveAll retrieves the subset of orders matching the page filters.
	RetrieveAll(ctx context.Context, pm PageMetadata) (Page, error)

	// UpdateStatus sets the order status.
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)

	// Cancel marks the order cancelled and returns its stock in a single
	// transaction.
	Cancel(ctx context.Context, id string) (Order, error)

	// TotalRevenue sums the total of all non-cancelled orders.
	TotalRevenue(ctx context.Context) (float64, error)
}
