// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package events contains the events emitted on the catalog stream.
package events

import (
	"time"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/pkg/events"
)

const (
	bookPrefix = "book."

	// BookInsert is emitted when a book document is inserted.
	BookInsert = bookPrefix + "insert"
	// BookUpdate is emitted when a book document is updated.
	BookUpdate = bookPrefix + "update"
	// BookReplace is emitted when a book document is replaced.
	BookReplace = bookPrefix + "replace"
	// BookDelete is emitted when a book document is deleted.
	BookDelete = bookPrefix + "delete"
)

var _ events.Event = (*ChangeEvent)(nil)

// ChangeEvent carries a single catalog change observed on the database
// change stream.
type ChangeEvent struct {
	Operation string
	ID        string
	Book      books.Book
}

// Encode encodes the event into a map.
func (ce ChangeEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation": ce.Operation,
		"id":        ce.ID,
	}

	if ce.Operation == BookDelete {
		return val, nil
	}

	val["isbn"] = ce.Book.ISBN
	val["title"] = ce.Book.Title
	val["author"] = ce.Book.Author
	val["copies"] = ce.Book.Copies
	val["price"] = ce.Book.Price
	if ce.Book.Genre != "" {
		val["genre"] = ce.Book.Genre
	}
	if ce.Book.Year != 0 {
		val["year"] = ce.Book.Year
	}
	if ce.Book.Metadata != nil {
		val["metadata"] = ce.Book.Metadata
	}
	if !ce.Book.UpdatedAt.IsZero() {
		val["updated_at"] = ce.Book.UpdatedAt.Format(time.RFC3339)
	}

	return val, nil
}
