// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package books

import (
	"context"
	"time"
)

// Metadata stores arbitrary book data.
type Metadata map[string]interface{}

// Book represents a catalog entry. Each book is identified by a unique
// identifier and a unique ISBN.
type Book struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ISBN      string    `json:"isbn" bson:"isbn"`
	Title     string    `json:"title" bson:"title"`
	Author    string    `json:"author" bson:"author"`
	Genre     string    `json:"genre,omitempty" bson:"genre,omitempty"`
	Year      int       `json:"year,omitempty" bson:"year,omitempty"`
	Price     float64   `json:"price" bson:"price"`
	Copies    int64     `json:"copies" bson:"copies"`
	Metadata  Metadata  `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// PageMetadata contains page metadata that helps navigation.
type PageMetadata struct {
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
	Name   string `json:"name,omitempty"`
	Author string `json:"author,omitempty"`
	Genre  string `json:"genre,omitempty"`
}

// Page contains page related metadata as well as a list of books that
// belong to this page.
type Page struct {
	PageMetadata
	Books []Book `json:"books"`
}

// GenreSummary is an aggregation over the catalog grouped by genre.
type GenreSummary struct {
	Genre    string  `json:"genre" bson:"_id"`
	Books    uint64  `json:"books" bson:"books"`
	Copies   int64   `json:"copies" bson:"copies"`
	AvgPrice float64 `json:"avg_price" bson:"avg_price"`
}

// Repository specifies a book persistence API.
type Repository interface {
	// Save persists the book. A conflict error is returned for a
	// duplicate ISBN.
	Save(ctx context.Context, book Book) (Book, error)

	// SaveAll persists multiple books in a single bulk write.
	SaveAll(ctx context.Context, bks ...Book) ([]Book, error)

	// RetrieveByID retrieves the book having the provided identifier.
	RetrieveByID(ctx context.Context, id string) (Book, error)

	// RetrieveByISBN retrieves the book having the provided ISBN.
	RetrieveByISBN(ctx context.Context, isbn string) (Book, error)

	// RetrieveAll retrieves the subset of books matching the page filters.
	RetrieveAll(ctx context.Context, pm PageMetadata) (Page, error)

	// Update updates the mutable book fields.
	Update(ctx context.Context, book Book) (Book, error)

	// UpdateCopies atomically adjusts the number of copies in stock.
	UpdateCopies(ctx context.Context, id string, delta int64) (Book, error)

	// Replace replaces the whole book document, inserting it if absent.
	Replace(ctx context.Context, book Book) (Book, error)

	// Remove removes the book having the provided identifier.
	Remove(ctx context.Context, id string) error

	// RemoveAllByGenre removes all books of the given genre and returns
	// the number of removed entries.
	RemoveAllByGenre(ctx context.Context, genre string) (uint64, error)

	// ListAuthors returns the distinct authors present in the catalog,
	// optionally narrowed to a genre.
	ListAuthors(ctx context.Context, genre string) ([]string, error)

	// SummarizeGenres aggregates the catalog per genre.
	SummarizeGenres(ctx context.Context) ([]GenreSummary, error)
}

// Cache caches the ISBN to book identifier mapping.
type Cache interface {
	// Save stores the ISBN to ID mapping.
	Save(ctx context.Context, isbn, id string) error

	// ID returns the book ID for the given ISBN.
	ID(ctx context.Context, isbn string) (string, error)

	// Remove evicts the mapping for the given ISBN.
	Remove(ctx context.Context, isbn string) error
}
