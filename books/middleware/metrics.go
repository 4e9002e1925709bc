// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore/books"
	"github.com/go-kit/kit/metrics"
)

var _ books.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service books.Service
}

// MetricsMiddleware instruments the books service with request count and
// latency metrics.
func MetricsMiddleware(service books.Service, counter metrics.Counter, latency metrics.Histogram) books.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) AddBook(ctx context.Context, book books.Book) (books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "add_book").Add(1)
		mm.latency.With("method", "add_book").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.AddBook(ctx, book)
}

func (mm *metricsMiddleware) AddBooks(ctx context.Context, bks ...books.Book) ([]books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "add_books").Add(1)
		mm.latency.With("method", "add_books").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.AddBooks(ctx, bks...)
}

func (mm *metricsMiddleware) ViewBook(ctx context.Context, id string) (books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_book").Add(1)
		mm.latency.With("method", "view_book").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ViewBook(ctx, id)
}

func (mm *metricsMiddleware) ViewBookByISBN(ctx context.Context, isbn string) (books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "view_book_by_isbn").Add(1)
		mm.latency.With("method", "view_book_by_isbn").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ViewBookByISBN(ctx, isbn)
}

func (mm *metricsMiddleware) ListBooks(ctx context.Context, pm books.PageMetadata) (books.Page, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_books").Add(1)
		mm.latency.With("method", "list_books").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ListBooks(ctx, pm)
}

func (mm *metricsMiddleware) ListAuthors(ctx context.Context, genre string) ([]string, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "list_authors").Add(1)
		mm.latency.With("method", "list_authors").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.ListAuthors(ctx, genre)
}

func (mm *metricsMiddleware) SummarizeGenres(ctx context.Context) ([]books.GenreSummary, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "summarize_genres").Add(1)
		mm.latency.With("method", "summarize_genres").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.SummarizeGenres(ctx)
}

func (mm *metricsMiddleware) UpdateBook(ctx context.Context, book books.Book) (books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "update_book").Add(1)
		mm.latency.With("method", "update_book").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.UpdateBook(ctx, book)
}

func (mm *metricsMiddleware) RestockBook(ctx context.Context, id string, delta int64) (books.Book, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "restock_book").Add(1)
		mm.latency.With("method", "restock_book").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.RestockBook(ctx, id, delta)
}

func (mm *metricsMiddleware) RemoveBook(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		mm.counter.With("method", "remove_book").Add(1)
		mm.latency.With("method", "remove_book").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return mm.service.RemoveBook(ctx, id)
}
