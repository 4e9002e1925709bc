// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package middleware contains the books service decorators for logging
// and metrics.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/dbirtolo/bookstore/books"
)

var _ books.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service books.Service
}

// LoggingMiddleware adds logging facilities to the books service.
func LoggingMiddleware(service books.Service, logger *slog.Logger) books.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) AddBook(ctx context.Context, book books.Book) (b books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("book",
				slog.String("id", b.ID),
				slog.String("isbn", book.ISBN),
				slog.String("title", book.Title),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Add book failed", args...)
			return
		}
		lm.logger.Info("Add book completed successfully", args...)
	}(time.Now())

	return lm.service.AddBook(ctx, book)
}

func (lm *loggingMiddleware) AddBooks(ctx context.Context, bks ...books.Book) (saved []books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("count", len(bks)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Add books failed", args...)
			return
		}
		lm.logger.Info("Add books completed successfully", args...)
	}(time.Now())

	return lm.service.AddBooks(ctx, bks...)
}

func (lm *loggingMiddleware) ViewBook(ctx context.Context, id string) (b books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View book failed", args...)
			return
		}
		lm.logger.Info("View book completed successfully", args...)
	}(time.Now())

	return lm.service.ViewBook(ctx, id)
}

func (lm *loggingMiddleware) ViewBookByISBN(ctx context.Context, isbn string) (b books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("isbn", isbn),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("View book by ISBN failed", args...)
			return
		}
		lm.logger.Info("View book by ISBN completed successfully", args...)
	}(time.Now())

	return lm.service.ViewBookByISBN(ctx, isbn)
}

func (lm *loggingMiddleware) ListBooks(ctx context.Context, pm books.PageMetadata) (page books.Page, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("page",
				slog.Uint64("offset", pm.Offset),
				slog.Uint64("limit", pm.Limit),
				slog.Uint64("total", page.Total),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List books failed", args...)
			return
		}
		lm.logger.Info("List books completed successfully", args...)
	}(time.Now())

	return lm.service.ListBooks(ctx, pm)
}

func (lm *loggingMiddleware) ListAuthors(ctx context.Context, genre string) (authors []string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("genre", genre),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("List authors failed", args...)
			return
		}
		lm.logger.Info("List authors completed successfully", args...)
	}(time.Now())

	return lm.service.ListAuthors(ctx, genre)
}

func (lm *loggingMiddleware) SummarizeGenres(ctx context.Context) (summaries []books.GenreSummary, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Summarize genres failed", args...)
			return
		}
		lm.logger.Info("Summarize genres completed successfully", args...)
	}(time.Now())

	return lm.service.SummarizeGenres(ctx)
}

func (lm *loggingMiddleware) UpdateBook(ctx context.Context, book books.Book) (b books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", book.ID),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Update book failed", args...)
			return
		}
		lm.logger.Info("Update book completed successfully", args...)
	}(time.Now())

	return lm.service.UpdateBook(ctx, book)
}

func (lm *loggingMiddleware) RestockBook(ctx context.Context, id string, delta int64) (b books.Book, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
			slog.Int64("delta", delta),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Restock book failed", args...)
			return
		}
		lm.logger.Info("Restock book completed successfully", args...)
	}(time.Now())

	return lm.service.RestockBook(ctx, id, delta)
}

func (lm *loggingMiddleware) RemoveBook(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("id", id),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove book failed", args...)
			return
		}
		lm.logger.Info("Remove book completed successfully", args...)
	}(time.Now())

	return lm.service.RemoveBook(ctx, id)
}
