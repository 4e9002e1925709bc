// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracing contains tracing decorators for the books repository
// and cache.
package tracing

import (
	"context"

	"github.com/dbirtolo/bookstore/books"
	"go.opentelemetry.io/otel/trace"
)

const (
	saveBookOp           = "save_book"
	saveBooksOp          = "save_books"
	retrieveBookByIDOp   = "retrieve_book_by_id"
	retrieveBookByISBNOp = "retrieve_book_by_isbn"
	retrieveAllBooksOp   = "retrieve_all_books"
	updateBookOp         = "update_book"
	updateCopiesOp       = "update_book_copies"
	replaceBookOp        = "replace_book"
	removeBookOp         = "remove_book"
	removeByGenreOp      = "remove_books_by_genre"
	listAuthorsOp        = "list_authors"
	summarizeGenresOp    = "summarize_genres"
	cacheSaveOp          = "cache_save_isbn"
	cacheIDOp            = "cache_retrieve_isbn"
	cacheRemoveOp        = "cache_remove_isbn"
)

var _ books.Repository = (*bookRepositoryMiddleware)(nil)

type bookRepositoryMiddleware struct {
	tracer trace.Tracer
	repo   books.Repository
}

// RepositoryMiddleware tracks requests and their latency, and adds spans to context.
func RepositoryMiddleware(tracer trace.Tracer, repo books.Repository) books.Repository {
	return bookRepositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (brm bookRepositoryMiddleware) Save(ctx context.Context, book books.Book) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, saveBookOp)
	defer span.End()

	return brm.repo.Save(ctx, book)
}

func (brm bookRepositoryMiddleware) SaveAll(ctx context.Context, bks ...books.Book) ([]books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, saveBooksOp)
	defer span.End()

	return brm.repo.SaveAll(ctx, bks...)
}

func (brm bookRepositoryMiddleware) RetrieveByID(ctx context.Context, id string) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, retrieveBookByIDOp)
	defer span.End()

	return brm.repo.RetrieveByID(ctx, id)
}

func (brm bookRepositoryMiddleware) RetrieveByISBN(ctx context.Context, isbn string) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, retrieveBookByISBNOp)
	defer span.End()

	return brm.repo.RetrieveByISBN(ctx, isbn)
}

func (brm bookRepositoryMiddleware) RetrieveAll(ctx context.Context, pm books.PageMetadata) (books.Page, error) {
	ctx, span := createSpan(ctx, brm.tracer, retrieveAllBooksOp)
	defer span.End()

	return brm.repo.RetrieveAll(ctx, pm)
}

func (brm bookRepositoryMiddleware) Update(ctx context.Context, book books.Book) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, updateBookOp)
	defer span.End()

	return brm.repo.Update(ctx, book)
}

func (brm bookRepositoryMiddleware) UpdateCopies(ctx context.Context, id string, delta int64) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, updateCopiesOp)
	defer span.End()

	return brm.repo.UpdateCopies(ctx, id, delta)
}

func (brm bookRepositoryMiddleware) Replace(ctx context.Context, book books.Book) (books.Book, error) {
	ctx, span := createSpan(ctx, brm.tracer, replaceBookOp)
	defer span.End()

	return brm.repo.Replace(ctx, book)
}

func (brm bookRepositoryMiddleware) Remove(ctx context.Context, id string) error {
	ctx, span := createSpan(ctx, brm.tracer, removeBookOp)
	defer span.End()

	return brm.repo.Remove(ctx, id)
}

func (brm bookRepositoryMiddleware) RemoveAllByGenre(ctx context.Context, genre string) (uint64, error) {
	ctx, span := createSpan(ctx, brm.tracer, removeByGenreOp)
	defer span.End()

	return brm.repo.RemoveAllByGenre(ctx, genre)
}

func (brm bookRepositoryMiddleware) ListAuthors(ctx context.Context, genre string) ([]string, error) {
	ctx, span := createSpan(ctx, brm.tracer, listAuthorsOp)
	defer span.End()

	return brm.repo.ListAuthors(ctx, genre)
}

func (brm bookRepositoryMiddleware) SummarizeGenres(ctx context.Context) ([]books.GenreSummary, error) {
	ctx, span := createSpan(ctx, brm.tracer, summarizeGenresOp)
	defer span.End()

	return brm.repo.SummarizeGenres(ctx)
}

var _ books.Cache = (*bookCacheMiddleware)(nil)

type bookCacheMiddleware struct {
	tracer trace.Tracer
	cache  books.Cache
}

// CacheMiddleware tracks cache requests and their latency, and adds spans to context.
func CacheMiddleware(tracer trace.Tracer, cache books.Cache) books.Cache {
	return bookCacheMiddleware{
		tracer: tracer,
		cache:  cache,
	}
}

func (bcm bookCacheMiddleware) Save(ctx context.Context, isbn, id string) error {
	ctx, span := createSpan(ctx, bcm.tracer, cacheSaveOp)
	defer span.End()

	return bcm.cache.Save(ctx, isbn, id)
}

func (bcm bookCacheMiddleware) ID(ctx context.Context, isbn string) (string, error) {
	ctx, span := createSpan(ctx, bcm.tracer, cacheIDOp)
	defer span.End()

	return bcm.cache.ID(ctx, isbn)
}

func (bcm bookCacheMiddleware) Remove(ctx context.Context, isbn string) error {
	ctx, span := createSpan(ctx, bcm.tracer, cacheRemoveOp)
	defer span.End()

	return bcm.cache.Remove(ctx, isbn)
}

func createSpan(ctx context.Context, tracer trace.Tracer, opName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, opName)
}
