// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package books

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/pkg/errors"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
)

const maxTitleSize = 1024

// Service specifies an API that must be fullfiled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// AddBook adds a new book to the catalog.
	AddBook(ctx context.Context, book Book) (Book, error)

	// AddBooks adds multiple books to the catalog in one call.
	AddBooks(ctx context.Context, bks ...Book) ([]Book, error)

	// ViewBook retrieves the book with the provided ID.
	ViewBook(ctx context.Context, id string) (Book, error)

	// ViewBookByISBN retrieves the book with the provided ISBN, consulting
	// the cache first.
	ViewBookByISBN(ctx context.Context, isbn string) (Book, error)

	// ListBooks retrieves a page of books matching the provided filters.
	ListBooks(ctx context.Context, pm PageMetadata) (Page, error)

	// ListAuthors lists the distinct authors in the catalog.
	ListAuthors(ctx context.Context, genre string) ([]string, error)

	// SummarizeGenres aggregates the catalog per genre.
	SummarizeGenres(ctx context.Context) ([]GenreSummary, error)

	// UpdateBook updates the book identified by the provided ID.
	UpdateBook(ctx context.Context, book Book) (Book, error)

	// RestockBook adjusts the number of copies in stock.
	RestockBook(ctx context.Context, id string, delta int64) (Book, error)

	// RemoveBook removes the book identified by the provided ID.
	RemoveBook(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	cache      Cache
	idProvider bookstore.IDProvider
}

var _ Service = (*service)(nil)

// New instantiates the books service implementation.
func New(repo Repository, cache Cache, idp bookstore.IDProvider) Service {
	return &service{
		repo:       repo,
		cache:      cache,
		idProvider: idp,
	}
}

func (svc *service) AddBook(ctx context.Context, book Book) (Book, error) {
	book, err := svc.prepare(book)
	if err != nil {
		return Book{}, err
	}

	saved, err := svc.repo.Save(ctx, book)
	if err != nil {
		return Book{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) AddBooks(ctx context.Context, bks ...Book) ([]Book, error) {
	if len(bks) == 0 {
		return nil, svcerr.ErrMalformedEntity
	}

	prepared := make([]Book, 0, len(bks))
	for _, book := range bks {
		book, err := svc.prepare(book)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, book)
	}

	saved, err := svc.repo.SaveAll(ctx, prepared...)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) ViewBook(ctx context.Context, id string) (Book, error) {
	book, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Book{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return book, nil
}

func (svc *service) ViewBookByISBN(ctx context.Context, isbn string) (Book, error) {
	if id, err := svc.cache.ID(ctx, isbn); err == nil && id != "" {
		if book, err := svc.repo.RetrieveByID(ctx, id); err == nil {
			return book, nil
		}
	}

	book, err := svc.repo.RetrieveByISBN(ctx, isbn)
	if err != nil {
		return Book{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	if err := svc.cache.Save(ctx, book.ISBN, book.ID); err != nil {
		return book, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return book, nil
}

func (svc *service) ListBooks(ctx context.Context, pm PageMetadata) (Page, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) ListAuthors(ctx context.Context, genre string) ([]string, error) {
	authors, err := svc.repo.ListAuthors(ctx, genre)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return authors, nil
}

func (svc *service) SummarizeGenres(ctx context.Context) ([]GenreSummary, error) {
	summaries, err := svc.repo.SummarizeGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return summaries, nil
}

func (svc *service) UpdateBook(ctx context.Context, book Book) (Book, error) {
	if len(book.Title) > maxTitleSize {
		return Book{}, svcerr.ErrMalformedEntity
	}

	book.UpdatedAt = time.Now()
	updated, err := svc.repo.Update(ctx, book)
	if err != nil {
		return Book{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	if err := svc.cache.Remove(ctx, updated.ISBN); err != nil {
		return updated, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

func (svc *service) RestockBook(ctx context.Context, id string, delta int64) (Book, error) {
	book, err := svc.repo.UpdateCopies(ctx, id, delta)
	if err != nil {
		return Book{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return book, nil
}

func (svc *service) RemoveBook(ctx context.Context, id string) error {
	book, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	if err := svc.repo.Remove(ctx, id); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	if err := svc.cache.Remove(ctx, book.ISBN); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}

func (svc *service) prepare(book Book) (Book, error) {
	if book.ISBN == "" || book.Title == "" {
		return Book{}, svcerr.ErrMalformedEntity
	}
	if len(book.Title) > maxTitleSize {
		return Book{}, svcerr.ErrMalformedEntity
	}

	if book.ID == "" {
		id, err := svc.idProvider.ID()
		if err != nil {
			return Book{}, errors.Wrap(svcerr.ErrUniqueID, err)
		}
		book.ID = id
	}

	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt

	return book, nil
}
