// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package mocks contains in-memory implementations of the books contracts
// used in unit tests.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dbirtolo/bookstore/books"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
)

var _ books.Repository = (*bookRepositoryMock)(nil)

type bookRepositoryMock struct {
	mu    sync.Mutex
	books map[string]books.Book
}

// NewRepository creates an in-memory book repository.
func NewRepository() books.Repository {
	return &bookRepositoryMock{
		books: make(map[string]books.Book),
	}
}

func (brm *bookRepositoryMock) Save(ctx context.Context, book books.Book) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	return brm.save(book)
}

func (brm *bookRepositoryMock) SaveAll(ctx context.Context, bks ...books.Book) ([]books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	saved := make([]books.Book, 0, len(bks))
	for _, book := range bks {
		book, err := brm.save(book)
		if err != nil {
			return nil, err
		}
		saved = append(saved, book)
	}

	return saved, nil
}

func (brm *bookRepositoryMock) save(book books.Book) (books.Book, error) {
	for _, b := range brm.books {
		if b.ID == book.ID || b.ISBN == book.ISBN {
			return books.Book{}, repoerr.ErrConflict
		}
	}
	brm.books[book.ID] = book

	return book, nil
}

func (brm *bookRepositoryMock) RetrieveByID(_ context.Context, id string) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	if book, ok := brm.books[id]; ok {
		return book, nil
	}

	return books.Book{}, repoerr.ErrNotFound
}

func (brm *bookRepositoryMock) RetrieveByISBN(_ context.Context, isbn string) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	for _, book := range brm.books {
		if book.ISBN == isbn {
			return book, nil
		}
	}

	return books.Book{}, repoerr.ErrNotFound
}

func (brm *bookRepositoryMock) RetrieveAll(_ context.Context, pm books.PageMetadata) (books.Page, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	matched := make([]books.Book, 0)
	for _, book := range brm.books {
		if pm.Name != "" && !strings.Contains(book.Title, pm.Name) {
			continue
		}
		if pm.Author != "" && book.Author != pm.Author {
			continue
		}
		if pm.Genre != "" && book.Genre != pm.Genre {
			continue
		}
		matched = append(matched, book)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	page := books.Page{
		PageMetadata: books.PageMetadata{
			Total:  uint64(len(matched)),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Books: []books.Book{},
	}

	if pm.Offset >= uint64(len(matched)) {
		return page, nil
	}
	end := pm.Offset + pm.Limit
	if pm.Limit == 0 || end > uint64(len(matched)) {
		end = uint64(len(matched))
	}
	page.Books = matched[pm.Offset:end]

	return page, nil
}

func (brm *bookRepositoryMock) Update(_ context.Context, book books.Book) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	current, ok := brm.books[book.ID]
	if !ok {
		return books.Book{}, repoerr.ErrNotFound
	}

	if book.Title != "" {
		current.Title = book.Title
	}
	if book.Author != "" {
		current.Author = book.Author
	}
	if book.Genre != "" {
		current.Genre = book.Genre
	}
	if book.Price != 0 {
		current.Price = book.Price
	}
	if book.Metadata != nil {
		current.Metadata = book.Metadata
	}
	current.UpdatedAt = book.UpdatedAt
	brm.books[book.ID] = current

	return current, nil
}

func (brm *bookRepositoryMock) UpdateCopies(_ context.Context, id string, delta int64) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	book, ok := brm.books[id]
	if !ok {
		return books.Book{}, repoerr.ErrNotFound
	}
	if book.Copies+delta < 0 {
		return books.Book{}, repoerr.ErrInsufficientStock
	}
	book.Copies += delta
	brm.books[id] = book

	return book, nil
}

func (brm *bookRepositoryMock) Replace(_ context.Context, book books.Book) (books.Book, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	brm.books[book.ID] = book

	return book, nil
}

func (brm *bookRepositoryMock) Remove(_ context.Context, id string) error {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	if _, ok := brm.books[id]; !ok {
		return repoerr.ErrNotFound
	}
	delete(brm.books, id)

	return nil
}

func (brm *bookRepositoryMock) RemoveAllByGenre(_ context.Context, genre string) (uint64, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	var removed uint64
	for id, book := range brm.books {
		if book.Genre == genre {
			delete(brm.books, id)
			removed++
		}
	}

	return removed, nil
}

func (brm *bookRepositoryMock) ListAuthors(_ context.Context, genre string) ([]string, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	seen := make(map[string]bool)
	for _, book := range brm.books {
		if genre != "" && book.Genre != genre {
			continue
		}
		seen[book.Author] = true
	}

	authors := make([]string, 0, len(seen))
	for author := range seen {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	return authors, nil
}

func (brm *bookRepositoryMock) SummarizeGenres(_ context.Context) ([]books.GenreSummary, error) {
	brm.mu.Lock()
	defer brm.mu.Unlock()

	totals := make(map[string]*books.GenreSummary)
	prices := make(map[string]float64)
	for _, book := range brm.books {
		summary, ok := totals[book.Genre]
		if !ok {
			summary = &books.GenreSummary{Genre: book.Genre}
			totals[book.Genre] = summary
		}
		summary.Books++
		summary.Copies += book.Copies
		prices[book.Genre] += book.Price
	}

	summaries := make([]books.GenreSummary, 0, len(totals))
	for genre, summary := range totals {
		summary.AvgPrice = prices[genre] / float64(summary.Books)
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Genre < summaries[j].Genre
	})

	return summaries, nil
}
