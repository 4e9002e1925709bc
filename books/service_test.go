// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package books_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/books/mocks"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
	"github.com/dbirtolo/bookstore/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	isbn  = "978-0-1234-5678-9"
	title = "The Adventures of Pinocchio"
)

func newService() books.Service {
	repo := mocks.NewRepository()
	cache := mocks.NewCache()

	return books.New(repo, cache, uuid.NewMock())
}

func TestAddBook(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc string
		book books.Book
		err  error
	}{
		{
			desc: "add new book",
			book: books.Book{ISBN: isbn, Title: title, Author: "Carlo Collodi"},
			err:  nil,
		},
		{
			desc: "add book with existing ISBN",
			book: books.Book{ISBN: isbn, Title: title},
			err:  svcerr.ErrCreateEntity,
		},
		{
			desc: "add book without ISBN",
			book: books.Book{Title: title},
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "add book without title",
			book: books.Book{ISBN: "978-0-0000-1111-2"},
			err:  svcerr.ErrMalformedEntity,
		},
		{
			desc: "add book with too long title",
			book: books.Book{ISBN: "978-0-0000-1111-2", Title: strings.Repeat("a", 1025)},
			err:  svcerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		saved, err := svc.AddBook(context.Background(), tc.book)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if err == nil {
			assert.NotEmpty(t, saved.ID, fmt.Sprintf("%s: expected book ID to be assigned\n", tc.desc))
			assert.False(t, saved.CreatedAt.IsZero(), fmt.Sprintf("%s: expected creation time to be set\n", tc.desc))
		}
	}
}

func TestAddBooks(t *testing.T) {
	svc := newService()

	cases := []struct {
		desc  string
		books []books.Book
		err   error
	}{
		{
			desc: "add multiple books",
			books: []books.Book{
				{ISBN: "978-1-0000-0000-1", Title: title},
				{ISBN: "978-1-0000-0000-2", Title: title},
			},
			err: nil,
		},
		{
			desc:  "add empty list",
			books: []books.Book{},
			err:   svcerr.ErrMalformedEntity,
		},
		{
			desc: "add books with malformed entry",
			books: []books.Book{
				{ISBN: "978-1-0000-0000-3", Title: title},
				{Title: title},
			},
			err: svcerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		saved, err := svc.AddBooks(context.Background(), tc.books...)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if err == nil {
			assert.Equal(t, len(tc.books), len(saved), fmt.Sprintf("%s: expected %d books got %d\n", tc.desc, len(tc.books), len(saved)))
		}
	}
}

func TestViewBook(t *testing.T) {
	svc := newService()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		id   string
		err  error
	}{
		{
			desc: "view existing book",
			id:   saved.ID,
			err:  nil,
		},
		{
			desc: "view non-existing book",
			id:   "non-existent",
			err:  svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		_, err := svc.ViewBook(context.Background(), tc.id)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
	}
}

func TestViewBookByISBN(t *testing.T) {
	svc := newService()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	// First lookup populates the cache, second is served through it.
	for i := 0; i < 2; i++ {
		book, err := svc.ViewBookByISBN(context.Background(), isbn)
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
		assert.Equal(t, saved.ID, book.ID, fmt.Sprintf("expected %s got %s\n", saved.ID, book.ID))
	}

	_, err = svc.ViewBookByISBN(context.Background(), "unknown")
	assert.True(t, errors.Contains(err, svcerr.ErrViewEntity), fmt.Sprintf("expected %s got %s\n", svcerr.ErrViewEntity, err))
}

func TestListBooks(t *testing.T) {
	svc := newService()

	n := 10
	for i := 0; i < n; i++ {
		genre := "fiction"
		if i%2 == 0 {
			genre = "history"
		}
		_, err := svc.AddBook(context.Background(), books.Book{
			ISBN:  fmt.Sprintf("978-0-0000-0000-%d", i),
			Title: title,
			Genre: genre,
		})
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	}

	cases := []struct {
		desc string
		pm   books.PageMetadata
		size int
	}{
		{
			desc: "list all books",
			pm:   books.PageMetadata{Limit: uint64(n)},
			size: n,
		},
		{
			desc: "list books with offset and limit",
			pm:   books.PageMetadata{Offset: 7, Limit: 5},
			size: 3,
		},
		{
			desc: "list books by genre",
			pm:   books.PageMetadata{Limit: uint64(n), Genre: "history"},
			size: n / 2,
		},
	}

	for _, tc := range cases {
		page, err := svc.ListBooks(context.Background(), tc.pm)
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.size, len(page.Books), fmt.Sprintf("%s: expected %d books got %d\n", tc.desc, tc.size, len(page.Books)))
	}
}

func TestListAuthors(t *testing.T) {
	svc := newService()

	authors := map[string]string{
		"978-2-0000-0000-1": "Alice Munro",
		"978-2-0000-0000-2": "Bob Dylan",
		"978-2-0000-0000-3": "Alice Munro",
	}
	for isbn, author := range authors {
		_, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title, Author: author, Genre: "fiction"})
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	}

	list, err := svc.ListAuthors(context.Background(), "")
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{"Alice Munro", "Bob Dylan"}, list, fmt.Sprintf("expected distinct authors got %v\n", list))
}

func TestSummarizeGenres(t *testing.T) {
	svc := newService()

	for i, genre := range []string{"fiction", "fiction", "history"} {
		_, err := svc.AddBook(context.Background(), books.Book{
			ISBN:   fmt.Sprintf("978-3-0000-0000-%d", i),
			Title:  title,
			Genre:  genre,
			Price:  10,
			Copies: 2,
		})
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	}

	summaries, err := svc.SummarizeGenres(context.Background())
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	require.Equal(t, 2, len(summaries), fmt.Sprintf("expected 2 summaries got %d\n", len(summaries)))
	assert.Equal(t, uint64(2), summaries[0].Books, fmt.Sprintf("expected 2 books got %d\n", summaries[0].Books))
	assert.Equal(t, int64(4), summaries[0].Copies, fmt.Sprintf("expected 4 copies got %d\n", summaries[0].Copies))
}

func TestUpdateBook(t *testing.T) {
	svc := newService()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		book books.Book
		err  error
	}{
		{
			desc: "update existing book",
			book: books.Book{ID: saved.ID, Title: "Updated"},
			err:  nil,
		},
		{
			desc: "update non-existing book",
			book: books.Book{ID: "non-existent", Title: "Updated"},
			err:  svcerr.ErrUpdateEntity,
		},
		{
			desc: "update book with too long title",
			book: books.Book{ID: saved.ID, Title: strings.Repeat("a", 1025)},
			err:  svcerr.ErrMalformedEntity,
		},
	}

	for _, tc := range cases {
		_, err := svc.UpdateBook(context.Background(), tc.book)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
	}
}

func TestRestockBook(t *testing.T) {
	svc := newService()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title, Copies: 2})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc   string
		id     string
		delta  int64
		copies int64
		err    error
	}{
		{
			desc:   "restock book",
			id:     saved.ID,
			delta:  3,
			copies: 5,
			err:    nil,
		},
		{
			desc:   "sell copies",
			id:     saved.ID,
			delta:  -5,
			copies: 0,
			err:    nil,
		},
		{
			desc:  "sell more than in stock",
			id:    saved.ID,
			delta: -1,
			err:   repoerr.ErrInsufficientStock,
		},
		{
			desc:  "restock non-existing book",
			id:    "non-existent",
			delta: 1,
			err:   svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		book, err := svc.RestockBook(context.Background(), tc.id, tc.delta)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
		if err == nil {
			assert.Equal(t, tc.copies, book.Copies, fmt.Sprintf("%s: expected %d copies got %d\n", tc.desc, tc.copies, book.Copies))
		}
	}
}

func TestRemoveBook(t *testing.T) {
	svc := newService()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc string
		id   string
		err  error
	}{
		{
			desc: "remove existing book",
			id:   saved.ID,
			err:  nil,
		},
		{
			desc: "remove removed book",
			id:   saved.ID,
			err:  svcerr.ErrRemoveEntity,
		},
	}

	for _, tc := range cases {
		err := svc.RemoveBook(context.Background(), tc.id)
		assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
	}
}
