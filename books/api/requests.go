// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/internal/api"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
)

type addBookReq struct {
	token string
	book  books.Book
}

func (req addBookReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.book.ISBN == "" {
		return apiutil.ErrMissingISBN
	}
	if req.book.Title == "" {
		return apiutil.ErrMissingTitle
	}
	if len(req.book.Title) > api.MaxNameSize {
		return apiutil.ErrNameSize
	}

	return nil
}

type addBooksReq struct {
	token string
	books []books.Book
}

func (req addBooksReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if len(req.books) == 0 {
		return apiutil.ErrEmptyList
	}
	for _, book := range req.books {
		if book.ISBN == "" {
			return apiutil.ErrMissingISBN
		}
		if book.Title == "" {
			return apiutil.ErrMissingTitle
		}
	}

	return nil
}

type viewBookReq struct {
	token string
	id    string
}

func (req viewBookReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type viewBookByISBNReq struct {
	token string
	isbn  string
}

func (req viewBookByISBNReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.isbn == "" {
		return apiutil.ErrMissingISBN
	}

	return nil
}

type listBooksReq struct {
	token string
	pm    books.PageMetadata
}

func (req listBooksReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.pm.Limit > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}
	if len(req.pm.Name) > api.MaxNameSize {
		return apiutil.ErrNameSize
	}

	return nil
}

type listAuthorsReq struct {
	token string
	genre string
}

func (req listAuthorsReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}

	return nil
}

type summarizeGenresReq struct {
	token string
}

func (req summarizeGenresReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}

	return nil
}

type updateBookReq struct {
	token string
	book  books.Book
}

func (req updateBookReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.book.ID == "" {
		return apiutil.ErrMissingID
	}
	if len(req.book.Title) > api.MaxNameSize {
		return apiutil.ErrNameSize
	}

	return nil
}

type restockBookReq struct {
	token string
	id    string
	Delta int64 `json:"delta"`
}

func (req restockBookReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if req.Delta == 0 {
		return apiutil.ErrInvalidQuantity
	}

	return nil
}

type removeBookReq struct {
	token string
	id    string
}

func (req removeBookReq) validate() error {
	if req.token == "" {
		return apiutil.ErrBearerToken
	}
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}
