// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func addBookEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(addBookReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		saved, err := svc.AddBook(ctx, req.book)
		if err != nil {
			return nil, err
		}

		return bookRes{Book: saved, created: true}, nil
	}
}

func addBooksEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(addBooksReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		saved, err := svc.AddBooks(ctx, req.books...)
		if err != nil {
			return nil, err
		}

		return booksRes{Books: saved}, nil
	}
}

func viewBookEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewBookReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		book, err := svc.ViewBook(ctx, req.id)
		if err != nil {
			return nil, err
		}

		return bookRes{Book: book}, nil
	}
}

func viewBookByISBNEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(viewBookByISBNReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		book, err := svc.ViewBookByISBN(ctx, req.isbn)
		if err != nil {
			return nil, err
		}

		return bookRes{Book: book}, nil
	}
}

func listBooksEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listBooksReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListBooks(ctx, req.pm)
		if err != nil {
			return nil, err
		}

		return bookPageRes{Page: page}, nil
	}
}

func listAuthorsEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listAuthorsReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		authors, err := svc.ListAuthors(ctx, req.genre)
		if err != nil {
			return nil, err
		}

		return authorsRes{Authors: authors}, nil
	}
}

func summarizeGenresEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(summarizeGenresReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		summaries, err := svc.SummarizeGenres(ctx)
		if err != nil {
			return nil, err
		}

		return genreSummaryRes{Genres: summaries}, nil
	}
}

func updateBookEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateBookReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		book, err := svc.UpdateBook(ctx, req.book)
		if err != nil {
			return nil, err
		}

		return bookRes{Book: book}, nil
	}
}

func restockBookEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(restockBookReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		book, err := svc.RestockBook(ctx, req.id, req.Delta)
		if err != nil {
			return nil, err
		}

		return bookRes{Book: book}, nil
	}
}

func removeBookEndpoint(svc books.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(removeBookReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.RemoveBook(ctx, req.id); err != nil {
			return nil, err
		}

		return removeBookRes{}, nil
	}
}
