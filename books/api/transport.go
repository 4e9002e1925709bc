// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package api contains the books service HTTP API.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/internal/api"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler returns a HTTP API handler with health check and metrics.
func MakeHandler(svc books.Service, logger *slog.Logger, instanceID string) *chi.Mux {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Route("/books", func(r chi.Router) {
		r.Post("/", otelhttp.NewHandler(kithttp.NewServer(
			addBookEndpoint(svc),
			decodeAddBookReq,
			api.EncodeResponse,
			opts...,
		), "add_book").ServeHTTP)

		r.Post("/bulk", otelhttp.NewHandler(kithttp.NewServer(
			addBooksEndpoint(svc),
			decodeAddBooksReq,
			api.EncodeResponse,
			opts...,
		), "add_books").ServeHTTP)

		r.Get("/", otelhttp.NewHandler(kithttp.NewServer(
			listBooksEndpoint(svc),
			decodeListBooksReq,
			api.EncodeResponse,
			opts...,
		), "list_books").ServeHTTP)

		r.Get("/isbn/{isbn}", otelhttp.NewHandler(kithttp.NewServer(
			viewBookByISBNEndpoint(svc),
			decodeViewBookByISBNReq,
			api.EncodeResponse,
			opts...,
		), "view_book_by_isbn").ServeHTTP)

		r.Get("/{bookID}", otelhttp.NewHandler(kithttp.NewServer(
			viewBookEndpoint(svc),
			decodeViewBookReq,
			api.EncodeResponse,
			opts...,
		), "view_book").ServeHTTP)

		r.Put("/{bookID}", otelhttp.NewHandler(kithttp.NewServer(
			updateBookEndpoint(svc),
			decodeUpdateBookReq,
			api.EncodeResponse,
			opts...,
		), "update_book").ServeHTTP)

		r.Patch("/{bookID}/copies", otelhttp.NewHandler(kithttp.NewServer(
			restockBookEndpoint(svc),
			decodeRestockBookReq,
			api.EncodeResponse,
			opts...,
		), "restock_book").ServeHTTP)

		r.Delete("/{bookID}", otelhttp.NewHandler(kithttp.NewServer(
			removeBookEndpoint(svc),
			decodeRemoveBookReq,
			api.EncodeResponse,
			opts...,
		), "remove_book").ServeHTTP)
	})

	mux.Get("/authors", otelhttp.NewHandler(kithttp.NewServer(
		listAuthorsEndpoint(svc),
		decodeListAuthorsReq,
		api.EncodeResponse,
		opts...,
	), "list_authors").ServeHTTP)

	mux.Get("/genres/summary", otelhttp.NewHandler(kithttp.NewServer(
		summarizeGenresEndpoint(svc),
		decodeSummarizeGenresReq,
		api.EncodeResponse,
		opts...,
	), "summarize_genres").ServeHTTP)

	mux.Get("/health", bookstore.Health("books", instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodeAddBookReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := addBookReq{token: apiutil.ExtractBearerToken(r)}
	if err := json.NewDecoder(r.Body).Decode(&req.book); err != nil {
		return nil, errors.Wrap(errors.ErrMalformedEntity, err)
	}

	return req, nil
}

func decodeAddBooksReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := addBooksReq{token: apiutil.ExtractBearerToken(r)}
	if err := json.NewDecoder(r.Body).Decode(&req.books); err != nil {
		return nil, errors.Wrap(errors.ErrMalformedEntity, err)
	}

	return req, nil
}

func decodeViewBookReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewBookReq{
		token: apiutil.ExtractBearerToken(r),
		id:    chi.URLParam(r, "bookID"),
	}

	return req, nil
}

func decodeViewBookByISBNReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := viewBookByISBNReq{
		token: apiutil.ExtractBearerToken(r),
		isbn:  chi.URLParam(r, "isbn"),
	}

	return req, nil
}

func decodeListBooksReq(_ context.Context, r *http.Request) (interface{}, error) {
	offset, err := apiutil.ReadNumQuery[uint64](r, api.OffsetKey, api.DefOffset)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	limit, err := apiutil.ReadNumQuery[uint64](r, api.LimitKey, api.DefLimit)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	name, err := apiutil.ReadStringQuery(r, api.NameKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	author, err := apiutil.ReadStringQuery(r, api.AuthorKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}
	genre, err := apiutil.ReadStringQuery(r, api.GenreKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listBooksReq{
		token: apiutil.ExtractBearerToken(r),
		pm: books.PageMetadata{
			Offset: offset,
			Limit:  limit,
			Name:   name,
			Author: author,
			Genre:  genre,
		},
	}

	return req, nil
}

func decodeListAuthorsReq(_ context.Context, r *http.Request) (interface{}, error) {
	genre, err := apiutil.ReadStringQuery(r, api.GenreKey, "")
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	req := listAuthorsReq{
		token: apiutil.ExtractBearerToken(r),
		genre: genre,
	}

	return req, nil
}

func decodeSummarizeGenresReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := summarizeGenresReq{token: apiutil.ExtractBearerToken(r)}

	return req, nil
}

func decodeUpdateBookReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := updateBookReq{token: apiutil.ExtractBearerToken(r)}
	if err := json.NewDecoder(r.Body).Decode(&req.book); err != nil {
		return nil, errors.Wrap(errors.ErrMalformedEntity, err)
	}
	req.book.ID = chi.URLParam(r, "bookID")

	return req, nil
}

func decodeRestockBookReq(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	req := restockBookReq{
		token: apiutil.ExtractBearerToken(r),
		id:    chi.URLParam(r, "bookID"),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrMalformedEntity, err)
	}

	return req, nil
}

func decodeRemoveBookReq(_ context.Context, r *http.Request) (interface{}, error) {
	req := removeBookReq{
		token: apiutil.ExtractBearerToken(r),
		id:    chi.URLParam(r, "bookID"),
	}

	return req, nil
}
