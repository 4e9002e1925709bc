// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package api contains commons for the HTTP transports of all services.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
)

const (
	OffsetKey = "offset"
	LimitKey  = "limit"
	NameKey   = "name"
	AuthorKey = "author"
	GenreKey  = "genre"
	BuyerKey  = "buyer"
	StatusKey = "status"

	DefOffset = 0
	DefLimit  = 10

	// ContentType represents JSON content type.
	ContentType = "application/json"

	// MaxLimitSize limits page size to prevent heavy DB reads.
	MaxLimitSize = 100

	// MaxNameSize limits name size to prevent making them too complex.
	MaxNameSize = 1024
)

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(bookstore.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Contains(err, svcerr.ErrAuthentication),
		errors.Contains(err, apiutil.ErrBearerToken):
		w.WriteHeader(http.StatusUnauthorized)
	case errors.Contains(err, svcerr.ErrNotFound),
		errors.Contains(err, repoerr.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Contains(err, svcerr.ErrConflict),
		errors.Contains(err, repoerr.ErrConflict):
		w.WriteHeader(http.StatusConflict)
	case errors.Contains(err, svcerr.ErrMalformedEntity),
		errors.Contains(err, repoerr.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrValidation),
		errors.Contains(err, apiutil.ErrMissingID),
		errors.Contains(err, apiutil.ErrMissingISBN),
		errors.Contains(err, apiutil.ErrMissingTitle),
		errors.Contains(err, apiutil.ErrMissingBuyer),
		errors.Contains(err, apiutil.ErrEmptyList),
		errors.Contains(err, apiutil.ErrNameSize),
		errors.Contains(err, apiutil.ErrLimitSize),
		errors.Contains(err, apiutil.ErrOffsetSize),
		errors.Contains(err, apiutil.ErrInvalidQuantity),
		errors.Contains(err, apiutil.ErrInvalidQueryParams):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		w.WriteHeader(http.StatusUnsupportedMediaType)
	case errors.Contains(err, repoerr.ErrInsufficientStock),
		errors.Contains(err, svcerr.ErrInvalidOrderState):
		w.WriteHeader(http.StatusUnprocessableEntity)
	case errors.Contains(err, svcerr.ErrCreateEntity),
		errors.Contains(err, svcerr.ErrUpdateEntity),
		errors.Contains(err, svcerr.ErrViewEntity),
		errors.Contains(err, svcerr.ErrRemoveEntity):
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}
