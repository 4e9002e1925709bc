// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/dbirtolo/bookstore/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrBearerToken indicates missing or invalid bearer user token.
	ErrBearerToken = errors.New("missing or invalid bearer user token")

	// ErrMissingID indicates missing entity ID.
	ErrMissingID = errors.New("missing entity id")

	// ErrMissingISBN indicates missing book ISBN.
	ErrMissingISBN = errors.New("missing book isbn")

	// ErrMissingTitle indicates missing book title.
	ErrMissingTitle = errors.New("missing book title")

	// ErrMissingBuyer indicates order with no buyer.
	ErrMissingBuyer = errors.New("missing order buyer")

	// ErrEmptyList indicates that entity data is empty.
	ErrEmptyList = errors.New("empty list provided")

	// ErrNameSize indicates that name size exceeds the max.
	ErrNameSize = errors.New("invalid name size")

	// ErrLimitSize indicates that an invalid limit.
	ErrLimitSize = errors.New("invalid limit size")

	// ErrOffsetSize indicates an invalid offset.
	ErrOffsetSize = errors.New("invalid offset size")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrInvalidQuantity indicates an order item with a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid order item quantity")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
