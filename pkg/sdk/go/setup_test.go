// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"io"
	"net/http/httptest"

	"github.com/dbirtolo/bookstore/books"
	bapi "github.com/dbirtolo/bookstore/books/api"
	bmocks "github.com/dbirtolo/bookstore/books/mocks"
	"github.com/dbirtolo/bookstore/logger"
	"github.com/dbirtolo/bookstore/orders"
	oapi "github.com/dbirtolo/bookstore/orders/api"
	omocks "github.com/dbirtolo/bookstore/orders/mocks"
	"github.com/dbirtolo/bookstore/pkg/uuid"
)

const (
	token      = "token"
	instanceID = "5de9b29a-feb9-11ed-be56-0242ac120002"
)

func newBookstoreServer() *httptest.Server {
	brepo := bmocks.NewRepository()
	bsvc := books.New(brepo, bmocks.NewCache(), uuid.New())
	osvc := orders.New(omocks.NewRepository(brepo), brepo, uuid.New())

	testLog, _ := logger.New(io.Discard, "info")
	mux := bapi.MakeHandler(bsvc, testLog, instanceID)
	mux = oapi.MakeHandler(osvc, mux, testLog)

	return httptest.NewServer(mux)
}
