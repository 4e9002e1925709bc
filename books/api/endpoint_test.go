// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/books/api"
	"github.com/dbirtolo/bookstore/books/mocks"
	"github.com/dbirtolo/bookstore/logger"
	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/dbirtolo/bookstore/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validToken  = "valid"
	contentType = "application/json"
	isbn        = "978-0-1234-5678-9"
	title       = "The Adventures of Pinocchio"
)

type testRequest struct {
	client      *http.Client
	method      string
	url         string
	contentType string
	token       string
	body        io.Reader
}

func (tr testRequest) make() (*http.Response, error) {
	req, err := http.NewRequest(tr.method, tr.url, tr.body)
	if err != nil {
		return nil, err
	}

	if tr.token != "" {
		req.Header.Set("Authorization", apiutil.BearerPrefix+tr.token)
	}
	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}

	return tr.client.Do(req)
}

func newBookServer() (*httptest.Server, books.Service) {
	svc := books.New(mocks.NewRepository(), mocks.NewCache(), uuid.NewMock())

	testLog, _ := logger.New(io.Discard, "info")
	mux := api.MakeHandler(svc, testLog, "test")

	return httptest.NewServer(mux), svc
}

func toJSON(t *testing.T, data interface{}) string {
	t.Helper()

	js, err := json.Marshal(data)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	return string(js)
}

func TestAddBookEndpoint(t *testing.T) {
	ts, _ := newBookServer()
	defer ts.Close()

	book := books.Book{ISBN: isbn, Title: title, Author: "Carlo Collodi", Copies: 3}
	data := toJSON(t, book)

	cases := []struct {
		desc        string
		req         string
		contentType string
		token       string
		status      int
	}{
		{
			desc:        "add valid book",
			req:         data,
			contentType: contentType,
			token:       validToken,
			status:      http.StatusCreated,
		},
		{
			desc:        "add duplicate book",
			req:         data,
			contentType: contentType,
			token:       validToken,
			status:      http.StatusConflict,
		},
		{
			desc:        "add book with empty token",
			req:         data,
			contentType: contentType,
			token:       "",
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "add book with invalid content type",
			req:         data,
			contentType: "text/plain",
			token:       validToken,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "add book without ISBN",
			req:         toJSON(t, books.Book{Title: title}),
			contentType: contentType,
			token:       validToken,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "add book with invalid payload",
			req:         "{",
			contentType: contentType,
			token:       validToken,
			status:      http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client:      ts.Client(),
			method:      http.MethodPost,
			url:         fmt.Sprintf("%s/books", ts.URL),
			contentType: tc.contentType,
			token:       tc.token,
			body:        strings.NewReader(tc.req),
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		res.Body.Close()
	}
}

func TestAddBooksEndpoint(t *testing.T) {
	ts, _ := newBookServer()
	defer ts.Close()

	bks := []books.Book{
		{ISBN: "978-1-0000-0000-1", Title: title},
		{ISBN: "978-1-0000-0000-2", Title: title},
	}

	cases := []struct {
		desc   string
		req    string
		token  string
		status int
	}{
		{
			desc:   "add valid books",
			req:    toJSON(t, bks),
			token:  validToken,
			status: http.StatusCreated,
		},
		{
			desc:   "add empty list",
			req:    toJSON(t, []books.Book{}),
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "add books with empty token",
			req:    toJSON(t, bks),
			token:  "",
			status: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client:      ts.Client(),
			method:      http.MethodPost,
			url:         fmt.Sprintf("%s/books/bulk", ts.URL),
			contentType: contentType,
			token:       tc.token,
			body:        strings.NewReader(tc.req),
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		res.Body.Close()
	}
}

func TestViewBookEndpoint(t *testing.T) {
	ts, svc := newBookServer()
	defer ts.Close()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc   string
		url    string
		token  string
		status int
	}{
		{
			desc:   "view existing book",
			url:    fmt.Sprintf("/books/%s", saved.ID),
			token:  validToken,
			status: http.StatusOK,
		},
		{
			desc:   "view non-existing book",
			url:    "/books/non-existent",
			token:  validToken,
			status: http.StatusNotFound,
		},
		{
			desc:   "view book with empty token",
			url:    fmt.Sprintf("/books/%s", saved.ID),
			token:  "",
			status: http.StatusUnauthorized,
		},
		{
			desc:   "view book by ISBN",
			url:    fmt.Sprintf("/books/isbn/%s", saved.ISBN),
			token:  validToken,
			status: http.StatusOK,
		},
		{
			desc:   "view book by non-existing ISBN",
			url:    "/books/isbn/978-9-9999-9999-9",
			token:  validToken,
			status: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client: ts.Client(),
			method: http.MethodGet,
			url:    ts.URL + tc.url,
			token:  tc.token,
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		res.Body.Close()
	}
}

func TestListBooksEndpoint(t *testing.T) {
	ts, svc := newBookServer()
	defer ts.Close()

	for i := 0; i < 5; i++ {
		_, err := svc.AddBook(context.Background(), books.Book{
			ISBN:  fmt.Sprintf("978-0-0000-0000-%d", i),
			Title: title,
			Genre: "fiction",
		})
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	}

	cases := []struct {
		desc   string
		url    string
		token  string
		status int
		size   int
	}{
		{
			desc:   "list books",
			url:    "/books",
			token:  validToken,
			status: http.StatusOK,
			size:   5,
		},
		{
			desc:   "list books with limit",
			url:    "/books?offset=0&limit=2",
			token:  validToken,
			status: http.StatusOK,
			size:   2,
		},
		{
			desc:   "list books with invalid offset",
			url:    "/books?offset=ten",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "list books with excessive limit",
			url:    "/books?limit=1000",
			token:  validToken,
			status: http.StatusBadRequest,
		},
		{
			desc:   "list books with empty token",
			url:    "/books",
			token:  "",
			status: http.StatusUnauthorized,
		},
		{
			desc:   "list books by genre",
			url:    "/books?genre=unknown",
			token:  validToken,
			status: http.StatusOK,
			size:   0,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client: ts.Client(),
			method: http.MethodGet,
			url:    ts.URL + tc.url,
			token:  tc.token,
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))

		if tc.status == http.StatusOK {
			var page books.Page
			err = json.NewDecoder(res.Body).Decode(&page)
			require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
			assert.Equal(t, tc.size, len(page.Books), fmt.Sprintf("%s: expected %d books got %d\n", tc.desc, tc.size, len(page.Books)))
		}
		res.Body.Close()
	}
}

func TestListAuthorsEndpoint(t *testing.T) {
	ts, svc := newBookServer()
	defer ts.Close()

	for i, author := range []string{"Alice Munro", "Bob Dylan"} {
		_, err := svc.AddBook(context.Background(), books.Book{
			ISBN:   fmt.Sprintf("978-0-0000-0000-%d", i),
			Title:  title,
			Author: author,
		})
		require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	}

	req := testRequest{
		client: ts.Client(),
		method: http.MethodGet,
		url:    ts.URL + "/authors",
		token:  validToken,
	}
	res, err := req.make()
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode, fmt.Sprintf("expected status %d got %d\n", http.StatusOK, res.StatusCode))

	var body struct {
		Authors []string `json:"authors"`
	}
	err = json.NewDecoder(res.Body).Decode(&body)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
	assert.Equal(t, []string{"Alice Munro", "Bob Dylan"}, body.Authors, fmt.Sprintf("expected distinct authors got %v\n", body.Authors))
}

func TestRestockBookEndpoint(t *testing.T) {
	ts, svc := newBookServer()
	defer ts.Close()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title, Copies: 1})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc   string
		id     string
		body   string
		status int
	}{
		{
			desc:   "restock book",
			id:     saved.ID,
			body:   `{"delta": 5}`,
			status: http.StatusOK,
		},
		{
			desc:   "sell more than in stock",
			id:     saved.ID,
			body:   `{"delta": -100}`,
			status: http.StatusUnprocessableEntity,
		},
		{
			desc:   "restock with zero delta",
			id:     saved.ID,
			body:   `{"delta": 0}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client:      ts.Client(),
			method:      http.MethodPatch,
			url:         fmt.Sprintf("%s/books/%s/copies", ts.URL, tc.id),
			contentType: contentType,
			token:       validToken,
			body:        bytes.NewReader([]byte(tc.body)),
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		res.Body.Close()
	}
}

func TestRemoveBookEndpoint(t *testing.T) {
	ts, svc := newBookServer()
	defer ts.Close()

	saved, err := svc.AddBook(context.Background(), books.Book{ISBN: isbn, Title: title})
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	cases := []struct {
		desc   string
		id     string
		status int
	}{
		{
			desc:   "remove existing book",
			id:     saved.ID,
			status: http.StatusNoContent,
		},
		{
			desc:   "remove removed book",
			id:     saved.ID,
			status: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		req := testRequest{
			client: ts.Client(),
			method: http.MethodDelete,
			url:    fmt.Sprintf("%s/books/%s", ts.URL, tc.id),
			token:  validToken,
		}
		res, err := req.make()
		require.Nil(t, err, fmt.Sprintf("%s: got unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.status, res.StatusCode, fmt.Sprintf("%s: expected status %d got %d\n", tc.desc, tc.status, res.StatusCode))
		res.Body.Close()
	}
}
