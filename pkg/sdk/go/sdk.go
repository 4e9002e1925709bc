// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package sdk provides a Go client for the Bookstore HTTP API.
package sdk

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"moul.io/http2curl"

	"github.com/dbirtolo/bookstore/pkg/errors"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// BearerPrefix represents the token prefix for Bearer authentication scheme.
	BearerPrefix = "Bearer "

	booksEndpoint   = "books"
	ordersEndpoint  = "orders"
	authorsEndpoint = "authors"
	genresEndpoint  = "genres/summary"
	healthEndpoint  = "health"
)

var (
	// ErrFailedCreation indicates that entity creation failed.
	ErrFailedCreation = errors.New("failed to create entity in the db")

	// ErrFailedList indicates that entities list failed.
	ErrFailedList = errors.New("failed to list entities")

	// ErrFailedUpdate indicates that entity update failed.
	ErrFailedUpdate = errors.New("failed to update entity")

	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = errors.New("failed to fetch entity")

	// ErrFailedRemoval indicates that entity removal failed.
	ErrFailedRemoval = errors.New("failed to remove entity")
)

// ContentType represents all possible content types.
type ContentType string

// PageMetadata contains page metadata that helps navigation.
type PageMetadata struct {
	Total  uint64 `json:"total"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
	Name   string `json:"name,omitempty"`
	Author string `json:"author,omitempty"`
	Genre  string `json:"genre,omitempty"`
	Buyer  string `json:"buyer,omitempty"`
	Status string `json:"status,omitempty"`
}

// SDK contains Bookstore API.
type SDK interface {
	// CreateBook registers a new book and returns its id.
	//
	// example:
	//  book := sdk.Book{
	//    Title:  "The Go Programming Language",
	//    Author: "Alan A. A. Donovan",
	//    ISBN:   "978-0134190440",
	//    Genre:  "Programming",
	//    Price:  35.99,
	//    Copies: 10,
	//  }
	//  book, _ := sdk.CreateBook(book, token)
	//  fmt.Println(book)
	CreateBook(book Book, token string) (Book, errors.SDKError)

	// CreateBooks registers new books in a single batch.
	//
	// example:
	//  books := []sdk.Book{{Title: "Book1", ...}, {Title: "Book2", ...}}
	//  books, _ := sdk.CreateBooks(books, token)
	//  fmt.Println(books)
	CreateBooks(books []Book, token string) ([]Book, errors.SDKError)

	// Book returns book object by id.
	//
	// example:
	//  book, _ := sdk.Book("bookID", token)
	//  fmt.Println(book)
	Book(id, token string) (Book, errors.SDKError)

	// BookByISBN returns book object by ISBN.
	//
	// example:
	//  book, _ := sdk.BookByISBN("978-0134190440", token)
	//  fmt.Println(book)
	BookByISBN(isbn, token string) (Book, errors.SDKError)

	// Books returns page of books.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Offset: 0,
	//    Limit:  10,
	//    Genre:  "Programming",
	//  }
	//  books, _ := sdk.Books(pm, token)
	//  fmt.Println(books)
	Books(pm PageMetadata, token string) (BooksPage, errors.SDKError)

	// Authors returns the distinct authors in the catalog.
	//
	// example:
	//  authors, _ := sdk.Authors(sdk.PageMetadata{Genre: "Programming"}, token)
	//  fmt.Println(authors)
	Authors(pm PageMetadata, token string) ([]string, errors.SDKError)

	// Genres returns per-genre catalog statistics.
	//
	// example:
	//  summary, _ := sdk.Genres(token)
	//  fmt.Println(summary)
	Genres(token string) ([]GenreSummary, errors.SDKError)

	// UpdateBook updates existing book.
	//
	// example:
	//  book := sdk.Book{
	//    ID:    "bookID",
	//    Title: "New Title",
	//    Price: 29.99,
	//  }
	//  book, _ := sdk.UpdateBook(book, token)
	//  fmt.Println(book)
	UpdateBook(book Book, token string) (Book, errors.SDKError)

	// RestockBook adjusts the number of copies of a book by delta.
	//
	// example:
	//  book, _ := sdk.RestockBook("bookID", 5, token)
	//  fmt.Println(book)
	RestockBook(id string, delta int64, token string) (Book, errors.SDKError)

	// RemoveBook removes existing book.
	//
	// example:
	//  err := sdk.RemoveBook("bookID", token)
	//  fmt.Println(err)
	RemoveBook(id, token string) errors.SDKError

	// PlaceOrder places a new order and returns it with the computed total.
	//
	// example:
	//  order := sdk.Order{
	//    Buyer: "alice",
	//    Items: []sdk.OrderItem{{BookID: "bookID", Quantity: 2}},
	//  }
	//  order, _ := sdk.PlaceOrder(order, token)
	//  fmt.Println(order)
	PlaceOrder(order Order, token string) (Order, errors.SDKError)

	// Order returns order object by id.
	//
	// example:
	//  order, _ := sdk.Order("orderID", token)
	//  fmt.Println(order)
	Order(id, token string) (Order, errors.SDKError)

	// Orders returns page of orders.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Offset: 0,
	//    Limit:  10,
	//    Buyer:  "alice",
	//  }
	//  orders, _ := sdk.Orders(pm, token)
	//  fmt.Println(orders)
	Orders(pm PageMetadata, token string) (OrdersPage, errors.SDKError)

	// ShipOrder marks a placed order as shipped.
	//
	// example:
	//  order, _ := sdk.ShipOrder("orderID", token)
	//  fmt.Println(order)
	ShipOrder(id, token string) (Order, errors.SDKError)

	// CancelOrder cancels a placed order and returns reserved copies to stock.
	//
	// example:
	//  order, _ := sdk.CancelOrder("orderID", token)
	//  fmt.Println(order)
	CancelOrder(id, token string) (Order, errors.SDKError)

	// Revenue returns the total revenue over non-cancelled orders.
	//
	// example:
	//  revenue, _ := sdk.Revenue(token)
	//  fmt.Println(revenue)
	Revenue(token string) (float64, errors.SDKError)

	// Health returns service health check.
	//
	// example:
	//  health, _ := sdk.Health()
	//  fmt.Println(health)
	Health() (HealthInfo, errors.SDKError)
}

type bsSDK struct {
	bookstoreURL string

	client   *http.Client
	curlFlag bool
}

// Config contains sdk configuration parameters.
type Config struct {
	BookstoreURL string

	MsgContentType  ContentType
	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new bookstore SDK instance.
func NewSDK(conf Config) SDK {
	return &bsSDK{
		bookstoreURL: conf.BookstoreURL,

		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and send a new HTTP request, and checks for errors in the HTTP response.
// It then returns the response headers, the response body, and the associated error(s) (if any).
func (sdk bsSDK) processRequest(method, reqURL, token string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, strings.NewReader(string(data)))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets a default value for the Content-Type.
	// Overridden if Content-Type is passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	if token != "" {
		if !strings.Contains(token, BearerPrefix) {
			token = BearerPrefix + token
		}
		req.Header.Set("Authorization", token)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		fmt.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk bsSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q), nil
}

func (pm PageMetadata) query() (string, error) {
	q := url.Values{}
	q.Add("offset", strconv.FormatUint(pm.Offset, 10))
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}
	if pm.Name != "" {
		q.Add("name", pm.Name)
	}
	if pm.Author != "" {
		q.Add("author", pm.Author)
	}
	if pm.Genre != "" {
		q.Add("genre", pm.Genre)
	}
	if pm.Buyer != "" {
		q.Add("buyer", pm.Buyer)
	}
	if pm.Status != "" {
		q.Add("status", pm.Status)
	}

	return q.Encode(), nil
}
