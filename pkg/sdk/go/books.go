// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dbirtolo/bookstore/pkg/errors"
)

// Book represents bookstore catalog book.
type Book struct {
	ID        string                 `json:"id,omitempty"`
	Title     string                 `json:"title"`
	Author    string                 `json:"author"`
	ISBN      string                 `json:"isbn"`
	Genre     string                 `json:"genre,omitempty"`
	Year      int                    `json:"year,omitempty"`
	Price     float64                `json:"price"`
	Copies    int64                  `json:"copies"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at,omitempty"`
	UpdatedAt time.Time              `json:"updated_at,omitempty"`
}

// BooksPage contains list of books in a page with proper metadata.
type BooksPage struct {
	Books []Book `json:"books"`
	PageMetadata
}

// GenreSummary contains aggregated catalog statistics for a single genre.
type GenreSummary struct {
	Genre    string  `json:"genre"`
	Books    uint64  `json:"books"`
	Copies   int64   `json:"copies"`
	AvgPrice float64 `json:"avg_price"`
}

type restockReq struct {
	Delta int64 `json:"delta"`
}

func (sdk bsSDK) CreateBook(book Book, token string) (Book, errors.SDKError) {
	data, err := json.Marshal(book)
	if err != nil {
		return Book{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s", sdk.bookstoreURL, booksEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return Book{}, sdkerr
	}

	book = Book{}
	if err := json.Unmarshal(body, &book); err != nil {
		return Book{}, errors.NewSDKError(err)
	}

	return book, nil
}

func (sdk bsSDK) CreateBooks(books []Book, token string) ([]Book, errors.SDKError) {
	data, err := json.Marshal(books)
	if err != nil {
		return []Book{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s/bulk", sdk.bookstoreURL, booksEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodPost, url, token, data, nil, http.StatusCreated)
	if sdkerr != nil {
		return []Book{}, sdkerr
	}

	var bp BooksPage
	if err := json.Unmarshal(body, &bp); err != nil {
		return []Book{}, errors.NewSDKError(err)
	}

	return bp.Books, nil
}

func (sdk bsSDK) Book(id, token string) (Book, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.bookstoreURL, booksEndpoint, id)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Book{}, sdkerr
	}

	var book Book
	if err := json.Unmarshal(body, &book); err != nil {
		return Book{}, errors.NewSDKError(err)
	}

	return book, nil
}

func (sdk bsSDK) BookByISBN(isbn, token string) (Book, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/isbn/%s", sdk.bookstoreURL, booksEndpoint, isbn)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Book{}, sdkerr
	}

	var book Book
	if err := json.Unmarshal(body, &book); err != nil {
		return Book{}, errors.NewSDKError(err)
	}

	return book, nil
}

func (sdk bsSDK) Books(pm PageMetadata, token string) (BooksPage, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.bookstoreURL, booksEndpoint, pm)
	if err != nil {
		return BooksPage{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return BooksPage{}, sdkerr
	}

	var bp BooksPage
	if err := json.Unmarshal(body, &bp); err != nil {
		return BooksPage{}, errors.NewSDKError(err)
	}

	return bp, nil
}

func (sdk bsSDK) Authors(pm PageMetadata, token string) ([]string, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.bookstoreURL, authorsEndpoint, pm)
	if err != nil {
		return []string{}, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return []string{}, sdkerr
	}

	var ar struct {
		Authors []string `json:"authors"`
	}
	if err := json.Unmarshal(body, &ar); err != nil {
		return []string{}, errors.NewSDKError(err)
	}

	return ar.Authors, nil
}

func (sdk bsSDK) Genres(token string) ([]GenreSummary, errors.SDKError) {
	url := fmt.Sprintf("%s/%s", sdk.bookstoreURL, genresEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return []GenreSummary{}, sdkerr
	}

	var gr struct {
		Genres []GenreSummary `json:"genres"`
	}
	if err := json.Unmarshal(body, &gr); err != nil {
		return []GenreSummary{}, errors.NewSDKError(err)
	}

	return gr.Genres, nil
}

func (sdk bsSDK) UpdateBook(book Book, token string) (Book, errors.SDKError) {
	data, err := json.Marshal(book)
	if err != nil {
		return Book{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s/%s", sdk.bookstoreURL, booksEndpoint, book.ID)

	_, body, sdkerr := sdk.processRequest(http.MethodPut, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Book{}, sdkerr
	}

	book = Book{}
	if err := json.Unmarshal(body, &book); err != nil {
		return Book{}, errors.NewSDKError(err)
	}

	return book, nil
}

func (sdk bsSDK) RestockBook(id string, delta int64, token string) (Book, errors.SDKError) {
	data, err := json.Marshal(restockReq{Delta: delta})
	if err != nil {
		return Book{}, errors.NewSDKError(err)
	}
	url := fmt.Sprintf("%s/%s/%s/copies", sdk.bookstoreURL, booksEndpoint, id)

	_, body, sdkerr := sdk.processRequest(http.MethodPatch, url, token, data, nil, http.StatusOK)
	if sdkerr != nil {
		return Book{}, sdkerr
	}

	var book Book
	if err := json.Unmarshal(body, &book); err != nil {
		return Book{}, errors.NewSDKError(err)
	}

	return book, nil
}

func (sdk bsSDK) RemoveBook(id, token string) errors.SDKError {
	url := fmt.Sprintf("%s/%s/%s", sdk.bookstoreURL, booksEndpoint, id)

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, token, nil, nil, http.StatusNoContent)

	return sdkerr
}
