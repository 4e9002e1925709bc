// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/books"
)

var (
	_ bookstore.Response = (*bookRes)(nil)
	_ bookstore.Response = (*booksRes)(nil)
	_ bookstore.Response = (*bookPageRes)(nil)
	_ bookstore.Response = (*authorsRes)(nil)
	_ bookstore.Response = (*genreSummaryRes)(nil)
	_ bookstore.Response = (*removeBookRes)(nil)
)

type bookRes struct {
	books.Book
	created bool
}

func (res bookRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res bookRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": fmt.Sprintf("/books/%s", res.ID),
		}
	}

	return map[string]string{}
}

func (res bookRes) Empty() bool {
	return false
}

type booksRes struct {
	Books []books.Book `json:"books"`
}

func (res booksRes) Code() int {
	return http.StatusCreated
}

func (res booksRes) Headers() map[string]string {
	return map[string]string{}
}

func (res booksRes) Empty() bool {
	return false
}

type bookPageRes struct {
	books.Page
}

func (res bookPageRes) Code() int {
	return http.StatusOK
}

func (res bookPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res bookPageRes) Empty() bool {
	return false
}

type authorsRes struct {
	Authors []string `json:"authors"`
}

func (res authorsRes) Code() int {
	return http.StatusOK
}

func (res authorsRes) Headers() map[string]string {
	return map[string]string{}
}

func (res authorsRes) Empty() bool {
	return false
}

type genreSummaryRes struct {
	Genres []books.GenreSummary `json:"genres"`
}

func (res genreSummaryRes) Code() int {
	return http.StatusOK
}

func (res genreSummaryRes) Headers() map[string]string {
	return map[string]string{}
}

func (res genreSummaryRes) Empty() bool {
	return false
}

type removeBookRes struct{}

func (res removeBookRes) Code() int {
	return http.StatusNoContent
}

func (res removeBookRes) Headers() map[string]string {
	return map[string]string{}
}

func (res removeBookRes) Empty() bool {
	return true
}
