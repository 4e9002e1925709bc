// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"net/http"

	"github.com/dbirtolo/bookstore"
	"github.com/dbirtolo/bookstore/orders"
)

var (
	_ bookstore.Response = (*orderRes)(nil)
	_ bookstore.Response = (*orderPageRes)(nil)
	_ bookstore.Response = (*revenueRes)(nil)
)

type orderRes struct {
	orders.Order
	created bool
}

func (res orderRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res orderRes) Headers() map[string]string {
	if res.created {
		return map[string]string{
			"Location": fmt.Sprintf("/orders/%s", res.ID),
		}
	}

	return map[string]string{}
}

func (res orderRes) Empty() bool {
	return false
}

type orderPageRes struct {
	orders.Page
}

func (res orderPageRes) Code() int {
	return http.StatusOK
}

func (res orderPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res orderPageRes) Empty() bool {
	return false
}

type revenueRes struct {
	Revenue float64 `json:"revenue"`
}

func (res revenueRes) Code() int {
	return http.StatusOK
}

func (res revenueRes) Headers() map[string]string {
	return map[string]string{}
}

func (res revenueRes) Empty() bool {
	return false
}
