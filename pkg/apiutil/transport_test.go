// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package apiutil_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dbirtolo/bookstore/pkg/apiutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, query string) *http.Request {
	req, err := http.NewRequest(http.MethodGet, "http://localhost/books?"+query, nil)
	require.NoError(t, err)
	return req
}

func TestReadStringQuery(t *testing.T) {
	cases := []struct {
		desc  string
		query string
		def   string
		ret   string
		err   error
	}{
		{desc: "valid value", query: "author=morrison", ret: "morrison"},
		{desc: "missing value returns default", query: "", def: "any", ret: "any"},
		{desc: "duplicate key", query: "author=a&author=b", err: apiutil.ErrInvalidQueryParams},
	}

	for _, tc := range cases {
		ret, err := apiutil.ReadStringQuery(newRequest(t, tc.query), "author", tc.def)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v got %v", tc.desc, tc.err, err))
		assert.Equal(t, tc.ret, ret, fmt.Sprintf("%s: expected %q got %q", tc.desc, tc.ret, ret))
	}
}

func TestReadNumQuery(t *testing.T) {
	cases := []struct {
		desc  string
		query string
		def   uint64
		ret   uint64
		err   bool
	}{
		{desc: "valid value", query: "limit=42", ret: 42},
		{desc: "missing value returns default", query: "", def: 10, ret: 10},
		{desc: "malformed value", query: "limit=ten", err: true},
		{desc: "duplicate key", query: "limit=1&limit=2", err: true},
	}

	for _, tc := range cases {
		ret, err := apiutil.ReadNumQuery(newRequest(t, tc.query), "limit", tc.def)
		if tc.err {
			assert.Error(t, err, fmt.Sprintf("%s: expected error", tc.desc))
			continue
		}
		assert.NoError(t, err, fmt.Sprintf("%s: unexpected error: %s", tc.desc, err))
		assert.Equal(t, tc.ret, ret, fmt.Sprintf("%s: expected %d got %d", tc.desc, tc.ret, ret))
	}
}

func TestExtractBearerToken(t *testing.T) {
	req := newRequest(t, "")
	req.Header.Set("Authorization", apiutil.BearerPrefix+"token")
	assert.Equal(t, "token", apiutil.ExtractBearerToken(req))

	rec := httptest.NewRequest(http.MethodGet, "http://localhost/books", nil)
	assert.Equal(t, "", apiutil.ExtractBearerToken(rec))
}
