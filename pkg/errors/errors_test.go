// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"fmt"
	"testing"

	"github.com/dbirtolo/bookstore/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestWrap(t *testing.T) {
	cases := []struct {
		desc     string
		wrapper  error
		err      error
		contains error
	}{
		{
			desc:     "wrap error with error",
			wrapper:  err0,
			err:      err1,
			contains: err1,
		},
		{
			desc:     "wrap nil with error",
			wrapper:  err0,
			err:      nil,
			contains: nil,
		},
		{
			desc:     "wrap error with nil",
			wrapper:  nil,
			err:      err0,
			contains: nil,
		},
	}

	for _, tc := range cases {
		wrapped := errors.Wrap(tc.wrapper, tc.err)
		if tc.contains != nil {
			assert.True(t, errors.Contains(wrapped, tc.contains), fmt.Sprintf("%s: expected wrapped error to contain %s", tc.desc, tc.contains))
			continue
		}
		assert.Equal(t, tc.wrapper, wrapped, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.wrapper, wrapped))
	}
}

func TestContains(t *testing.T) {
	layered := errors.Wrap(err2, errors.Wrap(err1, err0))

	assert.True(t, errors.Contains(layered, err0))
	assert.True(t, errors.Contains(layered, err1))
	assert.True(t, errors.Contains(layered, err2))
	assert.False(t, errors.Contains(layered, errors.New("3")))
	assert.False(t, errors.Contains(nil, err0))
	assert.True(t, errors.Contains(nil, nil))
}

func TestUnwrap(t *testing.T) {
	wrapper, err := errors.Unwrap(errors.Wrap(err1, err0))
	assert.Equal(t, err1.Error(), wrapper.Error())
	assert.Equal(t, err0.Error(), err.Error())

	wrapper, err = errors.Unwrap(err0)
	assert.Nil(t, wrapper)
	assert.Equal(t, err0.Error(), err.Error())
}
