// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"sync"

	"github.com/dbirtolo/bookstore/books"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
)

var _ books.Cache = (*cacheMock)(nil)

type cacheMock struct {
	mu  sync.Mutex
	ids map[string]string
}

// NewCache creates an in-memory ISBN cache.
func NewCache() books.Cache {
	return &cacheMock{
		ids: make(map[string]string),
	}
}

func (cm *cacheMock) Save(_ context.Context, isbn, id string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.ids[isbn] = id

	return nil
}

func (cm *cacheMock) ID(_ context.Context, isbn string) (string, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	id, ok := cm.ids[isbn]
	if !ok {
		return "", repoerr.ErrNotFound
	}

	return id, nil
}

func (cm *cacheMock) Remove(_ context.Context, isbn string) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	delete(cm.ids, isbn)

	return nil
}
