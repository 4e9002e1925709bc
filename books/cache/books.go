// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package cache contains the Redis implementation of the books cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	"github.com/go-redis/redis/v8"
)

const isbnPrefix = "book_isbn"

var _ books.Cache = (*bookCache)(nil)

type bookCache struct {
	client      *redis.Client
	keyDuration time.Duration
}

// NewCache returns redis book cache implementation.
func NewCache(client *redis.Client, duration time.Duration) books.Cache {
	return &bookCache{
		client:      client,
		keyDuration: duration,
	}
}

func (bc *bookCache) Save(ctx context.Context, isbn, id string) error {
	key := fmt.Sprintf("%s:%s", isbnPrefix, isbn)
	if err := bc.client.Set(ctx, key, id, bc.keyDuration).Err(); err != nil {
		return errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return nil
}

func (bc *bookCache) ID(ctx context.Context, isbn string) (string, error) {
	key := fmt.Sprintf("%s:%s", isbnPrefix, isbn)
	id, err := bc.client.Get(ctx, key).Result()
	if err != nil {
		return "", errors.Wrap(repoerr.ErrNotFound, err)
	}
	if id == "" {
		return "", repoerr.ErrNotFound
	}

	return id, nil
}

func (bc *bookCache) Remove(ctx context.Context, isbn string) error {
	key := fmt.Sprintf("%s:%s", isbnPrefix, isbn)
	// Redis returns Nil Reply when key does not exist.
	if err := bc.client.Del(ctx, key).Err(); err != nil && err != redis.Nil {
		return errors.Wrap(repoerr.ErrRemoveEntity, err)
	}

	return nil
}
