// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package mongodb_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	bookevents "github.com/dbirtolo/bookstore/books/events"
	"github.com/dbirtolo/bookstore/books/mocks"
	"github.com/dbirtolo/bookstore/books/mongodb"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	"github.com/dbirtolo/bookstore/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const streamsDB = "streams"

var _ events.Publisher = (*eventSink)(nil)

type eventSink struct {
	events chan map[string]interface{}
}

func (es *eventSink) Publish(_ context.Context, event events.Event) error {
	data, err := event.Encode()
	if err != nil {
		return err
	}
	es.events <- data

	return nil
}

func (es *eventSink) Close() error {
	return nil
}

func (es *eventSink) receive(t *testing.T) map[string]interface{} {
	t.Helper()

	select {
	case data := <-es.events:
		return data
	case <-time.After(10 * time.Second):
		require.FailNow(t, "timed out waiting for change event")
		return nil
	}
}

func savedToken(db *mongo.Database) bson.Raw {
	var doc struct {
		Token bson.Raw `bson:"token"`
	}
	filter := bson.D{{Key: "_id", Value: "books"}}
	if err := db.Collection("resume_tokens").FindOne(context.Background(), filter).Decode(&doc); err != nil {
		return nil
	}

	return doc.Token
}

func TestWatch(t *testing.T) {
	db := newDatabase(t, streamsDB)
	repo := mongodb.NewRepository(db)
	cache := mocks.NewCache()
	sink := &eventSink{events: make(chan map[string]interface{}, 10)}

	ctx, cancel := context.WithCancel(context.Background())
	watcher := mongodb.NewWatcher(db, sink, cache, testLog)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx)
	}()

	// The stream only sees changes made after it is opened.
	time.Sleep(time.Second)

	book := newBook(t, "fiction")
	saved, err := repo.Save(context.Background(), book)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	data := sink.receive(t)
	assert.Equal(t, bookevents.BookInsert, data["operation"], fmt.Sprintf("expected operation %s got %v", bookevents.BookInsert, data["operation"]))
	assert.Equal(t, saved.ID, data["id"], fmt.Sprintf("expected id %s got %v", saved.ID, data["id"]))
	assert.Equal(t, saved.ISBN, data["isbn"], fmt.Sprintf("expected isbn %s got %v", saved.ISBN, data["isbn"]))

	require.Eventually(t, func() bool {
		return savedToken(db) != nil
	}, 10*time.Second, 50*time.Millisecond, "resume token expected to be persisted")
	insertToken := savedToken(db)

	// An update event invalidates the cached ISBN mapping.
	err = cache.Save(context.Background(), saved.ISBN, saved.ID)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	_, err = repo.UpdateCopies(context.Background(), saved.ID, 2)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	data = sink.receive(t)
	assert.Equal(t, bookevents.BookUpdate, data["operation"], fmt.Sprintf("expected operation %s got %v", bookevents.BookUpdate, data["operation"]))
	assert.Equal(t, saved.ID, data["id"], fmt.Sprintf("expected id %s got %v", saved.ID, data["id"]))

	_, err = cache.ID(context.Background(), saved.ISBN)
	assert.True(t, errors.Contains(err, repoerr.ErrNotFound), fmt.Sprintf("expected %s got %s", repoerr.ErrNotFound, err))

	require.Eventually(t, func() bool {
		return !bytes.Equal(savedToken(db), insertToken)
	}, 10*time.Second, 50*time.Millisecond, "resume token expected to advance")

	cancel()
	err = <-done
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	// A change made while the watcher is down is delivered after a restart
	// thanks to the persisted resume token.
	err = repo.Remove(context.Background(), saved.ID)
	require.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))

	ctx, cancel = context.WithCancel(context.Background())
	restarted := mongodb.NewWatcher(db, sink, cache, testLog)
	go func() {
		done <- restarted.Watch(ctx)
	}()

	data = sink.receive(t)
	assert.Equal(t, bookevents.BookDelete, data["operation"], fmt.Sprintf("expected operation %s got %v", bookevents.BookDelete, data["operation"]))
	assert.Equal(t, saved.ID, data["id"], fmt.Sprintf("expected id %s got %v", saved.ID, data["id"]))

	cancel()
	err = <-done
	assert.Nil(t, err, fmt.Sprintf("got unexpected error: %s", err))
}
