// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dbirtolo/bookstore/books"
	bookevents "github.com/dbirtolo/bookstore/books/events"
	"github.com/dbirtolo/bookstore/pkg/events"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resumeCollection = "resume_tokens"

// Watcher tails the books collection change stream and republishes every
// change on the event store. The last seen resume token is persisted so a
// restarted watcher picks up where the previous one stopped.
type Watcher struct {
	db     *mongo.Database
	pub    events.Publisher
	cache  books.Cache
	logger *slog.Logger
}

// NewWatcher instantiates a catalog change watcher.
func NewWatcher(db *mongo.Database, pub events.Publisher, cache books.Cache, logger *slog.Logger) *Watcher {
	return &Watcher{
		db:     db,
		pub:    pub,
		cache:  cache,
		logger: logger,
	}
}

// Watch consumes the change stream until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	token, err := w.resumeToken(ctx)
	if err != nil {
		return err
	}
	if token != nil {
		opts.SetResumeAfter(token)
	}

	cs, err := w.db.Collection(booksCollection).Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		return err
	}
	defer cs.Close(context.Background())

	for cs.Next(ctx) {
		var change struct {
			OperationType string     `bson:"operationType"`
			FullDocument  books.Book `bson:"fullDocument"`
			DocumentKey   struct {
				ID string `bson:"_id"`
			} `bson:"documentKey"`
		}
		if err := cs.Decode(&change); err != nil {
			w.logger.Warn(fmt.Sprintf("Failed to decode change event: %s", err))
			continue
		}

		event := bookevents.ChangeEvent{
			ID:   change.DocumentKey.ID,
			Book: change.FullDocument,
		}
		switch change.OperationType {
		case "insert":
			event.Operation = bookevents.BookInsert
		case "update":
			event.Operation = bookevents.BookUpdate
		case "replace":
			event.Operation = bookevents.BookReplace
		case "delete":
			event.Operation = bookevents.BookDelete
		default:
			continue
		}

		// The cached ISBN mapping may point at a stale document after
		// an update or replace.
		if change.OperationType != "insert" && change.FullDocument.ISBN != "" {
			if err := w.cache.Remove(ctx, change.FullDocument.ISBN); err != nil {
				w.logger.Warn(fmt.Sprintf("Failed to invalidate cache entry: %s", err))
			}
		}

		if err := w.pub.Publish(ctx, event); err != nil {
			w.logger.Warn(fmt.Sprintf("Failed to publish change event: %s", err))
			continue
		}

		if err := w.saveResumeToken(ctx, cs.ResumeToken()); err != nil {
			w.logger.Warn(fmt.Sprintf("Failed to save resume token: %s", err))
		}
	}

	if err := cs.Err(); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}

type resumeToken struct {
	ID    string   `bson:"_id"`
	Token bson.Raw `bson:"token"`
}

func (w *Watcher) resumeToken(ctx context.Context) (bson.Raw, error) {
	coll := w.db.Collection(resumeCollection)

	var rt resumeToken
	filter := bson.D{{Key: "_id", Value: booksCollection}}
	if err := coll.FindOne(ctx, filter).Decode(&rt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return rt.Token, nil
}

func (w *Watcher) saveResumeToken(ctx context.Context, token bson.Raw) error {
	coll := w.db.Collection(resumeCollection)

	filter := bson.D{{Key: "_id", Value: booksCollection}}
	doc := resumeToken{ID: booksCollection, Token: token}
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, filter, doc, opts)

	return err
}
