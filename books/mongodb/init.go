// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config defines the options that are used when connecting to a MongoDB instance.
type Config struct {
	Host string `env:"HOST" envDefault:"localhost"`
	Port string `env:"PORT" envDefault:"27017"`
	Name string `env:"NAME" envDefault:"bookstore"`
}

// Connect creates a connection to the MongoDB instance and bootstraps the
// indexes the repository relies on.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*mongo.Database, error) {
	addr := fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(addr))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to connect to database: %s", err))
		return nil, err
	}

	db := client.Database(cfg.Name)
	if err := ensureIndexes(ctx, db); err != nil {
		logger.Error(fmt.Sprintf("Failed to create indexes: %s", err))
		return nil, err
	}

	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(booksCollection)
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isbn", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "genre", Value: 1}, {Key: "author", Value: 1}},
		},
	})

	return err
}
