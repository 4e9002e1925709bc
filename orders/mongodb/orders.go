// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains the MongoDB implementation of the orders
// repository. Stock reservation and return run as multi-document
// transactions with majority write concern.
package mongodb

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore/orders"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	svcerr "github.com/dbirtolo/bookstore/pkg/errors/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	ordersCollection = "orders"
	booksCollection  = "books"
)

type orderRepository struct {
	db *mongo.Database
}

var _ orders.Repository = (*orderRepository)(nil)

// NewRepository instantiates a MongoDB implementation of the orders repository.
func NewRepository(db *mongo.Database) orders.Repository {
	return &orderRepository{
		db: db,
	}
}

func (or *orderRepository) Save(ctx context.Context, order orders.Order) (orders.Order, error) {
	session, err := or.db.Client().StartSession()
	if err != nil {
		return orders.Order{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}
	defer session.EndSession(ctx)

	wc := writeconcern.New(writeconcern.WMajority())
	txnOpts := options.Transaction().SetWriteConcern(wc)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		books := or.db.Collection(booksCollection)
		for _, item := range order.Items {
			filter := bson.D{
				{Key: "_id", Value: item.BookID},
				{Key: "copies", Value: bson.D{{Key: "$gte", Value: item.Quantity}}},
			}
			update := bson.D{{Key: "$inc", Value: bson.D{{Key: "copies", Value: -item.Quantity}}}}
			res, err := books.UpdateOne(sc, filter, update)
			if err != nil {
				return nil, err
			}
			if res.ModifiedCount < 1 {
				return nil, repoerr.ErrInsufficientStock
			}
		}

		if _, err := or.db.Collection(ordersCollection).InsertOne(sc, order); err != nil {
			return nil, err
		}

		return nil, nil
	}, txnOpts)
	if err != nil {
		if errors.Contains(err, repoerr.ErrInsufficientStock) {
			return orders.Order{}, repoerr.ErrInsufficientStock
		}
		if mongo.IsDuplicateKeyError(err) {
			return orders.Order{}, errors.Wrap(repoerr.ErrConflict, err)
		}
		return orders.Order{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return order, nil
}

func (or *orderRepository) RetrieveByID(ctx context.Context, id string) (orders.Order, error) {
	coll := or.db.Collection(ordersCollection)

	var order orders.Order
	filter := bson.D{{Key: "_id", Value: id}}
	if err := coll.FindOne(ctx, filter).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return orders.Order{}, repoerr.ErrNotFound
		}
		return orders.Order{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return order, nil
}

func (or *orderRepository) RetrieveAll(ctx context.Context, pm orders.PageMetadata) (orders.Page, error) {
	coll := or.db.Collection(ordersCollection)

	findOptions := options.Find()
	findOptions.SetSkip(int64(pm.Offset))
	if pm.Limit > 0 {
		findOptions.SetLimit(int64(pm.Limit))
	}
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	filter := bson.D{}
	if pm.Buyer != "" {
		filter = append(filter, bson.E{Key: "buyer", Value: pm.Buyer})
	}
	if pm.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: pm.Status})
	}

	cur, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return orders.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	results := []orders.Order{}
	if err := cur.All(ctx, &results); err != nil {
		return orders.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return orders.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return orders.Page{
		PageMetadata: orders.PageMetadata{
			Total:  uint64(total),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Orders: results,
	}, nil
}

func (or *orderRepository) UpdateStatus(ctx context.Context, id string, status orders.Status) (orders.Order, error) {
	coll := or.db.Collection(ordersCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated orders.Order
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return orders.Order{}, repoerr.ErrNotFound
		}
		return orders.Order{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

func (or *orderRepository) Cancel(ctx context.Context, id string) (orders.Order, error) {
	session, err := or.db.Client().StartSession()
	if err != nil {
		return orders.Order{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}
	defer session.EndSession(ctx)

	wc := writeconcern.New(writeconcern.WMajority())
	txnOpts := options.Transaction().SetWriteConcern(wc)

	res, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		coll := or.db.Collection(ordersCollection)

		var order orders.Order
		if err := coll.FindOne(sc, bson.D{{Key: "_id", Value: id}}).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, repoerr.ErrNotFound
			}
			return nil, err
		}
		if order.Status != orders.StatusPlaced {
			return nil, svcerr.ErrInvalidOrderState
		}

		books := or.db.Collection(booksCollection)
		for _, item := range order.Items {
			filter := bson.D{{Key: "_id", Value: item.BookID}}
			update := bson.D{{Key: "$inc", Value: bson.D{{Key: "copies", Value: item.Quantity}}}}
			if _, err := books.UpdateOne(sc, filter, update); err != nil {
				return nil, err
			}
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: orders.StatusCancelled},
			{Key: "updated_at", Value: time.Now()},
		}}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := coll.FindOneAndUpdate(sc, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&order); err != nil {
			return nil, err
		}

		return order, nil
	}, txnOpts)
	if err != nil {
		switch {
		case errors.Contains(err, repoerr.ErrNotFound):
			return orders.Order{}, repoerr.ErrNotFound
		case errors.Contains(err, svcerr.ErrInvalidOrderState):
			return orders.Order{}, svcerr.ErrInvalidOrderState
		default:
			return orders.Order{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
		}
	}

	return res.(orders.Order), nil
}

func (or *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	coll := or.db.Collection(ordersCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$ne", Value: orders.StatusCancelled}}}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	var results []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Revenue, nil
}
