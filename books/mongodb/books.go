// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package mongodb contains the MongoDB implementation of the books
// repository and the catalog change feed.
package mongodb

import (
	"context"
	"time"

	"github.com/dbirtolo/bookstore/books"
	"github.com/dbirtolo/bookstore/pkg/errors"
	repoerr "github.com/dbirtolo/bookstore/pkg/errors/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const booksCollection = "books"

type bookRepository struct {
	db *mongo.Database
}

var _ books.Repository = (*bookRepository)(nil)

// NewRepository instantiates a MongoDB implementation of the books repository.
func NewRepository(db *mongo.Database) books.Repository {
	return &bookRepository{
		db: db,
	}
}

func (br *bookRepository) Save(ctx context.Context, book books.Book) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	if _, err := coll.InsertOne(ctx, book); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return books.Book{}, errors.Wrap(repoerr.ErrConflict, err)
		}
		return books.Book{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return book, nil
}

func (br *bookRepository) SaveAll(ctx context.Context, bks ...books.Book) ([]books.Book, error) {
	coll := br.db.Collection(booksCollection)

	docs := make([]interface{}, 0, len(bks))
	for _, book := range bks {
		docs = append(docs, book)
	}

	opts := options.InsertMany().SetOrdered(false)
	if _, err := coll.InsertMany(ctx, docs, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.Wrap(repoerr.ErrConflict, err)
		}
		return nil, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return bks, nil
}

func (br *bookRepository) RetrieveByID(ctx context.Context, id string) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	var book books.Book
	filter := bson.D{{Key: "_id", Value: id}}
	if err := coll.FindOne(ctx, filter).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return books.Book{}, repoerr.ErrNotFound
		}
		return books.Book{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return book, nil
}

func (br *bookRepository) RetrieveByISBN(ctx context.Context, isbn string) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	var book books.Book
	filter := bson.D{{Key: "isbn", Value: isbn}}
	if err := coll.FindOne(ctx, filter).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return books.Book{}, repoerr.ErrNotFound
		}
		return books.Book{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return book, nil
}

func (br *bookRepository) RetrieveAll(ctx context.Context, pm books.PageMetadata) (books.Page, error) {
	coll := br.db.Collection(booksCollection)

	findOptions := options.Find()
	findOptions.SetSkip(int64(pm.Offset))
	if pm.Limit > 0 {
		findOptions.SetLimit(int64(pm.Limit))
	}
	findOptions.SetSort(bson.D{{Key: "_id", Value: 1}})

	filter := bson.D{}
	if pm.Name != "" {
		filter = append(filter, bson.E{Key: "title", Value: bson.D{{Key: "$regex", Value: pm.Name}}})
	}
	if pm.Author != "" {
		filter = append(filter, bson.E{Key: "author", Value: pm.Author})
	}
	if pm.Genre != "" {
		filter = append(filter, bson.E{Key: "genre", Value: pm.Genre})
	}

	cur, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return books.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	results := []books.Book{}
	if err := cur.All(ctx, &results); err != nil {
		return books.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return books.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return books.Page{
		PageMetadata: books.PageMetadata{
			Total:  uint64(total),
			Offset: pm.Offset,
			Limit:  pm.Limit,
		},
		Books: results,
	}, nil
}

func (br *bookRepository) Update(ctx context.Context, book books.Book) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	fields := bson.D{{Key: "updated_at", Value: book.UpdatedAt}}
	if book.Title != "" {
		fields = append(fields, bson.E{Key: "title", Value: book.Title})
	}
	if book.Author != "" {
		fields = append(fields, bson.E{Key: "author", Value: book.Author})
	}
	if book.Genre != "" {
		fields = append(fields, bson.E{Key: "genre", Value: book.Genre})
	}
	if book.Year != 0 {
		fields = append(fields, bson.E{Key: "year", Value: book.Year})
	}
	if book.Price != 0 {
		fields = append(fields, bson.E{Key: "price", Value: book.Price})
	}
	if book.Metadata != nil {
		fields = append(fields, bson.E{Key: "metadata", Value: book.Metadata})
	}

	filter := bson.D{{Key: "_id", Value: book.ID}}
	update := bson.D{{Key: "$set", Value: fields}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated books.Book
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return books.Book{}, repoerr.ErrNotFound
		}
		return books.Book{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

func (br *bookRepository) UpdateCopies(ctx context.Context, id string, delta int64) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	if delta < 0 {
		// Guard against overselling: the decrement only matches when
		// enough copies remain.
		filter = append(filter, bson.E{Key: "copies", Value: bson.D{{Key: "$gte", Value: -delta}}})
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "copies", Value: delta}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now()}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated books.Book
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err != mongo.ErrNoDocuments {
			return books.Book{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
		}
		if _, err := br.RetrieveByID(ctx, id); err != nil {
			if errors.Contains(err, repoerr.ErrNotFound) {
				return books.Book{}, repoerr.ErrNotFound
			}
			return books.Book{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
		}
		return books.Book{}, repoerr.ErrInsufficientStock
	}

	return updated, nil
}

func (br *bookRepository) Replace(ctx context.Context, book books.Book) (books.Book, error) {
	coll := br.db.Collection(booksCollection)

	filter := bson.D{{Key: "_id", Value: book.ID}}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, filter, book, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return books.Book{}, errors.Wrap(repoerr.ErrConflict, err)
		}
		return books.Book{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return book, nil
}

func (br *bookRepository) Remove(ctx context.Context, id string) error {
	coll := br.db.Collection(booksCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrap(repoerr.ErrRemoveEntity, err)
	}
	if res.DeletedCount < 1 {
		return repoerr.ErrNotFound
	}

	return nil
}

func (br *bookRepository) RemoveAllByGenre(ctx context.Context, genre string) (uint64, error) {
	coll := br.db.Collection(booksCollection)

	filter := bson.D{{Key: "genre", Value: genre}}
	res, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(repoerr.ErrRemoveEntity, err)
	}

	return uint64(res.DeletedCount), nil
}

func (br *bookRepository) ListAuthors(ctx context.Context, genre string) ([]string, error) {
	coll := br.db.Collection(booksCollection)

	filter := bson.D{}
	if genre != "" {
		filter = append(filter, bson.E{Key: "genre", Value: genre})
	}

	values, err := coll.Distinct(ctx, "author", filter)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	authors := make([]string, 0, len(values))
	for _, v := range values {
		if author, ok := v.(string); ok {
			authors = append(authors, author)
		}
	}

	return authors, nil
}

func (br *bookRepository) SummarizeGenres(ctx context.Context) ([]books.GenreSummary, error) {
	coll := br.db.Collection(booksCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "books", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "copies", Value: bson.D{{Key: "$sum", Value: "$copies"}}},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	summaries := []books.GenreSummary{}
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return summaries, nil
}
