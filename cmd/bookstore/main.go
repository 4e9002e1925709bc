// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package main contains bookstore main function to start the bookstore service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/dbirtolo/bookstore/books"
	booksapi "github.com/dbirtolo/bookstore/books/api"
	bookscache "github.com/dbirtolo/bookstore/books/cache"
	booksmw "github.com/dbirtolo/bookstore/books/middleware"
	booksmongo "github.com/dbirtolo/bookstore/books/mongodb"
	bookstracing "github.com/dbirtolo/bookstore/books/tracing"
	bslog "github.com/dbirtolo/bookstore/logger"
	"github.com/dbirtolo/bookstore/orders"
	ordersapi "github.com/dbirtolo/bookstore/orders/api"
	ordersevents "github.com/dbirtolo/bookstore/orders/events"
	ordersmw "github.com/dbirtolo/bookstore/orders/middleware"
	ordersmongo "github.com/dbirtolo/bookstore/orders/mongodb"
	orderstracing "github.com/dbirtolo/bookstore/orders/tracing"
	"github.com/dbirtolo/bookstore/pkg/events/store"
	"github.com/dbirtolo/bookstore/pkg/prometheus"
	"github.com/dbirtolo/bookstore/pkg/server"
	httpserver "github.com/dbirtolo/bookstore/pkg/server/http"
	"github.com/dbirtolo/bookstore/pkg/uuid"
)

const (
	svcName        = "bookstore"
	envPrefixDB    = "BS_MONGO_"
	envPrefixHTTP  = "BS_HTTP_"
	booksStream    = "bookstore.books"
	defSvcHTTPPort = "9000"
)

type config struct {
	LogLevel         string        `env:"BS_LOG_LEVEL"           envDefault:"info"`
	ESURL            string        `env:"BS_ES_URL"              envDefault:"nats://localhost:4222"`
	CacheURL         string        `env:"BS_CACHE_URL"           envDefault:"redis://localhost:6379/0"`
	CacheKeyDuration time.Duration `env:"BS_CACHE_KEY_DURATION"  envDefault:"10m"`
	InstanceID       string        `env:"BS_INSTANCE_ID"         envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := bslog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer bslog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	dbConfig := booksmongo.Config{}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	db, err := booksmongo.Connect(ctx, dbConfig, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to %s database : %s", dbConfig.Name, err))
		exitCode = 1
		return
	}
	defer func() {
		if err := db.Client().Disconnect(ctx); err != nil {
			logger.Error(fmt.Sprintf("failed to disconnect from %s database : %s", dbConfig.Name, err))
		}
	}()

	cacheOpts, err := redis.ParseURL(cfg.CacheURL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse cache URL : %s", err))
		exitCode = 1
		return
	}
	cacheClient := redis.NewClient(cacheOpts)
	defer cacheClient.Close()

	tracer := otel.Tracer(svcName)

	cache := bookstracing.CacheMiddleware(tracer, bookscache.NewCache(cacheClient, cfg.CacheKeyDuration))
	booksRepo := bookstracing.RepositoryMiddleware(tracer, booksmongo.NewRepository(db))

	booksSvc := newBooksService(booksRepo, cache, logger)
	ordersSvc, err := newOrdersService(ctx, db, booksRepo, cfg.ESURL, logger, tracer)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create orders service : %s", err))
		exitCode = 1
		return
	}

	pub, err := store.NewPublisher(ctx, cfg.ESURL, booksStream)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect to event store : %s", err))
		exitCode = 1
		return
	}
	defer pub.Close()

	watcher := booksmongo.NewWatcher(db, pub, cache, logger)
	g.Go(func() error {
		return watcher.Watch(ctx)
	})

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err.Error()))
		exitCode = 1
		return
	}
	mux := booksapi.MakeHandler(booksSvc, logger, cfg.InstanceID)
	mux = ordersapi.MakeHandler(ordersSvc, mux, logger)
	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, mux, logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newBooksService(repo books.Repository, cache books.Cache, logger *slog.Logger) books.Service {
	svc := books.New(repo, cache, uuid.New())
	svc = booksmw.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics("books", "api")
	svc = booksmw.MetricsMiddleware(svc, counter, latency)

	return svc
}

func newOrdersService(ctx context.Context, db *mongo.Database, catalog books.Repository, esURL string, logger *slog.Logger, tracer trace.Tracer) (orders.Service, error) {
	repo := orderstracing.RepositoryMiddleware(tracer, ordersmongo.NewRepository(db))

	svc := orders.New(repo, catalog, uuid.New())
	svc = ordersmw.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics("orders", "api")
	svc = ordersmw.MetricsMiddleware(svc, counter, latency)

	return ordersevents.NewEventStoreMiddleware(ctx, svc, esURL)
}
