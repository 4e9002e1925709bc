// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package server contains the server lifecycle shared by service transports.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// StopWaitTime is the time to wait before shutting down a server.
const StopWaitTime = 5 * time.Second

// Server is an interface for gracefully starting and stopping a server.
type Server interface {
	// Start starts the server and blocks until the server exits.
	Start() error

	// Stop gracefully stops the server.
	Stop() error
}

// Config contains the server configuration.
type Config struct {
	Host     string `env:"HOST"        envDefault:"localhost"`
	Port     string `env:"PORT"        envDefault:""`
	CertFile string `env:"SERVER_CERT" envDefault:""`
	KeyFile  string `env:"SERVER_KEY"  envDefault:""`
}

// BaseServer is a base struct for all servers.
type BaseServer struct {
	Ctx      context.Context
	Cancel   context.CancelFunc
	Name     string
	Address  string
	Config   Config
	Logger   *slog.Logger
	Protocol string
}

// NewBaseServer returns a new base server.
func NewBaseServer(ctx context.Context, cancel context.CancelFunc, name string, config Config, logger *slog.Logger) BaseServer {
	return BaseServer{
		Ctx:     ctx,
		Cancel:  cancel,
		Name:    name,
		Address: fmt.Sprintf("%s:%s", config.Host, config.Port),
		Config:  config,
		Logger:  logger,
	}
}

func stopAllServer(servers ...Server) error {
	var err error
	for _, server := range servers {
		stopErr := server.Stop()
		if stopErr != nil {
			if err == nil {
				err = fmt.Errorf("%w", stopErr)
			} else {
				err = fmt.Errorf("%v ; %w", err, stopErr)
			}
		}
	}

	return err
}

// StopSignalHandler stops all servers on SIGINT or SIGABRT.
func StopSignalHandler(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, svcName string, servers ...Server) error {
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGINT, syscall.SIGABRT)
	select {
	case sig := <-c:
		defer cancel()
		err := stopAllServer(servers...)
		if err != nil {
			logger.Error(fmt.Sprintf("%s service error during shutdown: %v", svcName, err))
		}
		logger.Info(fmt.Sprintf("%s service shutdown by signal: %s", svcName, sig))
		return err
	case <-ctx.Done():
		return nil
	}
}
