// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package main contains the entry point of the bookstore CLI.
package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"

	"github.com/dbirtolo/bookstore/cli"
	sdk "github.com/dbirtolo/bookstore/pkg/sdk/go"
)

func main() {
	sdkConf := sdk.Config{
		BookstoreURL:    "http://localhost:9000",
		TLSVerification: false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "bookstore-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s := sdk.NewSDK(sdkConf)
			cli.SetSDK(s)
		},
	}

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	// API commands
	healthCmd := cli.NewHealthCmd()
	booksCmd := cli.NewBooksCmd()
	ordersCmd := cli.NewOrdersCmd()

	// Root Commands
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(booksCmd)
	rootCmd.AddCommand(ordersCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.BookstoreURL,
		"bookstore-url",
		"b",
		sdkConf.BookstoreURL,
		"Bookstore host URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"tls-verification",
		"v",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.CurlFlag,
		"curl",
		"x",
		false,
		"Convert HTTP request to cURL command",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		cli.Limit,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Offset,
		"offset",
		"o",
		cli.Offset,
		"Offset query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Name,
		"name",
		"n",
		cli.Name,
		"Name query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Author,
		"author",
		"a",
		cli.Author,
		"Author query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Genre,
		"genre",
		"g",
		cli.Genre,
		"Genre query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Buyer,
		"buyer",
		"u",
		cli.Buyer,
		"Buyer query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Status,
		"status",
		"s",
		cli.Status,
		"Order status query parameter",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
