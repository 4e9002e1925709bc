// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"strconv"

	bssdk "github.com/dbirtolo/bookstore/pkg/sdk/go"
	"github.com/spf13/cobra"
)

const all = "all"

var cmdBooks = []cobra.Command{
	{
		Use:   "create <JSON_book> <user_auth_token>",
		Short: "Create book",
		Long:  `Creates new catalog book and generates its UUID`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var book bssdk.Book
			if err := json.Unmarshal([]byte(args[0]), &book); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			book, err := sdk.CreateBook(book, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, book)
		},
	},
	{
		Use:   "bulk <JSON_books> <user_auth_token>",
		Short: "Create books",
		Long:  `Registers a batch of books in a single request`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var books []bssdk.Book
			if err := json.Unmarshal([]byte(args[0]), &books); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			books, err := sdk.CreateBooks(books, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, books)
		},
	},
	{
		Use:   "get [all | <book_id>] <user_auth_token>",
		Short: "Get book",
		Long: `Get all books or get book by id. Books can be filtered by name, author or genre.
		all - lists all books
		<book_id> - shows book with provided <book_id>`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			pageMetadata := bssdk.PageMetadata{
				Offset: Offset,
				Limit:  Limit,
				Name:   Name,
				Author: Author,
				Genre:  Genre,
			}

			if args[0] == all {
				l, err := sdk.Books(pageMetadata, args[1])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				logJSONCmd(*cmd, l)
				return
			}
			b, err := sdk.Book(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, b)
		},
	},
	{
		Use:   "isbn <isbn> <user_auth_token>",
		Short: "Get book by ISBN",
		Long:  `Get book by its ISBN`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			b, err := sdk.BookByISBN(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, b)
		},
	},
	{
		Use:   "update <book_id> <JSON_string> <user_auth_token>",
		Short: "Update book",
		Long:  `Updates book record`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var book bssdk.Book
			if err := json.Unmarshal([]byte(args[1]), &book); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			book.ID = args[0]
			book, err := sdk.UpdateBook(book, args[2])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, book)
		},
	},
	{
		Use:   "restock <book_id> <delta> <user_auth_token>",
		Short: "Adjust book stock",
		Long: "Adjust the number of copies of a book by delta. A negative delta sells copies.\n" +
			"Usage:\n" +
			"\tbookstore-cli books restock <book_id> 5 $USERTOKEN - add five copies\n" +
			"\tbookstore-cli books restock <book_id> -2 $USERTOKEN - sell two copies\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			delta, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			book, sdkerr := sdk.RestockBook(args[0], delta, args[2])
			if sdkerr != nil {
				logErrorCmd(*cmd, sdkerr)
				return
			}

			logJSONCmd(*cmd, book)
		},
	},
	{
		Use:   "delete <book_id> <user_auth_token>",
		Short: "Delete book",
		Long: "Delete book by id.\n" +
			"Usage:\n" +
			"\tbookstore-cli books delete <book_id> $USERTOKEN - delete the given book ID\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			if err := sdk.RemoveBook(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logOKCmd(*cmd)
		},
	},
	{
		Use:   "authors <user_auth_token>",
		Short: "List authors",
		Long:  `List distinct authors in the catalog, optionally filtered by genre`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			pm := bssdk.PageMetadata{
				Genre: Genre,
			}
			authors, err := sdk.Authors(pm, args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, authors)
		},
	},
	{
		Use:   "genres <user_auth_token>",
		Short: "Genre summary",
		Long:  `Per-genre catalog statistics: book count, total copies and average price`,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			summary, err := sdk.Genres(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, summary)
		},
	},
}

// NewBooksCmd returns books command.
func NewBooksCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "books [create | bulk | get | isbn | update | restock | delete | authors | genres]",
		Short: "Books management",
		Long:  `Books management: create, get, update or delete books, list authors and genre statistics`,
	}

	for i := range cmdBooks {
		cmd.AddCommand(&cmdBooks[i])
	}

	return &cmd
}
