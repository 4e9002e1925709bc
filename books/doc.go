// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package books contains the book catalog domain: entities, the service
// API and the persistence contracts implemented by the MongoDB repository.
package books
