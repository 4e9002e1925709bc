// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookstore contains platform-wide contracts shared by the catalog
// and orders services, such as HTTP responses, identity providers and the
// health endpoint.
package bookstore
