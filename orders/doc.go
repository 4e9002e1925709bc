// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package orders contains the order domain: placing an order reserves
// catalog stock atomically, cancelling it returns the stock.
package orders
