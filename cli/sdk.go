// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import bssdk "github.com/dbirtolo/bookstore/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk bssdk.SDK

// SetSDK sets bookstore SDK instance.
func SetSDK(s bssdk.SDK) {
	sdk = s
}
