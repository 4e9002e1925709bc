// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"testing"

	"github.com/dbirtolo/bookstore"
	sdk "github.com/dbirtolo/bookstore/pkg/sdk/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newBookstoreServer()
	defer ts.Close()
	bsdk := sdk.NewSDK(sdk.Config{BookstoreURL: ts.URL})

	h, err := bsdk.Health()
	require.Nil(t, err, fmt.Sprintf("unexpected error %s", err))
	assert.Equal(t, "pass", h.Status, fmt.Sprintf("expected pass status, got %s", h.Status))
	assert.Equal(t, bookstore.Version, h.Version, fmt.Sprintf("expected version %s, got %s", bookstore.Version, h.Version))
	assert.Equal(t, "books service", h.Description, fmt.Sprintf("expected proper description, got %s", h.Description))
	assert.Equal(t, instanceID, h.InstanceID, fmt.Sprintf("expected instance ID %s, got %s", instanceID, h.InstanceID))
}
