// Copyright (c) The Bookstore Authors
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dbirtolo/bookstore/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		err   bool
	}{
		{desc: "debug level", level: "debug"},
		{desc: "info level", level: "info"},
		{desc: "warn level", level: "warn"},
		{desc: "error level", level: "error"},
		{desc: "mixed case level", level: "INFO"},
		{desc: "unknown level", level: "loud", err: true},
	}

	for _, tc := range cases {
		_, err := logger.New(&bytes.Buffer{}, tc.level)
		if tc.err {
			assert.Error(t, err, fmt.Sprintf("%s: expected error", tc.desc))
			continue
		}
		assert.NoError(t, err, fmt.Sprintf("%s: unexpected error: %s", tc.desc, err))
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn")
	require.NoError(t, err)

	log.Info("dropped")
	assert.Zero(t, buf.Len(), "info entry should be dropped on warn level")

	log.Warn("kept", "reason", "test")
	require.NotZero(t, buf.Len())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "test", entry["reason"])
}
