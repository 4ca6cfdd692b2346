// Copyright (c) Roster Contributors
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rosterio/roster/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logMsg struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
}

func TestNew(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		err   bool
	}{
		{"logger with debug level", "debug", false},
		{"logger with info level", "info", false},
		{"logger with warn level", "warn", false},
		{"logger with error level", "error", false},
		{"logger with uppercase level", "INFO", false},
		{"logger with invalid level", "not_a_level", true},
	}

	for _, tc := range cases {
		_, err := logger.New(&bytes.Buffer{}, tc.level)
		if tc.err {
			assert.Error(t, err, tc.desc)
			continue
		}
		assert.NoError(t, err, tc.desc)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn")
	require.NoError(t, err)

	log.Info("should be dropped")
	assert.Zero(t, buf.Len(), "info line written by warn-level logger")

	log.Warn("kept")
	var out logMsg
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "WARN", out.Level)
	assert.Equal(t, "kept", out.Message)
}
