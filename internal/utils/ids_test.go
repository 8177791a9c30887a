// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampIDGenerator_UsesUnixMillis(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	g := &TimestampIDGenerator{now: func() time.Time { return fixed }}

	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli(), 10), g.Generate())
}

func TestTimestampIDGenerator_StrictlyIncreasingWithinOneMillisecond(t *testing.T) {
	fixed := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	g := &TimestampIDGenerator{now: func() time.Time { return fixed }}

	prev := int64(0)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.Generate()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		n, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestTimestampIDGenerator_ClockGoingBackwards(t *testing.T) {
	times := []time.Time{time.UnixMilli(2000), time.UnixMilli(1000)}
	i := 0
	g := &TimestampIDGenerator{now: func() time.Time { t := times[i]; i++; return t }}

	assert.Equal(t, "2000", g.Generate())
	assert.Equal(t, "2001", g.Generate())
}

func TestNewTimestampIDGenerator(t *testing.T) {
	g := NewTimestampIDGenerator()

	a, b := g.Generate(), g.Generate()
	assert.NotEqual(t, a, b)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, g.Generate())
}
