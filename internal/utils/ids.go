// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"sync"
	"time"
)

// TimestampIDGenerator produces decimal Unix-millisecond ids for folders and
// notes. Ids are strictly increasing: when two ids are requested within the
// same millisecond the later one is bumped past the previous.
type TimestampIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestampIDGenerator() *TimestampIDGenerator {
	return &TimestampIDGenerator{now: time.Now}
}

func (g *TimestampIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10)
}
