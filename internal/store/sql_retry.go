// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// retryBackoff returns the pause schedule between attempts of a retryable
// operation: 50ms, 100ms, 200ms.
var retryBackoff = func() retry.Backoff {
	return retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
}

// withRetry runs op and repeats it while the classifier reports the error as
// retryable, up to retryMaxRetries extra attempts. The last error is
// returned unwrapped.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	attempt := 0
	return retry.Do(ctx, retryBackoff(), func(ctx context.Context) error {
		attempt++
		err := op()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")
		return retry.RetryableError(err)
	})
}
