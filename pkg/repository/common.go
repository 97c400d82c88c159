package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// errStopRetry is passed to repeater to stop on any criticalError
var errStopRetry = errors.New("stop retry")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is matches errStopRetry so repeater stops on the first critical failure
func (e *criticalError) Is(target error) bool {
	return target == errStopRetry //nolint:errorlint // identity check is intended
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withRetry runs a write operation, retrying only on sqlite lock errors
func withRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return unwrapCritical(retrier.Do(ctx, fn, errStopRetry))
}

// unwrapCritical strips the critical marker so callers see the original wrapped error
func unwrapCritical(err error) error {
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}
