package store

import (
	"context"

	"go.uber.org/zap"

	pkgerrors "mindvault/pkg/errors"
	"mindvault/pkg/result"
)

// execute is the uniform shape every synchronized command takes: issue the
// external call without holding the lock, and on success apply the
// in-memory mutation under the lock. On failure nothing is mutated; the
// error lands in the shared error slot and comes back as a failure
// envelope. This guarantees no partial mutation on failure for
// single-entity operations.
func execute[T any](s *Store, ctx context.Context, op string, call func(context.Context) (T, error), apply func(T)) result.Result[T] {
	data, err := call(ctx)
	if err != nil {
		appErr := pkgerrors.Wrap(err, op+" failed")
		s.reportError(appErr)
		return result.Fail[T](appErr)
	}
	if apply != nil {
		s.mu.Lock()
		apply(data)
		s.mu.Unlock()
		s.afterChange()
	}
	return result.OK(data)
}

// failBefore short-circuits a command that cannot be issued at all
// (validation or state precondition), recording the failure the same way
// a settled external failure would be.
func failBefore[T any](s *Store, err *pkgerrors.AppError) result.Result[T] {
	s.reportError(err)
	return result.Fail[T](err)
}

// reportError overwrites the shared error slot. Later completions win.
func (s *Store) reportError(err error) {
	s.logger.Warn("command failed", zap.Error(err))
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
	s.afterChange()
}

// setLoading flips one category's busy flag.
func (s *Store) setLoading(category LoadCategory, busy bool) {
	s.mu.Lock()
	s.loading[category] = busy
	s.mu.Unlock()
	s.afterChange()
}
