// Package repokit is the small toolbox SQL repos are written with: store
// aliases, a binder that ties a repo to a querier, and retrying transactions
package repokit

import (
	"context"
	"time"

	perr "profanity/internal/platform/errors"
	"profanity/internal/platform/store"
)

type (
	// Queryer is the read and write surface repos run against
	Queryer = store.RowQuerier
	// TxRunner opens transactions
	TxRunner = store.TxRunner
	// Row is a single scanned result
	Row = store.Row
)

// Binder ties a repo to a Queryer, which is either the pool or an open tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor into a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds q and panics when it is nil
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}

// TxAttempts bounds WithTx retries on serialization failures and deadlocks
const TxAttempts = 3

// WithTx runs fn in a transaction and binds repo to it. Conflicts that
// postgres marks retryable are retried with a short linear backoff
func WithTx[T any](ctx context.Context, tx TxRunner, b Binder[T], fn func(T) error) error {
	var err error
	for attempt := 1; attempt <= TxAttempts; attempt++ {
		err = tx.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
		if err == nil || !perr.Retryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 25 * time.Millisecond):
		}
	}
	return err
}
