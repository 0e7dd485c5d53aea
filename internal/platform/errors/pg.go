package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the overrides store can run into
const (
	sqlUniqueViolation      = "23505"
	sqlNotNullViolation     = "23502"
	sqlCheckViolation       = "23514"
	sqlStringTooLong        = "22001"
	sqlSerializationFailure = "40001"
	sqlDeadlockDetected     = "40P01"
	sqlLockNotAvailable     = "55P03"
	sqlReadOnly             = "25006"
	sqlCannotConnectNow     = "57P03"
	sqlUndefinedTable       = "42P01"
)

// PgError returns the *pgconn.PgError behind err, if any
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a postgres error with the given state
func IsSQLState(err error, state string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == state
}

// IsUndefinedTable is true before migrations have run
func IsUndefinedTable(err error) bool { return IsSQLState(err, sqlUndefinedTable) }

func pgCode(state string) Code {
	switch state {
	case sqlUniqueViolation, sqlSerializationFailure, sqlDeadlockDetected, sqlLockNotAvailable:
		return CodeConflict
	case sqlNotNullViolation, sqlCheckViolation, sqlStringTooLong:
		return CodeInvalidArgument
	case sqlReadOnly, sqlCannotConnectNow:
		return CodeUnavailable
	}
	return CodeDB
}

// FromPostgres classifies a pgx error and wraps it with msg.
// Column names from the server become the error field
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	pgErr, ok := PgError(err)
	if !ok {
		return Wrap(err, CodeDB, msg)
	}
	out := &Error{code: pgCode(pgErr.Code), msg: msg, cause: err}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		out.field = col
	}
	return out
}

// Retryable reports whether a storage error is transient contention.
// Local cancellation is never retried
func Retryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case sqlSerializationFailure, sqlDeadlockDetected, sqlLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	for _, frag := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"terminating connection due to administrator command",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
