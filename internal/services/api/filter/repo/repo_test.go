package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"profanity/internal/platform/store"
	"profanity/internal/services/api/filter/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type call struct {
	sql  string
	args []any
}

type tag int64

func (t tag) String() string      { return "INSERT" }
func (t tag) RowsAffected() int64 { return int64(t) }

type fakeDB struct {
	calls  []call
	txs    int
	err    error
	rows   store.Rows
	qryErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.calls = append(f.calls, call{sql: sql, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return tag(1), nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (store.Rows, error) {
	return f.rows, f.qryErr
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) store.Row { return nil }

func (f *fakeDB) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	f.txs++
	return fn(f)
}

func TestApplyWritesInOneTx(t *testing.T) {
	db := &fakeDB{}
	o := NewOverrides(db, nil)

	err := o.Apply(context.Background(),
		domain.Change{List: domain.ListBlacklist, Added: []string{"blimey"}},
		domain.Change{List: domain.ListWhitelist},
		domain.Change{List: domain.ListRemoved, Gone: []string{"damn"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if db.txs != 1 {
		t.Fatalf("txs = %d, want 1", db.txs)
	}
	if len(db.calls) != 2 {
		t.Fatalf("calls = %d, want 2 (empty lists skipped)", len(db.calls))
	}
	if !strings.Contains(db.calls[0].sql, "insert into filter_overrides") || db.calls[0].args[0] != "blacklist" {
		t.Fatalf("first call = %+v", db.calls[0])
	}
	if !strings.Contains(db.calls[1].sql, "delete from filter_overrides") || db.calls[1].args[0] != "removed" {
		t.Fatalf("second call = %+v", db.calls[1])
	}
}

func TestApplyNothingSkipsTx(t *testing.T) {
	db := &fakeDB{}
	if err := NewOverrides(db, nil).Apply(context.Background(), domain.Change{List: domain.ListBlacklist}); err != nil {
		t.Fatal(err)
	}
	if db.txs != 0 {
		t.Fatal("empty apply opened a tx")
	}
}

func TestApplyMapsPostgresErrors(t *testing.T) {
	db := &fakeDB{err: &pgconn.PgError{Code: "23514", Message: "check violation"}}
	err := NewOverrides(db, nil).Apply(context.Background(), domain.Change{List: domain.ListBlacklist, Added: []string{"x"}})
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		t.Fatalf("err = %v, want pg error in chain", err)
	}
}

func TestLoadMissingTableIsEmpty(t *testing.T) {
	db := &fakeDB{qryErr: &pgconn.PgError{Code: "42P01"}}
	got, err := NewOverrides(db, nil).Load(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v %v", got, err)
	}
}

func TestNewOverridesNeedsRunner(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewOverrides(nil, nil)
}
