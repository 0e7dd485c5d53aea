package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"profanity/internal/platform/store"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeQ struct{ id int }

func (f *fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }

type fakeTx struct {
	fakeQ
	errs  []error
	calls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(store.RowQuerier) error) error {
	f.calls++
	if err := fn(&fakeQ{id: f.calls}); err != nil {
		return err
	}
	if len(f.errs) >= f.calls {
		return f.errs[f.calls-1]
	}
	return nil
}

type overrides struct{ q Queryer }

var bindOverrides = BindFunc[*overrides](func(q Queryer) *overrides { return &overrides{q: q} })

func mustPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		msg := ""
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
		if !strings.Contains(msg, want) {
			t.Fatalf("panic %q, want it to contain %q", msg, want)
		}
	}()
	fn()
}

func TestMustBind(t *testing.T) {
	q := &fakeQ{}
	if got := MustBind[*overrides](bindOverrides, q); got.q != q {
		t.Fatal("repo not bound to the given queryer")
	}
	mustPanic(t, "nil Queryer", func() { MustBind[*overrides](bindOverrides, nil) })
}

func TestWithTxBindsToTx(t *testing.T) {
	tx := &fakeTx{}
	var seen Queryer
	err := WithTx(context.Background(), tx, bindOverrides, func(r *overrides) error {
		seen = r.q
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen == nil || seen == Queryer(&tx.fakeQ) {
		t.Fatal("repo should be bound to the transaction, not the pool")
	}
}

func TestWithTxRetriesSerializationFailures(t *testing.T) {
	conflict := &pgconn.PgError{Code: "40001"}
	tx := &fakeTx{errs: []error{conflict, nil}}
	if err := WithTx(context.Background(), tx, bindOverrides, func(*overrides) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if tx.calls != 2 {
		t.Fatalf("calls = %d, want 2", tx.calls)
	}

	tx = &fakeTx{errs: []error{conflict, conflict, conflict, conflict}}
	err := WithTx(context.Background(), tx, bindOverrides, func(*overrides) error { return nil })
	if !errors.Is(err, conflict) || tx.calls != TxAttempts {
		t.Fatalf("err = %v calls = %d", err, tx.calls)
	}
}

func TestWithTxDoesNotRetryOtherErrors(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")
	err := WithTx(context.Background(), tx, bindOverrides, func(*overrides) error { return boom })
	if !errors.Is(err, boom) || tx.calls != 1 {
		t.Fatalf("err = %v calls = %d", err, tx.calls)
	}
}

type fakePinger struct {
	ctx context.Context
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.ctx = ctx
	return f.err
}

func TestPing(t *testing.T) {
	fp := &fakePinger{}
	if err := Ping(context.Background(), "pg", fp); err != nil {
		t.Fatal(err)
	}
	dl, ok := fp.ctx.Deadline()
	if !ok || time.Until(dl) > PingTimeout {
		t.Fatalf("default deadline missing: %v %v", dl, ok)
	}

	fp.err = errors.New("refused")
	if err := Ping(context.Background(), "ch", fp); err == nil || !strings.Contains(err.Error(), "ch ping failed: refused") {
		t.Fatalf("err = %v", err)
	}
	if err := Ping(context.Background(), "pg", nil); err == nil {
		t.Fatal("nil dependency must fail")
	}
}

type fakeGuard struct{ err error }

func (f fakeGuard) Guard(context.Context) error { return f.err }

func TestMustGuard(t *testing.T) {
	MustGuard(context.Background(), fakeGuard{})
	mustPanic(t, "dependency guard failed: down", func() {
		MustGuard(context.Background(), fakeGuard{err: errors.New("down")})
	})
}
