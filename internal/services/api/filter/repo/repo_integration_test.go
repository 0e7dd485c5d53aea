//go:build integration_pg

package repo

import (
	"context"
	"testing"

	"profanity/internal/platform/store"
	"profanity/internal/platform/store/pg/pgtest"
	"profanity/internal/services/api/filter/domain"
)

func TestOverridesRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := pgtest.Start(t)

	st, err := store.Open(ctx, store.Config{
		AppName: "profanity-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close(ctx) })

	o := NewOverrides(st.PG, NewPG())

	got, err := o.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("load before schema: %v %v", got, err)
	}
	if err := o.EnsureSchema(ctx); err != nil {
		t.Fatal(err)
	}

	err = o.Apply(ctx,
		domain.Change{List: domain.ListBlacklist, Added: []string{"blimey", "tsk"}},
		domain.Change{List: domain.ListRemoved, Added: []string{"damn"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	err = o.Apply(ctx,
		domain.Change{List: domain.ListBlacklist, Added: []string{"blimey"}, Gone: []string{"tsk"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	got, err = o.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []domain.Override{
		{Phrase: "blimey", List: domain.ListBlacklist},
		{Phrase: "damn", List: domain.ListRemoved},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %v, want %v", i, got[i], want[i])
		}
	}

	err = o.Apply(ctx, domain.Change{List: "bogus", Added: []string{"x"}})
	if err == nil {
		t.Fatal("check constraint should reject unknown list")
	}
}
