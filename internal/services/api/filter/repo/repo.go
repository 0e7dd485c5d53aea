// Package repo persists word list overrides in postgres and appends filter
// events to clickhouse
package repo

import (
	"context"

	"profanity/internal/modkit/repokit"
	perr "profanity/internal/platform/errors"
	"profanity/internal/platform/store"
	"profanity/internal/services/api/filter/domain"
)

// Repo is the SQL surface for one querier, pool or tx
type Repo interface {
	EnsureSchema(ctx context.Context) error
	All(ctx context.Context) ([]domain.Override, error)
	Insert(ctx context.Context, list domain.List, phrases []string) (int64, error)
	Delete(ctx context.Context, list domain.List, phrases []string) (int64, error)
}

type (
	// PG binds Repo to postgres queriers
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns the postgres binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const schema = `
create table if not exists filter_overrides (
	list       text        not null check (list in ('blacklist', 'whitelist', 'removed')),
	phrase     text        not null check (length(phrase) between 1 and 256),
	created_at timestamptz not null default now(),
	primary key (list, phrase)
)`

func (r *queries) EnsureSchema(ctx context.Context) error {
	_, err := store.ExecN(ctx, r.q, schema)
	return perr.FromPostgres(err, "create filter_overrides")
}

func (r *queries) All(ctx context.Context) ([]domain.Override, error) {
	out, err := store.Many(ctx, r.q, scanOverride,
		`select phrase, list from filter_overrides order by list, phrase`)
	if perr.IsUndefinedTable(err) {
		return nil, nil
	}
	return out, perr.FromPostgres(err, "load filter overrides")
}

func scanOverride(row store.Row) (domain.Override, error) {
	var (
		o    domain.Override
		list string
	)
	if err := row.Scan(&o.Phrase, &list); err != nil {
		return o, err
	}
	o.List = domain.List(list)
	return o, nil
}

func (r *queries) Insert(ctx context.Context, list domain.List, phrases []string) (int64, error) {
	if len(phrases) == 0 {
		return 0, nil
	}
	n, err := store.ExecN(ctx, r.q, `
insert into filter_overrides (list, phrase)
select $1, p from unnest($2::text[]) as p
on conflict (list, phrase) do nothing`, string(list), phrases)
	return n, perr.FromPostgres(err, "insert filter overrides")
}

func (r *queries) Delete(ctx context.Context, list domain.List, phrases []string) (int64, error) {
	if len(phrases) == 0 {
		return 0, nil
	}
	n, err := store.ExecN(ctx, r.q,
		`delete from filter_overrides where list = $1 and phrase = any($2::text[])`, string(list), phrases)
	return n, perr.FromPostgres(err, "delete filter overrides")
}

// Overrides implements domain.OverrideStore over a TxRunner
type Overrides struct {
	db     repokit.TxRunner
	binder repokit.Binder[Repo]
}

// NewOverrides panics on a nil runner; callers skip persistence instead
func NewOverrides(db repokit.TxRunner, binder repokit.Binder[Repo]) *Overrides {
	if db == nil {
		panic("filter.Overrides requires a non nil TxRunner")
	}
	if binder == nil {
		binder = NewPG()
	}
	return &Overrides{db: db, binder: binder}
}

// EnsureSchema creates the table when missing
func (o *Overrides) EnsureSchema(ctx context.Context) error {
	return repokit.MustBind(o.binder, o.db).EnsureSchema(ctx)
}

// Load returns every override. A missing table reads as empty
func (o *Overrides) Load(ctx context.Context) ([]domain.Override, error) {
	return repokit.MustBind(o.binder, o.db).All(ctx)
}

// Apply writes all changes in one transaction
func (o *Overrides) Apply(ctx context.Context, changes ...domain.Change) error {
	pending := changes[:0:0]
	for _, c := range changes {
		if !c.Empty() {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	return repokit.WithTx(ctx, o.db, o.binder, func(r Repo) error {
		for _, c := range pending {
			if _, err := r.Delete(ctx, c.List, c.Gone); err != nil {
				return err
			}
			if _, err := r.Insert(ctx, c.List, c.Added); err != nil {
				return err
			}
		}
		return nil
	})
}
