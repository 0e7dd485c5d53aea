package repo

import (
	"context"
	"sync"
	"time"

	"profanity/internal/platform/logger"
	"profanity/internal/platform/metrics"
	"profanity/internal/platform/store"
	"profanity/internal/services/api/filter/domain"

	"github.com/google/uuid"
)

// EventsTable is the clickhouse table events are appended to:
//
//	CREATE TABLE filter_events (
//	  id UUID, at DateTime64(3, 'UTC'), op LowCardinality(String),
//	  languages Array(LowCardinality(String)), matches UInt32, flagged UInt8
//	) ENGINE = MergeTree ORDER BY (op, at)
const EventsTable = "filter_events"

// EventsOptions tunes batching
type EventsOptions struct {
	Buffer    int
	BatchSize int
	Interval  time.Duration
}

func (o EventsOptions) withDefaults() EventsOptions {
	if o.Buffer <= 0 {
		o.Buffer = 4096
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 500
	}
	if o.Interval <= 0 {
		o.Interval = 2 * time.Second
	}
	return o
}

// Events buffers filter events and appends them to clickhouse in batches.
// Record never blocks a request: when the buffer is full the event is dropped
type Events struct {
	ch   store.Clickhouse
	opt  EventsOptions
	m    *metrics.Metrics
	log  *logger.Logger
	now  func() time.Time
	in   chan domain.Event
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewEvents builds a sink; call Run to start delivery. m may be nil
func NewEvents(ch store.Clickhouse, opt EventsOptions, m *metrics.Metrics, log *logger.Logger) *Events {
	if log == nil {
		log = logger.Named("filter.events")
	}
	opt = opt.withDefaults()
	return &Events{
		ch:   ch,
		opt:  opt,
		m:    m,
		log:  log,
		now:  time.Now,
		in:   make(chan domain.Event, opt.Buffer),
		stop: make(chan struct{}),
	}
}

// Record enqueues ev
func (e *Events) Record(_ context.Context, ev domain.Event) error {
	select {
	case e.in <- ev:
	default:
		e.count("dropped", 1)
	}
	return nil
}

// Run delivers batches until Close. It returns immediately; delivery happens on its own goroutine
func (e *Events) Run(ctx context.Context) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.loop(context.WithoutCancel(ctx))
	}()
}

// Close stops delivery after flushing what is buffered
func (e *Events) Close() {
	e.once.Do(func() { close(e.stop) })
	e.wg.Wait()
}

func (e *Events) loop(ctx context.Context) {
	tick := time.NewTicker(e.opt.Interval)
	defer tick.Stop()

	batch := make([][]any, 0, e.opt.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		fctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := e.ch.Insert(fctx, EventsTable, batch)
		cancel()
		if err != nil {
			e.log.Warn().Err(err).Int("rows", len(batch)).Msg("filter events insert failed")
			e.count("failed", len(batch))
		} else {
			e.count("ok", len(batch))
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev := <-e.in:
			batch = append(batch, e.row(ev))
			if len(batch) >= e.opt.BatchSize {
				flush()
			}
		case <-tick.C:
			flush()
		case <-e.stop:
			for {
				select {
				case ev := <-e.in:
					batch = append(batch, e.row(ev))
				default:
					flush()
					return
				}
			}
		}
	}
}

func (e *Events) row(ev domain.Event) []any {
	var flagged uint8
	if ev.Flagged {
		flagged = 1
	}
	langs := ev.Languages
	if langs == nil {
		langs = []string{}
	}
	return []any{uuid.New(), e.now().UTC(), ev.Op, langs, uint32(ev.Matches), flagged}
}

func (e *Events) count(outcome string, n int) {
	if e.m != nil {
		e.m.Events.WithLabelValues(outcome).Add(float64(n))
	}
}
