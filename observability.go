package genarena

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Stats is a point-in-time snapshot of an arena's bookkeeping.
type Stats struct {
	Name     string
	Len      int // live values
	Slots    int // allocated slots, live or vacant
	Free     int // vacant slots awaiting reuse
	Capacity int // slots available without reallocation
	Inserts  uint64
	Removes  uint64
	Reuses   uint64 // inserts served from the free list
	Grows    uint64 // backing storage reallocations
	Clears   uint64
}

// Stats returns a snapshot of the arena's counters.
func (a *Arena[T]) Stats() Stats {
	if a == nil {
		return Stats{}
	}
	return Stats{
		Name:     a.name,
		Len:      a.len,
		Slots:    len(a.slots),
		Free:     len(a.slots) - a.len,
		Capacity: cap(a.slots),
		Inserts:  a.counters.inserts,
		Removes:  a.counters.removes,
		Reuses:   a.counters.reuses,
		Grows:    a.counters.grows,
		Clears:   a.counters.clears,
	}
}

// EventKind classifies structural changes reported to observers.
type EventKind uint8

const (
	EventGrow EventKind = iota
	EventReserve
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventGrow:
		return "grow"
	case EventReserve:
		return "reserve"
	case EventClear:
		return "clear"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event describes a structural change to an arena.
type Event struct {
	Kind         EventKind
	PrevCapacity int
	Stats        Stats
}

// Observer receives structural events. Observers run synchronously inside the
// mutating call and must not touch the arena.
type Observer interface {
	ArenaChanged(event Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) ArenaChanged(event Event) { f(event) }

func (a *Arena[T]) emit(kind EventKind, prevCap int) {
	if a.observer == nil {
		return
	}
	a.observer.ArenaChanged(Event{Kind: kind, PrevCapacity: prevCap, Stats: a.Stats()})
}

type compositeObserver struct {
	observers []Observer
}

func (c compositeObserver) ArenaChanged(event Event) {
	for _, observer := range c.observers {
		observer.ArenaChanged(event)
	}
}

type loggingObserver struct {
	logger Logger
}

func (o loggingObserver) ArenaChanged(event Event) {
	s := event.Stats
	o.logger.With("arena", s.Name).Info("arena "+event.Kind.String(),
		"prev_capacity", event.PrevCapacity,
		"capacity", s.Capacity,
		"len", s.Len,
		"slots", s.Slots,
		"free", s.Free,
	)
}

func buildObserverChain(cfg config) Observer {
	observers := append([]Observer(nil), cfg.observers...)
	if cfg.logger != nil {
		if _, noop := cfg.logger.(noopLogger); !noop {
			observers = append(observers, loggingObserver{logger: cfg.logger})
		}
	}
	switch len(observers) {
	case 0:
		return nil
	case 1:
		return observers[0]
	default:
		return compositeObserver{observers: observers}
	}
}

// PrometheusOptions configures a PrometheusCollector.
type PrometheusOptions struct {
	// Writer, when set, receives the full exposition after every observation.
	Writer io.Writer
}

// PrometheusCollector keeps the latest Stats per arena name and renders them in
// the Prometheus text exposition format. It is safe for concurrent use and
// implements Observer.
type PrometheusCollector struct {
	options *PrometheusOptions
	mu      sync.Mutex
	samples map[string]Stats
}

// NewPrometheusCollector constructs an empty collector.
func NewPrometheusCollector(opts *PrometheusOptions) *PrometheusCollector {
	if opts == nil {
		opts = &PrometheusOptions{}
	}
	return &PrometheusCollector{
		options: opts,
		samples: make(map[string]Stats),
	}
}

// Observe records a stats snapshot, replacing any earlier one with the same name.
func (c *PrometheusCollector) Observe(stats Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples[stats.Name] = stats
	if writer := c.options.Writer; writer != nil {
		_ = c.writeMetricsLocked(writer)
	}
}

// ArenaChanged implements Observer.
func (c *PrometheusCollector) ArenaChanged(event Event) {
	c.Observe(event.Stats)
}

// WriteMetrics renders every recorded sample to w.
func (c *PrometheusCollector) WriteMetrics(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeMetricsLocked(w)
}

type promSeries struct {
	name  string
	help  string
	typ   string
	value func(Stats) float64
}

var promSeriesList = []promSeries{
	{"genarena_values", "Live values stored in the arena.", "gauge", func(s Stats) float64 { return float64(s.Len) }},
	{"genarena_slots", "Allocated slots, live or vacant.", "gauge", func(s Stats) float64 { return float64(s.Slots) }},
	{"genarena_free_slots", "Vacant slots awaiting reuse.", "gauge", func(s Stats) float64 { return float64(s.Free) }},
	{"genarena_capacity", "Slots available without reallocation.", "gauge", func(s Stats) float64 { return float64(s.Capacity) }},
	{"genarena_inserts_total", "Values inserted.", "counter", func(s Stats) float64 { return float64(s.Inserts) }},
	{"genarena_removes_total", "Values removed.", "counter", func(s Stats) float64 { return float64(s.Removes) }},
	{"genarena_reuses_total", "Inserts served from the free list.", "counter", func(s Stats) float64 { return float64(s.Reuses) }},
	{"genarena_grows_total", "Backing storage reallocations.", "counter", func(s Stats) float64 { return float64(s.Grows) }},
	{"genarena_clears_total", "Clear calls.", "counter", func(s Stats) float64 { return float64(s.Clears) }},
}

func (c *PrometheusCollector) writeMetricsLocked(w io.Writer) error {
	if w == nil {
		return nil
	}
	names := make([]string, 0, len(c.samples))
	for name := range c.samples {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, series := range promSeriesList {
		fmt.Fprintf(&buf, "# HELP %s %s\n", series.name, series.help)
		fmt.Fprintf(&buf, "# TYPE %s %s\n", series.name, series.typ)
		for _, name := range names {
			fmt.Fprintf(&buf, "%s{arena=%q} %g\n", series.name, name, series.value(c.samples[name]))
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var (
	_ Observer = compositeObserver{}
	_ Observer = loggingObserver{}
	_ Observer = (*PrometheusCollector)(nil)
	_ Observer = ObserverFunc(nil)
)
