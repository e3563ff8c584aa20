package report

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/zeusync/rewardshaping/internal/core/observability/log"
)

type entry struct {
	value float64
	count uint64
	avg   bool
}

// Report is a keyed sink for per-step values written by rewards.
// Plain keys hold a sum or the last set value; average keys hold a running mean.
type Report struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func New() *Report {
	return &Report{entries: make(map[string]*entry)}
}

// Set overwrites key.
func (r *Report) Set(key string, value float64) {
	r.mu.Lock()
	r.entries[key] = &entry{value: value, count: 1}
	r.mu.Unlock()
}

// Add accumulates value into key.
func (r *Report) Add(key string, value float64) {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok || e.avg {
		e = &entry{}
		r.entries[key] = e
	}
	e.value += value
	e.count++
	r.mu.Unlock()
}

// AddAvg folds value into the running mean stored under key.
func (r *Report) AddAvg(key string, value float64) {
	r.mu.Lock()
	r.addAvg(key, value, 1)
	r.mu.Unlock()
}

func (r *Report) addAvg(key string, mean float64, n uint64) {
	e, ok := r.entries[key]
	if !ok || !e.avg {
		e = &entry{avg: true}
		r.entries[key] = e
	}
	total := e.count + n
	e.value += (mean - e.value) * float64(n) / float64(total)
	e.count = total
}

func (r *Report) Get(key string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return 0, false
	}
	return e.value, true
}

// Count returns how many values were folded into key.
func (r *Report) Count(key string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[key]; ok {
		return e.count
	}
	return 0
}

func (r *Report) Keys() []string {
	r.mu.RLock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

func (r *Report) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Report) Snapshot() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]float64, len(r.entries))
	for k, e := range r.entries {
		out[k] = e.value
	}
	return out
}

// Merge folds other into r. Averages are weighted by their sample counts,
// plain keys are summed.
func (r *Report) Merge(other *Report) {
	if other == nil || other == r {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, oe := range other.entries {
		if oe.avg {
			r.addAvg(k, oe.value, oe.count)
			continue
		}
		e, ok := r.entries[k]
		if !ok || e.avg {
			e = &entry{}
			r.entries[k] = e
		}
		e.value += oe.value
		e.count += oe.count
	}
}

func (r *Report) Clear() {
	r.mu.Lock()
	r.entries = make(map[string]*entry)
	r.mu.Unlock()
}

// Fields renders the report as log fields in key order.
func (r *Report) Fields() []log.Field {
	keys := r.Keys()
	snap := r.Snapshot()
	fields := make([]log.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, log.Float64(k, snap[k]))
	}
	return fields
}

// Fprint writes a two column table of the report.
func (r *Report) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	snap := r.Snapshot()
	for _, k := range r.Keys() {
		if _, err := fmt.Fprintf(tw, "%s\t%.6f\n", k, snap[k]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
