//go:build profile

// Package profiler records named scopes and reports their timings. Without
// the "profile" build tag every call is a no-op.
package profiler

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hubastard/flatland/engine/logging"
)

// Init must be called once (e.g., on app start) with a capacity (#events).
// Start is a no-op until then.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	evrb.init(capacity)
}

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !evrb.ready.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Now().UnixNano()
	evrb.push(evEntry{AtNS: start, FrameID: id, Open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		evrb.push(evEntry{AtNS: end, FrameID: id, Open: false})
	}
}

// Scope aggregates the closed spans of one name.
type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s Scope) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Summary folds the recorded events into per-scope totals, slowest first.
func Summary() []Scope {
	evs := evrb.snapshot()
	muFrames.Lock()
	names := slices.Clone(frames)
	muFrames.Unlock()

	scopes := make([]Scope, len(names))
	for i, n := range names {
		scopes[i].Name = n
	}
	// Opens waiting for their close, per scope id.
	open := make(map[int][]int64)
	for _, e := range evs {
		if e.Open {
			open[e.FrameID] = append(open[e.FrameID], e.AtNS)
			continue
		}
		stack := open[e.FrameID]
		if len(stack) == 0 {
			// open fell out of the ring
			continue
		}
		d := time.Duration(e.AtNS - stack[len(stack)-1])
		open[e.FrameID] = stack[:len(stack)-1]
		s := &scopes[e.FrameID]
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
	}

	scopes = slices.DeleteFunc(scopes, func(s Scope) bool { return s.Count == 0 })
	slices.SortFunc(scopes, func(a, b Scope) int {
		return cmp.Or(cmp.Compare(b.Total, a.Total), cmp.Compare(a.Name, b.Name))
	})
	return scopes
}

// Report logs Summary at info level.
func Report() {
	for _, s := range Summary() {
		logging.Logger().Info("profile",
			"scope", s.Name, "count", s.Count,
			"total", s.Total, "mean", s.Mean(), "max", s.Max)
	}
}

// ---------- event ring ----------

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

type evRing struct {
	mu    sync.Mutex
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e evEntry) {
	r.mu.Lock()
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
	r.mu.Unlock()
}

// snapshot preserves write order.
func (r *evRing) snapshot() []evEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]evEntry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var evrb evRing

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}
