package terra

import (
	"fmt"
	"sort"
	"time"
)

// Stopwatch accumulates wall time into named buckets. Not safe for
// concurrent use; the search owns one and runs single-threaded.
type Stopwatch struct {
	buckets map[string]time.Duration
	starts  map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	s.starts[b] = time.Now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	start, ok := s.starts[b]
	if !ok {
		return
	}
	s.buckets[b] += time.Since(start)
	delete(s.starts, b)
}

func (s *Stopwatch) Elapsed(b string) time.Duration {
	return s.buckets[b]
}

func (s *Stopwatch) Reset() {
	s.buckets = make(map[string]time.Duration)
	s.starts = make(map[string]time.Time)
}

// Results lists every bucket total in seconds, one per line, in a
// stable order.
func (s *Stopwatch) Results() string {
	keys := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s: %.4f\n", k, s.buckets[k].Seconds())
	}
	return out
}
