package scrape

import (
	"sync"
	"time"
)

// Stats tracks sweep progress counters for the daemon's status API.
type Stats struct {
	mu sync.Mutex

	sweeps      int
	pages       int
	adsSeen     int
	published   int
	skipped     int
	failed      int
	lastSweepAt time.Time
}

// Snapshot is a read-only, JSON-safe copy of the counters.
type Snapshot struct {
	Sweeps      int       `json:"sweeps"`
	Pages       int       `json:"pages"`
	AdsSeen     int       `json:"ads_seen"`
	Published   int       `json:"published"`
	Skipped     int       `json:"skipped"`
	Failed      int       `json:"failed"`
	LastSweepAt time.Time `json:"last_sweep_at"`
}

func (s *Stats) SweepDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	s.lastSweepAt = time.Now()
}

func (s *Stats) PageDone(ads int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages++
	s.adsSeen += ads
}

func (s *Stats) Published() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published++
}

func (s *Stats) Skipped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

func (s *Stats) Failed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed++
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Sweeps:      s.sweeps,
		Pages:       s.pages,
		AdsSeen:     s.adsSeen,
		Published:   s.published,
		Skipped:     s.skipped,
		Failed:      s.failed,
		LastSweepAt: s.lastSweepAt,
	}
}
