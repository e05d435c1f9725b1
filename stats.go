package lvlog

import "sync/atomic"

type stats struct {
	writeErrors atomic.Uint64
	panics      atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	// WriteErrors counts failed sink writes, recovered panics included.
	WriteErrors uint64
	Panics      uint64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		WriteErrors: s.writeErrors.Load(),
		Panics:      s.panics.Load(),
	}
}

func (s *stats) reset() {
	s.writeErrors.Store(0)
	s.panics.Store(0)
}
