package record

import "sync/atomic"

// BufferTracker observes the lifetime of text buffers owned by fields.
// Every Alloc is matched by exactly one Free once the owning row is released.
type BufferTracker interface {
	Alloc(n int)
	Free(n int)
}

type NopTracker struct{}

func (NopTracker) Alloc(int) {}
func (NopTracker) Free(int)  {}

// AllocStats is a BufferTracker that counts buffer traffic.
type AllocStats struct {
	allocs    atomic.Int64
	frees     atomic.Int64
	liveBytes atomic.Int64
}

type AllocSnapshot struct {
	Allocs    int64
	Frees     int64
	LiveBytes int64
}

func (s *AllocStats) Alloc(n int) {
	s.allocs.Add(1)
	s.liveBytes.Add(int64(n))
}

func (s *AllocStats) Free(n int) {
	s.frees.Add(1)
	s.liveBytes.Add(-int64(n))
}

func (s *AllocStats) Snapshot() AllocSnapshot {
	return AllocSnapshot{
		Allocs:    s.allocs.Load(),
		Frees:     s.frees.Load(),
		LiveBytes: s.liveBytes.Load(),
	}
}

// Live is the number of buffers allocated and not yet freed.
func (s AllocSnapshot) Live() int64 { return s.Allocs - s.Frees }
