package sparkline

import "fmt"

// SampleStore is a bounded, insertion-ordered buffer of numeric samples.
// When the store is full, adding a sample evicts the single oldest one.
//
// It is implemented as a circular index buffer so that Add never
// allocates, which matters on constrained targets that push samples at
// interrupt rates.
//
// A SampleStore is not safe for concurrent use; it is owned by exactly
// one Sparkline and mutated from one goroutine.
type SampleStore struct {
	data  []float64
	head  int // next write position
	count int // number of valid samples
}

// NewSampleStore creates an empty store that retains at most capacity
// samples. It returns an error wrapping ErrInvalidConfig when capacity
// is less than 1.
func NewSampleStore(capacity int) (*SampleStore, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalidConfig, capacity)
	}
	return &SampleStore{data: make([]float64, capacity)}, nil
}

// Add appends v as the newest sample, evicting the oldest sample first
// if the store is at capacity. Any finite value is accepted.
func (s *SampleStore) Add(v float64) {
	s.data[s.head] = v
	s.head = (s.head + 1) % len(s.data)
	if s.count < len(s.data) {
		s.count++
	}
}

// Len returns the number of samples currently stored.
func (s *SampleStore) Len() int { return s.count }

// Cap returns the fixed capacity chosen at construction.
func (s *SampleStore) Cap() int { return len(s.data) }

// At returns the i-th sample in chronological order: At(0) is the oldest,
// At(Len()-1) the newest. It panics if i is out of range, matching slice
// indexing semantics.
func (s *SampleStore) At(i int) float64 {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("sparkline: sample index %d out of range [0:%d]", i, s.count))
	}
	start := (s.head - s.count + len(s.data)) % len(s.data)
	return s.data[(start+i)%len(s.data)]
}

// Values returns a copy of the current samples, oldest to newest.
// It returns nil for an empty store.
func (s *SampleStore) Values() []float64 {
	if s.count == 0 {
		return nil
	}
	out := make([]float64, s.count)
	start := (s.head - s.count + len(s.data)) % len(s.data)
	for i := range out {
		out[i] = s.data[(start+i)%len(s.data)]
	}
	return out
}

// Range returns the observed minimum and maximum over the stored samples.
// ok is false when the store is empty; callers must treat that case
// distinctly from a degenerate single-value range, where min == max with
// ok true.
func (s *SampleStore) Range() (min, max float64, ok bool) {
	if s.count == 0 {
		return 0, 0, false
	}
	min = s.At(0)
	max = min
	for i := 1; i < s.count; i++ {
		v := s.At(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}

// Min returns the smallest stored sample; ok is false on an empty store.
func (s *SampleStore) Min() (float64, bool) {
	min, _, ok := s.Range()
	return min, ok
}

// Max returns the largest stored sample; ok is false on an empty store.
func (s *SampleStore) Max() (float64, bool) {
	_, max, ok := s.Range()
	return max, ok
}
