// Package histogram implements the exponent-indexed logarithmic-bucket
// histogram: a bounded-memory streaming quantile sketch that ingests
// one real-valued sample at a time, compacts itself when its bin
// budget is exhausted, and answers percentile queries by interpolating
// over its bins.
package histogram

import "github.com/sketchkit/loghist/errs"

// BinCap is the maximum number of occupied bins a Sketch may hold
// before it must compact.
const BinCap = 100

// Sketch is the bounded-memory summary of a value distribution. Bins
// are held as two parallel, strictly-ascending-by-alphas slices rather
// than an array of (alpha, count) structs, so the bucket-index search
// in Update can hand the alphas slice directly to internal.LocateAlpha
// without an intermediate copy.
//
// A Sketch is exclusively owned by its creator; no method is safe to
// call concurrently against the same Sketch from multiple goroutines.
// It is deliberately not a concurrent data structure — callers that
// need one should wrap it with their own locking.
type Sketch struct {
	base     int
	exponent int
	count    uint64
	alphas   []int64
	counts   []uint64
}

// New creates an empty Sketch at the given base and initial exponent.
// base must be at least 2; exponent is typically negative (e.g. -3)
// so that early samples land in fine-grained buckets before any
// compaction has occurred.
//
// There is no corresponding Destroy method: under Go's garbage
// collector there is no storage to free and no observable difference
// between a destroyed and an abandoned Sketch.
func New(base, exponent int) (*Sketch, error) {
	if base < 2 {
		return nil, errs.New(errs.PreconditionViolation, "base must be >= 2, got %d", base)
	}
	return &Sketch{
		base:     base,
		exponent: exponent,
		alphas:   make([]int64, 0, BinCap),
		counts:   make([]uint64, 0, BinCap),
	}, nil
}

// Base returns the sketch's fixed logarithmic base.
func (s *Sketch) Base() int { return s.base }

// Exponent returns the sketch's current scale exponent. It only ever
// grows over the life of a Sketch.
func (s *Sketch) Exponent() int { return s.exponent }

// Count returns the total number of samples ever ingested.
func (s *Sketch) Count() uint64 { return s.count }

// BinCount returns the number of currently occupied bins.
func (s *Sketch) BinCount() int { return len(s.alphas) }

// assertBinsPositive verifies that every active bin has count >= 1
// before an operation that depends on it.
func (s *Sketch) assertBinsPositive() error {
	for i, c := range s.counts {
		if c == 0 {
			return errs.New(errs.InvariantViolation, "bin %d has a zero count", i)
		}
	}
	return nil
}
