package histogram

import (
	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/internal"
)

// Update ingests one sample. On success count has increased by exactly
// one and the bin table remains sorted, positive-count, and within
// budget.
//
// It locates the bucket index at the current scale; on an exact match
// it increments that bin's count; if there is room, it inserts a new
// bin; otherwise it compacts once and retries the insertion exactly
// once, which is guaranteed to succeed either as a match or as a fresh
// insertion.
func (s *Sketch) Update(v float64) error {
	if err := s.assertBinsPositive(); err != nil {
		return errs.Wrap(err, "update: histogram is corrupt before ingesting %v", v)
	}

	alpha := internal.ScaleDown(v, s.base, s.exponent)
	idx, match := internal.LocateAlpha(s.alphas, len(s.alphas), alpha)
	if match {
		s.counts[idx]++
		s.count++
		return nil
	}

	if len(s.alphas) == BinCap {
		if err := s.compact(); err != nil {
			return errs.Wrap(err, "update: failed to compact before inserting %v", v)
		}
		if len(s.alphas) >= BinCap {
			return errs.New(errs.InvariantViolation, "histogram still full after compaction")
		}

		// The scale changed, so the bucket index and insertion point
		// must be recomputed before retrying exactly once.
		alpha = internal.ScaleDown(v, s.base, s.exponent)
		idx, match = internal.LocateAlpha(s.alphas, len(s.alphas), alpha)
		if match {
			s.counts[idx]++
			s.count++
			return nil
		}
	}

	s.insertAt(idx, alpha)
	s.count++

	if len(s.alphas) > BinCap {
		return errs.New(errs.InvariantViolation, "bin count %d exceeds cap %d after insertion", len(s.alphas), BinCap)
	}
	return nil
}

// insertAt shifts bins at and after idx one slot to the right and
// places a fresh (alpha, 1) bin at idx, preserving the strict
// ascending order by alpha.
func (s *Sketch) insertAt(idx int, alpha int64) {
	s.alphas = append(s.alphas, 0)
	s.counts = append(s.counts, 0)
	copy(s.alphas[idx+1:], s.alphas[idx:len(s.alphas)-1])
	copy(s.counts[idx+1:], s.counts[idx:len(s.counts)-1])
	s.alphas[idx] = alpha
	s.counts[idx] = 1
}
