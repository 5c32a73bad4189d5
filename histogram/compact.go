package histogram

import (
	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/internal"
)

// compact rescales the sketch by incrementing the exponent and merging
// adjacent bins whose alphas collapse to the same value under division
// by base, repeating until the bin count is under budget. It is only
// ever invoked from Update when the sketch is full.
func (s *Sketch) compact() error {
	if len(s.alphas) != BinCap {
		return errs.New(errs.InvariantViolation, "compact called with bin_count=%d, want %d", len(s.alphas), BinCap)
	}
	if err := s.assertBinsPositive(); err != nil {
		return errs.Wrap(err, "compact: histogram is corrupt")
	}

	for {
		newAlphas := make([]int64, 0, BinCap)
		newCounts := make([]uint64, 0, BinCap)

		for i, a := range s.alphas {
			rescaled := internal.FloorDivInt64(a, int64(s.base))

			if len(newAlphas) > 0 && newAlphas[len(newAlphas)-1] == rescaled {
				newCounts[len(newCounts)-1] += s.counts[i]
				continue
			}
			newAlphas = append(newAlphas, rescaled)
			newCounts = append(newCounts, s.counts[i])
		}

		s.alphas = newAlphas
		s.counts = newCounts
		s.exponent++

		if len(s.alphas) < BinCap {
			break
		}
	}

	return nil
}
