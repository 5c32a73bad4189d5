package histogram

import (
	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/internal"
)

// Percentiles is a derived, transient cumulative-percentile table:
// entry i pairs the fraction of samples strictly below bin i with that
// bin's representative value (its left edge). It is immutable once
// produced by Sketch.Percentiles.
type Percentiles struct {
	cumPct []float64
	values []float64
}

// Percentiles produces the percentile table for the sketch's current
// state. The table has one entry per occupied bin.
func (s *Sketch) Percentiles() Percentiles {
	n := len(s.alphas)
	p := Percentiles{
		cumPct: make([]float64, n),
		values: make([]float64, n),
	}
	if n == 0 {
		return p
	}

	scale := internal.Pow(s.base, s.exponent)
	total := float64(s.count)
	var cum float64
	for i, a := range s.alphas {
		p.cumPct[i] = cum / total
		p.values[i] = float64(a) * scale
		cum += float64(s.counts[i])
	}
	return p
}

// Len reports how many entries the table has.
func (p Percentiles) Len() int { return len(p.values) }

// At interpolates a value for the requested percentile. pct must be
// in [0, 1); p == 1.0 is rejected, so callers wanting the maximum
// should pass 1-epsilon.
func (p Percentiles) At(pct float64) (float64, error) {
	if pct < 0 || pct >= 1 {
		return 0, errs.New(errs.PreconditionViolation, "percentile %v is outside [0, 1)", pct)
	}
	if len(p.values) == 0 {
		return 0, errs.New(errs.PreconditionViolation, "percentile table is empty")
	}

	value := p.values[len(p.values)-1]
	for i := range p.values {
		value = p.values[i]

		if i == len(p.values)-1 {
			return value, nil
		}

		if p.cumPct[i] <= pct && pct <= p.cumPct[i+1] {
			pctRange := p.cumPct[i+1] - p.cumPct[i]
			binRange := p.values[i+1] - p.values[i]

			var correction float64
			if pctRange > 0 {
				correction = ((pct - p.cumPct[i]) / pctRange) * binRange
			}

			if correction < 0 || correction > binRange {
				return 0, errs.New(errs.InvariantViolation,
					"interpolation correction %v outside [0, %v]", correction, binRange)
			}
			return value + correction, nil
		}
	}
	return value, nil
}
