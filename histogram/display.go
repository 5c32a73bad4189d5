package histogram

import (
	"fmt"
	"io"

	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/internal"
)

// Display writes the sketch's debug summary: a header line with
// count/bin-count/base/exponent, followed by (value, count) pairs five
// to a line.
func (s *Sketch) Display(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Histogram: Count = %d, Bin Count = %d, Base = %d, Exponent = %d\n",
		s.count, len(s.alphas), s.base, s.exponent); err != nil {
		return errs.New(errs.IoError, "display: %v", err)
	}
	if _, err := fmt.Fprint(w, "    Bins: \n"); err != nil {
		return errs.New(errs.IoError, "display: %v", err)
	}

	scale := internal.Pow(s.base, s.exponent)
	for i, a := range s.alphas {
		value := float64(a) * scale
		if i%5 == 0 {
			if _, err := fmt.Fprint(w, "    "); err != nil {
				return errs.New(errs.IoError, "display: %v", err)
			}
		}
		sep := " "
		if i%5 == 4 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "(%0.2f, %d)%s", value, s.counts[i], sep); err != nil {
			return errs.New(errs.IoError, "display: %v", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errs.New(errs.IoError, "display: %v", err)
	}
	return nil
}

// DisplayPercentiles writes a tab-separated PCT\tVALUE table, one row
// per p = 0, precision, 2*precision, ... while p < 1. precision must
// be in (0, 1).
func (s *Sketch) DisplayPercentiles(w io.Writer, precision float64) error {
	if precision <= 0 || precision >= 1 {
		return errs.New(errs.PreconditionViolation, "precision %v is outside (0, 1)", precision)
	}

	p := s.Percentiles()
	if _, err := fmt.Fprint(w, "PCT\tVALUE\n"); err != nil {
		return errs.New(errs.IoError, "display-percentiles: %v", err)
	}
	for pct := 0.0; pct < 1.0; pct += precision {
		value, err := p.At(pct)
		if err != nil {
			return errs.Wrap(err, "display-percentiles: failed at pct=%v", pct)
		}
		if _, err := fmt.Fprintf(w, "%f\t%f\n", pct, value); err != nil {
			return errs.New(errs.IoError, "display-percentiles: %v", err)
		}
	}
	return nil
}
