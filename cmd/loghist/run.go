package main

import (
	"io"
	"os"

	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/histogram"
	"github.com/sketchkit/loghist/internal/tokenizer"
)

// runHistogram implements main.c's control flow: load-or-create, ingest
// stdin, report, save. A failure at any stage is logged and returned
// without touching the persistence file on disk.
func runHistogram(opts options, filename string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr)
	defer logger.Sync()

	sketch, err := loadOrCreate(opts, filename)
	if err != nil {
		logger.Errorw("failed to obtain histogram", "error", errs.Report(err))
		return err
	}

	sc := tokenizer.New(stdin)
	for {
		v, ok := sc.Next()
		if !ok {
			break
		}
		if err := sketch.Update(v); err != nil {
			logger.Errorw("failed to update histogram", "error", errs.Report(err))
			return err
		}
	}
	if err := sc.Err(); err != nil {
		logger.Errorw("failed to read input", "error", err)
		return errs.New(errs.IoError, "read stdin: %v", err)
	}

	if !opts.quiet {
		if err := report(sketch, opts, stdout); err != nil {
			logger.Errorw("failed to write report", "error", errs.Report(err))
			return err
		}
	}

	if filename != "" {
		if err := saveToFile(sketch, filename); err != nil {
			logger.Errorw("failed to save histogram", "error", errs.Report(err))
			return err
		}
	}

	return nil
}

func report(sketch *histogram.Sketch, opts options, stdout io.Writer) error {
	if opts.percentile {
		return sketch.DisplayPercentiles(stdout, opts.precision)
	}
	return sketch.Display(stdout)
}

// loadOrCreate loads the histogram from filename if it exists, or
// creates a fresh one at opts.base/opts.exponent otherwise. An empty
// filename always creates a fresh histogram (there is nothing to load
// from).
func loadOrCreate(opts options, filename string) (*histogram.Sketch, error) {
	if filename == "" {
		return histogram.New(opts.base, opts.exponent)
	}

	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return histogram.New(opts.base, opts.exponent)
		}
		return nil, errs.New(errs.IoError, "open %s: %v", filename, err)
	}
	defer f.Close()

	sketch, err := histogram.Load(f)
	if err != nil {
		return nil, errs.Wrap(err, "load histogram from %s", filename)
	}
	return sketch, nil
}

// saveToFile writes sketch to filename via a fresh file, leaving any
// previously-saved record on disk untouched if the save fails partway.
func saveToFile(sketch *histogram.Sketch, filename string) error {
	tmp := filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errs.New(errs.IoError, "create %s: %v", tmp, err)
	}

	if err := sketch.Save(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return errs.Wrap(err, "save histogram to %s", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errs.New(errs.IoError, "close %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return errs.New(errs.IoError, "rename %s to %s: %v", tmp, filename, err)
	}
	return nil
}
