package histogram

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/sketchkit/loghist/errs"
	"github.com/sketchkit/loghist/internal"
)

// recordMagic identifies this package's persisted record format.
const recordMagic = "HST1"

// recordSize is the exact byte length of every persisted record:
// magic(4) + family(4) + base(4) + exponent(4) + count(8) + binCount(4)
// + BinCap*(alpha int64 + count uint64) + checksum(8).
const recordSize = 4 + 4 + 4 + 4 + 8 + 4 + BinCap*(8+8) + 8

// Save writes the sketch as a fixed-size little-endian record: a
// magic tag, family id, base/exponent/count/bin-count, the full
// BinCap-sized (alpha, count) bin table (unused trailing slots written
// as zero), and a trailing xxhash64 checksum over everything before
// it, so a corrupted or truncated record fails closed on load rather
// than silently reconstructing a wrong histogram.
func (s *Sketch) Save(w io.Writer) error {
	var buf bytes.Buffer
	buf.Grow(recordSize)

	buf.WriteString(recordMagic)
	if err := binary.Write(&buf, binary.LittleEndian, int32(internal.FamilyEnum.Histogram.Id)); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, int32(s.base)); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, int32(s.exponent)); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, s.count); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, int32(len(s.alphas))); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}

	for i := 0; i < BinCap; i++ {
		var a int64
		var c uint64
		if i < len(s.alphas) {
			a, c = s.alphas[i], s.counts[i]
		}
		if err := binary.Write(&buf, binary.LittleEndian, a); err != nil {
			return errs.New(errs.IoError, "save: %v", err)
		}
		if err := binary.Write(&buf, binary.LittleEndian, c); err != nil {
			return errs.New(errs.IoError, "save: %v", err)
		}
	}

	checksum := xxhash.Sum64(buf.Bytes())
	if err := binary.Write(&buf, binary.LittleEndian, checksum); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errs.New(errs.IoError, "save: %v", err)
	}
	return nil
}

// Load reads exactly the record Save writes, re-validating sortedness,
// positive bin counts, and the count-conservation total before
// returning. A corrupted or foreign record fails with errs.FormatError
// and never panics on malformed input.
func Load(r io.Reader) (*Sketch, error) {
	data, err := io.ReadAll(io.LimitReader(r, recordSize+1))
	if err != nil {
		return nil, errs.New(errs.IoError, "load: %v", err)
	}
	if len(data) != recordSize {
		return nil, errs.New(errs.FormatError, "load: record is %d bytes, want %d", len(data), recordSize)
	}

	checksumOffset := recordSize - 8
	body := data[:checksumOffset]
	wantChecksum := binary.LittleEndian.Uint64(data[checksumOffset:])
	if gotChecksum := xxhash.Sum64(body); gotChecksum != wantChecksum {
		return nil, errs.New(errs.FormatError, "load: checksum mismatch")
	}

	br := bytes.NewReader(body)

	magic := make([]byte, len(recordMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, errs.New(errs.IoError, "load: %v", err)
	}
	if string(magic) != recordMagic {
		return nil, errs.New(errs.FormatError, "load: unrecognized magic %q", magic)
	}

	var familyID int32
	if err := binary.Read(br, binary.LittleEndian, &familyID); err != nil {
		return nil, errs.New(errs.IoError, "load: %v", err)
	}
	if int(familyID) != internal.FamilyEnum.Histogram.Id {
		return nil, errs.New(errs.FormatError, "load: unrecognized family id %d", familyID)
	}

	var base, exponent, binCount int32
	var count uint64
	for _, field := range []any{&base, &exponent} {
		if err := binary.Read(br, binary.LittleEndian, field); err != nil {
			return nil, errs.New(errs.IoError, "load: %v", err)
		}
	}
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, errs.New(errs.IoError, "load: %v", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &binCount); err != nil {
		return nil, errs.New(errs.IoError, "load: %v", err)
	}

	if base < 2 {
		return nil, errs.New(errs.FormatError, "load: invalid base %d", base)
	}
	if binCount < 0 || binCount > BinCap {
		return nil, errs.New(errs.FormatError, "load: invalid bin count %d", binCount)
	}

	alphas := make([]int64, 0, binCount)
	counts := make([]uint64, 0, binCount)
	var sumCounts uint64
	var prevAlpha int64
	for i := 0; i < BinCap; i++ {
		var a int64
		var c uint64
		if err := binary.Read(br, binary.LittleEndian, &a); err != nil {
			return nil, errs.New(errs.IoError, "load: %v", err)
		}
		if err := binary.Read(br, binary.LittleEndian, &c); err != nil {
			return nil, errs.New(errs.IoError, "load: %v", err)
		}
		if i >= int(binCount) {
			continue
		}
		if c == 0 {
			return nil, errs.New(errs.FormatError, "load: bin %d has zero count", i)
		}
		if i > 0 && prevAlpha >= a {
			return nil, errs.New(errs.FormatError, "load: bins are not strictly sorted at index %d", i)
		}
		alphas = append(alphas, a)
		counts = append(counts, c)
		sumCounts += c
		prevAlpha = a
	}

	if sumCounts != count {
		return nil, errs.New(errs.FormatError, "load: bin counts sum to %d, want %d", sumCounts, count)
	}

	return &Sketch{
		base:     int(base),
		exponent: int(exponent),
		count:    count,
		alphas:   alphas,
		counts:   counts,
	}, nil
}
