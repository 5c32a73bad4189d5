// Package tokenizer implements a minimal numeric token scanner that
// feeds floating point samples to the CLI, skipping any run of
// characters that fails to parse as a number rather than aborting on
// the first bad token.
package tokenizer

import (
	"bufio"
	"io"
	"strconv"
)

// isTokenChar reports whether r can appear inside a float token: a
// sign, a digit, a decimal point, or an exponent marker.
func isTokenChar(r byte) bool {
	switch r {
	case '+', '-', '.', 'e', 'E':
		return true
	}
	return r >= '0' && r <= '9'
}

// splitFloatTokens is a bufio.SplitFunc that carves runs of
// isTokenChar bytes out of the input, skipping everything else.
func splitFloatTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isTokenChar(data[start]) {
		start++
	}
	if start == len(data) {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}

	end := start
	for end < len(data) && isTokenChar(data[end]) {
		end++
	}
	if end == len(data) && !atEOF {
		// The token might continue in data not yet read; ask for more
		// before returning it.
		return start, nil, nil
	}
	return end, data[start:end], nil
}

// Scanner reads whitespace/punctuation-delimited floating point tokens
// from an io.Reader, skipping any run of characters that fails to
// parse as a float.
type Scanner struct {
	sc *bufio.Scanner
}

// New wraps r in a Scanner.
func New(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(splitFloatTokens)
	return &Scanner{sc: sc}
}

// Next returns the next sample and true, or (0, false) once the
// underlying reader is exhausted. Tokens that fail to parse as a
// float (e.g. a bare "-" or "...") are silently skipped.
func (s *Scanner) Next() (float64, bool) {
	for s.sc.Scan() {
		v, err := strconv.ParseFloat(s.sc.Text(), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

// Err reports any non-EOF error encountered while reading the
// underlying reader.
func (s *Scanner) Err() error {
	return s.sc.Err()
}
