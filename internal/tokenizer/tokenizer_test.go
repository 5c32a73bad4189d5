package tokenizer

import (
	"strings"
	"testing"
)

func TestNextSkipsNonNumericInput(t *testing.T) {
	sc := New(strings.NewReader("1.5 foo 2.25,--,bar3.0\n-4.5e1 end"))

	want := []float64{1.5, 2.25, 3.0, -4.5e1}
	for _, w := range want {
		got, ok := sc.Next()
		if !ok {
			t.Fatalf("expected a value, got none (wanted %v)", w)
		}
		if got != w {
			t.Errorf("Next() = %v, want %v", got, w)
		}
	}

	if _, ok := sc.Next(); ok {
		t.Error("expected no more numeric tokens after trailing junk")
	}
}

func TestNextOnEmptyInput(t *testing.T) {
	sc := New(strings.NewReader(""))
	if _, ok := sc.Next(); ok {
		t.Error("expected false on empty input")
	}
}

func TestNextOnlyJunk(t *testing.T) {
	sc := New(strings.NewReader("abc, ;; ---"))
	if _, ok := sc.Next(); ok {
		t.Error("expected false when no token parses as a float")
	}
}
