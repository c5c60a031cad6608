package chunk

import (
	"slices"
	"testing"
)

func collect(n, size int) []Range {
	var out []Range
	for r := range Ranges(n, size) {
		out = append(out, r)
	}
	return out
}

func TestRanges(t *testing.T) {
	tests := []struct {
		name    string
		n, size int
		want    []Range
	}{
		{"empty", 0, 10, nil},
		{"single chunk", 5, 10, []Range{{0, 5}}},
		{"exact multiple", 6, 3, []Range{{0, 3}, {3, 6}}},
		{"remainder", 7, 3, []Range{{0, 3}, {3, 6}, {6, 7}}},
		{"size one", 3, 1, []Range{{0, 1}, {1, 2}, {2, 3}}},
		{"size equals n", 4, 4, []Range{{0, 4}}},
		{"non-positive size", 5, 0, nil},
		{"negative size", 5, -2, nil},
		{"negative n", -3, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.n, tt.size)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Ranges(%d, %d) = %v, want %v", tt.n, tt.size, got, tt.want)
			}
		})
	}
}

func TestRangesPartition(t *testing.T) {
	// The ranges must cover [0, n) exactly once, ascending, each at most size.
	const n, size = 1000, 37
	next := 0
	for r := range Ranges(n, size) {
		if r.Lo != next {
			t.Fatalf("range starts at %d, want %d", r.Lo, next)
		}
		if r.Len() <= 0 || r.Len() > size {
			t.Fatalf("range %v has length %d, want in (0, %d]", r, r.Len(), size)
		}
		next = r.Hi
	}
	if next != n {
		t.Errorf("ranges end at %d, want %d", next, n)
	}
}

func TestRangesEarlyBreak(t *testing.T) {
	count := 0
	for range Ranges(100, 10) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("consumed %d ranges, want 3", count)
	}
}

func TestRangeLen(t *testing.T) {
	if got := (Range{Lo: 3, Hi: 10}).Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}
