package model

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
)

func TestParsePattern(t *testing.T) {
	got, err := ParsePattern("blinker@2-3")
	if err != nil {
		t.Fatal(err)
	}
	want := NewAliveSet(Coordinate{2, 3}, Coordinate{3, 3}, Coordinate{4, 3})
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	block, err := ParsePattern("block")
	if err != nil {
		t.Fatal(err)
	}
	if !block.Contains(Coordinate{1, 1}) || block.Len() != 4 {
		t.Fatalf("block without anchor = %v", block)
	}
}

func TestParsePatternErrors(t *testing.T) {
	if _, err := ParsePattern("spaceship"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if _, err := ParsePattern("glider@x-1"); !errors.Is(err, ErrMalformedCells) {
		t.Fatalf("expected ErrMalformedCells, got %v", err)
	}
	if _, err := Pattern("glider", Coordinate{0, 1}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	if len(names) != len(patterns) || !sort.StringsAreSorted(names) {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestRandomAliveSet(t *testing.T) {
	if s := RandomAliveSet(4, 6, 0, newTestRand(1)); s.Len() != 0 {
		t.Fatalf("density 0 produced %d cells", s.Len())
	}
	if s := RandomAliveSet(4, 6, 1, newTestRand(1)); s.Len() != 24 {
		t.Fatalf("density 1 produced %d cells, want 24", s.Len())
	}

	a := RandomAliveSet(9, 9, 0.4, newTestRand(3))
	b := RandomAliveSet(9, 9, 0.4, newTestRand(3))
	if !a.Equal(b) {
		t.Fatalf("same seed produced different sets")
	}
	if _, err := ToDense(9, 9, a); err != nil {
		t.Fatalf("random cells out of bounds: %v", err)
	}
}
