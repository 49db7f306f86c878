package model

import (
	"crypto/md5"
	"fmt"
	"sort"
)

// Coordinate identifies a cell by 1-indexed row and column.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d-%d", c.Row, c.Col)
}

// InBounds reports whether c lies within a height x width grid.
func (c Coordinate) InBounds(height, width int) bool {
	return c.Row >= 1 && c.Row <= height && c.Col >= 1 && c.Col <= width
}

// AliveSet is the sparse set of alive cells for one generation.
type AliveSet map[Coordinate]struct{}

// NewAliveSet builds a set from the given cells; duplicates collapse.
func NewAliveSet(cells ...Coordinate) AliveSet {
	s := make(AliveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is alive.
func (s AliveSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of alive cells
func (s AliveSet) Len() int { return len(s) }

// Union returns a new set holding the cells of s and other.
func (s AliveSet) Union(other AliveSet) AliveSet {
	out := make(AliveSet, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells.
func (s AliveSet) Equal(other AliveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells ordered by row, then column.
func (s AliveSet) Sorted() []Coordinate {
	cells := make([]Coordinate, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Hash returns an MD5 digest of the set, independent of iteration order.
func (s AliveSet) Hash() string {
	h := md5.New()
	for _, c := range s.Sorted() {
		fmt.Fprintf(h, "%d-%d;", c.Row, c.Col)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
