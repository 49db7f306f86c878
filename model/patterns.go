package model

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// offsets are relative to the anchor cell, in rows then columns.
var patterns = map[string][]Coordinate{
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"block":   {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"glider":  {{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	"toad":    {{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	"beacon":  {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {2, 3}, {3, 2}, {3, 3}},
}

// PatternNames lists the registered seed patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern places the named pattern with its top-left cell at the 1-indexed anchor.
func Pattern(name string, anchor Coordinate) (AliveSet, error) {
	offsets, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q", name)
	}
	if anchor.Row < 1 || anchor.Col < 1 {
		return nil, errors.Wrapf(ErrOutOfBounds, "[Pattern] anchor %v must be positive", anchor)
	}

	set := make(AliveSet, len(offsets))
	for _, o := range offsets {
		set[Coordinate{Row: anchor.Row + o.Row, Col: anchor.Col + o.Col}] = struct{}{}
	}
	return set, nil
}

// ParsePattern parses "name" or "name@row-col"; the anchor defaults to 1-1.
func ParsePattern(text string) (AliveSet, error) {
	name, at, found := strings.Cut(strings.TrimSpace(text), "@")
	anchor := Coordinate{Row: 1, Col: 1}
	if found {
		c, err := ParseCoordinate(at)
		if err != nil {
			return nil, err
		}
		anchor = c
	}
	return Pattern(name, anchor)
}

// RandomAliveSet marks each cell of a height x width grid alive with the given probability
func RandomAliveSet(height, width int, density float64, rng *rand.Rand) AliveSet {
	set := NewAliveSet()
	for row := 1; row <= height; row++ {
		for col := 1; col <= width; col++ {
			if rng.Float64() < density {
				set[Coordinate{Row: row, Col: col}] = struct{}{}
			}
		}
	}
	return set
}
