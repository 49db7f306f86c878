package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	cellSeparator  = ","
	coordSeparator = "-"
)

// ParseAliveSet parses a list such as "2-3,3-3,4-3" into an AliveSet.
// Coordinates are 1-indexed; bounds are checked later by ToDense.
func ParseAliveSet(text string) (AliveSet, error) {
	set := NewAliveSet()
	if strings.TrimSpace(text) == "" {
		return set, nil
	}

	for _, entry := range strings.Split(text, cellSeparator) {
		c, err := parseCoordinate(strings.TrimSpace(entry))
		if err != nil {
			return nil, err
		}
		set[c] = struct{}{}
	}
	return set, nil
}

// ParseCoordinate parses a single "row-col" entry.
func ParseCoordinate(text string) (Coordinate, error) {
	return parseCoordinate(strings.TrimSpace(text))
}

func parseCoordinate(entry string) (Coordinate, error) {
	rowText, colText, ok := strings.Cut(entry, coordSeparator)
	if !ok {
		return Coordinate{}, errors.Wrapf(ErrMalformedCells, "[ParseAliveSet] entry %q is not row-col", entry)
	}

	row, err := strconv.Atoi(rowText)
	if err != nil || row < 1 {
		return Coordinate{}, errors.Wrapf(ErrMalformedCells, "[ParseAliveSet] entry %q has invalid row", entry)
	}
	col, err := strconv.Atoi(colText)
	if err != nil || col < 1 {
		return Coordinate{}, errors.Wrapf(ErrMalformedCells, "[ParseAliveSet] entry %q has invalid column", entry)
	}
	return Coordinate{Row: row, Col: col}, nil
}

// String renders the set in the same format ParseAliveSet accepts.
func (s AliveSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.Sorted() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, cellSeparator)
}
