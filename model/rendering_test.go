package model

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestDisplayPrintsBottomRowLast(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	if err := r.Display(2, 3, NewAliveSet(Coordinate{1, 1}, Coordinate{2, 3})); err != nil {
		t.Fatal(err)
	}

	want := "+-+-+-+\n" +
		"|O|O|X|\n" +
		"+-+-+-+\n" +
		"|X|O|O|\n" +
		"+-+-+-+\n"
	if buf.String() != want {
		t.Fatalf("Display output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestDisplayRejectsOutOfBounds(t *testing.T) {
	var buf bytes.Buffer
	err := NewTerminalRenderer(&buf).Display(2, 2, NewAliveSet(Coordinate{3, 1}))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("partial output written: %q", buf.String())
	}
}
