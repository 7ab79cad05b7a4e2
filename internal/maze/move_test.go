package maze

import (
	"testing"

	"github.com/vovakirdan/mazechase/internal/core"
)

func TestTryMove(t *testing.T) {
	g := NewGrid([]string{"001"}, 3, 1, 16)
	start := core.NewRect(0, 0, 16, 16)

	next, blocked := TryMove(start, DirRight, 16, g)
	if blocked || next.X != 16 {
		t.Errorf("move right = %+v, %v, want x=16 unblocked", next, blocked)
	}

	next, blocked = TryMove(next, DirRight, 1, g)
	if !blocked || next.X != 16 {
		t.Errorf("move into wall = %+v, %v, want unchanged and blocked", next, blocked)
	}

	next, blocked = TryMove(start, DirUp, 1, g)
	if !blocked || next != start {
		t.Errorf("move off grid = %+v, %v, want unchanged and blocked", next, blocked)
	}

	next, blocked = TryMove(start, DirNone, 16, g)
	if blocked || next != start {
		t.Errorf("DirNone = %+v, %v, want unchanged and unblocked", next, blocked)
	}
}

func TestDirectionRotation(t *testing.T) {
	d := DirRight
	want := []Direction{DirDown, DirLeft, DirUp, DirRight}
	for i, w := range want {
		d = d.Clockwise()
		if d != w {
			t.Fatalf("rotation %d = %v, want %v", i, d, w)
		}
	}
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		if d.Reverse().Reverse() != d {
			t.Errorf("%v reversed twice should be itself", d)
		}
		dx, dy := d.Delta()
		rx, ry := d.Reverse().Delta()
		if dx != -rx || dy != -ry {
			t.Errorf("%v reverse delta mismatch", d)
		}
	}
}
