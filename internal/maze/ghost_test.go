package maze

import "testing"

func TestGhostEnclosedCyclesHeading(t *testing.T) {
	g := NewGrid([]string{
		"111",
		"101",
		"111",
	}, 3, 3, 16)
	gh := newGhost(g.TileRect(1, 1), 1, 0)
	start := gh.Rect

	for i, want := range []Direction{DirUp, DirLeft, DirDown, DirRight, DirUp} {
		gh.Update(g)
		if gh.Dir != want {
			t.Fatalf("tick %d: dir = %v, want %v", i+1, gh.Dir, want)
		}
		if gh.Rect != start {
			t.Fatalf("tick %d: enclosed ghost moved to %+v", i+1, gh.Rect)
		}
	}
}

func TestGhostTurnsClockwiseAtCorner(t *testing.T) {
	g := NewGrid([]string{
		"1111",
		"1001",
		"1101",
		"1111",
	}, 4, 4, 16)
	gh := newGhost(g.TileRect(1, 1), 1, 0)

	for rep := 0; rep < 16; rep++ {
		gh.Update(g)
	}
	if gh.Rect.X != 32 || gh.Dir != DirRight {
		t.Fatalf("after 16 ticks: x=%d dir=%v, want x=32 heading right", gh.Rect.X, gh.Dir)
	}

	gh.Update(g)
	if gh.Dir != DirDown {
		t.Fatalf("dir = %v, want down after corner", gh.Dir)
	}
	if gh.Rect.X != 32 || gh.Rect.Y != 16 {
		t.Fatalf("turn tick moved ghost to %+v", gh.Rect)
	}

	gh.Update(g)
	if gh.Rect.Y != 17 {
		t.Errorf("y = %d, want 17 after moving down", gh.Rect.Y)
	}
}

func TestGhostReversesWhenClockwiseBlocked(t *testing.T) {
	g := NewGrid([]string{
		"1111",
		"1001",
		"1111",
	}, 4, 3, 16)
	gh := newGhost(g.TileRect(1, 2), 1, 0)

	// Right blocked, Down blocked, so reverse of Down.
	gh.Update(g)
	if gh.Dir != DirUp {
		t.Fatalf("dir = %v, want up", gh.Dir)
	}
	// Up blocked, Right blocked, so Left; still no move.
	gh.Update(g)
	if gh.Dir != DirLeft {
		t.Fatalf("dir = %v, want left", gh.Dir)
	}
	gh.Update(g)
	if gh.Rect.X != 31 {
		t.Errorf("x = %d, want 31", gh.Rect.X)
	}
}

func TestGhostRespawnKeepsHeading(t *testing.T) {
	g := NewGrid([]string{"0000"}, 4, 1, 16)
	gh := newGhost(g.TileRect(0, 0), 1, 2)
	for rep := 0; rep < 5; rep++ {
		gh.Update(g)
	}
	gh.Respawn()
	if gh.Rect != gh.Spawn {
		t.Errorf("rect = %+v, want spawn %+v", gh.Rect, gh.Spawn)
	}
	if gh.Dir != DirRight {
		t.Errorf("dir = %v, want right", gh.Dir)
	}
}
