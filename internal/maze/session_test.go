package maze

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
	"time"
)

const frame = 100 * time.Millisecond

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func rulesFor(rows []string) Rules {
	r := DefaultRules()
	r.GridHeight = len(rows)
	r.GridWidth = len(rows[0])
	return r
}

func mustSession(t *testing.T, layout Layout) *Session {
	t.Helper()
	s, err := NewSession(layout, rulesFor(layout.Rows))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestParseLayoutMarkers(t *testing.T) {
	l := ParseLayout([]string{
		"1111",
		"1PG1",
		"1G01",
	})
	if l.Player != (Tile{Col: 1, Row: 1}) {
		t.Errorf("player = %+v", l.Player)
	}
	want := []Tile{{Col: 2, Row: 1}, {Col: 1, Row: 2}}
	if !slices.Equal(l.Ghosts, want) {
		t.Errorf("ghosts = %+v, want %+v", l.Ghosts, want)
	}
}

func TestParseLayoutDefaults(t *testing.T) {
	l := ParseLayout([]string{"1111"})
	if l.Player != DefaultPlayerSpawn {
		t.Errorf("player = %+v, want default", l.Player)
	}
	if !slices.Equal(l.Ghosts, DefaultGhostSpawns) {
		t.Errorf("ghosts = %+v, want defaults", l.Ghosts)
	}
}

func TestNewSessionRejectsBlockedSpawn(t *testing.T) {
	rows := []string{"111", "101", "111"}

	_, err := NewSession(Layout{Rows: rows, Player: Tile{Col: 0, Row: 0}}, rulesFor(rows))
	if !errors.Is(err, ErrSpawnBlocked) {
		t.Errorf("player on wall: err = %v, want ErrSpawnBlocked", err)
	}

	_, err = NewSession(Layout{
		Rows:   rows,
		Player: Tile{Col: 1, Row: 1},
		Ghosts: []Tile{{Col: 9, Row: 9}},
	}, rulesFor(rows))
	if !errors.Is(err, ErrSpawnBlocked) {
		t.Errorf("ghost off grid: err = %v, want ErrSpawnBlocked", err)
	}
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	rows := []string{"111", "101", "111"}
	r := rulesFor(rows)
	r.PlayerSize = 9

	_, err := NewSession(Layout{Rows: rows, Player: Tile{Col: 1, Row: 1}}, r)
	if !errors.Is(err, ErrInvalidRules) {
		t.Errorf("err = %v, want ErrInvalidRules", err)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Rules)
		ok     bool
	}{
		{"defaults", func(*Rules) {}, true},
		{"odd cell", func(r *Rules) { r.CellSize = 15 }, false},
		{"player too big", func(r *Rules) { r.PlayerSize = 18 }, false},
		{"player equals cell", func(r *Rules) { r.PlayerSize = 16 }, true},
		{"zero ghost step", func(r *Rules) { r.GhostStep = 0 }, false},
		{"no power", func(r *Rules) { r.PowerDuration = 0 }, false},
		{"empty grid", func(r *Rules) { r.GridWidth = 0 }, false},
		{"negative points", func(r *Rules) { r.DotPoints = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			err := r.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestWinWithSingleDot(t *testing.T) {
	rows := []string{
		"1111",
		"1021",
		"1111",
	}
	s := mustSession(t, Layout{Rows: rows, Player: Tile{Col: 1, Row: 1}})
	s.SetPlayerIntent(DirRight)

	res := s.Tick(epoch)
	if res.Status != StatusWon {
		t.Fatalf("status = %v, want won", res.Status)
	}
	if res.Score != 10 {
		t.Errorf("score = %d, want 10", res.Score)
	}
	if !slices.Contains(res.Events, EventDotEaten) || !slices.Contains(res.Events, EventCleared) {
		t.Errorf("events = %v, want dot and cleared", res.Events)
	}

	again := s.Tick(epoch.Add(frame))
	if again.Status != StatusWon || again.Score != 10 || len(again.Events) != 0 {
		t.Errorf("tick after win = %+v, want frozen", again)
	}
}

func TestPowerModeDuration(t *testing.T) {
	rows := []string{
		"111111",
		"103012",
		"111111",
	}
	s := mustSession(t, Layout{Rows: rows, Player: Tile{Col: 1, Row: 1}})
	s.SetPlayerIntent(DirRight)

	res := s.Tick(epoch)
	if res.Score != 50 || !slices.Contains(res.Events, EventPelletEaten) {
		t.Fatalf("first tick = %+v, want pellet eaten", res)
	}
	if !s.Snapshot().PowerActive {
		t.Fatal("power should be active after pellet")
	}

	s.Tick(epoch.Add(7*time.Second - time.Millisecond))
	snap := s.Snapshot()
	if !snap.PowerActive {
		t.Fatal("power should still be active just before 7s")
	}
	if snap.PowerRemaining != time.Millisecond {
		t.Errorf("remaining = %s, want 1ms", snap.PowerRemaining)
	}

	res = s.Tick(epoch.Add(7 * time.Second))
	if s.Snapshot().PowerActive {
		t.Fatal("power should be off at 7s")
	}
	if !slices.Contains(res.Events, EventPowerEnded) {
		t.Errorf("events = %v, want power ended", res.Events)
	}
	if res.Status != StatusRunning {
		t.Errorf("status = %v, want running with unreachable dot left", res.Status)
	}
}

// chaseRows puts a ghost two tiles left of the player, heading right into
// the player's resting tile. The dot behind the wall keeps the level open.
func chaseRows(pickup byte) []string {
	return []string{
		"11111111",
		"100" + "0" + string(pickup) + "121",
		"11111111",
	}
}

func runUntil(s *Session, stop func(Result) bool, limit int) (Result, int) {
	var res Result
	for i := 1; i <= limit; i++ {
		res = s.Tick(epoch.Add(time.Duration(i) * frame))
		if stop(res) {
			return res, i
		}
	}
	return res, limit
}

func TestCaptureDuringPowerMode(t *testing.T) {
	rows := chaseRows('3')
	s := mustSession(t, Layout{
		Rows:   rows,
		Player: Tile{Col: 3, Row: 1},
		Ghosts: []Tile{{Col: 1, Row: 1}},
	})
	s.SetPlayerIntent(DirRight)

	res, n := runUntil(s, func(r Result) bool {
		return slices.Contains(r.Events, EventGhostCaptured) || r.Status.Terminal()
	}, 200)

	if n != 36 {
		t.Errorf("captured on tick %d, want 36", n)
	}
	if res.Status != StatusRunning {
		t.Fatalf("status = %v, want running", res.Status)
	}
	if res.Score != 250 {
		t.Errorf("score = %d, want 250", res.Score)
	}
	g := s.Snapshot().Ghosts[0]
	if g.Tile != (Tile{Col: 1, Row: 1}) || g.Rect != s.ghosts[0].Spawn {
		t.Errorf("ghost at %+v, want back on spawn", g.Rect)
	}
}

func TestCaptureWithoutPowerLoses(t *testing.T) {
	rows := chaseRows('0')
	s := mustSession(t, Layout{
		Rows:   rows,
		Player: Tile{Col: 3, Row: 1},
		Ghosts: []Tile{{Col: 1, Row: 1}},
	})
	s.SetPlayerIntent(DirRight)

	res, n := runUntil(s, func(r Result) bool { return r.Status.Terminal() }, 200)
	if res.Status != StatusLost {
		t.Fatalf("status = %v after %d ticks, want lost", res.Status, n)
	}
	if !slices.Contains(res.Events, EventCaught) {
		t.Errorf("events = %v, want caught", res.Events)
	}

	before := s.Snapshot()
	s.SetPlayerIntent(DirLeft)
	for i := 0; i < 10; i++ {
		after := s.Tick(epoch.Add(time.Hour + time.Duration(i)*frame))
		if after.Status != StatusLost || after.Score != res.Score {
			t.Fatalf("tick after loss = %+v", after)
		}
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("snapshot changed after the session was lost")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	rows := []string{
		"111111111",
		"1P2222221",
		"121121121",
		"123222321",
		"121112121",
		"122G22221",
		"111111111",
	}
	rng := rand.New(rand.NewPCG(3, 5))
	dirs := []Direction{DirLeft, DirRight, DirUp, DirDown}

	for round := 0; round < 20; round++ {
		s := mustSession(t, ParseLayout(rows))
		prev := 0
		for i := 0; i < 3000; i++ {
			if i%4 == 0 {
				s.SetPlayerIntent(dirs[rng.IntN(len(dirs))])
			}
			res := s.Tick(epoch.Add(time.Duration(i) * frame))
			if res.Score < prev {
				t.Fatalf("round %d tick %d: score dropped %d -> %d", round, i, prev, res.Score)
			}
			prev = res.Score
			if res.Status.Terminal() {
				break
			}
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	rows := []string{
		"11111",
		"1P2G1",
		"11111",
	}
	s := mustSession(t, ParseLayout(rows))
	snap := s.Snapshot()
	snap.Ghosts[0].Rect.X = 999

	if s.Snapshot().Ghosts[0].Rect.X == 999 {
		t.Error("mutating a snapshot changed the session")
	}
	if snap.RemainingDots != 1 || snap.Status != StatusRunning {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestSessionRandomPlayKeepsEntitiesOutOfWalls(t *testing.T) {
	rows := []string{
		"111111111",
		"13222G231",
		"121121121",
		"122222221",
		"121121121",
		"132P22G31",
		"111111111",
	}
	walls := NewGrid(rows, 9, 7, 16)
	rules := rulesFor(rows)
	// Power never runs out, so every contact after a pellet is a capture.
	rules.PowerDuration = time.Hour

	dirs := []Direction{DirNone, DirLeft, DirRight, DirUp, DirDown}
	var captures, powerTicks int

	for seed := uint64(0); seed < 20; seed++ {
		s, err := NewSession(ParseLayout(rows), rules)
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		rng := rand.New(rand.NewPCG(seed, 42))
		now := epoch

		for tick := 0; tick < 3000 && !s.Status().Terminal(); tick++ {
			if tick%3 == 0 {
				s.SetPlayerIntent(dirs[rng.IntN(len(dirs))])
			}
			now = now.Add(frame)
			res := s.Tick(now)

			captures += countEvents(res.Events, EventGhostCaptured)
			snap := s.Snapshot()
			if snap.PowerActive {
				powerTicks++
			}
			if walls.IsWall(snap.Player) {
				t.Fatalf("seed %d tick %d: player inside wall at %+v", seed, tick, snap.Player)
			}
			for _, g := range snap.Ghosts {
				if walls.IsWall(g.Rect) {
					t.Fatalf("seed %d tick %d: ghost %d inside wall at %+v", seed, tick, g.Index, g.Rect)
				}
			}
		}
	}

	if powerTicks == 0 || captures == 0 {
		t.Errorf("random play never exercised power mode: powerTicks=%d captures=%d", powerTicks, captures)
	}
}

func countEvents(events []Event, want Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}
