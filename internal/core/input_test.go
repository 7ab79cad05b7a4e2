package core

import "testing"

func TestInputFrameMoveLastWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionUp)

	if f.Move != ActionUp {
		t.Errorf("Move = %v, expected Up", f.Move)
	}
	if f.Has(ActionLeft) {
		t.Error("superseded movement should be dropped")
	}
	if !f.Has(ActionPause) || !f.Has(ActionUp) {
		t.Error("expected Pause and Up to be set")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionRestart)

	f.Clear()

	if f.Has(ActionRight) || f.Has(ActionRestart) || f.Move != ActionNone {
		t.Error("Clear should reset actions and movement")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
	if !ActionDown.IsMove() || ActionPause.IsMove() {
		t.Error("IsMove misclassified actions")
	}
}
