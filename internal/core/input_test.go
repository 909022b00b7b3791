package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsFirstTimestamp(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewInputFrame()

	f.SetAt(ActionLane1, base)
	f.SetAt(ActionLane1, base.Add(5*time.Millisecond))

	at, ok := f.At(ActionLane1)
	if !ok {
		t.Fatal("ActionLane1 should be set")
	}
	if !at.Equal(base) {
		t.Errorf("At() = %v, expected first timestamp %v", at, base)
	}
	if f.Has(ActionLane0) {
		t.Error("ActionLane0 should not be set")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)

	c := f.Clone()
	f.Clear()

	if f.Has(ActionRestart) {
		t.Error("Clear() should remove all actions")
	}
	if !c.Has(ActionRestart) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestLaneActions(t *testing.T) {
	for i := range len(LaneActions) {
		a := LaneAction(i)
		lane, ok := a.Lane()
		if !ok || lane != i {
			t.Errorf("LaneAction(%d).Lane() = %d, %v", i, lane, ok)
		}
	}

	if LaneAction(4) != ActionNone || LaneAction(-1) != ActionNone {
		t.Error("out-of-range lanes should map to ActionNone")
	}
	if _, ok := ActionRestart.Lane(); ok {
		t.Error("ActionRestart is not a lane action")
	}
	if ActionLane2.String() != "Lane2" {
		t.Errorf("String() = %q, expected Lane2", ActionLane2.String())
	}
}
