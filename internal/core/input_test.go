package core

import "testing"

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.Pressed(ActionJump) {
		t.Error("Pressed(Jump) should be true after Set")
	}
	if f.Pressed(ActionJump2) {
		t.Error("Pressed(Jump2) should be false")
	}

	f.Clear()
	if f.Pressed(ActionJump) {
		t.Error("Clear should drop pressed edges")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Error("new frame should have no pointer")
	}

	f.SetPointer(Vec2{X: 10, Y: 20})
	f.SetClick()
	if !f.Clicked() {
		t.Error("Clicked should be true after SetClick")
	}

	f.Clear()
	p, ok := f.Pointer()
	if !ok || p.X != 10 || p.Y != 20 {
		t.Errorf("Pointer() = %v, %v, expected (10, 20), true", p, ok)
	}
	if f.Clicked() {
		t.Error("Clear should drop the click edge")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Pressed(ActionJump) || f.Clicked() {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	if !f.Pressed(ActionJump) {
		t.Error("Set should work on a zero frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionJump, "Jump"},
		{ActionJump2, "Jump2"},
		{ActionOption4, "Option4"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestRandIntRange(t *testing.T) {
	r := NewRand(42)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.IntRange(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("IntRange(3, 6) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("IntRange(3, 6) never returned %d", v)
		}
	}

	if got := r.IntRange(5, 5); got != 5 {
		t.Errorf("IntRange(5, 5) = %d, expected 5", got)
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 20; i++ {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
			t.Fatal("same seed should give the same sequence")
		}
	}
}
