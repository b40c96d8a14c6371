package physics

import (
	"testing"
	"time"
)

// TestPauseResumeRoundTrip verifies pause then resume restores exact velocity and acceleration
func TestPauseResumeRoundTrip(t *testing.T) {
	k := NewKinetic(10, 20, 123.456, -78.9)
	k.AY = 9.81

	k.Pause()
	if k.VX != 0 || k.VY != 0 || k.AY != 0 {
		t.Fatalf("Expected zero motion while paused, got vx=%v vy=%v ay=%v", k.VX, k.VY, k.AY)
	}

	k.Resume()
	if k.VX != 123.456 || k.VY != -78.9 || k.AY != 9.81 {
		t.Errorf("Expected restored (123.456, -78.9, 9.81), got (%v, %v, %v)", k.VX, k.VY, k.AY)
	}
}

// TestDoublePauseLosesVelocity verifies the accepted behavior of pausing twice
func TestDoublePauseLosesVelocity(t *testing.T) {
	k := NewKinetic(0, 0, 5, 6)
	k.AY = 1

	k.Pause()
	k.Pause()
	k.Resume()

	if k.VX != 0 || k.VY != 0 || k.AY != 0 {
		t.Errorf("Expected zero motion after pause, pause, resume; got (%v, %v, %v)", k.VX, k.VY, k.AY)
	}
}

// TestResumeWithoutPauseIsNoop verifies a fresh body keeps its motion on resume
func TestResumeWithoutPauseIsNoop(t *testing.T) {
	k := NewKinetic(0, 0, 3, -4)
	k.Resume()
	if k.VX != 3 || k.VY != -4 {
		t.Errorf("Expected (3, -4), got (%v, %v)", k.VX, k.VY)
	}
}

// TestSetVelocityWhilePaused verifies input during pause lands in the cache
func TestSetVelocityWhilePaused(t *testing.T) {
	k := NewKinetic(0, 0, 0, 0)
	k.Pause()

	k.SetVelocityY(-250, true)
	if k.VY != 0 {
		t.Fatalf("Expected live vy to stay 0 while paused, got %v", k.VY)
	}
	k.SetAccelerationY(42, true)

	k.Resume()
	if k.VY != -250 {
		t.Errorf("Expected vy=-250 after resume, got %v", k.VY)
	}
	if k.AY != 42 {
		t.Errorf("Expected ay=42 after resume, got %v", k.AY)
	}
}

func TestDurationOf(t *testing.T) {
	tests := []struct {
		dt   float64
		want time.Duration
	}{
		{0.05, 50 * time.Millisecond},
		{1, time.Second},
		{0, 0},
		{-0.5, 0},
	}
	for _, tt := range tests {
		if got := DurationOf(tt.dt); got != tt.want {
			t.Errorf("DurationOf(%v) = %v, want %v", tt.dt, got, tt.want)
		}
	}
}
