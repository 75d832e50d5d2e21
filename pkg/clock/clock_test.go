package clock

import (
	"math"
	"testing"
)

// TestBPMValue reproduces the reference implementation's bpm_value_test
// exactly, including the floor()'d expected microsecond periods.
func TestBPMValue(t *testing.T) {
	if got := math.Floor(periodMicros(120.0, 96)); got != 5208 {
		t.Fatalf("periodMicros(120, 96).floor() = %v, want 5208", got)
	}
	if got := math.Floor(periodMicros(120.0, 24)); got != 20833 {
		t.Fatalf("periodMicros(120, 24).floor() = %v, want 20833", got)
	}

	c := New(120.0, 96)
	if math.Floor(c.PeriodMicros()) != 5208 {
		t.Fatalf("PeriodMicros().floor() = %v, want 5208", math.Floor(c.PeriodMicros()))
	}
	if c.BPM() != 120 {
		t.Fatalf("BPM() = %v, want 120", c.BPM())
	}
	if c.PPQ() != 96 {
		t.Fatalf("PPQ() = %v, want 96", c.PPQ())
	}

	c.SetPPQ(24)
	if math.Floor(c.PeriodMicros()) != 20833 {
		t.Fatalf("after SetPPQ(24), PeriodMicros().floor() = %v, want 20833", math.Floor(c.PeriodMicros()))
	}
	if c.BPM() != 120 {
		t.Fatalf("SetPPQ should not change BPM, got %v", c.BPM())
	}
	if c.PPQ() != 24 {
		t.Fatalf("PPQ() = %v, want 24", c.PPQ())
	}

	c.SetBPM(2.0)
	c.SetPPQ(96)
	if c.BPM() != 2 {
		t.Fatalf("BPM() = %v, want 2", c.BPM())
	}
	if c.PPQ() != 96 {
		t.Fatalf("PPQ() = %v, want 96", c.PPQ())
	}
	if math.Floor(c.PeriodMicros()) == 5208 {
		t.Fatal("PeriodMicros should have changed after SetBPM/SetPPQ")
	}

	c.SetPeriodMicros(5_208.333333)
	if math.Floor(c.BPM()) != 120 {
		t.Fatalf("BPM().floor() = %v, want 120", math.Floor(c.BPM()))
	}
	if c.PPQ() != 96 {
		t.Fatalf("PPQ() = %v, want 96", c.PPQ())
	}
	if math.Floor(c.PeriodMicros()) != 5208 {
		t.Fatalf("PeriodMicros().floor() = %v, want 5208", math.Floor(c.PeriodMicros()))
	}
}

func TestClampsOnSetters(t *testing.T) {
	c := Default()
	c.SetBPM(-10)
	if c.BPM() != MinBPM {
		t.Fatalf("SetBPM should clamp to MinBPM, got %v", c.BPM())
	}
	c.SetPPQ(0)
	if c.PPQ() != MinPPQ {
		t.Fatalf("SetPPQ should clamp to MinPPQ, got %v", c.PPQ())
	}
	c.SetPeriodMicros(-1)
	if c.PeriodMicros() != MinPeriodMicro {
		t.Fatalf("SetPeriodMicros should clamp to MinPeriodMicro, got %v", c.PeriodMicros())
	}
}
