package tick

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOffsetTick_Table(t *testing.T) {
	cases := []struct {
		tick   Tick
		offset Offset
		want   Tick
	}{
		{0, -2, 0},
		{0, 0, 0},
		{1, -1, 0},
		{1, -2, 0},
		{123, -123, 0},
		{123, -12000, 0},
		{2, 0, 2},
		{0, 2, 2},
		{1, 1, 2},
		{800, 0, 800},
		{802, -2, 800},
		{702, 98, 800},
		{902, -102, 800},
	}
	for _, c := range cases {
		if got := OffsetTick(c.tick, c.offset); got != c.want {
			t.Errorf("OffsetTick(%d, %d) = %d, want %d", c.tick, c.offset, got, c.want)
		}
	}
}

// Property 1 (spec): ticks never wrap below zero regardless of offset.
func TestProperty_OffsetTickNeverUnderflows(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("OffsetTick saturates at 0 instead of wrapping", prop.ForAll(
		func(base int, offset int) bool {
			got := OffsetTick(Tick(base), Offset(offset))
			if offset >= 0 {
				return got >= Tick(base)
			}
			return got <= Tick(base)
		},
		gen.IntRange(0, 1_000_000),
		gen.IntRange(-2_000_000, 2_000_000),
	))

	properties.Property("OffsetTick(t, 0) is the identity", prop.ForAll(
		func(base int) bool {
			return OffsetTick(Tick(base), 0) == Tick(base)
		},
		gen.IntRange(0, 1_000_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestTickSched_Add(t *testing.T) {
	s := Relative(5)
	got := s.Add(ReschedRelativeBy(3), 100)
	want := Absolute(108)
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}

	s = Absolute(50)
	got = s.Add(ReschedContextRelativeBy(7), 100)
	if got != Absolute(57) {
		t.Errorf("Add on absolute schedule should offset from its own tick, got %+v", got)
	}

	s = Relative(0)
	got = s.Add(ReschedStop(), 42)
	if got != Absolute(42) {
		t.Errorf("Add with ReschedNone should not apply an offset, got %+v", got)
	}
}
