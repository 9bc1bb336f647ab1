package clock

import (
	"testing"
	"time"
)

func TestSimulatedOffsetAndPin(t *testing.T) {
	clk := NewSimulated()
	if clk.IsSimulated() {
		t.Fatal("fresh clock must report real time")
	}

	clk.SetOffset(48 * time.Hour)
	if !clk.IsSimulated() {
		t.Fatal("offset clock must report simulated")
	}
	ahead := clk.Now().Sub(time.Now())
	if ahead < 47*time.Hour || ahead > 49*time.Hour {
		t.Fatalf("offset drift = %v, want about 48h", ahead)
	}

	pinned := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	clk.Pin(pinned)
	if !clk.Now().Equal(pinned) {
		t.Fatalf("pinned now = %v, want %v", clk.Now(), pinned)
	}

	clk.Reset()
	if clk.IsSimulated() || clk.Offset() != 0 {
		t.Fatal("reset must return to real time")
	}
}

func TestSimulatedTravel(t *testing.T) {
	clk := NewSimulated()
	target := time.Now().AddDate(0, 0, 10)
	clk.Travel(target)
	if diff := clk.Now().Sub(target); diff < 0 || diff > time.Second {
		t.Fatalf("travel landed %v away from target", diff)
	}
}

func TestDayKeyAndBoundaries(t *testing.T) {
	late := time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)
	if DayKey(late) != "2026-03-01" {
		t.Fatalf("dayKey = %q", DayKey(late))
	}
	next := NextDay(late)
	if !next.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("nextDay = %v", next)
	}
	if DayKey(next) == DayKey(late) {
		t.Fatal("midnight must start a new day key")
	}
	if got := StartOfDay(late); got.Hour() != 0 || got.Day() != 1 {
		t.Fatalf("startOfDay = %v", got)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	// Two hours apart, but across midnight: one calendar day.
	if got := DaysBetween(a, b); got != 1 {
		t.Fatalf("daysBetween = %d, want 1", got)
	}
	if got := DaysBetween(a, a.Add(30*time.Minute)); got != 0 {
		t.Fatalf("same day = %d, want 0", got)
	}
	if got := DaysBetween(b, a); got != -1 {
		t.Fatalf("reversed = %d, want -1", got)
	}
	if got := DaysBetween(a, a.AddDate(0, 0, 14)); got != 14 {
		t.Fatalf("two weeks = %d, want 14", got)
	}
}

func TestFixedAndFunc(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !Fixed(at).Now().Equal(at) {
		t.Fatal("fixed clock drifted")
	}
	calls := 0
	clk := Func(func() time.Time { calls++; return at })
	clk.Now()
	clk.Now()
	if calls != 2 {
		t.Fatalf("func clock calls = %d, want 2", calls)
	}
}
