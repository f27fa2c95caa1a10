package scheduling

import (
	"reflect"
	"testing"
)

func TestGenerateSlots_Basic(t *testing.T) {
	// 50-minute sessions, 10-minute gap: step 60, last slot must still fit.
	got := GenerateSlots("09:00", "11:00", 50, 10)
	want := []string{"09:00", "10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots(09:00, 11:00, 50, 10) = %v, want %v", got, want)
	}
}

func TestGenerateSlots_LastSessionNeverOverruns(t *testing.T) {
	end, _ := ParseClock("17:00")
	duration := 45
	for _, s := range GenerateSlots("09:00", "17:00", duration, 15) {
		start, ok := ParseClock(s)
		if !ok {
			t.Fatalf("generated slot %q does not parse", s)
		}
		if start.MinuteOfDay()+duration > end.MinuteOfDay() {
			t.Errorf("slot %s + %dmin runs past window end", s, duration)
		}
	}
}

func TestGenerateSlots_GapEnforced(t *testing.T) {
	duration, gap := 30, 20
	slots := GenerateSlots("08:00", "18:00", duration, gap)
	if len(slots) < 2 {
		t.Fatalf("expected multiple slots, got %v", slots)
	}
	for i := 1; i < len(slots); i++ {
		prev, _ := ParseClock(slots[i-1])
		cur, _ := ParseClock(slots[i])
		if cur.MinuteOfDay()-prev.MinuteOfDay() < duration+gap {
			t.Errorf("consecutive slots %s and %s closer than duration+gap", slots[i-1], slots[i])
		}
	}
}

func TestGenerateSlots_UnparsableBounds(t *testing.T) {
	if got := GenerateSlots("junk", "11:00", 50, 10); got != nil {
		t.Errorf("unparsable start should yield nil, got %v", got)
	}
	if got := GenerateSlots("09:00", "", 50, 10); got != nil {
		t.Errorf("unparsable end should yield nil, got %v", got)
	}
}

func TestGenerateSlots_InvertedWindow(t *testing.T) {
	// end <= start is a valid no-slots-today outcome, not an error.
	if got := GenerateSlots("17:00", "09:00", 50, 10); len(got) != 0 {
		t.Errorf("inverted window should yield no slots, got %v", got)
	}
	if got := GenerateSlots("09:00", "09:00", 50, 10); len(got) != 0 {
		t.Errorf("zero-width window should yield no slots, got %v", got)
	}
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	// A session ending exactly at the window end is allowed.
	got := GenerateSlots("09:00", "09:50", 50, 10)
	want := []string{"09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenerateSlots(09:00, 09:50, 50, 10) = %v, want %v", got, want)
	}
}

func TestDefaultGrid(t *testing.T) {
	grid := DefaultSlotConfig().defaultGrid()
	if len(grid) != 10 {
		t.Fatalf("default grid has %d slots, want 10: %v", len(grid), grid)
	}
	if grid[0] != "09:00" || grid[9] != "18:00" {
		t.Errorf("default grid bounds = %s..%s, want 09:00..18:00", grid[0], grid[9])
	}
	for i := 1; i < len(grid); i++ {
		prev, _ := ParseClock(grid[i-1])
		cur, _ := ParseClock(grid[i])
		if cur.MinuteOfDay()-prev.MinuteOfDay() != 60 {
			t.Errorf("default grid is not hourly between %s and %s", grid[i-1], grid[i])
		}
	}
}
