package scheduling

import (
	"context"
	"errors"
	"testing"

	"carebook/models"
)

// 2026-08-31 is a Monday.
const (
	testProvider = "prov-1"
	testMonday   = "2026-08-31"
)

func mondaySchedule(start, end string) *models.ProviderSchedule {
	return &models.ProviderSchedule{
		ProviderID: testProvider,
		Weekly: []models.WeeklyWindow{
			{Day: "monday", Start: start, End: end, Enabled: true},
		},
	}
}

func TestGetAvailabilityForDate_BookedSlotExcluded(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "11:00")}
	bookings := &fakeBookingRepo{bookings: []models.BookingRecord{
		{ProviderID: testProvider, Date: testMonday, Time: "09:00", Status: models.BookingStatusConfirmed},
	}}
	svc := newTestService(sched, newFakeBusyRepo(), bookings)

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Date != testMonday {
		t.Errorf("result date = %q, want %q", result.Date, testMonday)
	}
	if len(result.Availability) != 2 {
		t.Fatalf("expected 2 slots, got %v", result.Availability)
	}
	if result.Availability[0].Time != "09:00" || result.Availability[0].Available {
		t.Errorf("slot 0 = %+v, want 09:00 unavailable", result.Availability[0])
	}
	if result.Availability[1].Time != "10:00" || !result.Availability[1].Available {
		t.Errorf("slot 1 = %+v, want 10:00 available", result.Availability[1])
	}
	if result.NextAvailable == nil || result.NextAvailable.Time != "10:00" {
		t.Errorf("nextAvailable = %+v, want 10:00", result.NextAvailable)
	}
}

func TestGetAvailabilityForDate_CancelledBookingDoesNotBlock(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "11:00")}
	bookings := &fakeBookingRepo{bookings: []models.BookingRecord{
		{ProviderID: testProvider, Date: testMonday, Time: "09:00", Status: models.BookingStatusCancelled},
	}}
	svc := newTestService(sched, newFakeBusyRepo(), bookings)

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Availability[0].Available {
		t.Errorf("cancelled booking should not block slot 09:00")
	}
	if result.NextAvailable == nil || result.NextAvailable.Time != "09:00" {
		t.Errorf("nextAvailable = %+v, want 09:00", result.NextAvailable)
	}
}

func TestGetAvailabilityForDate_WholeDayBlockOverridesEverything(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "11:00")}
	busy := newFakeBusyRepo()
	busy.blocks[busyKey(testProvider, testMonday, models.WholeDayKey)] = &models.BusyBlock{
		ProviderID: testProvider, Date: testMonday, Time: models.WholeDayKey,
	}
	svc := newTestService(sched, busy, &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 2 {
		t.Fatalf("expected 2 slots, got %v", result.Availability)
	}
	for _, s := range result.Availability {
		if s.Available {
			t.Errorf("slot %s should be unavailable under a whole-day block", s.Time)
		}
	}
	if result.NextAvailable != nil {
		t.Errorf("nextAvailable = %+v, want nil", result.NextAvailable)
	}
}

func TestGetAvailabilityForDate_BusySlotExcluded(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "11:00")}
	busy := newFakeBusyRepo()
	busy.blocks[busyKey(testProvider, testMonday, "10:00")] = &models.BusyBlock{
		ProviderID: testProvider, Date: testMonday, Time: "10:00", Source: "manual",
	}
	svc := newTestService(sched, busy, &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Availability[0].Available || result.Availability[1].Available {
		t.Errorf("expected 09:00 free and 10:00 busy, got %v", result.Availability)
	}
}

func TestGetAvailabilityForDate_NoScheduleFallsBackToDefaultGrid(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, newFakeBusyRepo(), &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 10 {
		t.Fatalf("expected the ten-slot default grid, got %d slots", len(result.Availability))
	}
	if result.Availability[0].Time != "09:00" || result.Availability[9].Time != "18:00" {
		t.Errorf("default grid bounds = %s..%s", result.Availability[0].Time, result.Availability[9].Time)
	}
	for _, s := range result.Availability {
		if !s.Available {
			t.Errorf("slot %s should be available on an empty day", s.Time)
		}
	}
}

func TestGetAvailabilityForDate_DisabledDayFallsBackToDefaultGrid(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: &models.ProviderSchedule{
		ProviderID: testProvider,
		Weekly: []models.WeeklyWindow{
			{Day: "monday", Start: "09:00", End: "17:00", Enabled: false},
		},
	}}
	svc := newTestService(sched, newFakeBusyRepo(), &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 10 {
		t.Errorf("disabled day should use the default grid, got %d slots", len(result.Availability))
	}
}

func TestGetAvailabilityForDate_UnparsableWindowFallsBackToDefaultGrid(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("whenever", "17:00")}
	svc := newTestService(sched, newFakeBusyRepo(), &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 10 {
		t.Errorf("unparsable window should use the default grid, got %d slots", len(result.Availability))
	}
}

func TestGetAvailabilityForDate_InvertedWindowYieldsEmptyDay(t *testing.T) {
	// end <= start parses fine, so there is no fallback; the day simply has
	// no slots.
	sched := &fakeScheduleRepo{schedule: mondaySchedule("17:00", "09:00")}
	svc := newTestService(sched, newFakeBusyRepo(), &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 0 {
		t.Errorf("inverted window should yield no slots, got %v", result.Availability)
	}
	if result.NextAvailable != nil {
		t.Errorf("nextAvailable = %+v, want nil", result.NextAvailable)
	}
}

func TestGetAvailabilityForDate_BookingKeyVariants(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "13:00")}
	bookings := &fakeBookingRepo{bookings: []models.BookingRecord{
		// Unpadded explicit time must still collide with the 09:00 slot.
		{ProviderID: testProvider, Date: testMonday, Time: "9:00", Status: models.BookingStatusConfirmed},
		// Legacy time-slot field.
		{ProviderID: testProvider, Date: testMonday, TimeSlot: "10:00", Status: models.BookingStatusPending},
		// Nested session start.
		{ProviderID: testProvider, Date: testMonday, Session: &models.SessionInfo{StartTime: "11:00"}, Status: models.BookingStatusActive},
	}}
	svc := newTestService(sched, newFakeBusyRepo(), bookings)

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Window 09:00-13:00 with step 60: slots 09:00 10:00 11:00 12:00.
	if len(result.Availability) != 4 {
		t.Fatalf("expected 4 slots, got %v", result.Availability)
	}
	for i, want := range []bool{false, false, false, true} {
		if result.Availability[i].Available != want {
			t.Errorf("slot %s available = %v, want %v", result.Availability[i].Time, result.Availability[i].Available, want)
		}
	}
	if result.NextAvailable == nil || result.NextAvailable.Time != "12:00" {
		t.Errorf("nextAvailable = %+v, want 12:00", result.NextAvailable)
	}
}

func TestGetAvailabilityForDate_SortedAscending(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, newFakeBusyRepo(), &fakeBookingRepo{})

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(result.Availability); i++ {
		if result.Availability[i-1].Time >= result.Availability[i].Time {
			t.Errorf("availability not sorted at %d: %s >= %s",
				i, result.Availability[i-1].Time, result.Availability[i].Time)
		}
	}
}

func TestGetAvailabilityForDate_SlotOptionsOverride(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "10:00")}
	svc := newTestService(sched, newFakeBusyRepo(), &fakeBookingRepo{})

	// 30-minute sessions, no gap: 09:00 and 09:30 both fit.
	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday,
		&SlotOptions{DurationMin: 30, GapMin: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Availability) != 2 {
		t.Fatalf("expected 2 slots with 30/0 options, got %v", result.Availability)
	}
	if result.Availability[0].Time != "09:00" || result.Availability[1].Time != "09:30" {
		t.Errorf("slots = %v, want [09:00 09:30]", result.Availability)
	}
}

func TestGetAvailabilityForDate_InvalidDate(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, newFakeBusyRepo(), &fakeBookingRepo{})

	_, err := svc.GetAvailabilityForDate(context.Background(), testProvider, "not-a-date", nil)
	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
}

func TestGetAvailabilityForDate_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	sched := &fakeScheduleRepo{err: storeErr}
	svc := newTestService(sched, newFakeBusyRepo(), &fakeBookingRepo{})

	_, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	var infra *InfrastructureError
	if !errors.As(err, &infra) {
		t.Fatalf("expected InfrastructureError, got %v", err)
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("wrapped error should unwrap to the store failure")
	}
}
