package scheduling

import (
	"context"
	"errors"
	"testing"

	bookingRepo "carebook/database/repository/booking"
	"carebook/models"
)

func TestReserveSlot_CreatesBookingAndMirror(t *testing.T) {
	busy := newFakeBusyRepo()
	bookings := &fakeBookingRepo{}
	reminders := &fakeReminderEnqueuer{}
	svc := newTestService(&fakeScheduleRepo{}, busy, bookings)
	svc.Reminders = reminders

	booking, err := svc.ReserveSlot(context.Background(), ReserveSlotRequest{
		ProviderID: testProvider,
		UserID:     "user-1",
		Date:       testMonday,
		Time:       "9:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}
	if booking.Time != "09:00" {
		t.Errorf("time = %q, want normalized 09:00", booking.Time)
	}

	block, ok := busy.blocks[busyKey(testProvider, testMonday, "09:00")]
	if !ok {
		t.Fatal("reservation should mirror a busy block")
	}
	if block.Source != "booking" || block.RefID != booking.ID {
		t.Errorf("mirror block = %+v, want source booking and refId %s", block, booking.ID)
	}

	if len(reminders.payloads) != 1 {
		t.Fatalf("expected one reminder, got %d", len(reminders.payloads))
	}
	if reminders.payloads[0].BookingID != booking.ID {
		t.Errorf("reminder bookingID = %q", reminders.payloads[0].BookingID)
	}
	wantStart := reminders.startAts[0]
	if wantStart.Hour() != 9 || wantStart.Minute() != 0 {
		t.Errorf("reminder anchored at %v, want 09:00 session start", wantStart)
	}
}

func TestReserveSlot_ConflictFailsClosed(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	svc := newTestService(&fakeScheduleRepo{}, newFakeBusyRepo(), bookings)

	_, err := svc.ReserveSlot(context.Background(), ReserveSlotRequest{
		ProviderID: testProvider,
		Date:       testMonday,
		Time:       "09:00",
	})
	var conflict *SlotConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SlotConflictError, got %v", err)
	}
	if conflict.Time != "09:00" || conflict.Date != testMonday {
		t.Errorf("conflict = %+v", conflict)
	}
}

func TestReserveSlot_ValidatesInput(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{}, newFakeBusyRepo(), &fakeBookingRepo{})

	if _, err := svc.ReserveSlot(context.Background(), ReserveSlotRequest{
		ProviderID: testProvider, Date: "yesterday", Time: "09:00",
	}); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := svc.ReserveSlot(context.Background(), ReserveSlotRequest{
		ProviderID: testProvider, Date: testMonday, Time: models.WholeDayKey,
	}); err == nil {
		t.Error("expected error for non-clock reservation time")
	}
}

func TestReserveSlot_ReservedSlotBlocksAvailability(t *testing.T) {
	sched := &fakeScheduleRepo{schedule: mondaySchedule("09:00", "11:00")}
	busy := newFakeBusyRepo()
	bookings := &fakeBookingRepo{}
	svc := newTestService(sched, busy, bookings)

	if _, err := svc.ReserveSlot(context.Background(), ReserveSlotRequest{
		ProviderID: testProvider, Date: testMonday, Time: "09:00",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.GetAvailabilityForDate(context.Background(), testProvider, testMonday, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Availability[0].Available {
		t.Error("reserved slot should be unavailable")
	}
	if result.NextAvailable == nil || result.NextAvailable.Time != "10:00" {
		t.Errorf("nextAvailable = %+v, want 10:00", result.NextAvailable)
	}
}
