package scheduling

import (
	"context"
	"time"

	bookingRepo "carebook/database/repository/booking"
	busyRepo "carebook/database/repository/busy"
	scheduleRepo "carebook/database/repository/schedule"
	"carebook/models"
)

// SlotOptions overrides the configured session length and gap for a single
// availability query. A zero DurationMin or negative GapMin falls back to
// the configured default (a zero gap is a legitimate override).
type SlotOptions struct {
	DurationMin int
	GapMin      int
}

// BlockSlotRequest describes one slot (or whole day) to exclude.
type BlockSlotRequest struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"` // "HH:MM" or models.WholeDayKey
	Source     string `json:"source"`
	Note       string `json:"note"`
	RefID      string `json:"refId"`
}

// ClearBusyRequest selects busy blocks to remove; empty fields other than
// ProviderID act as wildcards.
type ClearBusyRequest struct {
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Source     string `json:"source"`
}

// ReserveSlotRequest creates a pending booking for one slot.
type ReserveSlotRequest struct {
	ProviderID string `json:"providerId"`
	UserID     string `json:"userId"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

// ReminderEnqueuer schedules an appointment reminder relative to the session
// start. Delivery itself belongs to the notification pipeline.
type ReminderEnqueuer interface {
	EnqueueReminder(ctx context.Context, payload models.ReminderPayload, startAt time.Time) error
}

// SchedulingService is the availability subsystem's public surface.
type SchedulingService interface {
	// GetAvailabilityForDate resolves the authoritative slot list for a
	// provider and calendar date, merging the weekly schedule, live
	// bookings and busy blocks.
	GetAvailabilityForDate(ctx context.Context, providerID, date string, opts *SlotOptions) (*models.AvailabilityResult, error)
	// UpsertWeeklyAvailability replaces the provider's whole week at once.
	UpsertWeeklyAvailability(ctx context.Context, providerID string, weekly []models.WeeklyWindow, timezone string, meta map[string]string) (*models.ProviderSchedule, error)
	// GetWeeklyWindowForDate returns the enabled window covering the date's
	// day of week, or nil when the day has none.
	GetWeeklyWindowForDate(ctx context.Context, providerID, date string) (*models.WeeklyWindow, error)
	// BlockSlot records an ad hoc exclusion; idempotent per (provider, date, time).
	BlockSlot(ctx context.Context, req BlockSlotRequest) (*models.BusyBlock, error)
	// ClearBusy removes matching exclusions, wildcarding omitted fields.
	ClearBusy(ctx context.Context, req ClearBusyRequest) error
	// ReserveSlot books a slot fail-closed and busy-blocks it.
	ReserveSlot(ctx context.Context, req ReserveSlotRequest) (*models.BookingRecord, error)
}

// DefaultSchedulingService is the production scheduling service.
type DefaultSchedulingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BusyRepo     busyRepo.BusyRepository
	BookingRepo  bookingRepo.BookingRepository
	Reminders    ReminderEnqueuer // optional; nil disables reminder scheduling
	Slots        SlotConfig
}
