package scheduling

import (
	"context"
	"sort"

	"carebook/models"
	"carebook/utils"

	"go.uber.org/zap"
)

// GetAvailabilityForDate produces the authoritative slot list for one
// provider and calendar date. Candidate slots come from the weekly window
// for that day of week, or from the configured default grid when no usable
// window exists; slots claimed by active bookings or busy blocks are then
// marked unavailable, with a whole-day block overriding everything.
// The result is recomputed from the source stores on every call.
func (svc *DefaultSchedulingService) GetAvailabilityForDate(
	ctx context.Context,
	providerID, date string,
	opts *SlotOptions,
) (*models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	dateKey, dayName, err := NormalizeDateKey(date)
	if err != nil {
		return nil, err
	}

	duration := svc.Slots.DurationMin
	gap := svc.Slots.GapMin
	if opts != nil {
		if opts.DurationMin > 0 {
			duration = opts.DurationMin
		}
		if opts.GapMin >= 0 {
			gap = opts.GapMin
		}
	}

	schedule, err := svc.ScheduleRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, infraErr("load schedule", err)
	}

	candidates := svc.candidateSlots(schedule, dayName, duration, gap, logger.With(
		zap.String("providerID", providerID),
		zap.String("date", dateKey),
	))

	busy, err := svc.BusyRepo.GetForDate(ctx, providerID, dateKey)
	if err != nil {
		return nil, infraErr("load busy blocks", err)
	}
	bookings, err := svc.BookingRepo.GetActiveForDate(ctx, providerID, dateKey)
	if err != nil {
		return nil, infraErr("load bookings", err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for i := range bookings {
		if key := NormalizeSlotKey(bookings[i].SlotKey()); key != "" {
			booked[key] = struct{}{}
		}
	}
	// Busy keys written through BlockSlot are already canonical; reparse
	// anyway so rows from external writers still collide correctly.
	busyKeys := make(map[string]struct{}, len(busy.Keys))
	for raw := range busy.Keys {
		if key := NormalizeSlotKey(raw); key != "" {
			busyKeys[key] = struct{}{}
		}
	}

	slots := make([]models.AvailabilitySlot, 0, len(candidates))
	for _, t := range candidates {
		_, isBooked := booked[t]
		_, isBusy := busyKeys[t]
		slots = append(slots, models.AvailabilitySlot{
			Time:      t,
			Available: !busy.WholeDay && !isBooked && !isBusy,
		})
	}

	// Zero-padded HH:MM sorts lexicographically in chronological order.
	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })

	var next *models.AvailabilitySlot
	for i := range slots {
		if slots[i].Available {
			next = &slots[i]
			break
		}
	}

	return &models.AvailabilityResult{
		Availability:  slots,
		Date:          dateKey,
		NextAvailable: next,
	}, nil
}

// candidateSlots generates the day's candidate grid. A window whose bounds
// do not parse falls back to the default grid, and is logged distinctly so a
// misconfigured schedule never masquerades as a fully-booked day. An
// enabled window whose end precedes its start legitimately yields no slots.
func (svc *DefaultSchedulingService) candidateSlots(
	schedule *models.ProviderSchedule,
	dayName string,
	duration, gap int,
	logger *zap.Logger,
) []string {
	window := schedule.WindowFor(dayName)
	if window == nil {
		return svc.Slots.defaultGrid()
	}

	start, okS := ParseClock(window.Start)
	end, okE := ParseClock(window.End)
	if !okS || !okE {
		logger.Warn("schedule validation warning: weekly window does not parse, using default grid",
			zap.String("day", dayName),
			zap.String("start", window.Start),
			zap.String("end", window.End))
		return svc.Slots.defaultGrid()
	}

	candidates := generateFromMinutes(start.MinuteOfDay(), end.MinuteOfDay(), duration, gap)
	if len(candidates) == 0 {
		logger.Warn("schedule validation warning: enabled weekly window yields no slots",
			zap.String("day", dayName),
			zap.String("start", window.Start),
			zap.String("end", window.End))
	}
	return candidates
}
