package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "carebook/database/repository/booking"
	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReserveSlot creates a pending booking for one slot. The write fails closed:
// the storage layer's unique index rejects a second active booking for the
// same (provider, date, time), so a stale availability read can never turn
// into a double booking. On success the slot is busy-blocked with a
// back-reference to the booking and a reminder is scheduled.
func (svc *DefaultSchedulingService) ReserveSlot(ctx context.Context, req ReserveSlotRequest) (*models.BookingRecord, error) {
	logger := utils.GetLogger()

	if req.ProviderID == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	dateKey, _, err := NormalizeDateKey(req.Date)
	if err != nil {
		return nil, err
	}
	slotKey := NormalizeSlotKey(req.Time)
	if slotKey == "" {
		return nil, fmt.Errorf("invalid slot time %q", req.Time)
	}

	booking := &models.BookingRecord{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		UserID:     req.UserID,
		Date:       dateKey,
		Time:       slotKey,
		Status:     models.BookingStatusPending,
		CreatedAt:  time.Now(),
	}
	if err := svc.BookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &SlotConflictError{ProviderID: req.ProviderID, Date: dateKey, Time: slotKey}
		}
		return nil, infraErr("create booking", err)
	}

	// The busy block mirrors the booking for external calendar consumers.
	// The unique booking index already guards the slot, so a failed mirror
	// write degrades the projection, not correctness.
	block := &models.BusyBlock{
		BlockID:    uuid.New().String(),
		ProviderID: req.ProviderID,
		Date:       dateKey,
		Time:       slotKey,
		Source:     "booking",
		RefID:      booking.ID,
		CreatedAt:  time.Now(),
	}
	if err := svc.BusyRepo.Block(ctx, block); err != nil {
		logger.Error("failed to mirror booking into busy blocks",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	if svc.Reminders != nil {
		startAt, parseErr := time.ParseInLocation("2006-01-02 15:04", dateKey+" "+slotKey, time.Local)
		if parseErr == nil {
			payload := models.ReminderPayload{
				BookingID:  booking.ID,
				ProviderID: booking.ProviderID,
				UserID:     booking.UserID,
				Date:       dateKey,
				Time:       slotKey,
			}
			if err := svc.Reminders.EnqueueReminder(ctx, payload, startAt); err != nil {
				logger.Warn("failed to enqueue booking reminder",
					zap.String("bookingID", booking.ID), zap.Error(err))
			}
		}
	}

	logger.Info("slot reserved",
		zap.String("providerID", booking.ProviderID),
		zap.String("date", dateKey),
		zap.String("time", slotKey),
		zap.String("bookingID", booking.ID))
	return booking, nil
}
