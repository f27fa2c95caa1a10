package scheduling

import (
	"context"
	"time"

	busyRepo "carebook/database/repository/busy"
	"carebook/models"
)

// In-memory repository doubles used across the service tests.

type fakeScheduleRepo struct {
	schedule *models.ProviderSchedule
	err      error

	upserted *models.ProviderSchedule
	legacy   []models.DaySlots
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, schedule *models.ProviderSchedule, legacy []models.DaySlots) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = schedule
	f.legacy = legacy
	f.schedule = schedule
	return nil
}

func (f *fakeScheduleRepo) GetByProviderID(_ context.Context, _ string) (*models.ProviderSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) EnsureIndexes(context.Context) error { return nil }

type fakeBusyRepo struct {
	blocks map[string]*models.BusyBlock
	err    error

	clearedWith []busyRepo.ClearFilter
}

func newFakeBusyRepo() *fakeBusyRepo {
	return &fakeBusyRepo{blocks: make(map[string]*models.BusyBlock)}
}

func busyKey(providerID, date, slot string) string {
	return providerID + "|" + date + "|" + slot
}

func (f *fakeBusyRepo) Block(_ context.Context, block *models.BusyBlock) error {
	if f.err != nil {
		return f.err
	}
	f.blocks[busyKey(block.ProviderID, block.Date, block.Time)] = block
	return nil
}

func (f *fakeBusyRepo) Clear(_ context.Context, filter busyRepo.ClearFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.clearedWith = append(f.clearedWith, filter)
	var removed int64
	for key, block := range f.blocks {
		if block.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Date != "" && block.Date != filter.Date {
			continue
		}
		if filter.Time != "" && block.Time != filter.Time {
			continue
		}
		if filter.Source != "" && block.Source != filter.Source {
			continue
		}
		delete(f.blocks, key)
		removed++
	}
	return removed, nil
}

func (f *fakeBusyRepo) GetForDate(_ context.Context, providerID, dateKey string) (models.BusySet, error) {
	set := models.BusySet{Keys: make(map[string]struct{})}
	if f.err != nil {
		return set, f.err
	}
	for _, block := range f.blocks {
		if block.ProviderID != providerID || block.Date != dateKey {
			continue
		}
		if block.WholeDay() {
			set.WholeDay = true
			continue
		}
		set.Keys[block.Time] = struct{}{}
	}
	return set, nil
}

func (f *fakeBusyRepo) EnsureIndexes(context.Context) error { return nil }

type fakeBookingRepo struct {
	bookings  []models.BookingRecord
	err       error
	createErr error

	created []*models.BookingRecord
}

func (f *fakeBookingRepo) GetActiveForDate(_ context.Context, providerID, dateKey string) ([]models.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.BookingRecord
	for _, b := range f.bookings {
		if b.ProviderID != providerID || b.Date != dateKey {
			continue
		}
		active := false
		for _, status := range models.ActiveBookingStatuses {
			if b.Status == status {
				active = true
				break
			}
		}
		if active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *models.BookingRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, booking)
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) EnsureIndexes(context.Context) error { return nil }

type fakeReminderEnqueuer struct {
	payloads []models.ReminderPayload
	startAts []time.Time
}

func (f *fakeReminderEnqueuer) EnqueueReminder(_ context.Context, payload models.ReminderPayload, startAt time.Time) error {
	f.payloads = append(f.payloads, payload)
	f.startAts = append(f.startAts, startAt)
	return nil
}

func newTestService(sched *fakeScheduleRepo, busy *fakeBusyRepo, bookings *fakeBookingRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		ScheduleRepo: sched,
		BusyRepo:     busy,
		BookingRepo:  bookings,
		Slots:        DefaultSlotConfig(),
	}
}
