package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"

	busyRepo "carebook/database/repository/busy"
	"carebook/models"
	"carebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpsertWeeklyAvailability validates and normalizes the submitted week, then
// replaces the provider's schedule document wholesale. Duplicate days are
// resolved last-write-wins. The legacy provider-profile projection is
// rebuilt and written in the same transaction by the repository.
func (svc *DefaultSchedulingService) UpsertWeeklyAvailability(
	ctx context.Context,
	providerID string,
	weekly []models.WeeklyWindow,
	timezone string,
	meta map[string]string,
) (*models.ProviderSchedule, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider id is required")
	}

	byDay := make(map[string]models.WeeklyWindow, len(weekly))
	for _, w := range weekly {
		day := normalizeDayName(w.Day)
		if day == "" {
			return nil, &InvalidWindowError{Day: w.Day, Start: w.Start, End: w.End, Reason: "unknown day of week"}
		}
		w.Day = day
		if w.Enabled {
			start, okS := ParseClock(w.Start)
			end, okE := ParseClock(w.End)
			if !okS || !okE {
				return nil, &InvalidWindowError{Day: day, Start: w.Start, End: w.End, Reason: "start or end does not parse"}
			}
			if end.MinuteOfDay() <= start.MinuteOfDay() {
				return nil, &InvalidWindowError{Day: day, Start: w.Start, End: w.End, Reason: "end must be after start"}
			}
			w.Start = FormatClock(start.Hours, start.Minutes)
			w.End = FormatClock(end.Hours, end.Minutes)
		}
		byDay[day] = w
	}

	schedule := &models.ProviderSchedule{
		ProviderID: providerID,
		Timezone:   timezone,
		Meta:       meta,
		UpdatedAt:  time.Now(),
	}
	for _, day := range models.DayNames {
		if w, ok := byDay[day]; ok {
			schedule.Weekly = append(schedule.Weekly, w)
		}
	}

	if err := svc.ScheduleRepo.Upsert(ctx, schedule, legacyProjection(schedule)); err != nil {
		return nil, infraErr("upsert weekly availability", err)
	}

	utils.GetLogger().Info("weekly availability replaced",
		zap.String("providerID", providerID),
		zap.Int("days", len(schedule.Weekly)))
	return schedule, nil
}

// legacyProjection builds the denormalized slot-list view kept on the
// provider profile for older consumers: disabled or missing days get an
// empty list, enabled days a single "start-end" window entry.
func legacyProjection(schedule *models.ProviderSchedule) []models.DaySlots {
	projection := make([]models.DaySlots, 0, len(models.DayNames))
	for _, day := range models.DayNames {
		entry := models.DaySlots{Day: day, Slots: []string{}}
		if w := schedule.WindowFor(day); w != nil {
			entry.Slots = []string{w.Start + "-" + w.End}
		}
		projection = append(projection, entry)
	}
	return projection
}

// GetWeeklyWindowForDate resolves the date to its day of week and returns the
// matching enabled window, or nil when the provider has none for that day.
func (svc *DefaultSchedulingService) GetWeeklyWindowForDate(ctx context.Context, providerID, date string) (*models.WeeklyWindow, error) {
	_, dayName, err := NormalizeDateKey(date)
	if err != nil {
		return nil, err
	}
	schedule, err := svc.ScheduleRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, infraErr("load schedule", err)
	}
	return schedule.WindowFor(dayName), nil
}

// BlockSlot records one excluded slot (or whole day). Repeated calls with
// the same (provider, date, time) overwrite metadata without duplicating rows.
func (svc *DefaultSchedulingService) BlockSlot(ctx context.Context, req BlockSlotRequest) (*models.BusyBlock, error) {
	if req.ProviderID == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	dateKey, _, err := NormalizeDateKey(req.Date)
	if err != nil {
		return nil, err
	}
	slotKey := req.Time
	if slotKey != models.WholeDayKey {
		if slotKey = NormalizeSlotKey(req.Time); slotKey == "" {
			return nil, fmt.Errorf("invalid slot time %q", req.Time)
		}
	}
	source := req.Source
	if source == "" {
		source = "manual"
	}

	block := &models.BusyBlock{
		BlockID:    uuid.New().String(),
		ProviderID: req.ProviderID,
		Date:       dateKey,
		Time:       slotKey,
		Source:     source,
		Note:       req.Note,
		RefID:      req.RefID,
		CreatedAt:  time.Now(),
	}
	if err := svc.BusyRepo.Block(ctx, block); err != nil {
		return nil, infraErr("block slot", err)
	}
	return block, nil
}

// ClearBusy removes matching busy blocks; omitted date, time and source act
// as wildcards, so clearing with only a provider wipes all of their blocks.
func (svc *DefaultSchedulingService) ClearBusy(ctx context.Context, req ClearBusyRequest) error {
	if req.ProviderID == "" {
		return fmt.Errorf("provider id is required")
	}
	filter := busyRepo.ClearFilter{
		ProviderID: req.ProviderID,
		Time:       req.Time,
		Source:     req.Source,
	}
	if req.Date != "" {
		dateKey, _, err := NormalizeDateKey(req.Date)
		if err != nil {
			return err
		}
		filter.Date = dateKey
	}
	if req.Time != "" && req.Time != models.WholeDayKey {
		if key := NormalizeSlotKey(req.Time); key != "" {
			filter.Time = key
		}
	}

	removed, err := svc.BusyRepo.Clear(ctx, filter)
	if err != nil {
		return infraErr("clear busy blocks", err)
	}
	utils.GetLogger().Debug("busy blocks cleared",
		zap.String("providerID", req.ProviderID),
		zap.Int64("removed", removed))
	return nil
}

func normalizeDayName(day string) string {
	lowered := strings.ToLower(strings.TrimSpace(day))
	for _, name := range models.DayNames {
		if name == lowered {
			return name
		}
	}
	return ""
}
