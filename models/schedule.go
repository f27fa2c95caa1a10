package models

import "time"

// Canonical lowercase day names, Sunday first to match time.Weekday.
var DayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// WeeklyWindow is one recurring availability range for a single day of the week.
type WeeklyWindow struct {
	Day     string `bson:"day" json:"day"`         // lowercase weekday name, e.g. "monday"
	Start   string `bson:"start" json:"start"`     // wall-clock, e.g. "09:00" or "5:30 PM"
	End     string `bson:"end" json:"end"`         // wall-clock, must parse after Start
	Enabled bool   `bson:"enabled" json:"enabled"` // disabled days contribute no slots
}

// ProviderSchedule holds the full recurring week for one provider.
// It is replaced wholesale on every upsert; there are no partial-day patches.
type ProviderSchedule struct {
	ProviderID string            `bson:"provider_id" json:"providerId"`
	Timezone   string            `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA name, advisory only
	Weekly     []WeeklyWindow    `bson:"weekly" json:"weekly"`
	Meta       map[string]string `bson:"meta,omitempty" json:"meta,omitempty"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updatedAt"`
}

// WindowFor returns the enabled window for the given lowercase day name, or nil.
// At most one window per day is stored (last write wins on upsert).
func (s *ProviderSchedule) WindowFor(day string) *WeeklyWindow {
	if s == nil {
		return nil
	}
	for i := range s.Weekly {
		if s.Weekly[i].Day == day && s.Weekly[i].Enabled {
			return &s.Weekly[i]
		}
	}
	return nil
}
