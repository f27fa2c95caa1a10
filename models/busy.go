package models

import "time"

// WholeDayKey is the reserved slot key meaning the entire date is blocked.
// It lives in the same key-space as real "HH:MM" values at the storage layer;
// consumers should go through BusySet instead of comparing against it directly.
const WholeDayKey = "ALL_DAY"

// BusyBlock is one excluded slot (or whole day) for a provider on a date,
// independent of any booking record.
type BusyBlock struct {
	BlockID    string    `bson:"block_id" json:"blockId"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	Date       string    `bson:"date" json:"date"` // dateKey "YYYY-MM-DD"
	Time       string    `bson:"time" json:"time"` // slot key "HH:MM" or WholeDayKey
	Source     string    `bson:"source" json:"source"` // e.g. "manual", "booking", external system name
	Note       string    `bson:"note,omitempty" json:"note,omitempty"`
	RefID      string    `bson:"ref_id,omitempty" json:"refId,omitempty"` // non-owning back-reference
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// WholeDay reports whether this block excludes the entire date.
func (b *BusyBlock) WholeDay() bool {
	return b.Time == WholeDayKey
}

// BusySet is the resolver-facing view of a day's busy blocks: a whole-day
// flag plus the set of individually blocked slot keys.
type BusySet struct {
	WholeDay bool
	Keys     map[string]struct{}
}

// Blocks reports whether the given slot key is excluded by this set.
func (s BusySet) Blocks(key string) bool {
	if s.WholeDay {
		return true
	}
	_, ok := s.Keys[key]
	return ok
}
