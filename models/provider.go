package models

import "time"

// DaySlots is the legacy denormalized availability shape kept on the provider
// profile for consumers that predate the schedules collection: one slot list
// per day, empty when the day is disabled.
type DaySlots struct {
	Day   string   `bson:"day" json:"day"`
	Slots []string `bson:"slots" json:"slots"`
}

// Provider is the profile document for a practitioner whose time is being
// scheduled. Only the fields this service reads or writes are modeled here;
// identity, verification and payout details belong to other services.
type Provider struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name,omitempty" json:"name,omitempty"`
	Specialty    string     `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Status       string     `bson:"status,omitempty" json:"status,omitempty"`
	Timezone     string     `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Availability []DaySlots `bson:"availability,omitempty" json:"availability,omitempty"` // legacy projection, see schedule repo
	UpdatedAt    time.Time  `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
