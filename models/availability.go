package models

// AvailabilitySlot is one bookable start time with its computed availability.
// It is an ephemeral projection, recomputed from the source stores on every
// query and never persisted.
type AvailabilitySlot struct {
	Time      string `json:"time"` // zero-padded "HH:MM"
	Available bool   `json:"available"`
}

// AvailabilityResult is the resolver's output for one (provider, date) query.
type AvailabilityResult struct {
	Availability  []AvailabilitySlot `json:"availability"`
	Date          string             `json:"date"` // dateKey "YYYY-MM-DD"
	NextAvailable *AvailabilitySlot  `json:"nextAvailable"`
}
