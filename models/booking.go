package models

import "time"

// Booking statuses that consume a slot. Terminal statuses never block.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses is the set of statuses that make a slot unavailable.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive}

// SessionInfo carries session details nested on older booking documents.
type SessionInfo struct {
	StartTime string `bson:"start_time,omitempty" json:"startTime,omitempty"`
	RoomID    string `bson:"room_id,omitempty" json:"roomId,omitempty"`
}

// BookingRecord is an appointment that consumes exactly one slot on one date
// for one provider. The availability resolver only reads provider, date,
// status and the slot time; the booking subsystem owns the rest.
type BookingRecord struct {
	ID         string       `bson:"id" json:"id"`
	ProviderID string       `bson:"provider_id" json:"providerId"`
	UserID     string       `bson:"user_id,omitempty" json:"userId,omitempty"`
	Date       string       `bson:"date" json:"date"` // dateKey "YYYY-MM-DD"
	Time       string       `bson:"time,omitempty" json:"time,omitempty"`
	TimeSlot   string       `bson:"time_slot,omitempty" json:"timeSlot,omitempty"` // older records
	Session    *SessionInfo `bson:"session,omitempty" json:"session,omitempty"`
	Status     string       `bson:"status" json:"status"`
	CreatedAt  time.Time    `bson:"created_at" json:"createdAt"`
}

// SlotKey returns the booking's slot time from whichever field is populated,
// first non-empty wins: explicit time, legacy time slot, nested session start.
func (b *BookingRecord) SlotKey() string {
	if b.Time != "" {
		return b.Time
	}
	if b.TimeSlot != "" {
		return b.TimeSlot
	}
	if b.Session != nil && b.Session.StartTime != "" {
		return b.Session.StartTime
	}
	return ""
}
