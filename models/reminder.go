package models

// ReminderPayload is the queued message for an appointment reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	ProviderID string `json:"providerId"`
	UserID     string `json:"userId,omitempty"`
	Date       string `json:"date"` // dateKey "YYYY-MM-DD"
	Time       string `json:"time"` // slot key "HH:MM"
}
