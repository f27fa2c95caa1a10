package scheduling

import (
	"strings"
	"time"

	"carebook/models"
)

const dateKeyLayout = "2006-01-02"

// Accepted input layouts, tried in order. All times are treated as
// provider-local wall clock; no timezone math is performed.
var dateLayouts = []string{
	dateKeyLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDateKey resolves any accepted date input to its canonical
// "YYYY-MM-DD" dateKey and lowercase day-of-week name. Inputs that do not
// normalize to a calendar day fail fast with InvalidDateError.
func NormalizeDateKey(input string) (dateKey string, dayName string, err error) {
	s := strings.TrimSpace(input)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, parseErr := time.Parse(layout, s); parseErr == nil {
				return t.Format(dateKeyLayout), models.DayNames[int(t.Weekday())], nil
			}
		}
	}
	return "", "", &InvalidDateError{Value: input}
}
