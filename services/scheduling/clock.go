package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a parsed wall-clock time of day.
type ClockTime struct {
	Hours   int // 0-23
	Minutes int // 0-59
}

// MinuteOfDay returns the clock time as minutes from midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hours*60 + c.Minutes
}

// ParseClock converts a human-entered clock string into a ClockTime. It
// accepts "9:00", "09:00" and "5:30 PM" (meridiem case-insensitive, with or
// without a space). Malformed or out-of-range input returns ok=false; callers
// treat an unparsable clock as "no window" rather than an error.
func ParseClock(input string) (ClockTime, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return ClockTime{}, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, false
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ClockTime{}, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ClockTime{}, false
	}
	if minutes < 0 || minutes > 59 {
		return ClockTime{}, false
	}

	// 12 AM is midnight, 12 PM stays 12, other PM hours shift by 12.
	switch meridiem {
	case "AM":
		if hours < 1 || hours > 12 {
			return ClockTime{}, false
		}
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours < 1 || hours > 12 {
			return ClockTime{}, false
		}
		if hours != 12 {
			hours += 12
		}
	default:
		if hours < 0 || hours > 23 {
			return ClockTime{}, false
		}
	}
	return ClockTime{Hours: hours, Minutes: minutes}, true
}

// FormatClock renders a 24-hour, zero-padded "HH:MM" slot key.
// ParseClock(FormatClock(h, m)) round-trips for every valid hour and minute.
func FormatClock(hours, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// NormalizeSlotKey reparses a slot key into canonical "HH:MM" form so that
// "9:00" and "09:00" refer to the same slot. Unparsable keys map to "".
func NormalizeSlotKey(key string) string {
	parsed, ok := ParseClock(key)
	if !ok {
		return ""
	}
	return FormatClock(parsed.Hours, parsed.Minutes)
}
