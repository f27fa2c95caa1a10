package scheduling

import "fmt"

// InvalidDateError means the date input cannot be normalized to a calendar
// day. Callers must fail fast on it rather than substitute "today".
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: cannot be normalized to a calendar day", e.Value)
}

// InvalidWindowError means a weekly window is misconfigured: its start or end
// does not parse, its day name is unknown, or end is not after start.
type InvalidWindowError struct {
	Day    string
	Start  string
	End    string
	Reason string
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid weekly window for %s (%s - %s): %s", e.Day, e.Start, e.End, e.Reason)
}

// SlotConflictError means an active booking already holds the requested slot.
type SlotConflictError struct {
	ProviderID string
	Date       string
	Time       string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked for provider %s", e.Time, e.Date, e.ProviderID)
}

// InfrastructureError wraps a persistence-layer failure. It must propagate to
// the caller untouched: an unreachable store is not the same thing as a
// fully-booked day.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("scheduling store failure during %s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func infraErr(op string, err error) error {
	return &InfrastructureError{Op: op, Err: err}
}
