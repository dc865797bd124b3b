package domain

import (
	"time"

	"github.com/m04kA/FDL-AtelierService/pkg/types"
)

// AvailabilitySlot represents one bookable calendar date with its open times.
// Date is an ISO calendar date ("2006-01-02") and acts as the unique key
// within the availability catalog. Times is kept sorted ascending and free
// of duplicates. An entry with an empty Times set must never exist in the
// catalog: it is removed, not kept empty.
type AvailabilitySlot struct {
	Date  string
	Times []types.TimeString
}

// HasTime reports whether the slot offers the given time.
func (s *AvailabilitySlot) HasTime(t types.TimeString) bool {
	for _, existing := range s.Times {
		if existing == t {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the slot has no open times left.
func (s *AvailabilitySlot) IsEmpty() bool {
	return len(s.Times) == 0
}

// Clone returns a deep copy of the slot.
func (s *AvailabilitySlot) Clone() *AvailabilitySlot {
	times := make([]types.TimeString, len(s.Times))
	copy(times, s.Times)
	return &AvailabilitySlot{Date: s.Date, Times: times}
}

// ParseDate parses an ISO calendar date ("2006-01-02").
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDisplayDate renders an ISO calendar date in the DD/MM/YYYY locale
// form. Invalid input is returned unchanged.
func FormatDisplayDate(isoDate string) string {
	date, err := ParseDate(isoDate)
	if err != nil {
		return isoDate
	}
	return date.Format(DisplayDateFormat)
}
