package pricing

import (
	"math"
	"strings"
	"time"

	"nanny_booking/internal/domain/entities"
)

// Wall-clock times are anchored to this date so only the time of day matters.
var clockAnchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "3PM", "3 PM"}

// parseClock reads a wall-clock time and anchors it to clockAnchor.
func parseClock(s string) (time.Time, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return clockAnchor.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second), true
		}
	}
	return time.Time{}, false
}

// slotHours is the length of a slot in hours. An end at or before the start
// crosses midnight. Unparseable slots are worth zero hours.
func slotHours(slot entities.TimeSlot) float64 {
	start, ok := parseClock(slot.Start)
	if !ok {
		return 0
	}
	end, ok := parseClock(slot.End)
	if !ok {
		return 0
	}
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start).Hours()
}

// TotalHours is the billable hours of a short-term booking: the summed slot
// length repeated on every selected date, or the sub-type default without slots.
func TotalHours(p entities.UserPreferences) float64 {
	days := len(p.SelectedDates)
	if len(p.TimeSlots) == 0 {
		return DefaultHours(p.BookingSubType, days)
	}
	perDay := 0.0
	for _, slot := range p.TimeSlots {
		perDay += slotHours(slot)
	}
	return perDay * float64(days)
}

// DefaultHours is the assumed coverage when no time slots were chosen.
func DefaultHours(sub entities.BookingSubType, days int) float64 {
	switch sub {
	case entities.SubTypeEmergency:
		return math.Max(5, float64(5*days))
	case entities.SubTypeDateNight:
		return float64(4 * days)
	default:
		return float64(8 * days)
	}
}

// parseDate reads an ISO date, tolerating a trailing time component.
func parseDate(s string) (time.Time, bool) {
	v := strings.TrimSpace(s)
	if len(v) > 10 {
		v = v[:10]
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
