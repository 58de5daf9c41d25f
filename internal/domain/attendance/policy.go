package attendance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeOfDay is a wall-clock time without a date, precise to the second.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// TimeOfDayOf extracts the wall-clock time of ts in its own location.
// Sub-second precision is dropped.
func TimeOfDayOf(ts time.Time) TimeOfDay {
	return TimeOfDay{Hour: ts.Hour(), Minute: ts.Minute(), Second: ts.Second()}
}

var (
	DefaultLateThreshold = TimeOfDay{Hour: 9, Minute: 30}
	DefaultHalfDayHours  = decimal.NewFromInt(4)
)

// TimeWindowPolicy holds the cutoffs used to classify a working day.
type TimeWindowPolicy struct {
	LateThreshold TimeOfDay
	HalfDayHours  decimal.Decimal
}

// DefaultPolicy returns the 09:30 late cutoff and the 4 hour half-day cutoff.
func DefaultPolicy() TimeWindowPolicy {
	return TimeWindowPolicy{
		LateThreshold: DefaultLateThreshold,
		HalfDayHours:  DefaultHalfDayHours,
	}
}

// DeriveCheckInStatus returns late when now is strictly after lateThreshold,
// present otherwise. now is read in its own location.
func DeriveCheckInStatus(now time.Time, lateThreshold TimeOfDay) Status {
	if TimeOfDayOf(now).seconds() > lateThreshold.seconds() {
		return StatusLate
	}
	return StatusPresent
}

// WorkedHours is the span between checkIn and checkOut in hours, rounded
// half-up to two decimal places.
func WorkedHours(checkIn, checkOut time.Time) decimal.Decimal {
	elapsed := decimal.NewFromInt(int64(checkOut.Sub(checkIn)))
	return elapsed.Div(decimal.NewFromInt(int64(time.Hour))).Round(2)
}

// DeriveCheckOutStatus computes the worked hours and the final status.
// A day classified present or late at check-in keeps that status whatever
// the duration; only other statuses drop to half-day under the threshold.
// checkOut must not precede checkIn.
func DeriveCheckOutStatus(checkIn, checkOut time.Time, current Status, halfDayHours decimal.Decimal) (Status, decimal.Decimal) {
	hours := WorkedHours(checkIn, checkOut)

	if hours.LessThan(halfDayHours) && current != StatusPresent && current != StatusLate {
		return StatusHalfDay, hours
	}
	return current, hours
}
