package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = httperr.ErrBusiness(httperr.CodeValidation)

// DateWindow is the half-open instant range [Start, End).
type DateWindow struct {
	Start time.Time
	End   time.Time
}

func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CalendarWindowUTC maps a YYYY-MM-DD date onto [date 00:00 UTC, date+1 00:00 UTC).
// Every closure and appointment lookup filters through this window.
func CalendarWindowUTC(date string) (DateWindow, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return DateWindow{}, ErrInvalidDate
	}
	return DateWindow{Start: d, End: d.AddDate(0, 0, 1)}, nil
}

// CalendarDateUTC normalizes a date string to its UTC midnight, the value
// persisted in date columns.
func CalendarDateUTC(date string) (time.Time, error) {
	w, err := CalendarWindowUTC(date)
	if err != nil {
		return time.Time{}, err
	}
	return w.Start, nil
}

// LocalTimeLabel renders t as the salon's wall-clock "HH:MM". Slot labeling
// and arithmetic always go through this, never through the UTC window.
func LocalTimeLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(labelLayout)
}

// LocalDate is the salon-calendar date of t.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// UTCDateString renders the UTC calendar components of t as YYYY-MM-DD.
func UTCDateString(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
