package grid

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/monthgrid/pkg/dateutil"
)

// Cells is the fixed size of the month grid: 6 rows of 7 days. A month
// that spans only 5 weeks still gets a 6th row, padded further into the
// next month.
const Cells = 42

// Columns is the number of weekday columns in a row
const Columns = 7

// ErrInvalidDate is returned when the reference date is absent or not a
// well-formed calendar date.
var ErrInvalidDate = errors.New("invalid reference date")

// Bounds on the displayable year. time.Date accepts any int year; dates far
// outside this window indicate corrupted input rather than a real request.
const (
	minYear = 1
	maxYear = 9999
)

// DayCell represents one entry of the month grid
type DayCell struct {
	Date        time.Time // concrete calendar date, start of day
	Day         int       // 1-31, the numeral to display
	InMonth     bool      // true only for days of the reference month
	Highlighted bool      // true only for the reference day itself
}

// Generate maps a reference date to the ordered 42-cell grid for its month.
// Leading cells backfill from the previous month, trailing cells overflow
// into the next; exactly one cell is highlighted. The reference date is
// validated once here and never silently coerced.
func Generate(ref time.Time) ([]DayCell, error) {
	if err := Validate(ref); err != nil {
		return nil, err
	}

	ref = dateutil.StartOfDay(ref)
	firstOfMonth := dateutil.FirstOfMonth(ref)

	// The weekday index of day 1 (Sunday = 0) is the number of
	// previous-month cells to backfill. A month that begins on Sunday
	// gets a full leading week, so the first row always holds at least
	// one previous-month day.
	leading := int(firstOfMonth.Weekday())
	if leading == 0 {
		leading = 7 // Sunday = 7
	}

	cells := make([]DayCell, 0, Cells)
	for date := firstOfMonth.AddDate(0, 0, -leading); len(cells) < Cells; date = date.AddDate(0, 0, 1) {
		inMonth := date.Month() == ref.Month() && date.Year() == ref.Year()
		cells = append(cells, DayCell{
			Date:        date,
			Day:         date.Day(),
			InMonth:     inMonth,
			Highlighted: inMonth && dateutil.IsSameDay(date, ref),
		})
	}

	return cells, nil
}

// Validate reports whether the reference date is usable as grid input
func Validate(ref time.Time) error {
	if ref.IsZero() {
		return fmt.Errorf("%w: no date supplied", ErrInvalidDate)
	}
	if year := ref.Year(); year < minYear || year > maxYear {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	return nil
}

// Rows splits a generated grid into its 6 display rows
func Rows(cells []DayCell) [][]DayCell {
	rows := make([][]DayCell, 0, len(cells)/Columns)
	for i := 0; i+Columns <= len(cells); i += Columns {
		rows = append(rows, cells[i:i+Columns])
	}
	return rows
}
