package view

import "time"

// Formatter produces the locale-dependent display strings for the month
// view. Abstracted so tests can stub it without depending on the host
// locale database.
type Formatter interface {
	// MonthTitle returns the header line text, e.g. "October 2022"
	MonthTitle(ref time.Time) string

	// WeekdayAbbrevs returns the seven column labels, Sunday first
	WeekdayAbbrevs() []string

	// FullDate returns the footer line text, e.g. "Monday, 3 October 2022"
	FullDate(ref time.Time) string
}

// DefaultFormatter formats with Go's built-in English month and weekday
// names via time.Format.
type DefaultFormatter struct{}

func (DefaultFormatter) MonthTitle(ref time.Time) string {
	return ref.Format("January 2006")
}

func (DefaultFormatter) WeekdayAbbrevs() []string {
	abbrevs := make([]string, 7)
	for i := range abbrevs {
		// Any week works as a weekday source; 2023-01-01 is a Sunday
		day := time.Date(2023, time.January, 1+i, 0, 0, 0, 0, time.UTC)
		abbrevs[i] = day.Format("Mon")[:2]
	}
	return abbrevs
}

func (DefaultFormatter) FullDate(ref time.Time) string {
	return ref.Format("Monday, 2 January 2006")
}
