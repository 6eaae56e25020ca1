package services

import "time"

const ISODateLayout = "2006-01-02"

// EpochDay is the lower bound of the all-time window.
const EpochDay = "1970-01-01"

// FormatDay renders the calendar day of an instant as an ISO date
// string. Date comparisons in this package are lexicographic over this
// layout, which sorts in calendar order.
func FormatDay(instant time.Time) string {
	return instant.Format(ISODateLayout)
}
