package bookingsvc

import (
	"math"
	"time"
)

// DriverRatePerHour is the flat hourly surcharge when a chauffeur is requested.
const DriverRatePerHour = 400.0

// Quote computes the billable hours and total amount for a rental interval.
// Hours are whole, rounded up. A non-positive interval quotes zero hours and
// zero total, which callers must reject.
func Quote(start, end time.Time, pricePerHour float64, needDriver bool) (hours int, total float64) {
	d := end.Sub(start)
	if d <= 0 {
		return 0, 0
	}
	hours = int(math.Ceil(d.Hours()))
	total = float64(hours) * pricePerHour
	if needDriver {
		total += float64(hours) * DriverRatePerHour
	}
	return hours, total
}
