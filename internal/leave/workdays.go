package leave

import "time"

// CountWorkingDays counts Monday through Friday calendar dates in
// [start, end] inclusive. Weekend-only ranges yield zero, which the
// workflow accepts without rejection.
func CountWorkingDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
