// Package calendar counts business days. A business day is any calendar day
// that is not a Saturday or Sunday; there is no holiday awareness.
package calendar

import "time"

// IsWeekend reports whether t falls on a Saturday or Sunday in its own location.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BusinessDaysSince returns the number of weekdays in the half-open range of
// calendar days [day(past), day(now)). Day boundaries are taken in now's
// location. The result is never negative: a past instant later than now
// yields 0.
//
// Friday 09:00 to the following Monday 09:00 is 1, Monday to Tuesday is 1,
// Saturday to Monday is 0.
func BusinessDaysSince(past, now time.Time) int {
	loc := now.Location()
	start := startOfDay(past.In(loc))
	end := startOfDay(now)
	if !start.Before(end) {
		return 0
	}

	days := calendarDaysBetween(start, end)
	weeks := days / 7
	count := weeks * 5

	cursor := start.AddDate(0, 0, weeks*7)
	for cursor.Before(end) {
		if !IsWeekend(cursor) {
			count++
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return count
}

// AddBusinessDays moves t by n weekdays, forward for n > 0 and backward for
// n < 0, keeping the wall-clock time of day. n == 0 returns t unchanged.
func AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	result := t
	for added := 0; added < n; {
		result = result.AddDate(0, 0, step)
		if !IsWeekend(result) {
			added++
		}
	}
	return result
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDaysBetween counts midnight crossings from a to b, both already
// truncated to midnight. Rounding absorbs DST transitions.
func calendarDaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
