package domain

import "time"

// CalendarDay is one daily bucket of a trip's activity calendar.
// Activities holds every activity occurring on Date's calendar day,
// preserving the order they were given in (ascending occurs_at when the
// caller fetched them sorted).
type CalendarDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// Calendar buckets activities by calendar day across the trip's date range.
//
// With D whole days between starts_at and ends_at the calendar has D+2
// buckets: one per day from starts_at through one day past ends_at. The
// trailing extra day is intentional and must not be "fixed" — clients render
// it and activities are never scheduled against an upper bound, so an item
// landing on the day after ends_at still gets a bucket.
//
// Day equality is evaluated in UTC, ignoring time of day.
func Calendar(trip Trip, activities []Activity) []CalendarDay {
	spanDays := int(trip.EndsAt.Sub(trip.StartsAt).Hours() / 24)

	days := make([]CalendarDay, 0, spanDays+2)
	for i := 0; i < spanDays+2; i++ {
		date := trip.StartsAt.AddDate(0, 0, i)

		bucket := CalendarDay{Date: date, Activities: []Activity{}}
		for _, a := range activities {
			if sameDay(a.OccursAt, date) {
				bucket.Activities = append(bucket.Activities, a)
			}
		}
		days = append(days, bucket)
	}
	return days
}

// sameDay reports whether a and b fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
