package itinerary

import (
	"fmt"
	"time"

	"next24/globals"
	"next24/models"
)

// The timeline engine mutates an Itinerary in place. It is the only code
// allowed to touch Day.Activities; suggestions, maps and exports read
// snapshots and hand new activities back through AddActivity.

const dateLayout = "2006-01-02"

// BuildDays creates one empty day per date in [start, end] inclusive,
// ordered ascending. Day ids are derived from the date, which is unique
// within one itinerary.
func BuildDays(startDate, endDate string) ([]models.ItineraryDay, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q", endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}

	var days []models.ItineraryDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		days = append(days, models.ItineraryDay{
			ID:         "day-" + date,
			Date:       date,
			Activities: []models.Activity{},
		})
	}
	return days, nil
}

func findDay(it *models.Itinerary, dayID string) *models.ItineraryDay {
	for i := range it.Days {
		if it.Days[i].ID == dayID {
			return &it.Days[i]
		}
	}
	return nil
}

// AddActivity appends to the named day. Unknown day ids are a silent no-op;
// a valid id is the caller's precondition, not a recoverable error.
func AddActivity(it *models.Itinerary, dayID string, a models.Activity) bool {
	day := findDay(it, dayID)
	if day == nil {
		return false
	}
	day.Activities = append(day.Activities, a)
	return true
}

// RemoveActivity removes the first activity with a matching id from the
// named day. No-op if the day or activity is missing.
func RemoveActivity(it *models.Itinerary, dayID, activityID string) bool {
	day := findDay(it, dayID)
	if day == nil {
		return false
	}
	for i, a := range day.Activities {
		if a.ID == activityID {
			day.Activities = append(day.Activities[:i], day.Activities[i+1:]...)
			return true
		}
	}
	return false
}

// MoveActivity relocates one activity, within a day or across days. The
// target index is clamped to the destination sequence after removal.
// Moving to the same index in the same day leaves the itinerary untouched.
// A missing source activity is a silent no-op; a missing destination day is
// reported, since stale day ids can follow a date-range shrink.
func MoveActivity(it *models.Itinerary, fromDayID, toDayID, activityID string, newIndex int) error {
	from := findDay(it, fromDayID)
	if from == nil {
		return nil
	}

	srcIndex := -1
	for i, a := range from.Activities {
		if a.ID == activityID {
			srcIndex = i
			break
		}
	}
	if srcIndex == -1 {
		return nil
	}

	to := findDay(it, toDayID)
	if to == nil {
		return fmt.Errorf("destination day %s not found", toDayID)
	}

	if fromDayID == toDayID && newIndex == srcIndex {
		return nil
	}

	activity := from.Activities[srcIndex]
	from.Activities = append(from.Activities[:srcIndex], from.Activities[srcIndex+1:]...)

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(to.Activities) {
		newIndex = len(to.Activities)
	}

	to.Activities = append(to.Activities, models.Activity{})
	copy(to.Activities[newIndex+1:], to.Activities[newIndex:])
	to.Activities[newIndex] = activity
	return nil
}

// DayDuration sums activity durations in minutes.
func DayDuration(day models.ItineraryDay) int {
	total := 0
	for _, a := range day.Activities {
		total += a.Duration
	}
	return total
}

// RemainingTime is what is left of the daily budget after everything
// already scheduled. Can go negative on an overbooked day.
func RemainingTime(day models.ItineraryDay) int {
	return globals.DailyTimeBudgetMinutes - DayDuration(day)
}

// AllActivities flattens every day's activities in itinerary order.
func AllActivities(it *models.Itinerary) []models.Activity {
	var all []models.Activity
	for _, day := range it.Days {
		all = append(all, day.Activities...)
	}
	return all
}
