package exports

import (
	"fmt"
	"strings"
	"time"

	"next24/globals"
	"next24/models"
)

const icsTimeLayout = "20060102T150405Z"

func icsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// GenerateICS renders the itinerary as a VCALENDAR document, one VEVENT per
// activity. Events start at the day's date (UTC midnight) and end after the
// activity's duration; this format is consumed by standard calendar import
// tooling, so field presence and timestamp layout are fixed.
func GenerateICS(it *models.Itinerary) (string, error) {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//Next24//Itinerary Planner//EN\n")

	for _, day := range it.Days {
		start, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			return "", fmt.Errorf("invalid day date %q", day.Date)
		}
		start = start.UTC()

		for _, a := range day.Activities {
			end := start.Add(time.Duration(a.Duration) * time.Minute)

			b.WriteString("BEGIN:VEVENT\n")
			fmt.Fprintf(&b, "UID:%s@%s\n", a.ID, globals.ShareDomain)
			fmt.Fprintf(&b, "DTSTART:%s\n", start.Format(icsTimeLayout))
			fmt.Fprintf(&b, "DTEND:%s\n", end.Format(icsTimeLayout))
			fmt.Fprintf(&b, "SUMMARY:%s\n", icsEscape(a.Name))
			fmt.Fprintf(&b, "DESCRIPTION:%s\n", icsEscape(a.Description))
			fmt.Fprintf(&b, "LOCATION:%s\n", icsEscape(a.Location.Address))
			b.WriteString("END:VEVENT\n")
		}
	}

	b.WriteString("END:VCALENDAR\n")
	return b.String(), nil
}
