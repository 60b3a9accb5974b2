package exports

import "next24/models"

// MobileActivity is one row of the flattened ledger. Day nesting is
// discarded on purpose: generic import tools want a flat activity list.
type MobileActivity struct {
	Date     string          `json:"date"`
	Name     string          `json:"name"`
	Location models.Location `json:"location"`
	Duration int             `json:"duration"`
	Category string          `json:"category"`
}

type MobileExport struct {
	Title       string           `json:"title"`
	Destination string           `json:"destination"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Activities  []MobileActivity `json:"activities"`
}

// GenerateMobile flattens the itinerary for travel-app import.
func GenerateMobile(it *models.Itinerary) MobileExport {
	out := MobileExport{
		Title:       it.Title,
		Destination: it.Destination,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		Activities:  []MobileActivity{},
	}
	for _, day := range it.Days {
		for _, a := range day.Activities {
			out.Activities = append(out.Activities, MobileActivity{
				Date:     day.Date,
				Name:     a.Name,
				Location: a.Location,
				Duration: a.Duration,
				Category: a.Category,
			})
		}
	}
	return out
}
