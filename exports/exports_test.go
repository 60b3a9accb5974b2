package exports

import (
	"strings"
	"testing"
	"time"

	"next24/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItinerary() *models.Itinerary {
	return &models.Itinerary{
		ItineraryID: "trip1",
		Title:       "Paris Trip",
		Destination: "Paris, France",
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		Days: []models.ItineraryDay{
			{
				ID:   "day-2026-06-01",
				Date: "2026-06-01",
				Activities: []models.Activity{
					{
						ID:          "eiffel-1",
						Name:        "Eiffel Tower",
						Description: "Iconic tower, city views",
						Location:    models.Location{Address: "Champ de Mars, Paris"},
						Duration:    120,
						Category:    models.CategoryAttraction,
						Price:       "€29",
					},
					{
						ID:       "louvre-1",
						Name:     "Louvre Museum",
						Duration: 180,
						Category: models.CategoryAttraction,
					},
				},
			},
			{
				ID:         "day-2026-06-02",
				Date:       "2026-06-02",
				Activities: []models.Activity{},
			},
		},
	}
}

func TestGenerateICSOneEventPerActivity(t *testing.T) {
	ics, err := GenerateICS(sampleItinerary())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\nVERSION:2.0\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\n"))
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(ics, "END:VEVENT"))
	assert.Contains(t, ics, "UID:eiffel-1@next24.xyz")
	assert.Contains(t, ics, "SUMMARY:Eiffel Tower")
}

func TestGenerateICSEventSpansDuration(t *testing.T) {
	ics, err := GenerateICS(sampleItinerary())
	require.NoError(t, err)

	var starts, ends []time.Time
	for _, line := range strings.Split(ics, "\n") {
		if v, ok := strings.CutPrefix(line, "DTSTART:"); ok {
			ts, err := time.Parse(icsTimeLayout, v)
			require.NoError(t, err)
			starts = append(starts, ts)
		}
		if v, ok := strings.CutPrefix(line, "DTEND:"); ok {
			ts, err := time.Parse(icsTimeLayout, v)
			require.NoError(t, err)
			ends = append(ends, ts)
		}
	}
	require.Len(t, starts, 2)
	require.Len(t, ends, 2)

	assert.Equal(t, 120*time.Minute, ends[0].Sub(starts[0]))
	assert.Equal(t, 180*time.Minute, ends[1].Sub(starts[1]))
}

func TestGenerateICSEscapesSpecials(t *testing.T) {
	it := sampleItinerary()
	it.Days[0].Activities[0].Name = "Dinner; wine, cheese"

	ics, err := GenerateICS(it)
	require.NoError(t, err)
	assert.Contains(t, ics, `SUMMARY:Dinner\; wine\, cheese`)
}

func TestGenerateICSBadDate(t *testing.T) {
	it := sampleItinerary()
	it.Days[0].Date = "June 1st"

	_, err := GenerateICS(it)
	assert.Error(t, err)
}

func TestGenerateDocument(t *testing.T) {
	doc := GenerateDocument(sampleItinerary())

	assert.Contains(t, doc, "Paris Trip")
	assert.Contains(t, doc, "Destination: Paris, France")
	assert.Contains(t, doc, "Day 1 - 2026-06-01")
	assert.Contains(t, doc, "Day 2 - 2026-06-02")
	assert.Contains(t, doc, "1. Eiffel Tower")
	assert.Contains(t, doc, "2. Louvre Museum")
	assert.Contains(t, doc, "Duration: 2h")
	assert.Contains(t, doc, "Price: €29")
	assert.Contains(t, doc, "No activities planned")
}

func TestGeneratePDF(t *testing.T) {
	pdf, err := GeneratePDF(sampleItinerary())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestGenerateMobileFlattens(t *testing.T) {
	out := GenerateMobile(sampleItinerary())

	assert.Equal(t, "Paris Trip", out.Title)
	assert.Equal(t, "2026-06-01", out.StartDate)
	require.Len(t, out.Activities, 2)
	assert.Equal(t, "2026-06-01", out.Activities[0].Date)
	assert.Equal(t, "Eiffel Tower", out.Activities[0].Name)
	assert.Equal(t, 120, out.Activities[0].Duration)
	assert.Equal(t, models.CategoryAttraction, out.Activities[1].Category)
}

func TestGenerateMobileEmptyItinerary(t *testing.T) {
	it := &models.Itinerary{Title: "Empty"}
	out := GenerateMobile(it)
	assert.NotNil(t, out.Activities)
	assert.Empty(t, out.Activities)
}

func TestGenerateEmail(t *testing.T) {
	summary, err := GenerateEmail(sampleItinerary(), "traveler@example.com")
	require.NoError(t, err)

	assert.Equal(t, "traveler@example.com", summary.To)
	assert.Equal(t, "Your Paris Trip Itinerary", summary.Subject)
	assert.Contains(t, summary.Body, "Eiffel Tower")
}

func TestGenerateEmailRejectsBadAddress(t *testing.T) {
	_, err := GenerateEmail(sampleItinerary(), "")
	assert.Error(t, err)

	_, err = GenerateEmail(sampleItinerary(), "not-an-email")
	assert.Error(t, err)
}
