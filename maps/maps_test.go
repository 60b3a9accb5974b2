package maps

import (
	"context"
	"testing"

	"next24/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	routeCalls int
	origin     models.Location
	dest       models.Location
	waypoints  []models.Location
	mode       string
}

func (s *stubProvider) Geocode(ctx context.Context, address string) (models.Location, error) {
	return models.Location{Lat: 1, Lng: 2, Address: address}, nil
}

func (s *stubProvider) Route(ctx context.Context, origin, destination models.Location, waypoints []models.Location, optimize bool, mode string) (RouteSummary, error) {
	s.routeCalls++
	s.origin = origin
	s.dest = destination
	s.waypoints = waypoints
	s.mode = mode
	return RouteSummary{DistanceMeters: 4200, DurationSeconds: 3600}, nil
}

func (s *stubProvider) NearbySearch(ctx context.Context, center models.Location, radiusMeters int, category string) ([]Place, error) {
	return []Place{{Name: "Bistro", Category: category}}, nil
}

func withProvider(t *testing.T, p Provider) {
	t.Helper()
	prev := active
	active = p
	t.Cleanup(func() { active = prev })
}

func dayWith(locations ...models.Location) models.ItineraryDay {
	day := models.ItineraryDay{ID: "day-2026-06-01", Date: "2026-06-01"}
	for i, loc := range locations {
		day.Activities = append(day.Activities, models.Activity{
			ID:       "a" + string(rune('1'+i)),
			Name:     "Stop",
			Category: models.CategoryAttraction,
			Location: loc,
		})
	}
	return day
}

func TestMarkersLabelsAreOneBased(t *testing.T) {
	day := dayWith(
		models.Location{Lat: 48.8584, Lng: 2.2945},
		models.Location{Lat: 48.8606, Lng: 2.3376},
	)
	day.Activities[0].Name = "Eiffel Tower"

	markers := Markers(day)
	require.Len(t, markers, 2)
	assert.Equal(t, "1", markers[0].Label)
	assert.Equal(t, "2", markers[1].Label)
	assert.Equal(t, "Eiffel Tower", markers[0].Name)
	assert.Equal(t, 48.8584, markers[0].Location.Lat)
}

func TestMarkersEmptyDay(t *testing.T) {
	markers := Markers(models.ItineraryDay{})
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}

func TestComputeRouteTooFewStops(t *testing.T) {
	withProvider(t, &stubProvider{})

	_, err := ComputeRoute(context.Background(), dayWith(models.Location{Lat: 1}))
	assert.ErrorIs(t, err, ErrTooFewStops)
}

func TestComputeRouteWalksFirstToLast(t *testing.T) {
	stub := &stubProvider{}
	withProvider(t, stub)

	first := models.Location{Lat: 48.8584, Lng: 2.2945}
	middle := models.Location{Lat: 48.8606, Lng: 2.3376}
	last := models.Location{Lat: 48.8867, Lng: 2.3431}

	summary, err := ComputeRoute(context.Background(), dayWith(first, middle, last))
	require.NoError(t, err)

	assert.Equal(t, 1, stub.routeCalls)
	assert.Equal(t, first, stub.origin)
	assert.Equal(t, last, stub.dest)
	assert.Equal(t, []models.Location{middle}, stub.waypoints)
	assert.Equal(t, ModeWalking, stub.mode)
	assert.Equal(t, 4200, summary.DistanceMeters)
}

func TestNoopProviderFallback(t *testing.T) {
	withProvider(t, noopProvider{})

	assert.False(t, Configured())

	_, err := ComputeRoute(context.Background(), dayWith(models.Location{Lat: 1}, models.Location{Lat: 2}))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConfigured(t *testing.T) {
	withProvider(t, &stubProvider{})
	assert.True(t, Configured())

	Configure(nil) // nil install keeps the current provider
	assert.True(t, Configured())
}

func TestAPIKeyFromEnvIgnoresPlaceholders(t *testing.T) {
	t.Setenv("MAPS_API_KEY", "demo_key")
	assert.Empty(t, APIKeyFromEnv())

	t.Setenv("MAPS_API_KEY", "your_google_maps_api_key_here")
	assert.Empty(t, APIKeyFromEnv())

	t.Setenv("MAPS_API_KEY", "AIza-real-key")
	assert.Equal(t, "AIza-real-key", APIKeyFromEnv())
}
