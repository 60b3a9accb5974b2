package maps

import (
	"context"
	"errors"
	"os"

	"next24/models"
)

// TravelMode for route requests. Day routes are walked.
const (
	ModeWalking = "walking"
	ModeDriving = "driving"
)

var (
	ErrNotConfigured = errors.New("map provider not configured")
	ErrTooFewStops   = errors.New("route needs at least two activities")
)

// RouteSummary aggregates a computed route across a day's stops.
type RouteSummary struct {
	DistanceMeters  int   `json:"distance_meters"`
	DurationSeconds int   `json:"duration_seconds"`
	OptimizedOrder  []int `json:"optimized_order,omitempty"`
}

type Place struct {
	Name     string          `json:"name"`
	Location models.Location `json:"location"`
	Category string          `json:"category"`
	Rating   float64         `json:"rating,omitempty"`
}

// Provider abstracts the external mapping capability: geocoding, routing
// and nearby search. The planner injects a concrete provider; when no
// credential is configured the noop fallback keeps every endpoint working
// as a plain ordered list.
type Provider interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
	Route(ctx context.Context, origin, destination models.Location, waypoints []models.Location, optimize bool, mode string) (RouteSummary, error)
	NearbySearch(ctx context.Context, center models.Location, radiusMeters int, category string) ([]Place, error)
}

// noopProvider is the degraded mode: never errors the page, never returns
// map data.
type noopProvider struct{}

func (noopProvider) Geocode(ctx context.Context, address string) (models.Location, error) {
	return models.Location{}, ErrNotConfigured
}

func (noopProvider) Route(ctx context.Context, origin, destination models.Location, waypoints []models.Location, optimize bool, mode string) (RouteSummary, error) {
	return RouteSummary{}, ErrNotConfigured
}

func (noopProvider) NearbySearch(ctx context.Context, center models.Location, radiusMeters int, category string) ([]Place, error) {
	return nil, ErrNotConfigured
}

var active Provider = noopProvider{}

// Configure installs a provider. Called from main when MAPS_API_KEY is
// present; otherwise the noop fallback stays active.
func Configure(p Provider) {
	if p != nil {
		active = p
	}
}

// Configured reports whether a real provider is installed.
func Configured() bool {
	_, noop := active.(noopProvider)
	return !noop
}

// APIKeyFromEnv reads the provider credential, treating placeholder values
// as absent.
func APIKeyFromEnv() string {
	key := os.Getenv("MAPS_API_KEY")
	if key == "" || key == "demo_key" || key == "your_google_maps_api_key_here" {
		return ""
	}
	return key
}
