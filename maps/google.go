package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"next24/models"
)

// googleProvider talks to the Google Maps web service endpoints. Only the
// fields the planner consumes are decoded.
type googleProvider struct {
	apiKey string
	client *http.Client
}

func NewGoogleProvider(apiKey string) Provider {
	return &googleProvider{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

const googleBase = "https://maps.googleapis.com/maps/api"

func (g *googleProvider) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	params.Set("key", g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleBase+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("map provider returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (g *googleProvider) Geocode(ctx context.Context, address string) (models.Location, error) {
	var out struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	params := url.Values{"address": {address}}
	if err := g.get(ctx, "/geocode/json", params, &out); err != nil {
		return models.Location{}, err
	}
	if out.Status != "OK" || len(out.Results) == 0 {
		return models.Location{}, fmt.Errorf("geocode failed: %s", out.Status)
	}

	r := out.Results[0]
	return models.Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng, Address: r.FormattedAddress}, nil
}

func latlng(l models.Location) string {
	return fmt.Sprintf("%f,%f", l.Lat, l.Lng)
}

func (g *googleProvider) Route(ctx context.Context, origin, destination models.Location, waypoints []models.Location, optimize bool, mode string) (RouteSummary, error) {
	params := url.Values{
		"origin":      {latlng(origin)},
		"destination": {latlng(destination)},
		"mode":        {mode},
	}
	if len(waypoints) > 0 {
		parts := make([]string, 0, len(waypoints)+1)
		if optimize {
			parts = append(parts, "optimize:true")
		}
		for _, wp := range waypoints {
			parts = append(parts, latlng(wp))
		}
		params.Set("waypoints", strings.Join(parts, "|"))
	}

	var out struct {
		Status string `json:"status"`
		Routes []struct {
			WaypointOrder []int `json:"waypoint_order"`
			Legs          []struct {
				Distance struct {
					Value int `json:"value"`
				} `json:"distance"`
				Duration struct {
					Value int `json:"value"`
				} `json:"duration"`
			} `json:"legs"`
		} `json:"routes"`
	}

	if err := g.get(ctx, "/directions/json", params, &out); err != nil {
		return RouteSummary{}, err
	}
	if out.Status != "OK" || len(out.Routes) == 0 {
		return RouteSummary{}, fmt.Errorf("route failed: %s", out.Status)
	}

	var summary RouteSummary
	summary.OptimizedOrder = out.Routes[0].WaypointOrder
	for _, leg := range out.Routes[0].Legs {
		summary.DistanceMeters += leg.Distance.Value
		summary.DurationSeconds += leg.Duration.Value
	}
	return summary, nil
}

func (g *googleProvider) NearbySearch(ctx context.Context, center models.Location, radiusMeters int, category string) ([]Place, error) {
	params := url.Values{
		"location": {latlng(center)},
		"radius":   {fmt.Sprintf("%d", radiusMeters)},
		"type":     {category},
	}

	var out struct {
		Status  string `json:"status"`
		Results []struct {
			Name     string  `json:"name"`
			Vicinity string  `json:"vicinity"`
			Rating   float64 `json:"rating"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := g.get(ctx, "/place/nearbysearch/json", params, &out); err != nil {
		return nil, err
	}
	if out.Status != "OK" && out.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search failed: %s", out.Status)
	}

	places := make([]Place, 0, len(out.Results))
	for _, r := range out.Results {
		places = append(places, Place{
			Name:     r.Name,
			Location: models.Location{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng, Address: r.Vicinity},
			Category: category,
			Rating:   r.Rating,
		})
	}
	return places, nil
}
