package maps

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"next24/db"
	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Marker mirrors one activity of the selected day. The payload always
// replaces all prior markers; low counts make diffing pointless.
type Marker struct {
	ActivityID string          `json:"activityId"`
	Label      string          `json:"label"` // 1-based position in the day
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Location   models.Location `json:"location"`
}

// Markers builds the full clear-and-redraw marker set for a day.
func Markers(day models.ItineraryDay) []Marker {
	out := make([]Marker, 0, len(day.Activities))
	for i, a := range day.Activities {
		out = append(out, Marker{
			ActivityID: a.ID,
			Label:      strconv.Itoa(i + 1),
			Name:       a.Name,
			Category:   a.Category,
			Location:   a.Location,
		})
	}
	return out
}

// ComputeRoute requests a walking route through the day's activities in
// order, intermediate stops optimizable by the provider.
func ComputeRoute(ctx context.Context, day models.ItineraryDay) (RouteSummary, error) {
	acts := day.Activities
	if len(acts) < 2 {
		return RouteSummary{}, ErrTooFewStops
	}

	origin := acts[0].Location
	destination := acts[len(acts)-1].Location
	var waypoints []models.Location
	for _, a := range acts[1 : len(acts)-1] {
		waypoints = append(waypoints, a.Location)
	}

	return active.Route(ctx, origin, destination, waypoints, true, ModeWalking)
}

func loadDay(ctx context.Context, w http.ResponseWriter, itineraryID, dayID string) (*models.ItineraryDay, bool) {
	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return nil, false
	}
	for i := range it.Days {
		if it.Days[i].ID == dayID {
			return &it.Days[i], true
		}
	}
	http.Error(w, "Day not found", http.StatusNotFound)
	return nil, false
}

// GET /api/itineraries/:id/days/:dayid/markers
// Works with or without a configured provider; the fallback is the same
// ordered list without map rendering.
func GetMarkers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	day, ok := loadDay(ctx, w, ps.ByName("id"), ps.ByName("dayid"))
	if !ok {
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"markers":      Markers(*day),
		"mapAvailable": Configured(),
	})
}

// GET /api/itineraries/:id/days/:dayid/route
func GetRoute(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	day, ok := loadDay(ctx, w, ps.ByName("id"), ps.ByName("dayid"))
	if !ok {
		return
	}

	if len(day.Activities) < 2 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "a route needs at least two activities")
		return
	}
	if !Configured() {
		// Degraded mode is informational, not an error.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"mapAvailable": false})
		return
	}

	summary, err := ComputeRoute(ctx, *day)
	if err != nil {
		// Provider failure surfaces no result; any previously shown route
		// stays untouched client-side.
		utils.RespondWithError(w, http.StatusBadGateway, "route computation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"mapAvailable": true,
		"route":        summary,
	})
}

// GET /api/itineraries/:id/days/:dayid/nearby?radius=&category=
func GetNearby(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	day, ok := loadDay(ctx, w, ps.ByName("id"), ps.ByName("dayid"))
	if !ok {
		return
	}
	if len(day.Activities) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"places": []Place{}})
		return
	}
	if !Configured() {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"mapAvailable": false, "places": []Place{}})
		return
	}

	radius, err := strconv.Atoi(r.URL.Query().Get("radius"))
	if err != nil || radius <= 0 {
		radius = 1000
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryRestaurant
	}

	places, err := active.NearbySearch(ctx, day.Activities[0].Location, radius, category)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "nearby search failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"mapAvailable": true, "places": places})
}
