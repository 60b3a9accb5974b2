package suggestions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"next24/db"
	"next24/itinerary"
	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// SmartLimit caps how many smart suggestions are surfaced for a day.
const SmartLimit = 3

// Engine filters a destination catalog against the current itinerary.
type Engine struct {
	Catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &Engine{Catalog: catalog}
}

// GetSuggestions returns catalog items for the destination minus anything
// already in the itinerary, matched by original catalog id. Planner copies
// carry CatalogID; raw catalog ids are matched as a fallback.
func (e *Engine) GetSuggestions(destination string, existing []models.Activity) []models.Activity {
	catalog := e.Catalog.Lookup(destination)
	if len(catalog) == 0 {
		return []models.Activity{}
	}

	used := make(map[string]bool, len(existing))
	for _, a := range existing {
		if a.CatalogID != "" {
			used[a.CatalogID] = true
		} else {
			used[a.ID] = true
		}
	}

	out := make([]models.Activity, 0, len(catalog))
	for _, a := range catalog {
		if !used[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// Filter applies the category filter ("all" passes everything) and then a
// case-insensitive substring match against name and description. Applying
// the same filter twice yields the same set.
func Filter(activities []models.Activity, category, query string) []models.Activity {
	out := make([]models.Activity, 0, len(activities))
	query = strings.ToLower(query)
	for _, a := range activities {
		if category != "" && category != "all" && a.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Name), query) &&
			!strings.Contains(strings.ToLower(a.Description), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SmartSuggestions greedily picks the first candidates that still fit in
// the day's remaining time budget, capped at SmartLimit. No knapsack
// search; catalog order wins ties.
func SmartSuggestions(candidates []models.Activity, day models.ItineraryDay) []models.Activity {
	remaining := itinerary.RemainingTime(day)

	out := make([]models.Activity, 0, SmartLimit)
	for _, a := range candidates {
		if a.Duration > remaining {
			continue
		}
		out = append(out, a)
		if len(out) == SmartLimit {
			break
		}
	}
	return out
}

// Accept clones a catalog item into a planner activity with a fresh
// instance id, keeping the catalog id for future exclusion. The catalog
// entry itself stays reusable.
func Accept(a models.Activity) models.Activity {
	clone := a
	clone.CatalogID = a.ID
	clone.ID = a.ID + "-" + utils.GenerateRandomString(8)
	return clone
}

var engine = NewEngine(nil)

// GET /api/itineraries/:id/suggestions?category=&q=&day=
// Suggestions for an itinerary's destination, optionally smart-filtered to
// one day's remaining time.
func GetSuggestions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	available := engine.GetSuggestions(it.Destination, itinerary.AllActivities(&it))
	filtered := Filter(available, query.Get("category"), query.Get("q"))

	resp := utils.M{"suggestions": filtered}

	if dayID := query.Get("day"); dayID != "" {
		for _, day := range it.Days {
			if day.ID == dayID {
				resp["smart"] = SmartSuggestions(filtered, day)
				break
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// POST /api/itineraries/:id/suggestions/accept
// Clones the named catalog item and appends it to the requested day via
// the timeline's own mutation path.
func AcceptSuggestion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := itinerary.GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if it.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	dayID := r.URL.Query().Get("day")
	catalogID := r.URL.Query().Get("activity")

	var template *models.Activity
	for _, a := range engine.Catalog.Lookup(it.Destination) {
		if a.ID == catalogID {
			template = &a
			break
		}
	}
	if template == nil {
		http.Error(w, "Suggestion not found", http.StatusNotFound)
		return
	}

	accepted := Accept(*template)
	if !itinerary.AddActivity(&it, dayID, accepted) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "day not found")
		return
	}

	update := bson.M{"$set": bson.M{"days": it.Days, "updatedat": time.Now().UTC().Format(time.RFC3339)}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving itinerary")
		return
	}

	itinerary.Broadcast(it.ItineraryID, "activity-add")
	utils.RespondWithJSON(w, http.StatusCreated, accepted)
}
