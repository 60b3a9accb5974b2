package itinerary

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"next24/collab"
	"next24/db"
	"next24/middleware"
	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Broadcast notifies open planner sessions that an itinerary changed.
// Wired to the live hub in main; a no-op until then.
var Broadcast = func(itineraryID, action string) {}

// Utility function to extract user ID from JWT
func GetRequestingUserID(w http.ResponseWriter, r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		log.Printf("JWT validation error: %v", err)
		return ""
	}
	return claims.UserID
}

// POST /api/itineraries
func CreateItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	days, err := BuildDays(it.StartDate, it.EndDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	it.UserID = userID
	it.ItineraryID = utils.GenerateRandomString(13)
	it.Days = days
	it.IsPublic = false
	now := time.Now().UTC().Format(time.RFC3339)
	it.CreatedAt = now
	it.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, it); err != nil {
		http.Error(w, "Error inserting itinerary", http.StatusInternalServerError)
		return
	}

	if err := collab.SeedOwner(ctx, it.ItineraryID, userID); err != nil {
		log.Printf("owner record for %s: %v", it.ItineraryID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, it)
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	cursor, err := db.ItineraryCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}

func loadOwned(ctx context.Context, w http.ResponseWriter, r *http.Request, itineraryID string) (*models.Itinerary, string, bool) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, "", false
	}

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return nil, "", false
	}

	if it.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, "", false
	}
	return &it, userID, true
}

func persist(ctx context.Context, w http.ResponseWriter, it *models.Itinerary, action string) {
	it.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	update := bson.M{"$set": bson.M{
		"title":       it.Title,
		"destination": it.Destination,
		"start_date":  it.StartDate,
		"end_date":    it.EndDate,
		"days":        it.Days,
		"ispublic":    it.IsPublic,
		"updatedat":   it.UpdatedAt,
	}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		http.Error(w, "Error updating itinerary", http.StatusInternalServerError)
		return
	}

	Broadcast(it.ItineraryID, action)
	utils.RespondWithJSON(w, http.StatusOK, it)
}

// PUT /api/itineraries/:id
// Metadata update. A changed date range rebuilds the day sequence; days
// whose date survives the change keep their activities.
func UpdateItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	var updated struct {
		Title       string `json:"title"`
		Destination string `json:"destination"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if updated.Title != "" {
		it.Title = updated.Title
	}
	if updated.Destination != "" {
		it.Destination = updated.Destination
	}

	if updated.StartDate != "" || updated.EndDate != "" {
		if updated.StartDate != "" {
			it.StartDate = updated.StartDate
		}
		if updated.EndDate != "" {
			it.EndDate = updated.EndDate
		}
		days, err := BuildDays(it.StartDate, it.EndDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		kept := make(map[string][]models.Activity, len(it.Days))
		for _, d := range it.Days {
			kept[d.Date] = d.Activities
		}
		for i := range days {
			if acts, ok := kept[days[i].Date]; ok {
				days[i].Activities = acts
			}
		}
		it.Days = days
	}

	persist(ctx, w, it, "update")
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		http.Error(w, "Error deleting itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Itinerary deleted successfully"})
}

// POST /api/itineraries/:id/fork
func ForkItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := GetRequestingUserID(w, r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	originalID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var original models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": originalID, "deleted": bson.M{"$ne": true}}).Decode(&original)
	if err != nil {
		http.Error(w, "Original itinerary not found", http.StatusNotFound)
		return
	}
	if !original.IsPublic && original.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	fork := models.Itinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      userID,
		Title:       "Forked - " + original.Title,
		Destination: original.Destination,
		StartDate:   original.StartDate,
		EndDate:     original.EndDate,
		Days:        original.Days,
		IsPublic:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.ItineraryCollection.InsertOne(ctx, fork); err != nil {
		http.Error(w, "Error forking itinerary", http.StatusInternalServerError)
		return
	}
	if err := collab.SeedOwner(ctx, fork.ItineraryID, userID); err != nil {
		log.Printf("owner record for %s: %v", fork.ItineraryID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, fork)
}
