package collab

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"next24/db"
	"next24/middleware"
	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func requestingUserID(r *http.Request) string {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		return ""
	}
	return claims.UserID
}

// SeedOwner writes the owner record for a freshly created itinerary.
func SeedOwner(ctx context.Context, itineraryID, userID string) error {
	_, err := db.CollaboratorsCollection.InsertOne(ctx, NewOwner(itineraryID, userID))
	return err
}

func loadList(ctx context.Context, itineraryID string) ([]models.Collaborator, error) {
	cursor, err := db.CollaboratorsCollection.Find(ctx, bson.M{"itineraryid": itineraryID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var list []models.Collaborator
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func authorizeOwner(ctx context.Context, w http.ResponseWriter, r *http.Request, itineraryID string) (*models.Itinerary, bool) {
	userID := requestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return nil, false
	}
	if it.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}
	return &it, true
}

// GET /api/itineraries/:id/collaborators
func ListCollaborators(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, ok := authorizeOwner(ctx, w, r, ps.ByName("id")); !ok {
		return
	}

	list, err := loadList(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching collaborators")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"collaborators": list,
		"emails":        Emails(list),
	})
}

// POST /api/itineraries/:id/collaborators
func InviteCollaborator(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itineraryID := ps.ByName("id")
	if _, ok := authorizeOwner(ctx, w, r, itineraryID); !ok {
		return
	}

	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	list, err := loadList(ctx, itineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching collaborators")
		return
	}

	_, invited, err := Invite(list, itineraryID, req.Email, req.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Upsert by email so a re-invite never duplicates the record.
	filter := bson.M{"itineraryid": itineraryID, "email": invited.Email}
	update := bson.M{"$set": invited}
	opts := options.Update().SetUpsert(true)
	if _, err := db.CollaboratorsCollection.UpdateOne(ctx, filter, update, opts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving invite")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, invited)
}

// PATCH /api/itineraries/:id/collaborators/:collabid
func ChangeCollaboratorRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itineraryID := ps.ByName("id")
	if _, ok := authorizeOwner(ctx, w, r, itineraryID); !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	list, err := loadList(ctx, itineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching collaborators")
		return
	}

	if err := ChangeRole(list, ps.ByName("collabid"), req.Role); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	filter := bson.M{"itineraryid": itineraryID, "id": ps.ByName("collabid")}
	if _, err := db.CollaboratorsCollection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"role": req.Role}}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving role change")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Role updated"})
}

// DELETE /api/itineraries/:id/collaborators/:collabid
func RemoveCollaborator(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	itineraryID := ps.ByName("id")
	if _, ok := authorizeOwner(ctx, w, r, itineraryID); !ok {
		return
	}

	list, err := loadList(ctx, itineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching collaborators")
		return
	}

	if _, err := Remove(list, ps.ByName("collabid")); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	filter := bson.M{"itineraryid": itineraryID, "id": ps.ByName("collabid"), "role": bson.M{"$ne": models.RoleOwner}}
	if _, err := db.CollaboratorsCollection.DeleteOne(ctx, filter); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error removing collaborator")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Collaborator removed"})
}

// PATCH /api/itineraries/:id/visibility
// Flips the public flag only; share links are generated separately.
func TogglePublic(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, ok := authorizeOwner(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	it.IsPublic = !it.IsPublic
	update := bson.M{"$set": bson.M{"ispublic": it.IsPublic, "updatedat": time.Now().UTC().Format(time.RFC3339)}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": it.ItineraryID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating visibility")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"isPublic": it.IsPublic})
}
