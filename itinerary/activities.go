package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /api/itineraries/:id/days/:dayid/activities
func AddActivityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	var a models.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if a.Name == "" || a.Duration < 0 || !models.ValidCategory(a.Category) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "activity needs a name, a category and a non-negative duration")
		return
	}
	if a.ID == "" {
		a.ID = utils.GenerateRandomString(13)
	}

	// Unknown day id is the caller's stale reference, not an error.
	AddActivity(it, ps.ByName("dayid"), a)
	persist(ctx, w, it, "activity-add")
}

// DELETE /api/itineraries/:id/days/:dayid/activities/:activityid
func RemoveActivityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	RemoveActivity(it, ps.ByName("dayid"), ps.ByName("activityid"))
	persist(ctx, w, it, "activity-remove")
}

// POST /api/itineraries/:id/move
func MoveActivityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	var req struct {
		FromDayID  string `json:"fromDayId"`
		ToDayID    string `json:"toDayId"`
		ActivityID string `json:"activityId"`
		NewIndex   int    `json:"newIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := MoveActivity(it, req.FromDayID, req.ToDayID, req.ActivityID, req.NewIndex); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	persist(ctx, w, it, "activity-move")
}

// GET /api/itineraries/:id/days/:dayid/summary
func DaySummaryHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, _, ok := loadOwned(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	day := findDay(it, ps.ByName("dayid"))
	if day == nil {
		http.Error(w, "Day not found", http.StatusNotFound)
		return
	}

	total := DayDuration(*day)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"dayId":         day.ID,
		"date":          day.Date,
		"activities":    len(day.Activities),
		"totalDuration": total,
		"formatted":     utils.FormatDuration(total),
		"remaining":     RemainingTime(*day),
	})
}
