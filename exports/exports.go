package exports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"next24/db"
	"next24/globals"
	"next24/middleware"
	"next24/models"
	"next24/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// loadForExport loads an itinerary for its owner, or anyone when public.
func loadForExport(ctx context.Context, w http.ResponseWriter, r *http.Request, itineraryID string) (*models.Itinerary, bool) {
	userID := ""
	if claims, err := middleware.ValidateJWT(r.Header.Get("Authorization")); err == nil {
		userID = claims.UserID
	}

	var it models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return nil, false
	}
	if !it.IsPublic && (userID == "" || it.UserID != userID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}
	return &it, true
}

func attachmentName(it *models.Itinerary, suffix string) string {
	return strings.ReplaceAll(it.Title, " ", "-") + suffix
}

// GET /api/itineraries/:id/export/calendar
func ExportCalendar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, ok := loadForExport(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	ics, err := GenerateICS(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Calendar export failed")
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName(it, "-calendar.ics")))
	w.Write([]byte(ics))
}

// GET /api/itineraries/:id/export/document
func ExportDocument(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, ok := loadForExport(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName(it, "-itinerary.txt")))
	w.Write([]byte(GenerateDocument(it)))
}

// GET /api/itineraries/:id/export/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	it, ok := loadForExport(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	pdf, err := GeneratePDF(it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "PDF export failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName(it, "-itinerary.pdf")))
	w.Write(pdf)
}

// GET /api/itineraries/:id/export/mobile
func ExportMobile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, ok := loadForExport(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachmentName(it, "-mobile.json")))
	utils.RespondWithJSON(w, http.StatusOK, GenerateMobile(it))
}

// POST /api/itineraries/:id/export/email
func ExportEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, ok := loadForExport(ctx, w, r, ps.ByName("id"))
	if !ok {
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	summary, err := GenerateEmail(it, req.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Delivery is handed to the mail relay out of band; the summary echoes
	// what will be sent.
	utils.RespondWithJSON(w, http.StatusAccepted, summary)
}

// POST /api/itineraries/:id/share
func CreateShare(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var it models.Itinerary
	err = db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": ps.ByName("id"), "deleted": bson.M{"$ne": true}}).Decode(&it)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if it.UserID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	shareID, url, err := CreateShareLink(ctx, &it)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Share link creation failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"shareId":  shareID,
		"shareUrl": url,
		"isPublic": it.IsPublic,
	})
}

// GET /api/shared/:shareid/qr
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	shareID := ps.ByName("shareid")
	if _, err := ResolveShare(ctx, shareID); err != nil {
		http.Error(w, "Share link not found", http.StatusNotFound)
		return
	}

	url := fmt.Sprintf("https://%s/shared/%s", globals.ShareDomain, shareID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// GET /api/shared/:shareid
func GetShared(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := ResolveShare(ctx, ps.ByName("shareid"))
	if err != nil {
		http.Error(w, "Share link not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, it)
}
