package social

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"next24/db"
	"next24/globals"
	"next24/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var uploadDir = "./uploads/photos"

// Submission is a traveler photo attached to a destination. Approved
// submissions surface on destination pages.
type Submission struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"user_id"`
	Destination string    `json:"destination" bson:"destination"`
	Caption     string    `json:"caption,omitempty" bson:"caption,omitempty"`
	PhotoPath   string    `json:"photoUrl" bson:"photo_path"`
	ThumbPath   string    `json:"thumbUrl" bson:"thumb_path"`
	Approved    bool      `json:"approved" bson:"approved"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func savePhoto(file *multipart.FileHeader) (string, string, error) {
	if file.Size > globals.MaxUploadBytes {
		return "", "", fmt.Errorf("file exceeds %d byte limit", globals.MaxUploadBytes)
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open photo: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode photo: %w", err)
	}

	uniqueID := utils.GenerateRandomString(16)
	thumbDir := filepath.Join(uploadDir, "thumb")

	if err := ensureDirExists(uploadDir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	originalPath := filepath.Join(uploadDir, uniqueID+".jpg")
	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save photo: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	thumbPath := filepath.Join(thumbDir, uniqueID+".jpg")
	if err := imaging.Save(thumbImg, thumbPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/photos/" + uniqueID + ".jpg", "/photos/thumb/" + uniqueID + ".jpg", nil
}

// POST /api/social/photos
func SubmitPhoto(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	// stop reading before an oversized body hits temp disk
	r.Body = http.MaxBytesReader(w, r.Body, globals.MaxUploadBytes)
	if err := r.ParseMultipartForm(globals.MaxUploadBytes); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	destination := r.FormValue("destination")
	if destination == "" {
		http.Error(w, "Destination is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "Photo file is required", http.StatusBadRequest)
		return
	}
	file.Close()

	photoPath, thumbPath, err := savePhoto(header)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sub := Submission{
		ID:          utils.GenerateRandomString(13),
		UserID:      requestingUserID,
		Destination: utils.NormalizeDestination(destination),
		Caption:     r.FormValue("caption"),
		PhotoPath:   photoPath,
		ThumbPath:   thumbPath,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.SubmissionsCollection.InsertOne(ctx, sub); err != nil {
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

// GET /api/social/photos/:destination — approved submissions only.
func GetPhotos(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	destination := utils.NormalizeDestination(ps.ByName("destination"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(60)
	cursor, err := db.SubmissionsCollection.Find(ctx, bson.M{
		"destination": destination,
		"approved":    true,
	}, opts)
	if err != nil {
		http.Error(w, "Failed to fetch submissions", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	subs := []Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		http.Error(w, "Failed to decode submissions", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, subs)
}

// PATCH /api/social/photos/:id/approve — moderation hook.
func ApprovePhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	role, _ := r.Context().Value(globals.RoleKey).(string)
	if role != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.SubmissionsCollection.UpdateOne(ctx,
		bson.M{"id": ps.ByName("id")},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil || res.MatchedCount == 0 {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"approved": true})
}
