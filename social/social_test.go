package social

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"next24/globals"

	"github.com/stretchr/testify/assert"
)

func TestSubmitPhotoRejectsOversizedBody(t *testing.T) {
	body := bytes.Repeat([]byte("a"), globals.MaxUploadBytes+1024)

	req := httptest.NewRequest(http.MethodPost, "/api/social/photos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=frame")
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "user1"))

	w := httptest.NewRecorder()
	SubmitPhoto(w, req, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitPhotoRequiresUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/social/photos", nil)
	w := httptest.NewRecorder()

	SubmitPhoto(w, req, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
