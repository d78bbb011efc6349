package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testPNGDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func uploadRequest(t *testing.T, payload interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestUploadStoresImage(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	c, w := uploadRequest(t, map[string]string{"image": testPNGDataURI(t), "folder": "projects"})
	api.Upload(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var stored struct {
		URL      string `json:"url"`
		PublicID string `json:"publicId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stored); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.HasPrefix(stored.URL, "/static/uploads/projects/") || stored.PublicID == "" {
		t.Fatalf("unexpected upload result: %#v", stored)
	}
}

func TestUploadRejectsInvalidPayload(t *testing.T) {
	gdb, cleanup := openHandlerTestDB(t)
	defer cleanup()
	api := newTestAPI(t, gdb, true)

	c, w := uploadRequest(t, map[string]string{"image": "not-a-data-uri"})
	api.Upload(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	c, w = uploadRequest(t, map[string]string{"image": ""})
	api.Upload(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty image, got %d", w.Code)
	}
}
