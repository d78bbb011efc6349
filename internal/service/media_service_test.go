package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngDataURI(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestLocalMediaStoreSavesImage(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalMediaStore(dir, "/static/uploads")

	stored, err := store.Store(context.Background(), pngDataURI(t, 4, 4), "projects")
	if err != nil {
		t.Fatalf("store image failed: %v", err)
	}
	if !strings.HasPrefix(stored.URL, "/static/uploads/projects/") {
		t.Fatalf("unexpected url %q", stored.URL)
	}
	if stored.PublicID == "" {
		t.Fatalf("expected a public id")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "projects"))
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, got %v %v", entries, err)
	}
}

func TestLocalMediaStoreRejectsBadPayloads(t *testing.T) {
	store := NewLocalMediaStore(t.TempDir(), "/static/uploads")

	if _, err := store.Store(context.Background(), "", ""); !errors.Is(err, ErrMediaEmpty) {
		t.Fatalf("expected ErrMediaEmpty, got %v", err)
	}
	if _, err := store.Store(context.Background(), "not a data uri", ""); !errors.Is(err, ErrMediaInvalid) {
		t.Fatalf("expected ErrMediaInvalid, got %v", err)
	}
	if _, err := store.Store(context.Background(), "data:text/plain;base64,aGVsbG8=", ""); !errors.Is(err, ErrMediaInvalid) {
		t.Fatalf("expected ErrMediaInvalid for non-image type, got %v", err)
	}
}

func TestLocalMediaStoreDownscalesWideImages(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalMediaStore(dir, "/static/uploads")

	if _, err := store.Store(context.Background(), pngDataURI(t, maxImageWidth+400, 2), ""); err != nil {
		t.Fatalf("store wide image failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, got %v %v", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("read stored file failed: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode stored file failed: %v", err)
	}
	if cfg.Width != maxImageWidth {
		t.Fatalf("expected width %d after downscale, got %d", maxImageWidth, cfg.Width)
	}
}

type mediaDoerStub struct {
	status  int
	body    string
	lastReq *http.Request
}

func (d *mediaDoerStub) Do(req *http.Request) (*http.Response, error) {
	d.lastReq = req
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
	}, nil
}

func TestRemoteMediaStoreParsesHostResponse(t *testing.T) {
	store := NewRemoteMediaStore("https://media.example.com/upload", "portfolio")
	stub := &mediaDoerStub{status: http.StatusOK, body: `{"secure_url":"https://cdn.example.com/a.png","public_id":"portfolio/a"}`}
	store.SetHTTPClient(stub)

	stored, err := store.Store(context.Background(), pngDataURI(t, 2, 2), "portfolio")
	if err != nil {
		t.Fatalf("remote store failed: %v", err)
	}
	if stored.URL != "https://cdn.example.com/a.png" || stored.PublicID != "portfolio/a" {
		t.Fatalf("unexpected stored media: %#v", stored)
	}
	if ct := stub.lastReq.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/form-data") {
		t.Fatalf("expected multipart request, got %q", ct)
	}
}

func TestRemoteMediaStorePassesThroughHostErrors(t *testing.T) {
	store := NewRemoteMediaStore("https://media.example.com/upload", "portfolio")
	store.SetHTTPClient(&mediaDoerStub{status: http.StatusBadRequest, body: `{"error":"invalid preset"}`})

	if _, err := store.Store(context.Background(), pngDataURI(t, 2, 2), ""); err == nil {
		t.Fatalf("expected host error to pass through")
	}

	if _, err := store.Store(context.Background(), "", ""); !errors.Is(err, ErrMediaEmpty) {
		t.Fatalf("expected ErrMediaEmpty, got %v", err)
	}
}
