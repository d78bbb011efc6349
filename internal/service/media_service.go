package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

var (
	// ErrMediaEmpty 在未提供图片内容时返回
	ErrMediaEmpty = errors.New("media payload is empty")
	// ErrMediaInvalid 在图片内容不是合法的 base64 data URI 时返回
	ErrMediaInvalid = errors.New("media payload is not a valid image data uri")
)

// StoredMedia is the value produced by an upload: a stable URL plus the
// host-assigned public id.
type StoredMedia struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// MediaStore stores one binary image and yields a stable URL. The
// content core treats it purely as a value producer; errors from the
// underlying host pass through unchanged.
type MediaStore interface {
	Store(ctx context.Context, base64Image, folder string) (*StoredMedia, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteMediaStore forwards uploads to a third-party media host using
// an unsigned upload preset.
type RemoteMediaStore struct {
	uploadURL string
	preset    string
	client    httpDoer
}

// NewRemoteMediaStore 构造 RemoteMediaStore。
func NewRemoteMediaStore(uploadURL, preset string) *RemoteMediaStore {
	return &RemoteMediaStore{
		uploadURL: uploadURL,
		preset:    preset,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，主要面向测试场景。
func (r *RemoteMediaStore) SetHTTPClient(client httpDoer) {
	r.client = client
}

// Store posts the data URI to the media host and decodes its
// {secure_url, public_id} response.
func (r *RemoteMediaStore) Store(ctx context.Context, base64Image, folder string) (*StoredMedia, error) {
	if strings.TrimSpace(base64Image) == "" {
		return nil, ErrMediaEmpty
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("file", base64Image); err != nil {
		return nil, fmt.Errorf("encode upload request: %w", err)
	}
	if err := writer.WriteField("upload_preset", r.preset); err != nil {
		return nil, fmt.Errorf("encode upload request: %w", err)
	}
	if folder = strings.TrimSpace(folder); folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return nil, fmt.Errorf("encode upload request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("encode upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload to media host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("media host returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode media host response: %w", err)
	}
	if payload.SecureURL == "" {
		return nil, errors.New("media host response missing secure_url")
	}

	return &StoredMedia{URL: payload.SecureURL, PublicID: payload.PublicID}, nil
}

// maxImageWidth 之上的图片在本地存储前会被等比缩小
const maxImageWidth = 2000

// LocalMediaStore keeps uploads on the local filesystem and serves
// them under a static URL prefix.
type LocalMediaStore struct {
	dir     string
	urlPath string
}

// NewLocalMediaStore 构造 LocalMediaStore。
func NewLocalMediaStore(dir, urlPath string) *LocalMediaStore {
	return &LocalMediaStore{dir: dir, urlPath: urlPath}
}

// Store decodes the data URI, downscales oversized images and writes
// the result under a date-prefixed unique filename.
func (l *LocalMediaStore) Store(_ context.Context, base64Image, folder string) (*StoredMedia, error) {
	if strings.TrimSpace(base64Image) == "" {
		return nil, ErrMediaEmpty
	}

	data, ext, err := decodeImageDataURI(base64Image)
	if err != nil {
		return nil, err
	}

	data, err = downscaleIfNeeded(data, ext)
	if err != nil {
		return nil, err
	}

	folder = sanitizeFolder(folder)
	targetDir := filepath.Join(l.dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(targetDir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &StoredMedia{
		URL:      path.Join(l.urlPath, folder, name),
		PublicID: path.Join(folder, strings.TrimSuffix(name, ext)),
	}, nil
}

var imageExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

func decodeImageDataURI(raw string) ([]byte, string, error) {
	const marker = ";base64,"
	if !strings.HasPrefix(raw, "data:") {
		return nil, "", ErrMediaInvalid
	}
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return nil, "", ErrMediaInvalid
	}

	mimeType := raw[len("data:"):idx]
	ext, ok := imageExtensions[mimeType]
	if !ok {
		return nil, "", fmt.Errorf("%w: unsupported type %q", ErrMediaInvalid, mimeType)
	}

	data, err := base64.StdEncoding.DecodeString(raw[idx+len(marker):])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMediaInvalid, err)
	}
	if len(data) == 0 {
		return nil, "", ErrMediaEmpty
	}
	return data, ext, nil
}

// downscaleIfNeeded 仅处理 png/jpg；其余格式原样落盘
func downscaleIfNeeded(data []byte, ext string) ([]byte, error) {
	if ext != ".png" && ext != ".jpg" {
		return data, nil
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaInvalid, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return data, nil
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var out bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&out, dst)
	default:
		err = jpeg.Encode(&out, dst, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("re-encode image: %w", err)
	}
	return out.Bytes(), nil
}

func sanitizeFolder(folder string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(folder))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "." || strings.Contains(cleaned, "..") {
		return ""
	}
	return cleaned
}
