package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
)

const defaultCDNTimeout = 30 * time.Second

// cdnMediaStore pushes uploads to an external CDN over its HTTP media API.
// It is the production backend.
type cdnMediaStore struct {
	client *utils.HTTPClient

	key    string
	secret string

	logger *logger.Logger
}

// cdnUploadResponse is the payload the CDN answers a successful upload with.
type cdnUploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// cdnDestroyResponse is the payload the CDN answers a deletion with. The
// backend reports a missing object through Result rather than a 404.
type cdnDestroyResponse struct {
	Result string `json:"result"`
}

// NewCDNMediaStore constructs an HTTP CDN implementation of [MediaStore].
// It normalises and validates the base URL from cfg.CDNURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.CDNURL is empty or cannot be parsed as a valid
// URL, or if the API credentials are missing.
func NewCDNMediaStore(cfg config.Media, logger *logger.Logger) (MediaStore, error) {
	baseURL, err := normalizeBaseURL(cfg.CDNURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cdn url: %w", err)
	}

	if cfg.CDNKey == "" || cfg.CDNSecret == "" {
		return nil, fmt.Errorf("cdn media store requires api key and secret")
	}

	timeout := cfg.CDNTimeout
	if timeout <= 0 {
		timeout = defaultCDNTimeout
	}

	client := utils.NewHTTPClient(timeout)
	client.SetBaseURL(baseURL)

	logger.Debug().Str("cdn", baseURL).Msg("creating cdn media store")

	return &cdnMediaStore{
		client: client,
		key:    cfg.CDNKey,
		secret: cfg.CDNSecret,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaStore]. It POSTs the file as multipart form data to
// the CDN's /upload path together with the API credentials and returns the
// public URL from the response.
func (s *cdnMediaStore) Upload(ctx context.Context, filename string, content io.Reader) (StoredMedia, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedMediaExtensions[ext] {
		return StoredMedia{}, fmt.Errorf("%w: %s", ErrUnsupportedMedia, ext)
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return StoredMedia{}, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return StoredMedia{}, ErrEmptyUpload
	}

	var uploaded cdnUploadResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"api_key":    s.key,
			"api_secret": s.secret,
		}).
		SetResult(&uploaded).
		Post("/upload")
	if err != nil {
		log.Err(err).
			Str("func", "cdnMediaStore.Upload").
			Str("filename", filename).
			Msg("cdn upload request failed")
		return StoredMedia{}, fmt.Errorf("cdn upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return StoredMedia{}, err
	}

	publicURL := uploaded.SecureURL
	if publicURL == "" {
		publicURL = uploaded.URL
	}
	if uploaded.PublicID == "" || publicURL == "" {
		return StoredMedia{}, fmt.Errorf("cdn upload response missing public id or url")
	}

	return StoredMedia{Key: uploaded.PublicID, URL: publicURL}, nil
}

// Delete implements [MediaStore]. It POSTs the object key to the CDN's
// /destroy path. The CDN reports an unknown key inside a 200 response, so
// the result field is checked as well.
func (s *cdnMediaStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	var destroyed cdnDestroyResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"public_id":  key,
			"api_key":    s.key,
			"api_secret": s.secret,
		}).
		SetResult(&destroyed).
		Post("/destroy")
	if err != nil {
		log.Err(err).
			Str("func", "cdnMediaStore.Delete").
			Str("key", key).
			Msg("cdn destroy request failed")
		return fmt.Errorf("cdn destroy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if destroyed.Result != "" && destroyed.Result != "ok" {
		return fmt.Errorf("%w: %s", ErrMediaNotFound, key)
	}

	return nil
}

// Healthy implements [MediaStore] with a lightweight HEAD request against
// the upload path. Any HTTP answer counts as healthy; only transport-level
// failures (DNS, TCP, TLS) are reported.
func (s *cdnMediaStore) Healthy(ctx context.Context) error {
	_, err := s.client.R().SetContext(ctx).Head("/upload")
	if err != nil {
		return fmt.Errorf("cdn unreachable: %w", err)
	}

	return nil
}
