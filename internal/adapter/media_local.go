package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
)

// allowedMediaExtensions lists the image formats accepted for photo uploads.
var allowedMediaExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const (
	defaultMediaDir     = "media"
	defaultMediaBaseURL = "/media"
)

// localMediaStore stores uploads on the local filesystem under a media
// directory and serves them from a static URL prefix. It is the development
// backend and the default when no mode is configured.
type localMediaStore struct {
	dir     string
	baseURL string

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalMediaStore constructs a filesystem-backed [MediaStore] rooted at
// cfg.Dir, creating the directory if it does not exist yet. Relative
// directories resolve against the process working directory, which the
// startup sequence has already moved to the application root.
func NewLocalMediaStore(cfg config.Media, logger *logger.Logger) (MediaStore, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultMediaDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory %s: %w", dir, err)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultMediaBaseURL
	}

	logger.Debug().Str("dir", dir).Msg("creating local media store")

	return &localMediaStore{
		dir:     dir,
		baseURL: baseURL,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

// Upload implements [MediaStore]. The file lands under a generated key that
// keeps only the original extension, so uploads can never collide or
// overwrite each other.
func (s *localMediaStore) Upload(ctx context.Context, filename string, content io.Reader) (StoredMedia, error) {
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

	key := s.ids.Generate() + ext
	path := filepath.Join(s.dir, key)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).
			Str("func", "localMediaStore.Upload").
			Str("path", path).
			Msg("failed to write media file")
		return StoredMedia{}, fmt.Errorf("writing media file: %w", err)
	}

	return StoredMedia{Key: key, URL: s.baseURL + "/" + key}, nil
}

// Delete implements [MediaStore]. The key is reduced to its base name so a
// crafted key cannot reach outside the media directory.
func (s *localMediaStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, filepath.Base(key))

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMediaNotFound, key)
		}
		log.Err(err).
			Str("func", "localMediaStore.Delete").
			Str("path", path).
			Msg("failed to remove media file")
		return fmt.Errorf("removing media file: %w", err)
	}

	return nil
}

// Static implements [FileServer]: stored objects are exposed under the
// configured base URL.
func (s *localMediaStore) Static() (string, http.Handler) {
	return s.baseURL, http.StripPrefix(s.baseURL, http.FileServer(http.Dir(s.dir)))
}

// Healthy implements [MediaStore] by verifying the media directory still
// exists and is a directory.
func (s *localMediaStore) Healthy(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("media directory %s: %w", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media path %s is not a directory", s.dir)
	}

	return nil
}
