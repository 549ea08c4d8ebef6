// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

// Package adapter provides storage-backend abstractions for uploaded media.
//
// The primary abstraction is [MediaStore], which decouples the catalog
// services from where photo bytes actually live. The package ships two
// implementations: a filesystem store for local and development deployments
// ([NewLocalMediaStore]) and an HTTP CDN store for production
// ([NewCDNMediaStore]). [NewMediaStore] selects between them from
// configuration.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for backend-agnostic error
// handling (e.g. [ErrUnauthorized] for rejected CDN credentials).
package adapter

import (
	"context"
	"io"
	"net/http"
)

// StoredMedia is the result of an upload: the backend object key used for
// later deletion and the public URL clients load the image from.
type StoredMedia struct {
	Key string
	URL string
}

// MediaStore stores and removes uploaded photo files. Implementations are
// responsible for key generation, credential management, and mapping
// backend-level errors to the sentinel values defined in this package.
type MediaStore interface {
	// Upload stores one file under a fresh object key. The original
	// filename only contributes its extension; the returned key is
	// generated. Returns [ErrEmptyUpload] when content yields no bytes and
	// [ErrUnsupportedMedia] when the extension is not an image format.
	Upload(ctx context.Context, filename string, content io.Reader) (StoredMedia, error)

	// Delete removes a previously uploaded object by its key. Deleting a
	// key that no longer exists returns [ErrMediaNotFound].
	Delete(ctx context.Context, key string) error

	// Healthy reports whether the store can accept uploads. It is called
	// by the startup preflight and the health endpoint.
	Healthy(ctx context.Context) error
}

// FileServer is implemented by media stores whose objects live on the
// serving host and therefore need the HTTP layer to expose them. The CDN
// store serves its own URLs and does not implement it.
type FileServer interface {
	// Static returns the public URL prefix and the handler that serves
	// stored objects under it.
	Static() (prefix string, handler http.Handler)
}
