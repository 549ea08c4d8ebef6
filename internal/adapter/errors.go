package adapter

import "errors"

var (
	ErrEmptyUpload      = errors.New("uploaded file is empty")
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrMediaNotFound    = errors.New("media object was not found")
	ErrUnknownMediaMode = errors.New("unknown media storage mode")

	ErrBadRequest          = errors.New("media backend rejected the request")
	ErrUnauthorized        = errors.New("media backend rejected the credentials")
	ErrTooLarge            = errors.New("uploaded file is too large")
	ErrInternalServerError = errors.New("media backend internal error")
)
