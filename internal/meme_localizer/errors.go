package meme_localizer

import "errors"

var (
	// ErrInputRequired means neither Korean text nor an image was sent.
	ErrInputRequired = errors.New("korean text or image is required")
	// ErrInvalidImage means imageData is not a base64 image data URI.
	ErrInvalidImage = errors.New("invalid image format")
	// ErrNotConfigured means no model credential is available.
	ErrNotConfigured = errors.New("api key not configured")
	// ErrUpstream wraps any failure of the model call.
	ErrUpstream = errors.New("model request failed")
)
