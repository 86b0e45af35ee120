package storage

import "errors"

var (
	ErrNotFound           = errors.New("storage: object not found")
	ErrInvalidKey         = errors.New("storage: invalid key")
	ErrInvalidConfig      = errors.New("storage: invalid config")
	ErrFailedToLoadConfig = errors.New("storage: failed to load aws config")
	ErrReadFailed         = errors.New("storage: read failed")
)
