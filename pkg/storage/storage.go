package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Store reads objects by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Drivers selectable through Config.Driver.
const (
	DriverS3  = "s3"
	DriverDir = "dir"
)

// Config is the env configuration of the artefact store.
type Config struct {
	Driver         string `env:"STORAGE_DRIVER" envDefault:"dir"`
	Dir            string `env:"STORAGE_DIR" envDefault:"./data/sites"`
	Bucket         string `env:"STORAGE_S3_BUCKET"`
	Prefix         string `env:"STORAGE_S3_PREFIX"`
	Region         string `env:"STORAGE_S3_REGION"`
	AccessKeyID    string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"STORAGE_S3_SECRET_KEY"`
	Endpoint       string `env:"STORAGE_S3_ENDPOINT"`
	ForcePathStyle bool   `env:"STORAGE_S3_FORCE_PATH_STYLE"`
}

// New creates the store selected by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverS3:
		return NewS3Store(ctx, cfg, opts...)
	case DriverDir, "":
		return NewDirStore(cfg.Dir)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

// cleanKey normalises key and rejects keys leaving the store root.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return cleaned, nil
}
