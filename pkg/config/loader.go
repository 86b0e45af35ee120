package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = map[string]any{}

	dotenvOnce sync.Once
)

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix  string
	noCache bool
}

// WithPrefix reads every variable with the given prefix, e.g. "EDITOR_".
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithoutCache parses the environment even if a cached value exists, and
// refreshes the cache with the result.
func WithoutCache() Option {
	return func(o *loadOptions) { o.noCache = true }
}

// Load fills v from the environment. The default .env file in the working
// directory is read once per process if it exists.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// Absence of a .env file is normal outside development.
		_ = godotenv.Load()
	})

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey[T](o.prefix)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if !o.noCache {
		if cached, ok := cache[key]; ok {
			*v = cached.(T)
			return nil
		}
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics. Use it in main for configs the binary cannot
// run without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env". Values already cached by Load are not refreshed.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// ResetCache forgets every cached config.
func ResetCache() {
	cacheMu.Lock()
	cache = map[string]any{}
	cacheMu.Unlock()
}

func cacheKey[T any](prefix string) string {
	return reflect.TypeFor[T]().String() + "|" + prefix
}
