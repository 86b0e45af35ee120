// Package config loads sitekit configuration from the environment.
//
// Each package declares an env-tagged Config struct (siteapi.Config,
// email.Config, storage.Config, ...). Load parses the process environment
// into such a struct with github.com/caarlos0/env/v11 after loading an
// optional .env file with github.com/joho/godotenv.
//
//	var cfg email.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Parsed values are cached per struct type and prefix, so components that
// ask for the same config share one parse. WithoutCache forces a fresh parse,
// ResetCache clears everything; both exist mainly for tests.
//
// Errors wrap ErrParsingConfig, so a missing `required` variable can be
// matched with errors.Is.
package config
