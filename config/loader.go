package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. An
// explicit path must exist; with an empty path the default locations are
// tried and a missing file just yields the defaults.
func LoadAppConfig(path string) error {
	paths := []string{"gpxprune.yml", "config.yml"}
	explicit := path != ""
	if explicit {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			Config = defaults(AppConfig{})
			return nil
		}
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = defaults(cfg)
	return nil
}

func defaults(cfg AppConfig) AppConfig {
	if cfg.Output.Encoding == "" {
		cfg.Output.Encoding = "utf-8"
	}
	return cfg
}
