package config

import "time"

// OutputConfig controls how edited documents are written back
type OutputConfig struct {
	Encoding string `yaml:"encoding" validate:"omitempty,oneof=us-ascii utf-8 utf-16le utf-16be utf-32 utf-7"`
	Indent   bool   `yaml:"indent"`
}

// PruneConfig controls how the removal window is interpreted
type PruneConfig struct {
	// Timezone is an IANA zone name used to interpret the requested start
	// and end instants. Empty means the machine's local zone.
	Timezone string `yaml:"timezone" validate:"omitempty,timezone"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Output OutputConfig `yaml:"output"`
	Prune  PruneConfig  `yaml:"prune"`
	Quiet  bool         `yaml:"quiet"`
}

// Location resolves the configured timezone, falling back to local time.
func (c PruneConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
