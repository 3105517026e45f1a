// Package config loads and validates the application configuration for the
// gpxprune tool from a YAML file.
//
// Configuration is optional: when no file is present the defaults apply
// (UTF-8 output, no indentation, local timezone). Command-line flags
// override configuration values. There is no environment-variable
// configuration.
package config
