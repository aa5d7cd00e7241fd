// Package config defines the settings of the light-alarm binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Validate fills unset values with defaults, so a minimal file only needs the
// gRPC address and the bulb aliases.
package config
