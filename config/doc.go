// Package config holds truncation options and loads them from files and the
// environment.
//
// Options merge: the zero value of a field means "keep what was there", so a
// partial Options can be layered on top of Default() or on top of a previous
// configuration.
//
//	opts := config.Default().Merge(config.Options{Lines: 3})
//
// Files are YAML (.yaml, .yml), TOML (.toml) or JSON (.json):
//
//	opts, err := config.LoadFile("truncate.yaml")
//
// Environment variables use the TRUNCATE_ prefix and override file values:
//
//	opts.LoadFromEnv()
//
// Schema returns a JSON schema describing the file format.
package config
