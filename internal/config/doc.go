// Package config loads and validates confmind configuration from TOML.
//
// The minds root directory is an explicit setting rather than a fixed
// home-directory path, so tests and alternate deployments can point the store
// anywhere. Load falls back to built-in defaults when no config file exists;
// a missing file is not an error.
package config
