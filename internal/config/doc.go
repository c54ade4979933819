// Package config loads slider settings from TOML and YAML files.
//
// The slider core takes its configuration programmatically; this package
// is the file-backed layer hosts and the demo binary use to populate it.
// The format is chosen by file extension:
//
//	settings, err := config.Load("slider.toml")
//	settings, err := config.Load("slider.yaml")
//
// A missing file is not an error: Load returns (nil, nil) so callers can
// fall back to defaults.
//
// Watcher provides live reload: it watches a single settings file with
// fsnotify and invokes a callback with the re-loaded settings on every
// write.
package config
