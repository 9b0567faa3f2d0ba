// Package config loads and saves the tool configuration file.
//
// The configuration lives at the solution root as buildtools.json or
// buildtools.yaml. Its Environment section declares default key/value
// settings and per-build-configuration overrides that the env package folds
// into resolved mappings after every higher-precedence source.
//
// # Basic Usage
//
//	path, ok := config.Find(solutionDir)
//	if !ok {
//	    path = filepath.Join(solutionDir, config.DefaultFileName)
//	}
//	cfg, err := config.Load(path)
//
// Missing files are reported via ErrNotFound so callers can fall back to
// scaffolding a default configuration with Default and Save.
package config
