// Package config loads TOML and YAML configuration for the Kin toolchain.
//
// Keys are addressed with dots ("parser.max_depth"). When a Config carries an
// environment prefix, KIN_PARSER_MAX_DEPTH overrides parser.max_depth in the
// typed getters. Discover searches ./kin.toml, ./kin.yaml, ./kin.yml, the
// same names under ./config and under $HOME/.config/kin.
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	depth := cfg.GetInt("parser.max_depth", 256)
package config
