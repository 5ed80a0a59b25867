// File: settings.go
// Title: Kin Settings
// Description: Loads kin configuration files and derives engine options,
//              logger settings and the diagnostics locale from them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Range checks on limits, blank log settings rejected

package kin

import (
	"fmt"
	"io"
	"math"

	"github.com/kin-lang/kin/foundation/core/config"
	kinerror "github.com/kin-lang/kin/foundation/core/error"
	kinlog "github.com/kin-lang/kin/foundation/core/log"
	"github.com/kin-lang/kin/foundation/core/validation"
	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

// EnvPrefix prefixes environment overrides, e.g. KIN_PARSER_MAX_DEPTH
const EnvPrefix = "KIN"

// Configuration keys read by OptionsFromConfig
const (
	KeyMaxInputLength = "parser.max_input_length"
	KeyMaxTokens      = "parser.max_tokens"
	KeyMaxDepth       = "parser.max_depth"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyLocale         = "diagnostics.locale"
)

// ConfigDefaults returns the default configuration tree for config.Discover
func ConfigDefaults() map[string]interface{} {
	return map[string]interface{}{
		"parser": map[string]interface{}{
			"max_input_length": DefaultMaxInputLength,
			"max_tokens":       DefaultMaxTokens,
			"max_depth":        DefaultMaxDepth,
		},
		"log": map[string]interface{}{
			"level":  kinlog.DefaultLevel().String(),
			"format": kinlog.FormatText.String(),
		},
		"diagnostics": map[string]interface{}{
			"locale": DefaultLocale,
		},
	}
}

// OptionsFromConfig reads the parser limits from cfg. Environment
// overrides such as KIN_PARSER_MAX_DEPTH apply when cfg has a prefix.
// A limit of -1 disables that check.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	opts.MaxInputLength = cfg.GetInt(KeyMaxInputLength, opts.MaxInputLength)
	opts.MaxTokens = cfg.GetInt(KeyMaxTokens, opts.MaxTokens)
	opts.MaxDepth = cfg.GetInt(KeyMaxDepth, opts.MaxDepth)
	return opts
}

// settingRules returns one validator chain per configuration key
func settingRules() []*validation.ValidatorChain {
	limit := func(key string) *validation.ValidatorChain {
		return validation.NewValidatorChain(key).
			StopOnFirstError(true).
			Add(validation.Integer()).
			Add(validation.IntRange(-1, math.MaxInt32))
	}
	return []*validation.ValidatorChain{
		limit(KeyMaxInputLength),
		limit(KeyMaxTokens),
		limit(KeyMaxDepth),
		validation.NewValidatorChain(KeyLogLevel).
			StopOnFirstError(true).
			Add(validation.Required()).
			AddFunc(func(value interface{}) validation.ValidationResult {
				if value == nil {
					return validation.NewValidationResult()
				}
				if _, err := kinlog.ParseLevel(fmt.Sprint(value)); err != nil {
					return validation.NewValidationErrorWithValue(validation.CodeOneOf,
						"must be one of trace, debug, info, warn, error, off", value, nil)
				}
				return validation.NewValidationResult()
			}),
		validation.NewValidatorChain(KeyLogFormat).
			StopOnFirstError(true).
			Add(validation.Required()).
			Add(validation.OneOf("text", "json", "console", "logfmt")),
		validation.NewValidatorChain(KeyLocale).
			Add(validation.OneOf(Locales()...)),
	}
}

// ValidateConfig checks the values of every key OptionsFromConfig,
// NewLogger and LocaleFromConfig read, environment overrides included.
// The first failure is returned as CodeInvalidConfig.
func ValidateConfig(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	var results []validation.ValidationResult
	for _, chain := range settingRules() {
		if value, ok := cfg.Get(chain.Name()); ok {
			results = append(results, chain.Validate(value))
		}
	}

	result := validation.Combine(results...)
	err := result.ToError(kinerror.CodeInvalidConfig)
	if err == nil {
		return nil
	}

	first := result.FirstError()
	kerr, _ := kinerror.As(err)
	return kerr.
		WithOperation("kin.config").
		WithMessage("diagnostics.invalid_setting", map[string]interface{}{
			"field":  first.Field,
			"value":  first.Value,
			"reason": first.Message,
		})
}

// LoadConfig loads path, or discovers kin.toml, kin.yaml or kin.yml when
// path is blank. Missing keys take the values of ConfigDefaults.
func LoadConfig(path string) (*config.Config, error) {
	if kinstringx.IsBlank(path) {
		opts := config.DefaultDiscoveryOptions()
		opts.Defaults = ConfigDefaults()
		return config.Discover(opts)
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  ConfigDefaults(),
	})
}

// NewLogger builds a logger from the log.level and log.format settings
func NewLogger(cfg *config.Config, output io.Writer) (*kinlog.Logger, error) {
	level, format := kinlog.DefaultLevel(), kinlog.FormatText
	if cfg != nil {
		var err error
		if level, err = kinlog.ParseLevel(cfg.GetString(KeyLogLevel, level.String())); err != nil {
			return nil, err
		}
		if format, err = kinlog.ParseFormat(cfg.GetString(KeyLogFormat, format.String())); err != nil {
			return nil, err
		}
	}

	return kinlog.NewWithConfig(kinlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "kin",
	}), nil
}

// LocaleFromConfig returns the diagnostics locale, DefaultLocale if unset
func LocaleFromConfig(cfg *config.Config) string {
	if cfg == nil {
		return DefaultLocale
	}
	return kinstringx.FirstNonBlank(cfg.GetString(KeyLocale), DefaultLocale)
}
