// File: diagnose.go
// Title: Localized Diagnostics
// Description: Renders structured Kin errors as one-line messages in the
//              selected locale using the embedded message catalogs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with en and rw catalogs

package kin

import (
	"embed"
	"sync"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	"github.com/kin-lang/kin/foundation/core/i18n"
	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

//go:embed locales/*.toml locales/*.yaml
var catalogs embed.FS

var defaultLocalizer = sync.OnceValues(func() (*i18n.Manager, error) {
	return NewLocalizer(DefaultLocale)
})

// NewLocalizer loads the embedded catalogs and selects locale. Region
// variants such as "rw-RW" resolve to their language.
func NewLocalizer(locale string) (*i18n.Manager, error) {
	m, err := i18n.New(i18n.Options{
		DefaultLocale: DefaultLocale,
		FS:            catalogs,
		LocalesDir:    "locales",
	})
	if err != nil {
		return nil, err
	}
	if kinstringx.IsNotBlank(locale) {
		if err := m.SetLocale(locale); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Locales returns the locales of the embedded catalogs
func Locales() []string {
	m, err := defaultLocalizer()
	if err != nil {
		return []string{DefaultLocale}
	}
	return m.GetAvailableLocales()
}

// Diagnose renders err as "<Prefix>: <message>". A nil loc uses the
// English catalog. Errors without a localization key keep their own text.
func Diagnose(err error, loc *i18n.Manager) string {
	if err == nil {
		return ""
	}
	if loc == nil {
		var lerr error
		if loc, lerr = defaultLocalizer(); lerr != nil {
			return err.Error()
		}
	}

	kerr, ok := kinerror.As(err)
	if !ok {
		return loc.T("diagnostics.prefix.internal") + ": " + err.Error()
	}

	prefix := loc.T(prefixKey(kerr.Code()))
	if kerr.MessageKey() == "" {
		return prefix + ": " + kerr.Error()
	}
	return prefix + ": " + loc.T(kerr.MessageKey(), kerr.MessageArgs())
}

func prefixKey(code kinerror.Code) string {
	switch code.Category() {
	case "kin":
		if code == kinerror.CodeKinResource {
			return "diagnostics.prefix.resource"
		}
		return "diagnostics.prefix.syntax"
	case "io":
		return "diagnostics.prefix.file"
	case "configuration", "i18n":
		return "diagnostics.prefix.config"
	case "validation":
		return "diagnostics.prefix.arguments"
	default:
		return "diagnostics.prefix.internal"
	}
}
