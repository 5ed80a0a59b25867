// File: locale.go
// Title: Locale Helpers
// Description: Locale normalization and display names for the catalogs
//              shipped with the Kin toolchain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial locale detection and normalization
// - 2026-10-18 v0.2.0: Dropped Accept-Language negotiation; added rw

package i18n

import (
	"strings"

	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

var displayNames = map[string]string{
	"en": "English",
	"rw": "Ikinyarwanda",
	"fr": "Français",
	"sw": "Kiswahili",
}

// NormalizeLocale lowercases the language, uppercases the region and uses
// "-" as separator: "RW_rw" becomes "rw-RW". Invalid input yields "".
func NormalizeLocale(locale string) string {
	if kinstringx.IsBlank(locale) {
		return ""
	}

	locale = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(locale)), "_", "-")
	parts := strings.Split(locale, "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}
	return language
}

// SplitLocale splits a locale into language and region
func SplitLocale(locale string) (language, region string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}
	language, region, _ = strings.Cut(normalized, "-")
	return language, region
}

// DisplayName returns the native name of a locale's language, or the
// locale itself when unknown
func DisplayName(locale string) string {
	language, _ := SplitLocale(locale)
	if name, ok := displayNames[language]; ok {
		return name
	}
	return locale
}
