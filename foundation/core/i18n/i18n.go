// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager for loading TOML and YAML message
//              catalogs from a directory or an fs.FS, with template
//              interpolation, pluralization and default-locale fallback.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2026-10-18 v0.2.0: Catalogs load from fs.FS so they can be embedded;
//                      template cache has its own lock; locale lookup
//                      falls back from "rw-RW" to "rw"

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
	kinstringx "github.com/kin-lang/kin/foundation/utils/stringx"
)

// Format represents the catalog file format
type Format int

const (
	// FormatAuto accepts .toml, .yaml and .yml files
	FormatAuto Format = iota

	// FormatTOML restricts loading to .toml files
	FormatTOML

	// FormatYAML restricts loading to .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale   string // Default locale (e.g., "en")
	LocalesDir      string // Directory holding catalogs; inside FS when FS is set
	FS              fs.FS  // Optional source, e.g. an embed.FS
	Format          Format // File format (default: auto-detect)
	DisableFallback bool   // Do not fall back to the default locale
}

// Manager holds the catalogs of all loaded locales
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	fallback      bool
	translations  map[string]map[string]interface{} // locale -> catalog

	tmplMu    sync.Mutex
	templates map[string]*template.Template // locale:key -> compiled template
}

// New creates a manager and loads every catalog found
func New(options Options) (*Manager, error) {
	if kinstringx.IsBlank(options.DefaultLocale) {
		return nil, kinerror.New("default locale cannot be empty").
			WithCode(kinerror.CodeInvalidInput).
			WithOperation("i18n.New")
	}

	fsys, dir := options.FS, options.LocalesDir
	if fsys == nil {
		if kinstringx.IsBlank(dir) {
			dir = "./locales"
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, kinerror.New("locales directory not found").
				WithCode(kinerror.CodeFileNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", dir)
		}
		fsys, dir = os.DirFS(dir), "."
	} else if kinstringx.IsBlank(dir) {
		dir = "."
	}

	m := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		fallback:      !options.DisableFallback,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	if err := m.loadAll(fsys, dir, options.Format); err != nil {
		return nil, err
	}
	return m, nil
}

// loadAll loads every catalog in dir; file names give the locale
func (m *Manager) loadAll(fsys fs.FS, dir string, format Format) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return kinerror.Wrap(err, "failed to read locales directory").
			WithCode(kinerror.CodeFileRead).
			WithOperation("i18n.loadAll").
			WithDetail("directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if !contains(format.extensions(), ext) {
			continue
		}
		locale := strings.TrimSuffix(name, path.Ext(name))
		if kinstringx.IsBlank(locale) {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return kinerror.Wrap(err, "failed to read catalog").
				WithCode(kinerror.CodeFileRead).
				WithOperation("i18n.loadAll").
				WithDetail("file", name)
		}
		catalog, err := parseCatalog(content, ext)
		if err != nil {
			return kinerror.Wrap(err, "failed to parse catalog").
				WithCode(kinerror.CodeInvalidConfig).
				WithOperation("i18n.loadAll").
				WithDetail("file", name)
		}
		m.translations[locale] = catalog
	}

	if _, ok := m.translations[m.defaultLocale]; !ok {
		return kinerror.New("default locale not found").
			WithCode(kinerror.CodeLocaleNotFound).
			WithOperation("i18n.loadAll").
			WithDetail("locale", m.defaultLocale)
	}
	return nil
}

func parseCatalog(content []byte, ext string) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	}
	return data, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// T translates a key with optional template data. Missing keys render as
// "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return "[" + key + "]"
	}
	return translation
}

// TryT translates a key and reports missing keys and template failures
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	locale := m.currentLocale
	translation := m.lookup(key, locale)
	m.mu.RUnlock()

	if translation == "" {
		return "", kinerror.New("translation not found").
			WithCode(kinerror.CodeTranslationMissing).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.render(locale+":"+key, translation, data[0])
		if err != nil {
			return translation, kinerror.Wrap(err, "template rendering failed").
				WithCode(kinerror.CodeInternal).
				WithOperation("i18n.TryT").
				WithDetail("key", key)
		}
		return rendered, nil
	}
	return translation, nil
}

// TWithFallback translates a key, rendering fallbackMsg when it is missing
func (m *Manager) TWithFallback(key, fallbackMsg string, data ...map[string]interface{}) string {
	if translation, err := m.TryT(key, data...); err == nil {
		return translation
	}
	if len(data) > 0 && data[0] != nil {
		if rendered, err := m.render("fallback:"+key+":"+fallbackMsg, fallbackMsg, data[0]); err == nil {
			return rendered
		}
	}
	return fallbackMsg
}

// Plural selects a plural form for count. Catalog values are either a
// single string or a list of forms ordered singular, plural.
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale := m.currentLocale
	raw := m.lookupRaw(key, locale)
	m.mu.RUnlock()

	forms := pluralForms(raw)
	if len(forms) == 0 {
		return "[" + key + "]"
	}

	index := pluralIndex(count, locale)
	if index >= len(forms) {
		index = len(forms) - 1
	}

	if data != nil {
		name := fmt.Sprintf("%s:%s_plural_%d", locale, key, index)
		if rendered, err := m.render(name, forms[index], data); err == nil {
			return rendered
		}
	}
	return forms[index]
}

// lookup resolves key in locale, then in the default locale. Caller holds mu.
func (m *Manager) lookup(key, locale string) string {
	switch v := m.lookupRaw(key, locale).(type) {
	case nil:
		return ""
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			return fmt.Sprintf("%v", v[0])
		}
		return ""
	case map[string]interface{}:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (m *Manager) lookupRaw(key, locale string) interface{} {
	if v := nestedValue(m.translations[locale], key); v != nil {
		return v
	}
	if m.fallback && locale != m.defaultLocale {
		return nestedValue(m.translations[m.defaultLocale], key)
	}
	return nil
}

func nestedValue(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (m *Manager) render(name, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, ok := m.templates[name]
	if !ok {
		var err error
		tmpl, err = template.New(name).Option("missingkey=zero").Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[name] = tmpl
	}
	m.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

func pluralForms(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []interface{}:
		forms := make([]string, len(v))
		for i, f := range v {
			forms[i] = fmt.Sprintf("%v", f)
		}
		return forms
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

// pluralIndex returns the plural form index for count. English and
// Kinyarwanda both distinguish one from many.
func pluralIndex(count int, locale string) int {
	switch language, _ := SplitLocale(locale); language {
	case "fr":
		if count <= 1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// SetLocale switches the current locale. "rw-RW" resolves to "rw" when only
// the language catalog exists.
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, ok := m.resolve(locale)
	if !ok {
		return kinerror.New("locale not available").
			WithCode(kinerror.CodeLocaleNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}
	m.currentLocale = resolved
	return nil
}

// WithLocale returns a manager sharing the loaded catalogs with a different
// current locale. The receiver is unchanged.
func (m *Manager) WithLocale(locale string) (*Manager, error) {
	m.mu.RLock()
	resolved, ok := m.resolve(locale)
	m.mu.RUnlock()
	if !ok {
		return nil, kinerror.New("locale not available").
			WithCode(kinerror.CodeLocaleNotFound).
			WithOperation("i18n.WithLocale").
			WithDetail("locale", locale)
	}

	return &Manager{
		defaultLocale: m.defaultLocale,
		currentLocale: resolved,
		fallback:      m.fallback,
		translations:  m.translations,
		templates:     make(map[string]*template.Template),
	}, nil
}

func (m *Manager) resolve(locale string) (string, bool) {
	if _, ok := m.translations[locale]; ok {
		return locale, true
	}
	normalized := NormalizeLocale(locale)
	if _, ok := m.translations[normalized]; ok {
		return normalized, true
	}
	if language, _ := SplitLocale(normalized); language != "" {
		if _, ok := m.translations[language]; ok {
			return language, true
		}
	}
	return "", false
}

// GetCurrentLocale returns the current locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	return m.defaultLocale
}

// GetAvailableLocales returns the loaded locales, sorted
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale checks whether a locale resolves to a loaded catalog
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.resolve(locale)
	return ok
}

// HasTranslation checks whether key resolves in the current locale
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookupRaw(key, m.currentLocale) != nil
}

// GetTranslationKeys returns the dotted keys of the current locale, sorted
func (m *Manager) GetTranslationKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	collectKeys(m.translations[m.currentLocale], "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string, out *[]string) {
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(nested, full, out)
			continue
		}
		*out = append(*out, full)
	}
}

// String returns a short description of the manager
func (m *Manager) String() string {
	return fmt.Sprintf("i18n.Manager{default: %s, current: %s, locales: %v}",
		m.defaultLocale, m.GetCurrentLocale(), m.GetAvailableLocales())
}
