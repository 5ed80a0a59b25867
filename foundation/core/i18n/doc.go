// Package i18n loads message catalogs and renders localized messages.
//
// A catalog is a TOML or YAML file named after its locale (en.toml,
// rw.yaml). Nested tables form dotted keys, values are text/template
// strings, and a list value holds plural forms:
//
//	[diagnostics]
//	unexpected_character = "unexpected character '{{.char}}' on line {{.line}}"
//	[check]
//	files = ["{{.count}} file", "{{.count}} files"]
//
// Catalogs are read from a directory or from any fs.FS, which lets callers
// embed them. Lookups fall back to the default locale unless disabled.
package i18n
