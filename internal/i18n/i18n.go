// Package i18n resolves UI strings from JSON locale files.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Bundle holds the strings of one or more locales.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
}

// Load reads <dir>/<lang>.json for each language. The fallback locale must exist.
func Load(dir, fallback string, langs ...string) (*Bundle, error) {
	b := &Bundle{dict: map[string]map[string]string{}, fallback: fallback}
	if len(langs) == 0 {
		langs = []string{fallback}
	}
	for _, l := range langs {
		raw, err := os.ReadFile(filepath.Join(dir, l+".json"))
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[b.fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Keys lists the keys of the fallback locale, sorted.
func (b *Bundle) Keys() []string {
	m := b.dict[b.fallback]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T returns the translation for key in lang, falling back to the default
// locale and finally to the key itself. Args are applied with fmt.Sprintf.
func (b *Bundle) T(lang, key string, args ...any) string {
	s, ok := b.lookup(lang, key)
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

func (b *Bundle) lookup(lang, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	if v, ok := b.dict[b.fallback][key]; ok {
		return v, true
	}
	return "", false
}
