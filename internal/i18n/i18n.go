// Package i18n provides message catalogs for the standup client.
//
// Catalogs are JSON files embedded at build time; messages are addressed
// by dot-separated key paths ("login.title") with optional {param}
// substitution. A missing key renders as the key itself so a gap in a
// catalog never hides UI text entirely.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no preference can be resolved.
const DefaultLanguage = "ja"

var paramPattern = regexp.MustCompile(`\{(\w+)\}`)

// languageNames maps codes to their native display names.
var languageNames = map[string]string{
	"ja":    "日本語",
	"en":    "English",
	"de":    "Deutsch",
	"fr":    "Français",
	"it":    "Italiano",
	"zh-cn": "简体中文",
	"zh-tw": "繁體中文",
	"et":    "Eesti",
}

// Translator resolves message keys for one language.
type Translator struct {
	lang    string
	catalog map[string]any
}

// Supported returns the embedded language codes, sorted.
func Supported() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	codes := make([]string, 0, len(entries))
	for _, entry := range entries {
		codes = append(codes, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(codes)
	return codes
}

// IsSupported reports whether a catalog exists for the code.
func IsSupported(code string) bool {
	for _, c := range Supported() {
		if c == code {
			return true
		}
	}
	return false
}

// LanguageName returns the native display name for a language code.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Resolve picks the language to use: the configured value when
// supported, otherwise the LANG environment variable (with region and
// encoding stripped, and the zh-tw/zh-cn split handled), otherwise the
// default.
func Resolve(configured string) string {
	if IsSupported(configured) {
		return configured
	}

	env := strings.ToLower(os.Getenv("LANG"))
	if i := strings.IndexByte(env, '.'); i >= 0 {
		env = env[:i]
	}
	env = strings.ReplaceAll(env, "_", "-")

	if IsSupported(env) {
		return env
	}
	if prefix, _, ok := strings.Cut(env, "-"); ok && IsSupported(prefix) {
		return prefix
	}
	if strings.HasPrefix(env, "zh") {
		if strings.Contains(env, "tw") || strings.Contains(env, "hk") {
			if IsSupported("zh-tw") {
				return "zh-tw"
			}
		}
		if IsSupported("zh-cn") {
			return "zh-cn"
		}
	}

	return DefaultLanguage
}

// New loads the catalog for a language code.
func New(lang string) (*Translator, error) {
	data, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q", lang)
	}

	var catalog map[string]any
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog for language %q: %w", lang, err)
	}

	return &Translator{lang: lang, catalog: catalog}, nil
}

// Language returns the translator's language code.
func (t *Translator) Language() string {
	return t.lang
}

// T resolves a dot-separated key path. Unknown keys return the key.
func (t *Translator) T(key string) string {
	return t.Tf(key, nil)
}

// Tf resolves a key and substitutes {param} placeholders from params.
// Placeholders without a matching param are left as-is.
func (t *Translator) Tf(key string, params map[string]string) string {
	value := lookup(t.catalog, key)
	if value == "" {
		return key
	}
	if len(params) == 0 {
		return value
	}

	return paramPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := params[name]; ok {
			return v
		}
		return match
	})
}

// lookup walks the nested catalog along the dot-separated key path.
func lookup(catalog map[string]any, key string) string {
	node := any(catalog)
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return ""
		}
		node, ok = m[part]
		if !ok {
			return ""
		}
	}

	if s, ok := node.(string); ok {
		return s
	}
	return ""
}
