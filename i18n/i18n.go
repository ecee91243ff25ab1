package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"
)

//go:embed locales/*.json
var locales embed.FS

var translations = make(map[string]map[string]string)

// DefaultLang is used when the request does not ask for a known language.
var DefaultLang = "pt"

func init() {
	if err := LoadTranslations(); err != nil {
		panic(err)
	}
}

func LoadTranslations() error {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return err
	}
	for _, e := range entries {
		data, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return err
		}
		var t map[string]string
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		translations[strings.TrimSuffix(e.Name(), ".json")] = t
	}
	return nil
}

// Supported reports whether lang has a catalogue.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}

func T(lang, key string) string {
	if t, ok := translations[lang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	if lang != DefaultLang {
		return T(DefaultLang, key)
	}
	return key
}

// Tf formats the message for key with args.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

func DetectLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept != "" {
		// Example: en-US, en;q=0.9, pt;q=0.8
		parts := strings.Split(accept, ",")
		for _, part := range parts {
			lang := strings.TrimSpace(strings.Split(part, ";")[0])
			if len(lang) >= 2 {
				lang = strings.ToLower(lang[:2])
				if _, ok := translations[lang]; ok {
					return lang
				}
			}
		}
	}

	return DefaultLang
}
