package models

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, strips diacritics and collapses everything
// that is not [a-z0-9] into single dashes: "Retificação de Área" becomes
// "retificacao-de-area".
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, title)
	if err != nil {
		s = title
	}
	s = slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "item"
	}
	return s
}

// NewSlug appends a numeric disambiguator (unix milliseconds at creation) to
// the slugified title.
func NewSlug(title string, suffix int64) string {
	return Slugify(title) + "-" + strconv.FormatInt(suffix, 10)
}
