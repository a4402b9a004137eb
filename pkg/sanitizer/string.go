package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing Unicode whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower maps s to lower case independently of any locale.
func ToLower(s string) string {
	// cases.Caser keeps state between calls and must not be shared.
	return cases.Lower(language.Und).String(s)
}

// ToUpper maps s to upper case independently of any locale.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SuppressRedundantSpaces trims s and replaces every run of two or more
// whitespace characters with a single space.
func SuppressRedundantSpaces(s string) string {
	return redundantSpaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// RemoveDiacritics strips combining marks, so "Crème brûlée" becomes "Creme brulee".
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// ContainsInsensitive reports whether text occurs in source, ignoring case and diacritics.
func ContainsInsensitive(source, text string) bool {
	return strings.Contains(fold(source), fold(text))
}

// ContainsAllInsensitive reports whether every non-empty entry of texts
// occurs in source, ignoring case and diacritics.
func ContainsAllInsensitive(source string, texts []string) bool {
	folded := fold(source)
	for _, text := range texts {
		if text == "" {
			continue
		}
		if !strings.Contains(folded, fold(text)) {
			return false
		}
	}
	return true
}

// ContainsWordsInsensitive splits text on sep and reports whether all
// resulting words occur in source. Words are trimmed when trimWords is set.
func ContainsWordsInsensitive(source, text, sep string, trimWords bool) bool {
	words := strings.Split(text, sep)
	if trimWords {
		words = TrimStringSlice(words)
	}
	return ContainsAllInsensitive(source, words)
}

// TrimStringSlice trims every element of slice.
func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, s := range slice {
		result[i] = strings.TrimSpace(s)
	}
	return result
}

func fold(s string) string {
	return ToUpper(RemoveDiacritics(s))
}
