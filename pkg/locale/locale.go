package locale

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale carries the number formatting conventions of a culture.
type Locale struct {
	Tag              language.Tag
	DecimalSeparator string
	GroupSeparator   string
}

// Invariant is the culture-independent locale.
var Invariant = Locale{
	Tag:              language.Und,
	DecimalSeparator: ".",
	GroupSeparator:   ",",
}

// probe has two groups and a fraction so every separator shows up in its
// formatted form, including in locales with a minimum grouping of two.
const probe = 1234567.5

// New derives the separators of tag from CLDR data.
func New(tag language.Tag) Locale {
	if tag == language.Und {
		return Invariant
	}

	p := message.NewPrinter(tag)
	group, dec := separators(p.Sprint(number.Decimal(probe, number.MinFractionDigits(1))))
	if dec == "" {
		dec = Invariant.DecimalSeparator
	}

	return Locale{
		Tag:              tag,
		DecimalSeparator: dec,
		GroupSeparator:   group,
	}
}

// Parse builds a Locale from a BCP-47 tag. Empty input and "und" yield Invariant.
func Parse(tag string) (Locale, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" || strings.EqualFold(tag, "und") {
		return Invariant, nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, errors.Join(ErrInvalidLocale, err)
	}

	return New(t), nil
}

// MustParse is like Parse but panics on error.
func MustParse(tag string) Locale {
	loc, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsInvariant reports whether l uses the invariant conventions.
func (l Locale) IsInvariant() bool {
	return l.Tag == language.Und &&
		l.DecimalSeparator == Invariant.DecimalSeparator &&
		l.GroupSeparator == Invariant.GroupSeparator
}

// String returns the BCP-47 tag of l.
func (l Locale) String() string {
	return l.Tag.String()
}

func (l Locale) decimal() string {
	if l.DecimalSeparator == "" {
		return Invariant.DecimalSeparator
	}
	return l.DecimalSeparator
}

// separators splits a formatted probe into its group and decimal separators.
// Text before the first digit and after the last one (sign, bidi marks) is ignored.
func separators(formatted string) (group, dec string) {
	var (
		found   []string
		current strings.Builder
		digits  bool
	)

	for _, r := range formatted {
		if unicode.IsDigit(r) {
			if digits && current.Len() > 0 {
				found = append(found, current.String())
			}
			current.Reset()
			digits = true
			continue
		}
		if digits {
			current.WriteRune(r)
		}
	}

	switch len(found) {
	case 0:
		return "", ""
	case 1:
		return "", found[0]
	default:
		return found[0], found[len(found)-1]
	}
}
