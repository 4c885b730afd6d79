// Package i18n turns the language-neutral keys emitted by the calculator
// into French, English or Dutch text.
package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is a supported interface language
type Lang string

const (
	FR Lang = "fr"
	EN Lang = "en"
	NL Lang = "nl"
)

// DefaultLang is used when no preference matches
const DefaultLang = FR

// Supported lists the languages in matcher order (first is the fallback)
var Supported = []Lang{FR, EN, NL}

var (
	tags    = []language.Tag{language.French, language.English, language.Dutch}
	matcher = language.NewMatcher(tags)
)

// Match picks the best supported language for the given preferences,
// which may be plain codes ("nl") or Accept-Language values ("nl-BE,en;q=0.8").
func Match(prefs ...string) Lang {
	_, idx := language.MatchStrings(matcher, prefs...)
	return Supported[idx]
}

// Translator looks up strings for one language
type Translator struct {
	lang    Lang
	dict    map[string]string
	printer *message.Printer
}

// New returns a translator for the best match of lang
func New(lang string) *Translator {
	l := Match(lang)
	return &Translator{
		lang:    l,
		dict:    dictionaries[l],
		printer: message.NewPrinter(language.Make(string(l))),
	}
}

// Lang returns the resolved language
func (t *Translator) Lang() Lang {
	return t.lang
}

// T returns the text for key. Unknown keys are returned unchanged.
func (t *Translator) T(key string) string {
	if s, ok := t.dict[key]; ok {
		return s
	}
	return key
}

// Has reports whether key is translated
func (t *Translator) Has(key string) bool {
	_, ok := t.dict[key]
	return ok
}

// Format returns the text for key with {name} placeholders substituted
func (t *Translator) Format(key string, args map[string]string) string {
	s := t.T(key)
	for name, value := range args {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// Label translates a breakdown label key
func (t *Translator) Label(key string) string {
	return t.T(key)
}

// Money formats an amount with two decimals using the language's separators
func (t *Translator) Money(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return t.printer.Sprintf("%.2f", f)
}

// Keys returns the keys of the default language dictionary
func Keys() []string {
	keys := make([]string, 0, len(dictionaries[DefaultLang]))
	for k := range dictionaries[DefaultLang] {
		keys = append(keys, k)
	}
	return keys
}

// Lookup returns the dictionary of lang, for completeness checks
func Lookup(lang Lang) map[string]string {
	return dictionaries[lang]
}
