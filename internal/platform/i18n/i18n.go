// Package i18n resolves user locales and prints localized shell messages.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the source locale every message set must define.
const BaseLocale = "en-US"

var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BrazilianPortuguese,
	}
	matcher = language.NewMatcher(supported)
)

// Locales returns the supported locale identifiers, base locale first.
func Locales() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Resolve maps a requested locale ("pt", "pt_BR", "en-GB") to the closest
// supported locale. Unknown or malformed input resolves to BaseLocale.
func Resolve(locale string) string {
	requested := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if requested == "" {
		return BaseLocale
	}
	tag, err := language.Parse(requested)
	if err != nil {
		return BaseLocale
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return supported[idx].String()
}

// Register adds messages for a supported locale to the x/text catalog.
func Register(locale string, messages map[string]string) error {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return fmt.Errorf("parse locale tag %q: %w", locale, err)
	}
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("locale %s: message key cannot be blank", locale)
		}
		if err := message.SetString(tag, key, messages[key]); err != nil {
			return fmt.Errorf("register %s/%s: %w", locale, key, err)
		}
	}
	return nil
}

// MustRegister is Register for package init; it panics on error.
func MustRegister(locale string, messages map[string]string) {
	if err := Register(locale, messages); err != nil {
		panic(err)
	}
}

// Printer returns a message printer for the resolved locale.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(language.MustParse(Resolve(locale)))
}
