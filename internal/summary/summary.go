// Package summary renders the collapsed-panel caption of the availability
// constraints fieldset on the unit type form.
package summary

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	unitEnabled  = "Range constraints <b>enabled</b> at unit level"
	unitDisabled = "Range constraints disabled at unit level"
	typeEnabled  = "Range constraints <b>enabled</b> at unit type level"
	typeDisabled = "Range constraints disabled at unit type level"

	Separator = "<br />"
)

var (
	supported = []language.Tag{language.English, language.Russian}
	matcher   = language.NewMatcher(supported)
	messages  = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	translations := map[string]string{
		unitEnabled:  "Ограничения диапазона <b>включены</b> на уровне номера",
		unitDisabled: "Ограничения диапазона отключены на уровне номера",
		typeEnabled:  "Ограничения диапазона <b>включены</b> на уровне типа номера",
		typeDisabled: "Ограничения диапазона отключены на уровне типа номера",
	}
	for key, ru := range translations {
		_ = b.SetString(language.English, key, key)
		_ = b.SetString(language.Russian, key, ru)
	}
	return b
}

// ConstraintSummary is the state of the two range constraint checkboxes.
type ConstraintSummary struct {
	UnitLevel bool
	TypeLevel bool
}

// Lines returns the unit level line followed by the unit type level line.
func (s ConstraintSummary) Lines(p *message.Printer) []string {
	if p == nil {
		p = Printer("")
	}
	lines := make([]string, 0, 2)
	if s.UnitLevel {
		lines = append(lines, p.Sprintf(unitEnabled))
	} else {
		lines = append(lines, p.Sprintf(unitDisabled))
	}
	if s.TypeLevel {
		lines = append(lines, p.Sprintf(typeEnabled))
	} else {
		lines = append(lines, p.Sprintf(typeDisabled))
	}
	return lines
}

func (s ConstraintSummary) Caption(p *message.Printer) string {
	return strings.Join(s.Lines(p), Separator)
}

// Printer picks the best supported language for an Accept-Language header
// value. English is used when nothing matches.
func Printer(acceptLanguage string) *message.Printer {
	return message.NewPrinter(Match(acceptLanguage), message.Catalog(messages))
}

func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}
