// Package report renders probability tables as aligned plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/draw-odds-backend/internal/odds"
)

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

// Supported returns the languages the headers are translated into.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// ParseLang picks the closest supported language for a tag or an
// Accept-Language value. Anything unrecognised falls back to English.
func ParseLang(s string) language.Tag {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// FormatPercent prints a percentage with two decimals, or four once the
// value reaches 99.99 so near-certain results do not round to 100.
func FormatPercent(v float64) string {
	prec := 2
	if v >= 99.99 {
		prec = 4
	}
	return strconv.FormatFloat(v, 'f', prec, 64) + "%"
}

// Header returns the localized column titles for a table.
func Header(lang language.Tag) []string {
	p := message.NewPrinter(lang)
	cols := []string{p.Sprintf(keyTurn), p.Sprintf(keyNone)}
	for e := 1; e <= odds.HandSize; e++ {
		cols = append(cols, p.Sprintf(keyExchange, e))
	}
	return cols
}

// Render writes rows as a tab-aligned table, one line per turn.
func Render(w io.Writer, rows []odds.Row, lang language.Tag) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, message.NewPrinter(lang).Sprintf(keyEmpty))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(Header(lang), "\t")+"\t")
	for _, r := range rows {
		cells := []string{strconv.Itoa(r.Turn)}
		for _, pct := range r.Percentages() {
			cells = append(cells, FormatPercent(pct))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}

// Probability renders a single result given as a fraction in [0,1].
func Probability(lang language.Tag, p float64) string {
	return message.NewPrinter(lang).Sprintf(keyProbability) + ": " + FormatPercent(p*100)
}

// Simulated renders a Monte Carlo rate next to the exact value.
func Simulated(lang language.Tag, res odds.SimResult, exact float64) string {
	pr := message.NewPrinter(lang)
	return pr.Sprintf(keyProbability) + ": " + FormatPercent(exact*100) + "\n" +
		pr.Sprintf(keySimulated, res.Trials) + ": " + FormatPercent(res.Rate*100)
}
