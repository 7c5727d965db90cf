package report_test

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/xtding233/draw-odds-backend/internal/odds"
	"github.com/xtding233/draw-odds-backend/internal/report"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00%"},
		{42.70714, "42.71%"},
		{99.98, "99.98%"},
		{99.99, "99.9900%"},
		{99.999871, "99.9999%"},
		{100, "100.0000%"},
	}
	for _, tt := range tests {
		if got := report.FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"ja", language.Japanese},
		{"ja-JP,en;q=0.5", language.Japanese},
		{"en-GB", language.English},
		{"fr", language.English},
		{"!!", language.English},
	}
	for _, tt := range tests {
		if got := report.ParseLang(tt.in); got != tt.want {
			t.Errorf("ParseLang(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderTable(t *testing.T) {
	rows, err := odds.DrawProbability(40, 3, 1, 3, 1, odds.ModeWithoutReplacement)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, rows, language.English); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3:\n%s", len(lines), buf.String())
	}
	for _, h := range []string{"Turn", "No exchange", "Exchange 1", "Exchange 4"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header missing %q: %s", h, lines[0])
		}
	}
	if !strings.Contains(lines[1], report.FormatPercent(rows[0].None)) {
		t.Errorf("first row missing %s: %s", report.FormatPercent(rows[0].None), lines[1])
	}
	if strings.Count(lines[3], "%") != 5 {
		t.Errorf("row should hold five percentages: %s", lines[3])
	}
}

func TestRenderJapanese(t *testing.T) {
	var buf bytes.Buffer
	rows := []odds.Row{{Turn: 1, None: 10, Exchange1: 20, Exchange2: 30, Exchange3: 40, Exchange4: 50}}
	if err := report.Render(&buf, rows, language.Japanese); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, h := range []string{"ターン", "交換なし", "1枚交換", "4枚交換"} {
		if !strings.Contains(out, h) {
			t.Errorf("missing %q in:\n%s", h, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Render(&buf, nil, language.English); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "No turns in range" {
		t.Fatalf("empty table = %q", buf.String())
	}
}

func TestProbabilityLine(t *testing.T) {
	if got := report.Probability(language.English, 0.5); got != "Probability: 50.00%" {
		t.Fatalf("got %q", got)
	}
	if got := report.Probability(language.Japanese, 1); got != "確率: 100.0000%" {
		t.Fatalf("got %q", got)
	}
	sim := report.Simulated(language.English, odds.SimResult{Trials: 10, Rate: 0.5}, 0.49)
	if !strings.Contains(sim, "Simulated (10 trials): 50.00%") || !strings.Contains(sim, "49.00%") {
		t.Fatalf("got %q", sim)
	}
}
