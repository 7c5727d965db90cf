// Command drawtable prints the turn-by-turn probability table for a preset
// or for explicit deck parameters.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
	"github.com/xtding233/draw-odds-backend/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "drawtable:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("drawtable", flag.ContinueOnError)
	var (
		configDir = fs.String("config", "config", "preset directory")
		gameName  = fs.String("game", "", "preset game")
		format    = fs.String("format", "", "preset format")
		lang      = fs.String("lang", "en", "header language (en, ja)")
		asJSON    = fs.Bool("json", false, "print rows as JSON")
		trials    = fs.Int("simulate", 0, "also run this many Monte Carlo trials at -to")
		seed      = fs.Uint64("seed", 0, "seed for -simulate; 0 uses crypto randomness")
	)
	ints := map[string]*int{}
	for _, name := range []string{"deck", "targets", "min", "from", "to", "exchange"} {
		ints[name] = fs.Int(name, 0, name+" (0 keeps the preset value)")
	}
	mode := fs.String("mode", "", "without_replacement or with_replacement")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only flags given on the command line override the preset.
	var o game.Overrides
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name string) *int {
		if !set[name] {
			return nil
		}
		return ints[name]
	}
	o.DeckSize, o.Targets, o.MinTarget = pick("deck"), pick("targets"), pick("min")
	o.From, o.To, o.Exchange = pick("from"), pick("to"), pick("exchange")
	if set["mode"] {
		o.Mode = mode
	}

	_, p, err := game.NewLoader(*configDir).Resolve(*gameName, *format, o)
	if err != nil {
		return err
	}
	rows, err := odds.DrawProbabilityConcurrent(context.Background(),
		p.Deck.Size, p.Deck.Targets, p.From, p.To, p.Deck.MinTarget, p.Mode)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Params game.Params `json:"params"`
			Rows   []odds.Row  `json:"rows"`
		}{p, rows})
	}

	tag := report.ParseLang(*lang)
	fmt.Fprintf(out, "deck=%d targets=%d min=%d mode=%s\n\n", p.Deck.Size, p.Deck.Targets, p.Deck.MinTarget, p.Mode)
	if err := report.Render(out, rows, tag); err != nil {
		return err
	}

	if *trials > 0 {
		rng := odds.DefaultRNG()
		if *seed != 0 {
			rng = odds.NewSeededRNG(*seed)
		}
		sp := odds.SimParams{Deck: p.Deck, Exchange: p.Exchange, Turn: p.To, Mode: p.Mode}
		res, err := odds.Simulate(sp, *trials, rng)
		if err != nil {
			return err
		}
		exact, err := odds.DrawProbabilityAtTurn(p.Deck.Size, p.Deck.Targets, p.To, p.Exchange, p.Deck.MinTarget, p.Mode)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nturn %d, exchange %d\n%s\n", p.To, p.Exchange, report.Simulated(tag, res, exact))
	}
	return nil
}
