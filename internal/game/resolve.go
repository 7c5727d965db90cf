package game

import (
	"fmt"

	"github.com/xtding233/draw-odds-backend/internal/odds"
)

// Overrides carries request values that win over every preset layer.
type Overrides struct {
	DeckSize  *int
	Targets   *int
	MinTarget *int
	Exchange  *int
	From      *int
	To        *int
	Mode      *string
}

type Resolver interface {
	// Returns the merged RawConfig and the validated Params.
	Resolve(game, format string, o Overrides) (RawConfig, Params, error)
}

var _ Resolver = (*Loader)(nil)

// Resolve merges default → game → format → overrides into Params.
func (l *Loader) Resolve(game, format string, o Overrides) (RawConfig, Params, error) {
	raw, err := l.LoadMerged(game, format)
	if err != nil {
		return RawConfig{}, Params{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return raw, Params{}, err
	}

	p, err := normalize(raw, o)
	if err != nil {
		return raw, Params{}, err
	}
	p.Game, p.Format = game, format
	if err := ValidateParams(p); err != nil {
		return raw, Params{}, err
	}
	return raw, p, nil
}

func normalize(raw RawConfig, o Overrides) (Params, error) {
	p := Params{
		Deck: odds.Deck{
			Size:      pick(o.DeckSize, raw.Deck.Size, DefaultDeckSize),
			Targets:   pick(o.Targets, raw.Deck.Targets, DefaultTargets),
			MinTarget: pick(o.MinTarget, raw.Deck.MinTarget, DefaultMinTarget),
		},
		Exchange: pick(o.Exchange, raw.Mulligan.Exchange, 0),
		From:     pick(o.From, raw.Turns.From, DefaultFromTurn),
		To:       pick(o.To, raw.Turns.To, DefaultToTurn),
		Version:  raw.Version,
	}

	mode := raw.Mulligan.Mode
	if o.Mode != nil {
		mode = *o.Mode
	}
	m, err := odds.ParseMode(mode)
	if err != nil {
		return Params{}, fmt.Errorf("%w: mode %q", ErrInvalidParams, mode)
	}
	p.Mode = m
	return p, nil
}

func pick(override, layered *int, fallback int) int {
	switch {
	case override != nil:
		return *override
	case layered != nil:
		return *layered
	default:
		return fallback
	}
}
