package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/draw-odds-backend/internal/odds"
)

var (
	ErrInvalidConfig = errors.New("config validation failed")
	ErrInvalidParams = errors.New("invalid parameters")
)

// Bounds of the query form.
const (
	MaxDeckSize = 100
	MaxTurn     = 100
)

// ValidateRaw checks each value a preset file sets on its own.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	if v := cfg.Deck.Size; v != nil && (*v < 1 || *v > MaxDeckSize) {
		errs = append(errs, fmt.Sprintf("deck.size must be in [1,%d]", MaxDeckSize))
	}
	if v := cfg.Deck.Targets; v != nil && *v < 1 {
		errs = append(errs, "deck.targets must be >= 1")
	}
	if v := cfg.Deck.MinTarget; v != nil && *v < 1 {
		errs = append(errs, "deck.min_target must be >= 1")
	}
	if v := cfg.Mulligan.Exchange; v != nil && (*v < 0 || *v > odds.HandSize) {
		errs = append(errs, fmt.Sprintf("mulligan.exchange must be in [0,%d]", odds.HandSize))
	}
	if cfg.Mulligan.Mode != "" {
		if _, err := odds.ParseMode(cfg.Mulligan.Mode); err != nil {
			errs = append(errs, "mulligan.mode must be one of: without_replacement, with_replacement")
		}
	}
	if v := cfg.Turns.From; v != nil && (*v < 0 || *v > MaxTurn) {
		errs = append(errs, fmt.Sprintf("turns.from must be in [0,%d]", MaxTurn))
	}
	if v := cfg.Turns.To; v != nil && (*v < 0 || *v > MaxTurn) {
		errs = append(errs, fmt.Sprintf("turns.to must be in [0,%d]", MaxTurn))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateParams applies the query form rules to resolved values: deck
// 1..100, targets 1..deck, min target 1..targets, turns 0..100 with
// from <= to, exchange 0..4.
func ValidateParams(p Params) error {
	var errs []string

	if p.Deck.Size < 1 || p.Deck.Size > MaxDeckSize {
		errs = append(errs, fmt.Sprintf("deck size must be in [1,%d]", MaxDeckSize))
	}
	if p.Deck.Targets < 1 || p.Deck.Targets > p.Deck.Size {
		errs = append(errs, "targets must be between 1 and the deck size")
	}
	if p.Deck.MinTarget < 1 || p.Deck.MinTarget > p.Deck.Targets {
		errs = append(errs, "min target must be between 1 and targets")
	}
	if p.Deck.Size < odds.HandSize {
		errs = append(errs, fmt.Sprintf("deck must hold at least %d cards", odds.HandSize))
	}
	if p.Exchange < 0 || p.Exchange > odds.HandSize {
		errs = append(errs, fmt.Sprintf("exchange must be in [0,%d]", odds.HandSize))
	}
	if p.From < 0 || p.From > MaxTurn || p.To < 0 || p.To > MaxTurn {
		errs = append(errs, fmt.Sprintf("turns must be in [0,%d]", MaxTurn))
	}
	if p.To < p.From {
		errs = append(errs, "to turn must be >= from turn")
	}
	if _, err := odds.ParseMode(string(p.Mode)); err != nil {
		errs = append(errs, "mode must be one of: without_replacement, with_replacement")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(errs, "; "))
	}
	return nil
}
