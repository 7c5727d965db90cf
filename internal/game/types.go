package game

import "github.com/xtding233/draw-odds-backend/internal/odds"

// RawConfig is one preset file as written on disk. Pointer fields stay nil
// when a layer leaves the value to the layer below it.
type RawConfig struct {
	Version  string         `yaml:"version" json:"version,omitempty"`
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Deck     DeckConfig     `yaml:"deck" json:"deck"`
	Mulligan MulliganConfig `yaml:"mulligan" json:"mulligan"`
	Turns    TurnsConfig    `yaml:"turns" json:"turns"`
	Notes    string         `yaml:"notes,omitempty" json:"notes,omitempty"`
}

type DeckConfig struct {
	Size      *int `yaml:"size" json:"size,omitempty"`
	Targets   *int `yaml:"targets" json:"targets,omitempty"`
	MinTarget *int `yaml:"min_target" json:"min_target,omitempty"`
}

type MulliganConfig struct {
	Mode     string `yaml:"mode,omitempty" json:"mode,omitempty"` // "without_replacement" | "with_replacement"
	Exchange *int   `yaml:"exchange" json:"exchange,omitempty"`
}

type TurnsConfig struct {
	From *int `yaml:"from" json:"from,omitempty"`
	To   *int `yaml:"to" json:"to,omitempty"`
}

// Params are the resolved query values handed to internal/odds.
type Params struct {
	Game     string    `json:"game,omitempty"`
	Format   string    `json:"format,omitempty"`
	Deck     odds.Deck `json:"deck"`
	Exchange int       `json:"exchange"`
	Mode     odds.Mode `json:"mode"`
	From     int       `json:"from"`
	To       int       `json:"to"`
	Version  string    `json:"version,omitempty"` // effective preset version for tracing
}

// Fallbacks used when no layer sets a value.
const (
	DefaultDeckSize  = 40
	DefaultTargets   = 3
	DefaultMinTarget = 1
	DefaultFromTurn  = 1
	DefaultToTurn    = 10
)
