package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownGame   = errors.New("unknown game")
	ErrUnknownFormat = errors.New("unknown format")
	ErrBadName       = errors.New("invalid preset name")
)

var nameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// Paths helper for default/game/format files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) GamesDir() string {
	return filepath.Join(p.BaseDir, "games")
}
func (p Paths) DefaultPath() string {
	return filepath.Join(p.GamesDir(), "default.yaml")
}
func (p Paths) GamePath(game string) string {
	return filepath.Join(p.GamesDir(), game+".yaml")
}
func (p Paths) FormatPath(game, format string) string {
	return filepath.Join(p.GamesDir(), game, "formats", format+".yaml")
}

// Loader reads YAML presets and merges default → game → format.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: "$default", "game" or "game/format"
}

// NewLoader creates a preset loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

func cacheKey(game, format string) string {
	switch {
	case game == "":
		return "$default"
	case format == "":
		return game
	default:
		return game + "/" + format
	}
}

// LoadMerged loads and merges default → game → format. Both game and format
// are optional, but a named game or format must exist on disk.
func (l *Loader) LoadMerged(game, format string) (RawConfig, error) {
	if game == "" && format != "" {
		return RawConfig{}, fmt.Errorf("%w: format %q without game", ErrUnknownFormat, format)
	}
	for _, n := range []string{game, format} {
		if n != "" && !nameRE.MatchString(n) {
			return RawConfig{}, fmt.Errorf("%w: %q", ErrBadName, n)
		}
	}

	key := cacheKey(game, format)
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	// A missing default file is fine, built-in fallbacks fill the gaps.
	merged, _, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	if game != "" {
		gameCfg, found, err := readYAML(l.paths.GamePath(game))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read game %s: %w", game, err)
		}
		if !found {
			return RawConfig{}, fmt.Errorf("%w: %s", ErrUnknownGame, game)
		}
		merged = mergeRaw(merged, gameCfg)
	}
	if format != "" {
		formatCfg, found, err := readYAML(l.paths.FormatPath(game, format))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read format %s/%s: %w", game, format, err)
		}
		if !found {
			return RawConfig{}, fmt.Errorf("%w: %s/%s", ErrUnknownFormat, game, format)
		}
		merged = mergeRaw(merged, formatCfg)
	}

	l.mu.Lock()
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. A missing file reports
// found=false without an error.
func readYAML(path string) (cfg RawConfig, found bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, true, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cfg, true, nil
}

// mergeRaw overlays b on a: every value b sets wins. Pointers are copied so
// cached configs never share storage with later merges.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Name != "" {
		out.Name = b.Name
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	out.Deck.Size = overlay(a.Deck.Size, b.Deck.Size)
	out.Deck.Targets = overlay(a.Deck.Targets, b.Deck.Targets)
	out.Deck.MinTarget = overlay(a.Deck.MinTarget, b.Deck.MinTarget)

	if b.Mulligan.Mode != "" {
		out.Mulligan.Mode = b.Mulligan.Mode
	}
	out.Mulligan.Exchange = overlay(a.Mulligan.Exchange, b.Mulligan.Exchange)

	out.Turns.From = overlay(a.Turns.From, b.Turns.From)
	out.Turns.To = overlay(a.Turns.To, b.Turns.To)

	return out
}

func overlay(a, b *int) *int {
	src := a
	if b != nil {
		src = b
	}
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
