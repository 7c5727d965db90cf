package api

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
	"github.com/xtding233/draw-odds-backend/internal/report"
)

const defaultTrials = 10_000

func paramsJSON(p game.Params) gin.H {
	return gin.H{
		"game":       p.Game,
		"format":     p.Format,
		"deck_size":  p.Deck.Size,
		"targets":    p.Deck.Targets,
		"min_target": p.Deck.MinTarget,
		"exchange":   p.Exchange,
		"mode":       p.Mode,
	}
}

// Table returns one row per turn in [from, to] with a column per exchange
// count.
func (h *Handlers) Table(c *gin.Context) {
	r := responder{c}
	p, err := h.resolve(c)
	if err != nil {
		h.fail(r, err)
		return
	}

	rows, err := odds.DrawProbabilityConcurrent(c.Request.Context(),
		p.Deck.Size, p.Deck.Targets, p.From, p.To, p.Deck.MinTarget, p.Mode)
	if err != nil {
		h.fail(r, err)
		return
	}

	var text bytes.Buffer
	if err := report.Render(&text, rows, r.lang()); err != nil {
		h.fail(r, err)
		return
	}
	payload := paramsJSON(p)
	payload["from"], payload["to"], payload["rows"] = p.From, p.To, rows
	payload["version"] = p.Version
	r.ok(text.String(), payload)
}

// Hand returns the chance of at least min targets in a hand of ?hand= cards.
func (h *Handlers) Hand(c *gin.Context) {
	r := responder{c}
	p, err := h.resolve(c)
	if err != nil {
		h.fail(r, err)
		return
	}
	hand, err := intOr(c, "hand", odds.HandSize)
	if err != nil {
		h.fail(r, err)
		return
	}

	prob, err := odds.HandProbability(p.Deck.Size, p.Deck.Targets, hand, p.Deck.MinTarget)
	if err != nil {
		h.fail(r, err)
		return
	}
	payload := paramsJSON(p)
	delete(payload, "exchange")
	delete(payload, "mode")
	payload["hand"], payload["probability"] = hand, prob
	r.ok(report.Probability(r.lang(), prob), payload)
}

// Mulligan returns the chance of at least min targets after the exchange.
func (h *Handlers) Mulligan(c *gin.Context) {
	r := responder{c}
	p, err := h.resolve(c)
	if err != nil {
		h.fail(r, err)
		return
	}

	prob, err := odds.MulliganProbability(p.Deck.Size, p.Deck.Targets, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		h.fail(r, err)
		return
	}
	payload := paramsJSON(p)
	payload["probability"] = prob
	r.ok(report.Probability(r.lang(), prob), payload)
}

// Turn returns the chance of having seen at least min targets by ?turn=,
// which defaults to the preset's first turn.
func (h *Handlers) Turn(c *gin.Context) {
	r := responder{c}
	p, err := h.resolve(c)
	if err != nil {
		h.fail(r, err)
		return
	}
	turn, err := intOr(c, "turn", p.From)
	if err != nil {
		h.fail(r, err)
		return
	}

	prob, err := odds.DrawProbabilityAtTurn(p.Deck.Size, p.Deck.Targets, turn, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		h.fail(r, err)
		return
	}
	payload := paramsJSON(p)
	payload["turn"], payload["probability"] = turn, prob
	r.ok(report.Probability(r.lang(), prob), payload)
}

// Simulate plays ?trials= games and reports the observed rate next to the
// exact value. ?seed= makes the run reproducible.
func (h *Handlers) Simulate(c *gin.Context) {
	r := responder{c}
	p, err := h.resolve(c)
	if err != nil {
		h.fail(r, err)
		return
	}
	turn, err := intOr(c, "turn", p.From)
	if err != nil {
		h.fail(r, err)
		return
	}
	trials, err := intOr(c, "trials", defaultTrials)
	if err != nil {
		h.fail(r, err)
		return
	}

	rng := odds.DefaultRNG()
	if s := c.Query("seed"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			h.fail(r, fmt.Errorf("seed %w", errBadNumber))
			return
		}
		rng = odds.NewSeededRNG(seed)
	}

	sp := odds.SimParams{Deck: p.Deck, Exchange: p.Exchange, Turn: turn, Mode: p.Mode}
	res, err := odds.Simulate(sp, trials, rng)
	if err != nil {
		h.fail(r, err)
		return
	}
	exact, err := odds.DrawProbabilityAtTurn(p.Deck.Size, p.Deck.Targets, turn, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		h.fail(r, err)
		return
	}

	payload := paramsJSON(p)
	payload["turn"], payload["exact"], payload["simulation"] = turn, exact, res
	r.ok(report.Simulated(r.lang(), res, exact), payload)
}

// Preset shows the merged preset for /presets/:game and the params it
// resolves to.
func (h *Handlers) Preset(c *gin.Context) {
	r := responder{c}
	raw, p, err := h.presets.Resolve(c.Param("game"), c.Query("format"), game.Overrides{})
	if err != nil {
		h.fail(r, err)
		return
	}
	text := fmt.Sprintf("%s %s (v%s)\ndeck=%d targets=%d min=%d exchange=%d mode=%s turns=%d..%d",
		p.Game, p.Format, p.Version, p.Deck.Size, p.Deck.Targets, p.Deck.MinTarget,
		p.Exchange, p.Mode, p.From, p.To)
	r.ok(text, gin.H{"preset": raw, "params": p})
}

func (h *Handlers) Health(c *gin.Context) {
	responder{c}.ok("OK", gin.H{"ok": true})
}
