package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
)

type Handlers struct {
	presets game.Resolver
	log     *zap.SugaredLogger
}

func NewHandlers(presets game.Resolver, log *zap.SugaredLogger) *Handlers {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handlers{presets: presets, log: log}
}

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// intQuery reads an optional integer query value. Numbers with a fractional
// part are rejected, "4.0" is accepted.
func intQuery(c *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %w", name, errBadNumber)
	}
	v, err := odds.IntArg(name, f)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// overrides collects the preset overrides shared by every endpoint.
func overrides(c *gin.Context) (game.Overrides, error) {
	var o game.Overrides
	fields := []struct {
		name string
		dst  **int
	}{
		{"deck", &o.DeckSize},
		{"targets", &o.Targets},
		{"min", &o.MinTarget},
		{"exchange", &o.Exchange},
		{"from", &o.From},
		{"to", &o.To},
	}
	for _, f := range fields {
		v, err := intQuery(c, f.name)
		if err != nil {
			return game.Overrides{}, err
		}
		*f.dst = v
	}
	if m, ok := c.GetQuery("mode"); ok {
		o.Mode = &m
	}
	return o, nil
}

// resolve merges the preset named by ?game=&format= with the query.
func (h *Handlers) resolve(c *gin.Context) (game.Params, error) {
	o, err := overrides(c)
	if err != nil {
		return game.Params{}, err
	}
	_, p, err := h.presets.Resolve(c.Query("game"), c.Query("format"), o)
	return p, err
}

// intOr returns the query value name or fallback when absent.
func intOr(c *gin.Context, name string, fallback int) (int, error) {
	v, err := intQuery(c, name)
	if err != nil || v == nil {
		return fallback, err
	}
	return *v, nil
}
