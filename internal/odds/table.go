package odds

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Row holds one turn's success chances, as percentages, for every exchange
// count from 0 (no mulligan) to 4.
type Row struct {
	Turn      int     `json:"turn"`
	None      float64 `json:"none"`
	Exchange1 float64 `json:"exchange1"`
	Exchange2 float64 `json:"exchange2"`
	Exchange3 float64 `json:"exchange3"`
	Exchange4 float64 `json:"exchange4"`
}

// At returns the percentage for the given exchange count, or 0 when out of range.
func (r Row) At(exchange int) float64 {
	switch exchange {
	case 0:
		return r.None
	case 1:
		return r.Exchange1
	case 2:
		return r.Exchange2
	case 3:
		return r.Exchange3
	case 4:
		return r.Exchange4
	}
	return 0
}

// Percentages returns the five cells in exchange order.
func (r Row) Percentages() [HandSize + 1]float64 {
	return [HandSize + 1]float64{r.None, r.Exchange1, r.Exchange2, r.Exchange3, r.Exchange4}
}

// DrawProbability builds one row per turn in [fromTurn, toTurn], ascending.
// An inverted range gives an empty table.
func DrawProbability(deckSize, targetCards, fromTurn, toTurn, minTarget int, mode Mode) ([]Row, error) {
	return defaultComposer.DrawProbability(deckSize, targetCards, fromTurn, toTurn, minTarget, mode)
}

// DrawProbabilityConcurrent returns the same rows as DrawProbability,
// computing turns on up to GOMAXPROCS goroutines.
func DrawProbabilityConcurrent(ctx context.Context, deckSize, targetCards, fromTurn, toTurn, minTarget int, mode Mode) ([]Row, error) {
	return defaultComposer.DrawProbabilityConcurrent(ctx, deckSize, targetCards, fromTurn, toTurn, minTarget, mode)
}

func (c Composer) DrawProbability(deckSize, targetCards, fromTurn, toTurn, minTarget int, mode Mode) ([]Row, error) {
	if err := checkTable(deckSize, targetCards, fromTurn, minTarget, mode); err != nil {
		return nil, err
	}
	if fromTurn > toTurn {
		return []Row{}, nil
	}
	rows := make([]Row, 0, toTurn-fromTurn+1)
	for turn := fromTurn; turn <= toTurn; turn++ {
		row, err := c.row(deckSize, targetCards, turn, minTarget, mode)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c Composer) DrawProbabilityConcurrent(ctx context.Context, deckSize, targetCards, fromTurn, toTurn, minTarget int, mode Mode) ([]Row, error) {
	if err := checkTable(deckSize, targetCards, fromTurn, minTarget, mode); err != nil {
		return nil, err
	}
	if fromTurn > toTurn {
		return []Row{}, nil
	}

	rows := make([]Row, toTurn-fromTurn+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range rows {
		turn := fromTurn + i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := c.row(deckSize, targetCards, turn, minTarget, mode)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func checkTable(deckSize, targetCards, fromTurn, minTarget int, mode Mode) error {
	const op = "drawProbability"
	if fromTurn < 0 {
		return domainErr(op, ErrNegativeTurn)
	}
	if err := checkDeck(op, deckSize, targetCards, minTarget); err != nil {
		return err
	}
	_, err := mode.normalize(op)
	return err
}

func (c Composer) row(deckSize, targetCards, turn, minTarget int, mode Mode) (Row, error) {
	var cells [HandSize + 1]float64
	for exchange := range cells {
		p, err := c.turnRat(deckSize, targetCards, turn, exchange, minTarget, mode)
		if err != nil {
			return Row{}, err
		}
		cells[exchange] = ratFloat(p.Mul(p, big.NewRat(100, 1)))
	}
	return Row{
		Turn:      turn,
		None:      cells[0],
		Exchange1: cells[1],
		Exchange2: cells[2],
		Exchange3: cells[3],
		Exchange4: cells[4],
	}, nil
}
