package rpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/draw-odds-backend/internal/game"
	"github.com/xtding233/draw-odds-backend/internal/odds"
)

var errBadField = errors.New("invalid field")

// Service answers probability queries. Request fields mirror the HTTP query
// names: deck, targets, min, exchange, from, to, turn, hand, mode, game and
// format. Omitted fields fall back to the resolved preset.
type Service struct {
	presets game.Resolver
	log     *zap.SugaredLogger
}

var _ ProbabilityServer = (*Service)(nil)

func NewService(presets game.Resolver, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{presets: presets, log: log}
}

// intField returns nil when name is absent or null.
func intField(in *structpb.Struct, name string) (*int, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return nil, nil
	}
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		n, err := odds.IntArg(name, v.GetNumberValue())
		if err != nil {
			return nil, err
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a number", errBadField, name)
	}
}

func stringField(in *structpb.Struct, name string) (string, bool, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return "", false, nil
	}
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "", false, nil
	case *structpb.Value_StringValue:
		return v.GetStringValue(), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s must be a string", errBadField, name)
	}
}

func (s *Service) resolve(in *structpb.Struct) (game.Params, error) {
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
		v, err := intField(in, f.name)
		if err != nil {
			return game.Params{}, err
		}
		*f.dst = v
	}
	if m, ok, err := stringField(in, "mode"); err != nil {
		return game.Params{}, err
	} else if ok {
		o.Mode = &m
	}

	gameName, _, err := stringField(in, "game")
	if err != nil {
		return game.Params{}, err
	}
	format, _, err := stringField(in, "format")
	if err != nil {
		return game.Params{}, err
	}
	_, p, err := s.presets.Resolve(gameName, format, o)
	return p, err
}

func paramsFields(p game.Params) map[string]any {
	return map[string]any{
		"deck":     p.Deck.Size,
		"targets":  p.Deck.Targets,
		"min":      p.Deck.MinTarget,
		"exchange": p.Exchange,
		"mode":     p.Mode.String(),
	}
}

func rowFields(r odds.Row) map[string]any {
	return map[string]any{
		"turn":      r.Turn,
		"none":      r.None,
		"exchange1": r.Exchange1,
		"exchange2": r.Exchange2,
		"exchange3": r.Exchange3,
		"exchange4": r.Exchange4,
	}
}

func (s *Service) reply(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, toStatus(fmt.Errorf("encode reply: %w", err))
	}
	return out, nil
}

func (s *Service) DrawProbability(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.resolve(in)
	if err != nil {
		return nil, toStatus(err)
	}
	rows, err := odds.DrawProbabilityConcurrent(ctx, p.Deck.Size, p.Deck.Targets, p.From, p.To, p.Deck.MinTarget, p.Mode)
	if err != nil {
		return nil, toStatus(err)
	}

	list := make([]any, 0, len(rows))
	for _, r := range rows {
		list = append(list, rowFields(r))
	}
	fields := paramsFields(p)
	delete(fields, "exchange")
	fields["from"], fields["to"], fields["rows"] = p.From, p.To, list
	return s.reply(fields)
}

func (s *Service) HandProbability(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.resolve(in)
	if err != nil {
		return nil, toStatus(err)
	}
	hand := odds.HandSize
	if v, err := intField(in, "hand"); err != nil {
		return nil, toStatus(err)
	} else if v != nil {
		hand = *v
	}

	prob, err := odds.HandProbability(p.Deck.Size, p.Deck.Targets, hand, p.Deck.MinTarget)
	if err != nil {
		return nil, toStatus(err)
	}
	return s.reply(map[string]any{
		"deck":        p.Deck.Size,
		"targets":     p.Deck.Targets,
		"min":         p.Deck.MinTarget,
		"hand":        hand,
		"probability": prob,
	})
}

func (s *Service) MulliganProbability(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.resolve(in)
	if err != nil {
		return nil, toStatus(err)
	}
	prob, err := odds.MulliganProbability(p.Deck.Size, p.Deck.Targets, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		return nil, toStatus(err)
	}
	fields := paramsFields(p)
	fields["probability"] = prob
	return s.reply(fields)
}

func (s *Service) TurnProbability(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.resolve(in)
	if err != nil {
		return nil, toStatus(err)
	}
	turn := p.From
	if v, err := intField(in, "turn"); err != nil {
		return nil, toStatus(err)
	} else if v != nil {
		turn = *v
	}

	prob, err := odds.DrawProbabilityAtTurn(p.Deck.Size, p.Deck.Targets, turn, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		return nil, toStatus(err)
	}
	fields := paramsFields(p)
	fields["turn"], fields["probability"] = turn, prob
	return s.reply(fields)
}
