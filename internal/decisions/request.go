package decisions

import (
	"context"

	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/voyage"
)

// RequestPolicy answers a single manual-mode simulate-day call from the
// trade decision carried on that HTTP request, falling back to
// AutomatePolicy for repair and hiring prompts (those aren't exposed on
// the simulate-day request body; a captain accepts the engine's
// recommendation for them).
type RequestPolicy struct {
	AutomatePolicy
	Trade *models.TradingRecord
}

// NewRequestPolicy builds a RequestPolicy around one request's optional
// trade instruction.
func NewRequestPolicy(trade *models.TradingRecord) *RequestPolicy {
	return &RequestPolicy{Trade: trade}
}

// ChooseTrade returns the request's trade instruction, or defers to the
// engine's own rules (empty Action) if the request carried none.
func (p *RequestPolicy) ChooseTrade(ctx context.Context, voyageID string) (voyage.TradeChoice, error) {
	if p.Trade == nil || p.Trade.Action == "" {
		return voyage.TradeChoice{Action: ""}, nil
	}
	return voyage.TradeChoice{Action: p.Trade.Action, Loads: p.Trade.Loads}, nil
}

var _ voyage.DecisionAdapter = (*RequestPolicy)(nil)
