// Package decisions provides automated policy implementations of
// voyage.DecisionAdapter and a request throttle for the simulate-day
// endpoint, so a voyage running in automate mode never blocks on an
// absent human operator.
package decisions

import (
	"context"

	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/voyage"
)

// AutomatePolicy is the always-available DecisionAdapter backing
// models.ModeAuto: it answers every prompt deterministically instead of
// waiting on a captain's input.
type AutomatePolicy struct{}

// NewAutomatePolicy creates a new automate-mode decision policy.
func NewAutomatePolicy() *AutomatePolicy {
	return &AutomatePolicy{}
}

// ChooseRepair always takes the first (cheapest/fastest) quote offered.
func (AutomatePolicy) ChooseRepair(ctx context.Context, voyageID string, quotes []string) (voyage.RepairChoice, error) {
	if len(quotes) == 0 {
		return voyage.RepairChoice{Method: models.RepairDeferred}, nil
	}
	return voyage.RepairChoice{Method: models.RepairMethod(quotes[0])}, nil
}

// ChooseHiring always accepts an offered hire to restore full complement.
func (AutomatePolicy) ChooseHiring(ctx context.Context, voyageID string, shortfallTotal int) (voyage.HiringChoice, error) {
	return voyage.HiringChoice{Accept: shortfallTotal > 0}, nil
}

// ChooseTrade defers to the engine's own trading-strategy rules by
// signaling no manual override; the engine proceeds with its computed
// buy/sell/wait decision when the returned action is empty.
func (AutomatePolicy) ChooseTrade(ctx context.Context, voyageID string) (voyage.TradeChoice, error) {
	return voyage.TradeChoice{Action: ""}, nil
}

var _ voyage.DecisionAdapter = AutomatePolicy{}
