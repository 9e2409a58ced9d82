// Package trading holds the pure strategic decision rules over cargo
// buy/sell/wait choices: no I/O, no randomness, deterministic scoring
// only (spec.md §4.5).
package trading

// DistanceBonus is the distance-bonus table: the incremental sale
// adjustment credited for how far cargo has travelled.
func DistanceBonus(distance int) int {
	switch {
	case distance > 500:
		return 4
	case distance > 250:
		return 2
	case distance > 80:
		return 0
	default:
		return -1
	}
}

// saTable is the Sale-Adjustment lookup: percent of base value by SA
// roll, indexed by roll-3 (roll 3 at index 0).
var saTable = []int{30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160, 180, 200, 300, 400}

// SaleAdjustmentPercent looks up the percent-of-base-value for an SA
// roll, clamping below 3 to 30% and above 20 to 400%.
func SaleAdjustmentPercent(saRoll int) int {
	if saRoll < 3 {
		return saTable[0]
	}
	if saRoll > 20 {
		return saTable[len(saTable)-1]
	}
	return saTable[saRoll-3]
}

// BuyDecision is the outcome of evaluating a candidate purchase.
type BuyDecision struct {
	Accept   bool
	Reason   string
	MaxLoads int
	Reserve  float64 // fraction of treasury to withhold
}

// BuyInput carries everything the buy rule needs about the candidate
// cargo and the remaining route.
type BuyInput struct {
	AtFinalPort        bool
	BestSaleDistance   int // capped at >500 by the caller
	PricePerLoad       int
	BaseValue          int
	ExpectedProfitPerLoad int
	ShipCapacity       int
	LoadsAvailable     int
	Treasury           int
}

// DecideBuy evaluates a candidate cargo purchase against the remaining
// route and treasury.
func DecideBuy(in BuyInput) BuyDecision {
	if in.AtFinalPort {
		return BuyDecision{Accept: false, Reason: "At final port, no further leg to sell on"}
	}

	priceRatio := 0.0
	if in.BaseValue > 0 {
		priceRatio = float64(in.PricePerLoad) / float64(in.BaseValue)
	}

	if priceRatio > 1.10 && in.ExpectedProfitPerLoad < 0 {
		return BuyDecision{Accept: false, Reason: "Price ratio too high for a negative expected profit"}
	}

	switch {
	case in.BestSaleDistance > 500:
		reserve := 0.20
		maxLoads := maxLoadsWithReserve(in.ShipCapacity, in.LoadsAvailable, in.Treasury, in.PricePerLoad, reserve)
		return BuyDecision{Accept: true, Reason: "Extraordinary distance, guaranteed +4", MaxLoads: maxLoads, Reserve: reserve}
	case in.BestSaleDistance < 250:
		if priceRatio <= 0.85 {
			reserve := 0.50
			maxLoads := maxLoadsWithReserve(in.ShipCapacity, in.LoadsAvailable, in.Treasury, in.PricePerLoad, reserve)
			return BuyDecision{Accept: true, Reason: "Favorable price within short sale range", MaxLoads: maxLoads, Reserve: reserve}
		}
		return BuyDecision{Accept: false, Reason: "Price too high for short sale range"}
	default: // 250-500
		if priceRatio <= 1.0 || in.ExpectedProfitPerLoad > 0 {
			reserve := 0.30
			maxLoads := maxLoadsWithReserve(in.ShipCapacity, in.LoadsAvailable, in.Treasury, in.PricePerLoad, reserve)
			return BuyDecision{Accept: true, Reason: "Acceptable price or positive expected profit at medium range", MaxLoads: maxLoads, Reserve: reserve}
		}
		return BuyDecision{Accept: false, Reason: "Price and expected profit unfavorable at medium range"}
	}
}

func maxLoadsWithReserve(shipCapacity, loadsAvailable, treasury, pricePerLoad int, reserve float64) int {
	if pricePerLoad <= 0 {
		return 0
	}
	affordable := int(float64(treasury) * (1 - reserve) / float64(pricePerLoad))
	max := shipCapacity
	if loadsAvailable < max {
		max = loadsAvailable
	}
	if affordable < max {
		max = affordable
	}
	if max < 0 {
		max = 0
	}
	return max
}

// SellDecision is the outcome of evaluating whether to sell now, hold, or
// sell to free capacity.
type SellDecision struct {
	Sell   bool
	Reason string
}

// DecideSell evaluates whether to sell now or hold for a better sale
// distance bonus.
func DecideSell(atFinalPort bool, distanceTraveled, distanceToNext int) SellDecision {
	if atFinalPort {
		return SellDecision{Sell: true, Reason: "Final port, must liquidate"}
	}

	current := DistanceBonus(distanceTraveled)
	future := DistanceBonus(distanceTraveled + distanceToNext)

	if current < 4 && future >= 4 {
		return SellDecision{Sell: false, Reason: "Holding reaches the extraordinary-distance bonus"}
	}
	if future >= current+2 {
		return SellDecision{Sell: false, Reason: "Holding meaningfully improves the sale bonus"}
	}
	if current >= 2 {
		return SellDecision{Sell: true, Reason: "Current bonus is already favorable"}
	}
	return SellDecision{Sell: true, Reason: "No meaningful improvement from holding; sell to free capacity"}
}

// DecideWait reports whether to hold in port for a fuller hold rather
// than departing now.
func DecideWait(potentialSavings float64, weeklyWaitCost float64) bool {
	return potentialSavings > 1.5*weeklyWaitCost
}
