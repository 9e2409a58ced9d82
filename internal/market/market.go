// Package market resolves a single port-trade visit: merchant
// availability, offered cargo, purchase and sale pricing, customs tax
// and smuggling, profit distribution, and perishability (spec.md §4.6).
package market

import (
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// AgentSkill rolls a substitute port-agent's trade skill: 10 + 1d8 + 1d4 − 1.
func AgentSkill(roller dice.Roller) int {
	return 10 + roller.D(1, 8, 0) + roller.D(1, 4, 0) - 1
}

// AgentFeePercent rolls the port agent's commission: 2d10 + 5.
func AgentFeePercent(roller dice.Roller) int {
	return roller.D(2, 10, 5)
}

// ReactionAdjustment maps a captain's CHA to the merchant-availability
// reaction adjustment.
func ReactionAdjustment(cha int) int {
	switch {
	case cha <= 5:
		return -2
	case cha <= 8:
		return -1
	case cha <= 13:
		return 0
	case cha <= 15:
		return 1
	case cha <= 17:
		return 2
	default:
		return 3
	}
}

// MerchantsAvailable rolls the total merchants available at a port visit.
func MerchantsAvailable(roller dice.Roller, portSizeMod, reactionAdj int) int {
	n := roller.D(1, 6, 0) + portSizeMod + reactionAdj
	if n < 1 {
		n = 1
	}
	return n
}

// StaggerOffered returns how many of the total merchants are offered by
// the given week of the port stay: week 1 gets ⌈total/2⌉, week 2
// ⌈total/4⌉, each later week one more, capped at total.
func StaggerOffered(total, week int) int {
	if week < 1 {
		week = 1
	}
	var n int
	switch week {
	case 1:
		n = ceilDiv(total, 2)
	case 2:
		n = ceilDiv(total, 4)
	default:
		n = ceilDiv(total, 4) + (week - 2)
	}
	if n > total {
		n = total
	}
	return n
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// AppraisalAdjustment maps an appraisal check outcome to the cargo-roll
// adjustment: success +1, odd-margin failure −1, even-margin failure 0.
func AppraisalAdjustment(success bool, missMargin int) int {
	if success {
		return 1
	}
	if missMargin%2 == 1 {
		return -1
	}
	return 0
}

// OfferedCargoRoll rolls the raw 3d6 cargo-type roll, applies the port
// size modifier and appraisal adjustment, and clamps to [3,20].
func OfferedCargoRoll(roller dice.Roller, portSizeMod, appraisalAdjustment int) int {
	raw := roller.D(3, 6, 0)
	adjusted := raw + portSizeMod + appraisalAdjustment
	if adjusted < 3 {
		adjusted = 3
	}
	if adjusted > 20 {
		adjusted = 20
	}
	return adjusted
}

// QuantityAvailable rolls the loads on offer: max(1, 3d8 − raw_type_roll).
func QuantityAvailable(roller dice.Roller, rawTypeRoll int) int {
	n := roller.D(3, 8, 0) - rawTypeRoll
	if n < 1 {
		n = 1
	}
	return n
}

// BargainPercent resolves the bargaining check outcome to a purchase
// price percent adjustment: success discounts, failure penalizes.
func BargainPercent(hasSkill, success bool, roll, needed int) int {
	if !hasSkill {
		return 0
	}
	if success {
		margin := needed - roll
		if margin > 5 {
			margin = 5
		}
		return -5 * margin
	}
	margin := roll - needed
	if margin > 5 {
		margin = 5
	}
	return 5 * margin
}

// PurchasePrice computes the per-load purchase price from the category
// base value and the resolved bargain percent.
func PurchasePrice(baseValue, bargainPercent int) int {
	price := baseValue * (100 + bargainPercent) / 100
	if price < 1 {
		price = 1
	}
	return price
}

// demandTable maps the 3d6-derived demand roll to its modifier.
func demandTable(roll int) int {
	switch {
	case roll <= 3:
		return -5
	case roll <= 5:
		return -4
	case roll == 6:
		return -3
	case roll == 7:
		return -2
	case roll <= 9:
		return -1
	case roll <= 11:
		return 0
	case roll <= 13:
		return 1
	case roll == 14:
		return 2
	case roll == 15:
		return 3
	case roll <= 17:
		return 4
	default:
		return 5
	}
}

// DemandMod rolls 3d6, applies the trade-skill adjustment to the roll
// itself (not the looked-up modifier), then looks up the demand
// modifier and adds the port size mod and the agent penalty.
func DemandMod(roller dice.Roller, tradeSkillSuccess bool, tradeSkillAttempted bool, tradeMissMarginOdd bool, portSizeMod int, usingAgent bool) int {
	roll := roller.D(3, 6, 0)
	if tradeSkillAttempted {
		if tradeSkillSuccess {
			roll += 4
		} else if tradeMissMarginOdd {
			roll -= 4
		}
	}
	mod := demandTable(roll) + portSizeMod
	if usingAgent {
		mod--
	}
	return mod
}

// DistanceMod rolls the 1d6 sale-distance category, overridden to
// Extraordinary whenever the actual distance exceeds 500 miles.
func DistanceMod(roller dice.Roller, actualDistance int) (models.DistanceCategory, int) {
	if actualDistance > 500 {
		return models.DistanceExtraordinary, 4
	}
	roll := roller.D(1, 6, 0)
	switch {
	case roll <= 2:
		return models.DistanceShort, -1
	case roll <= 5:
		return models.DistanceMedium, 0
	default:
		return models.DistanceLong, 2
	}
}

// PreciousBonus applies the precious-cargo sale bonus: +4 with a 10%
// chance, only when the cargo is the precious category.
func PreciousBonus(isPrecious bool, roller dice.Roller) int {
	if !isPrecious {
		return 0
	}
	if roller.D(1, 100, 0) <= 10 {
		return 4
	}
	return 0
}

// NoSkillPenalty applies −2 when none of the three trade-related skills
// (bargaining, appraisal, trade) are present on the acting officer.
func NoSkillPenalty(hasBargaining, hasAppraisal, hasTrade bool) int {
	if !hasBargaining && !hasAppraisal && !hasTrade {
		return -2
	}
	return 0
}

// SimpleModifier maps a generic proficiency check outcome to a ±1
// adjustment (bargaining/appraisal components of the SA roll): success
// +1, odd-margin failure −1, even-margin failure 0.
func SimpleModifier(attempted, success bool, missMargin int) int {
	if !attempted {
		return 0
	}
	if success {
		return 1
	}
	if missMargin%2 == 1 {
		return -1
	}
	return 0
}

// SaleAdjustmentRoll is the full composed SA roll: 3d6 plus every
// modifier the rules define.
func SaleAdjustmentRoll(roller dice.Roller, demandMod, distanceMod, bargainMod, appraisalMod, preciousBonus, noSkillPenalty int) int {
	return roller.D(3, 6, 0) + demandMod + distanceMod + bargainMod + appraisalMod + preciousBonus + noSkillPenalty
}

// FinalMultiplier converts a bargaining success margin into the sale
// price's final multiplier: 1 + min(25, 5·margin)/100.
func FinalMultiplier(bargainSuccessMargin int) float64 {
	pct := 5 * bargainSuccessMargin
	if pct < 0 {
		pct = 0
	}
	if pct > 25 {
		pct = 25
	}
	return 1 + float64(pct)/100
}

// CustomsTax rolls the base tax percent and computes the tax owed on the
// appraised cargo value.
func CustomsTax(roller dice.Roller, value int) (percent, tax int) {
	percent = roller.D(2, 10, 0)
	if percent < 1 {
		percent = 1
	}
	if percent > 100 {
		percent = 100
	}
	tax = value * percent / 100
	return percent, tax
}

// AttemptsSmuggling reports whether the captain's smuggling target and
// the estimated tax clear the autotrade smuggling threshold.
func AttemptsSmuggling(smugglingTarget, estimatedTax int) bool {
	return smugglingTarget >= 12 && estimatedTax > 500
}

// SmugglingOutcome resolves the smuggling attempt: success zeroes the
// tax, failure multiplies both tax and percent by 10.
func SmugglingOutcome(success bool, baseTax, basePercent int) (tax, percent int) {
	if success {
		return 0, 0
	}
	return baseTax * 10, basePercent * 10
}

// SpeculationSplit distributes speculation-mode profit between owner and
// crew: positive profit splits 50/50 on top of the owner's purchase
// capital returned; non-positive profit leaves the crew nothing.
func SpeculationSplit(sale, purchase, agentFee int) (ownerShare, crewShare int) {
	profit := sale - purchase - agentFee
	if profit > 0 {
		ownerShare = purchase + profit/2
		crewShare = sale - agentFee - ownerShare
		return ownerShare, crewShare
	}
	return sale - agentFee, 0
}

// ConsignmentSplit distributes a consignment sale between the crew's
// commission and the consignor's remainder.
func ConsignmentSplit(sale, commissionRatePercent int) (crewCommission, consignorShare int) {
	crewCommission = sale * commissionRatePercent / 100
	consignorShare = sale - crewCommission
	return crewCommission, consignorShare
}

// TotalTransportFee computes the consignment transport fee for a leg; the
// owner receives the upfront half at origin and the remaining half on
// delivery.
func TotalTransportFee(distanceMi, loads int) int {
	fee := ceilDiv(distanceMi, 500) * 40 * loads
	if fee < 100 {
		fee = 100
	}
	return fee
}

// TransportFeeHalves splits the total transport fee into the upfront and
// delivery halves (delivery receives any odd remainder).
func TransportFeeHalves(total int) (upfront, delivery int) {
	upfront = total / 2
	delivery = total - upfront
	return upfront, delivery
}

// PerishabilitySteps counts how many category thresholds the actual sale
// distance exceeds beyond the rolled distance category.
func PerishabilitySteps(category models.DistanceCategory, actualDistance int) int {
	steps := 0
	for category != models.DistanceExtraordinary && category.Threshold() < actualDistance {
		category = category.Next()
		steps++
	}
	return steps
}

// ApplyPerishability rolls one spoilage check per excess category step;
// each triggered step spoils a ceiling 25% of the remaining loads.
func ApplyPerishability(steps, loads int, roller dice.Roller) int {
	remaining := loads
	for i := 0; i < steps; i++ {
		if remaining <= 0 {
			break
		}
		if roller.D(1, 100, 0) <= 25 {
			spoiled := ceilDiv(remaining, 4)
			remaining -= spoiled
			if remaining < 0 {
				remaining = 0
			}
		}
	}
	return remaining
}
