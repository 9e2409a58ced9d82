// Package portservices resolves port fees, repairs, crew hiring, and
// passenger/charter bookings for a single port visit (spec.md §4.7).
package portservices

import (
	"math"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// Fees is the resolved fee bill for a port visit.
type Fees struct {
	Entrance int
	Pilot    int
	Moorage  int
	UsedBerth bool
}

// ResolveFees computes the entrance, pilot, and moorage fees for a
// `daysInPort`-day visit.
func ResolveFees(roller dice.Roller, hullMax int, damagePercent float64, daysInPort int) Fees {
	entrance := roller.D(1, 10, 10)
	pilot := hullMax

	berthAvailable := roller.D(1, 100, 0) <= 80
	needsBerth := damagePercent > 10 || hullMax <= 5
	useBerth := berthAvailable && needsBerth

	var moorage int
	if useBerth {
		moorage = hullMax * daysInPort
	} else {
		moorage = 5 * daysInPort
	}

	return Fees{Entrance: entrance, Pilot: pilot, Moorage: moorage, UsedBerth: useBerth}
}

// RepairQuote is a priced repair option.
type RepairQuote struct {
	Method   models.RepairMethod
	Cost     int
	Duration int // days (professional/drydock) or weeks (self)
	Restored int
}

// QuoteProfessional prices a professional repair: full restoration at
// 100gp/point, 1 day/point.
func QuoteProfessional(damage int) RepairQuote {
	return RepairQuote{Method: models.RepairProfessional, Cost: 100 * damage, Duration: damage, Restored: damage}
}

// QuoteDrydock prices a drydock repair, whose daily fee depends on the
// port's size modifier (Major −0.5, Minor +0.5).
func QuoteDrydock(damage, hullMax int, portSize models.PortSize) RepairQuote {
	daysDrydock := int(math.Ceil(float64(damage) * 0.6))
	var sizeMod float64
	switch portSize {
	case models.PortMajor:
		sizeMod = -0.5
	case models.PortMinor:
		sizeMod = 0.5
	}
	dailyFee := int(math.Round(float64(hullMax) * 5 * (1 + sizeMod)))
	cost := 100*damage + daysDrydock*dailyFee
	return RepairQuote{Method: models.RepairDrydock, Cost: cost, Duration: daysDrydock, Restored: damage}
}

// SelfRepairPlan is the self-repair schedule: n proficiency-checked
// points, each independently rolled.
type SelfRepairPlan struct {
	Cost  int
	Weeks int
	Points int
}

// QuoteSelfRepair prices a self-repair attempt, capped at half the hull's
// maximum.
func QuoteSelfRepair(damage, hullMax int) SelfRepairPlan {
	n := damage
	cap := hullMax / 2
	if n > cap {
		n = cap
	}
	return SelfRepairPlan{Cost: 50 * n, Weeks: n, Points: n}
}

// SelfRepairPointResult is the outcome of one self-repair point's
// proficiency check.
type SelfRepairPointResult struct {
	Restored              bool
	TemporaryFailureDays  int // 0 if restored; 1d6 if a temporary failure
}

// ResolveSelfRepairPoint resolves a single point's proficiency check
// outcome into a restored-or-temporary-failure result.
func ResolveSelfRepairPoint(success bool, roller dice.Roller) SelfRepairPointResult {
	if success {
		return SelfRepairPointResult{Restored: true}
	}
	return SelfRepairPointResult{Restored: false, TemporaryFailureDays: roller.D(1, 6, 0)}
}

// AutoRepairDecision is the default, no-interaction repair branch choice.
func AutoRepairDecision(damagePercent float64, cost, treasury int) models.RepairMethod {
	if damagePercent >= 10 && treasury >= cost {
		return models.RepairProfessional
	}
	return models.RepairDeferred
}

// CrewShortfall is the per-role shortfall against a ship's required
// complement.
type CrewShortfall struct {
	Role      models.CrewRole
	Shortfall int
}

// ComputeShortfalls returns the per-role shortfall for every crew role
// the ship's template requires.
func ComputeShortfalls(ship models.Ship) []CrewShortfall {
	roles := []models.CrewRole{models.RoleSailor, models.RoleOarsman, models.RoleMarine, models.RoleMate}
	var shortfalls []CrewShortfall
	for _, role := range roles {
		required := ship.RequiredComplement(role)
		current := ship.CountOf(role)
		if required > current {
			shortfalls = append(shortfalls, CrewShortfall{Role: role, Shortfall: required - current})
		}
	}
	return shortfalls
}

// HiringAllowed reports whether hiring is permitted at this port: always
// for small ships, Minor Port or larger otherwise.
func HiringAllowed(portSize models.PortSize, hullMax int) bool {
	if hullMax <= 20 {
		return true
	}
	return portSize != models.PortAnchorage
}

// ShouldAutoHire reports whether the total shortfall crosses the 20%
// auto-hire threshold.
func ShouldAutoHire(shortfalls []CrewShortfall, totalRequired int) bool {
	if totalRequired <= 0 {
		return false
	}
	total := 0
	for _, s := range shortfalls {
		total += s.Shortfall
	}
	return float64(total)/float64(totalRequired) > 0.20
}

// LieutenantWage computes the lieutenant's monthly wage from level.
func LieutenantWage(level int) int {
	return 100 * level
}

// PassengerCount rolls the regular passengers offered at a port visit.
func PassengerCount(roller dice.Roller, portSizeMod int) int {
	n := roller.D(2, 4, 0) - roller.D(1, 4, 0) + portSizeMod
	if n < 0 {
		n = 0
	}
	return n
}

// PassengerRevenue computes passenger revenue for the remaining distance.
func PassengerRevenue(passengers, remainingDistance int) int {
	segments := int(math.Ceil(float64(remainingDistance) / 500))
	if segments < 0 {
		segments = 0
	}
	return passengers * 20 * segments
}

// Charter is a rolled charter opportunity.
type Charter struct {
	Offered     bool
	Distance    int
	Fee         int
}

// RollCharter resolves the 5% charter-opportunity check.
func RollCharter(roller dice.Roller) Charter {
	if roller.D(1, 100, 0) > 5 {
		return Charter{}
	}
	distance := roller.D(2, 20, 0) * 100
	fee := int(math.Ceil(float64(distance)/500)) * 40
	if fee < 100 {
		fee = 100
	}
	return Charter{Offered: true, Distance: distance, Fee: fee}
}
