// Package weather turns a day's weather record into sailing speed and
// hazard classification against a ship's base movement (spec.md §4.3).
package weather

import (
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// Temperature is a daily high/low pair in the ambient unit.
type Temperature struct {
	High int
	Low  int
}

// Wind describes the day's prevailing wind.
type Wind struct {
	SpeedMPH  int
	Direction string
}

// Precipitation describes the day's precipitation, if any.
type Precipitation struct {
	Type      string // "", "drizzle", "light_rainstorm", "heavy_rainstorm", "hailstorm"
	DurationH int
}

// Record is one day's parsed weather. Sky carries freeform condition
// keywords the hazard classifier matches against ("hurricane", "gale",
// "thunderstorm", "tropical_storm", "fog", "heavy_fog").
type Record struct {
	Temperature   Temperature
	Wind          Wind
	Precipitation Precipitation
	Sky           string
}

var wetSailPrecipitation = map[string]bool{
	"drizzle":         true,
	"light_rainstorm": true,
	"heavy_rainstorm": true,
	"hailstorm":       true,
}

// SailingSpeed computes the day's speed in miles from the ship's base
// speed (movement × 8) and the wind/precipitation record.
func SailingSpeed(ship models.Ship, weather Record, roller dice.Roller) int {
	base := ship.BaseSpeed()
	wind := weather.Wind.SpeedMPH

	var speed int
	switch {
	case wind < 5:
		return 0 // becalmed
	case wind < 20:
		speed = base - 8*((20-wind)/10)
		if speed < 1 {
			speed = 1
		}
	case wind <= 30:
		speed = base
	default:
		speed = base + 16*((wind-30)/10)
	}

	if wetSailPrecipitation[weather.Precipitation.Type] {
		bonusPct := roller.Intn(6) + 5 // uniform in [5,10]
		speed += speed * bonusPct / 100
	}

	return speed
}

// Hazard is a resolved hazard classification for the day's piloting check.
type Hazard struct {
	Severity        models.HazardSeverity
	PilotingModifier int
}

// ClassifyHazard derives the day's hazard severity and piloting modifier
// from wind speed and sky condition keywords. Fog (and heavy fog) compose
// additively with whatever base severity applies.
func ClassifyHazard(weather Record) Hazard {
	wind := weather.Wind.SpeedMPH
	sky := weather.Sky

	var severity models.HazardSeverity
	var mod int
	switch {
	case sky == "hurricane" || wind >= 75:
		severity, mod = models.HazardCritical, 10
	case sky == "gale" || wind >= 50:
		severity, mod = models.HazardMajor, 5
	case sky == "thunderstorm" || sky == "tropical_storm" || wind >= 30:
		severity, mod = models.HazardMinor, 2
	default:
		severity, mod = models.HazardNone, 0
	}

	switch sky {
	case "heavy_fog":
		mod += 6
		if severity == models.HazardNone {
			severity = models.HazardMinor
		}
	case "fog":
		mod += 3
		if severity == models.HazardNone {
			severity = models.HazardMinor
		}
	}

	return Hazard{Severity: severity, PilotingModifier: mod}
}

// HazardDamage resolves hull damage from a failed piloting check, banding
// the miss margin per severity. This implements the smooth damage
// schedule from the documented table (the alternate {1, 1d3+1, 1d4+2}
// minor-band variant is not used, to keep a single schedule shared across
// severities).
func HazardDamage(severity models.HazardSeverity, missMargin int, roller dice.Roller) int {
	band := damageBand(missMargin)
	switch severity {
	case models.HazardMinor:
		switch band {
		case 0:
			return 1
		case 1:
			return roller.D(1, 3, 1)
		default:
			return roller.D(1, 4, 2)
		}
	case models.HazardMajor:
		switch band {
		case 0:
			return 1
		case 1:
			return roller.D(1, 3, 1)
		default:
			return roller.D(1, 5, 3)
		}
	case models.HazardCritical:
		switch band {
		case 0:
			return roller.D(1, 3, 1)
		case 1:
			return roller.D(1, 4, 2)
		case 2:
			return roller.D(1, 5, 3)
		default:
			return roller.D(1, 6, 4)
		}
	default:
		return 0
	}
}

// damageBand maps a miss margin to the table's band index: 0 = [1,2],
// 1 = [3,4], 2 = [5,7], 3 = [8,∞).
func damageBand(missMargin int) int {
	switch {
	case missMargin <= 2:
		return 0
	case missMargin <= 4:
		return 1
	case missMargin <= 7:
		return 2
	default:
		return 3
	}
}

// HullPenalty derives the speed penalty percentage and dead-in-water flag
// from a hull damage percentage.
func HullPenalty(damagePercent int) (speedPenaltyPercent int, deadInWater bool) {
	speedPenaltyPercent = 10 * (damagePercent / 10)
	deadInWater = damagePercent >= 75
	return speedPenaltyPercent, deadInWater
}

// Row resolves the rowing fallback speed: base 8 mi/day, halved once the
// crew has rowed more than 3 consecutive days (fatigued).
func Row(consecutiveRowingDays int) (speed int, fatigued bool) {
	const base = 8
	if consecutiveRowingDays > 3 {
		return base / 2, true
	}
	return base, false
}
