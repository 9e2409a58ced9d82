// Package encounter schedules and resolves sea encounters: the daily
// check cadence by water type, the frequency-class and creature-table
// roll, distance/surprise/number-appearing resolution, and the damage
// and mitigation rules for hostile encounters (spec.md §4.4).
package encounter

import (
	"strconv"
	"strings"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// Schedule returns the day's fixed encounter-check times for a water type.
func Schedule(waterType models.WaterType) []models.TimeOfDay {
	switch waterType {
	case models.WaterFresh:
		return []models.TimeOfDay{models.TimeMorning, models.TimeEvening, models.TimeMidnight}
	case models.WaterCoastal, models.WaterShallow:
		return []models.TimeOfDay{models.TimeDawn, models.TimeNoon}
	default: // deep
		return []models.TimeOfDay{models.TimeNoon}
	}
}

// Occurs rolls 1d20 for a single scheduled check; an encounter occurs
// only on a natural 1.
func Occurs(roller dice.Roller) bool {
	return roller.D(1, 20, 0) == 1
}

// RollFrequencyClass rolls 1d100 and buckets it into a frequency class.
func RollFrequencyClass(roller dice.Roller) models.EncounterFrequency {
	roll := roller.D(1, 100, 0)
	switch {
	case roll <= 65:
		return models.FrequencyCommon
	case roll <= 85:
		return models.FrequencyUncommon
	case roll <= 97:
		return models.FrequencyRare
	default:
		return models.FrequencyVeryRare
	}
}

// Creature is one static reference-data entry in the encounter table.
type Creature struct {
	Name            string
	WaterTypes      []models.WaterType
	Frequency       models.EncounterFrequency
	BaseHD          int
	NumberExpr      string // e.g. "3d4", "d4x20", "-"
	Classification  models.EncounterClassification
	Threat          models.ThreatCategory
	CanSubmerge     bool
	SurpriseIn6     int // 0 means the default 2-in-6
	IsUnintelligent bool
	CanBeDrivenOff  bool
	Capsize         bool
	CanReachDeck    bool
}

// Table indexes creature entries by water type and frequency class.
type Table map[models.WaterType]map[models.EncounterFrequency][]Creature

// SelectEntry picks a uniformly random entry from the table cell for the
// given water type and frequency class. ok is false if the cell is empty.
func SelectEntry(table Table, waterType models.WaterType, frequency models.EncounterFrequency, roller dice.Roller) (Creature, bool) {
	cell := table[waterType][frequency]
	if len(cell) == 0 {
		return Creature{}, false
	}
	return cell[roller.Intn(len(cell))], true
}

// Resolution is a fully resolved encounter, ready for the orchestrator to
// log and apply.
type Resolution struct {
	Creature       Creature
	TimeOfDay      models.TimeOfDay
	Distance       int
	Surprise       bool
	NumberAppearing int
	TotalHD        int
}

// Resolve computes distance, surprise, and number appearing for a
// selected creature at the given time of day.
func Resolve(creature Creature, timeOfDay models.TimeOfDay, roller dice.Roller) Resolution {
	distance := roller.D(6, 4, 0)
	if !creature.CanSubmerge {
		distance *= 10
	}

	surpriseThreshold := creature.SurpriseIn6
	if surpriseThreshold == 0 {
		surpriseThreshold = 2
	}
	surpriseRoll := roller.D(1, 6, 0)
	surprise := surpriseRoll <= surpriseThreshold
	if surprise {
		distance -= surpriseRoll // reduced by its segment count
		if distance < 0 {
			distance = 0
		}
	}

	number := ParseNumberAppearing(creature.NumberExpr, roller)

	return Resolution{
		Creature:        creature,
		TimeOfDay:       timeOfDay,
		Distance:        distance,
		Surprise:        surprise,
		NumberAppearing: number,
		TotalHD:         creature.BaseHD * number,
	}
}

// ParseNumberAppearing evaluates a number-appearing expression: a bare
// dice expression ("3d4"), a dice-times-constant expression ("d4x20"),
// or "-"/"" meaning a flat 1.
func ParseNumberAppearing(expr string, roller dice.Roller) int {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "-" {
		return 1
	}
	if idx := strings.IndexAny(expr, "xX×"); idx >= 0 {
		dicePart := expr[:idx]
		multPart := expr[idx+1:]
		mult, err := strconv.Atoi(strings.TrimSpace(multPart))
		if err != nil {
			return 1
		}
		total, err := roller.Roll(normalizeDiceTerm(dicePart))
		if err != nil {
			return 1
		}
		return total * mult
	}
	total, err := roller.Roll(expr)
	if err != nil {
		return 1
	}
	return total
}

// normalizeDiceTerm fills in an implicit leading die count ("d4" -> "1d4")
// so it parses as a standard NdM term.
func normalizeDiceTerm(term string) string {
	term = strings.TrimSpace(term)
	if strings.HasPrefix(term, "d") {
		return "1" + term
	}
	return term
}

// hazardNames, interactiveNames, threatNames, and unintelligentNames are
// the fixed name sets used to classify an encounter when the reference
// table entry doesn't carry an explicit classification.
var hazardNames = map[string]bool{
	"seaweed": true, "shoals": true, "whirlpool": true, "maelstrom": true,
	"ice": true, "reef": true,
}

var interactiveNames = map[string]bool{
	"merchant_ship": true, "island": true, "omen": true,
}

var boardingNames = map[string]bool{
	"merrow": true, "scrag": true, "ogre": true, "troll": true, "giant": true,
}

// Classify resolves an encounter's classification from its fixed name
// sets and threat size, when the table entry leaves it unset.
func Classify(creature Creature, aggressiveRollSucceeds bool, sizeLargeOrGargantuan bool) models.EncounterClassification {
	if creature.Classification != "" {
		return creature.Classification
	}
	key := creature.Name
	if hazardNames[key] {
		return models.ClassHazard
	}
	if interactiveNames[key] {
		return models.ClassInteractive
	}
	if creature.Threat != models.ThreatNone || (sizeLargeOrGargantuan && aggressiveRollSucceeds) {
		return models.ClassThreat
	}
	return models.ClassSighting
}

// DamageForThreat computes hull damage from a resolved threat encounter.
func DamageForThreat(category models.ThreatCategory, totalHD int, roller dice.Roller) int {
	switch category {
	case models.ThreatLarge, models.ThreatBoarding:
		k := 2 * (totalHD / 10)
		if k < 2 {
			k = 2
		}
		return roller.D(1, k, 0)
	case models.ThreatAerial:
		return roller.D(1, 4, 0)
	case models.ThreatPirate:
		return roller.D(1, 6, 0)
	default: // small
		return 0
	}
}

// CrewCasualty rolls crew losses for an encounter whose combined hit dice
// reach the deck-threatening threshold.
func CrewCasualty(totalHD int, canReachDeck bool, roller dice.Roller) (count int, occurred bool) {
	if totalHD >= 6 && canReachDeck {
		return roller.D(1, 4, 0), true
	}
	return 0, false
}

// HazardOutcome is the resolved damage (and any special flag) for a
// terrain hazard encounter.
type HazardOutcome struct {
	Damage       int
	Holed        bool
	SpeedFactor  float64 // 1.0 unless a seaweed-style slowdown applies
	ExtraCheck   bool
}

// ResolveHazard applies the fixed per-name hazard damage rules.
func ResolveHazard(name string, roller dice.Roller) HazardOutcome {
	switch name {
	case "whirlpool", "maelstrom":
		return HazardOutcome{Damage: roller.D(2, 10, 0), SpeedFactor: 1.0}
	case "ice":
		holed := roller.D(1, 100, 0) <= 10
		return HazardOutcome{Damage: roller.D(1, 6, 0), Holed: holed, SpeedFactor: 1.0}
	case "reef", "shoals":
		return HazardOutcome{Damage: roller.D(2, 6, 0), SpeedFactor: 1.0}
	case "seaweed":
		extra := roller.D(1, 100, 0) <= 40
		return HazardOutcome{SpeedFactor: 0.5, ExtraCheck: extra}
	default:
		return HazardOutcome{SpeedFactor: 1.0}
	}
}

// FlamingOil resolves a mitigation attempt against an unintelligent
// threat using flaming oil; activelyBurning raises the drive-off chance.
func FlamingOil(roller dice.Roller, activelyBurning bool) bool {
	threshold := 75
	if activelyBurning {
		threshold = 90
	}
	return roller.D(1, 100, 0) <= threshold
}

// Food resolves a mitigation attempt using food: the encounter ends on a
// roll of 50 or below.
func Food(roller dice.Roller) bool {
	return roller.D(1, 100, 0) <= 50
}

// CapsizeProbability derives a capsize percentage from hull.max tier.
func CapsizeProbability(hullMax int) int {
	base := 10
	switch {
	case hullMax <= 10:
		return base + 15
	case hullMax <= 20:
		return base + 10
	case hullMax <= 40:
		return base + 5
	case hullMax >= 80:
		return base - 10
	case hullMax >= 60:
		return base - 5
	default:
		return base
	}
}

// Capsizes rolls against the ship's capsize probability for a gargantuan
// or explicitly capsize-flagged threat.
func Capsizes(hullMax int, roller dice.Roller) bool {
	return roller.D(1, 100, 0) <= CapsizeProbability(hullMax)
}
