// Package models provides the shared data structures for the voyage engine:
// ships, officers, ports, cargo, and the voyage aggregate itself. Closed
// string-tag variants from the source material (trade mode, crew quality,
// port size, encounter classification, hazard severity, repair method,
// water type, event kind) are modeled as typed constants rather than bare
// strings, matched exhaustively by callers.
package models

// PortSize determines a port's fixed merchant/demand modifier.
type PortSize string

const (
	PortAnchorage  PortSize = "anchorage"
	PortMinor      PortSize = "minor_port"
	PortStandard   PortSize = "port"
	PortMajor      PortSize = "major_port"
)

// SizeModifier returns the fixed merchant/demand modifier for a port size.
func (s PortSize) SizeModifier() int {
	switch s {
	case PortMajor:
		return 2
	case PortStandard:
		return 1
	case PortMinor:
		return 0
	case PortAnchorage:
		return -2
	default:
		return 0
	}
}

// CrewQuality is the crew-quality modifier band applied to proficiency checks.
type CrewQuality string

const (
	CrewLandlubber CrewQuality = "landlubber"
	CrewGreen      CrewQuality = "green"
	CrewAverage    CrewQuality = "average"
	CrewTrained    CrewQuality = "trained"
	CrewCrack      CrewQuality = "crack"
	CrewOldSalts   CrewQuality = "old_salts"
)

// Modifier maps a crew-quality band to its +/- check modifier.
func (q CrewQuality) Modifier() int {
	switch q {
	case CrewLandlubber:
		return -2
	case CrewGreen:
		return -1
	case CrewAverage:
		return 0
	case CrewTrained:
		return 1
	case CrewCrack:
		return 2
	case CrewOldSalts:
		return 2
	default:
		return 0
	}
}

// TradeMode selects how cargo profit is distributed at sale.
type TradeMode string

const (
	TradeSpeculation TradeMode = "speculation"
	TradeConsignment TradeMode = "consignment"
)

// WaterType determines the encounter check schedule for a leg.
type WaterType string

const (
	WaterFresh    WaterType = "fresh"
	WaterCoastal  WaterType = "coastal"
	WaterShallow  WaterType = "shallow"
	WaterDeep     WaterType = "deep"
)

// HazardSeverity classifies a day's weather hazard.
type HazardSeverity string

const (
	HazardNone     HazardSeverity = "none"
	HazardMinor    HazardSeverity = "minor"
	HazardMajor    HazardSeverity = "major"
	HazardCritical HazardSeverity = "critical"
)

// EncounterClassification buckets a resolved encounter for damage handling.
type EncounterClassification string

const (
	ClassHazard      EncounterClassification = "hazard"
	ClassInteractive EncounterClassification = "interactive"
	ClassThreat      EncounterClassification = "threat"
	ClassSighting    EncounterClassification = "sighting"
)

// ThreatCategory further classifies a threat encounter for damage resolution.
type ThreatCategory string

const (
	ThreatPirate    ThreatCategory = "pirate"
	ThreatAerial    ThreatCategory = "aerial"
	ThreatLarge     ThreatCategory = "large"
	ThreatBoarding  ThreatCategory = "boarding"
	ThreatSmall     ThreatCategory = "small"
	ThreatNone      ThreatCategory = ""
)

// RepairMethod is the chosen hull-repair branch at a port.
type RepairMethod string

const (
	RepairProfessional RepairMethod = "professional"
	RepairDrydock      RepairMethod = "drydock"
	RepairSelf         RepairMethod = "self"
	RepairDeferred     RepairMethod = "deferred"
)

// EventKind tags the discriminant of an append-only voyage Event.
type EventKind string

const (
	EventDamage       EventKind = "damage"
	EventEncounter    EventKind = "encounter"
	EventCrewLoss     EventKind = "crew_loss"
	EventWarning      EventKind = "warning"
	EventInfo         EventKind = "info"
)

// VoyagePhase is the orchestrator's current state machine phase.
type VoyagePhase string

const (
	PhaseOrigin   VoyagePhase = "origin"
	PhaseSailing  VoyagePhase = "sailing_leg"
	PhasePort     VoyagePhase = "port"
	PhaseFinal    VoyagePhase = "final"
	PhaseFailed   VoyagePhase = "failed"
)

// VoyageMode selects whether a voyage runs to completion automatically or
// advances one day at a time via an external decision adapter.
type VoyageMode string

const (
	ModeAuto   VoyageMode = "auto"
	ModeManual VoyageMode = "manual"
)

// TimeOfDay is one of the fixed daily slots encounter checks are scheduled at.
type TimeOfDay string

const (
	TimeMorning  TimeOfDay = "morning"
	TimeEvening  TimeOfDay = "evening"
	TimeMidnight TimeOfDay = "midnight"
	TimeDawn     TimeOfDay = "dawn"
	TimeNoon     TimeOfDay = "noon"
)

// EncounterFrequency is the rarity class an encounter is drawn from.
type EncounterFrequency string

const (
	FrequencyCommon    EncounterFrequency = "common"
	FrequencyUncommon  EncounterFrequency = "uncommon"
	FrequencyRare      EncounterFrequency = "rare"
	FrequencyVeryRare  EncounterFrequency = "very_rare"
)

// CargoCategoryKind is the discriminant of a cargo category.
type CargoCategoryKind string

const (
	CargoPrimitive CargoCategoryKind = "primitive"
	CargoConsumer  CargoCategoryKind = "consumer"
	CargoComfort   CargoCategoryKind = "comfort"
	CargoFine      CargoCategoryKind = "fine"
	CargoPrecious  CargoCategoryKind = "precious"
)

// DistanceCategory is the 1d6-rolled sale-distance bucket (§4.6); also
// governs the perishability threshold for the same roll.
type DistanceCategory string

const (
	DistanceShort         DistanceCategory = "short"
	DistanceMedium        DistanceCategory = "medium"
	DistanceLong          DistanceCategory = "long"
	DistanceExtraordinary DistanceCategory = "extraordinary"
)

// Threshold returns the mile threshold beyond which the next category's
// perishability step applies. Extraordinary has no finite threshold.
func (d DistanceCategory) Threshold() int {
	switch d {
	case DistanceShort:
		return 80
	case DistanceMedium:
		return 250
	case DistanceLong:
		return 500
	default:
		return 1 << 30
	}
}

// Next returns the category one perishability step further out.
func (d DistanceCategory) Next() DistanceCategory {
	switch d {
	case DistanceShort:
		return DistanceMedium
	case DistanceMedium:
		return DistanceLong
	case DistanceLong:
		return DistanceExtraordinary
	default:
		return DistanceExtraordinary
	}
}
