// Package proficiency maps (ability score, skill) pairs to target numbers
// and runs d20 proficiency checks with crew-quality, modifier, and
// lieutenant-assist adjustments (spec.md §4.2).
package proficiency

import (
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
)

// skillMapping is the fixed per-skill ability mapping and adjustment.
type skillMapping struct {
	Ability    models.Ability
	Adjustment int
}

// targetTable is the fixed skill→(ability, adjustment) table.
var targetTable = map[models.Skill]skillMapping{
	models.SkillBargaining:        {models.AbilityCHA, -2},
	models.SkillPiloting:          {models.AbilityWIS, +1},
	models.SkillNavigation:        {models.AbilityINT, -3},
	models.SkillSmuggling:         {models.AbilityWIS, -4},
	models.SkillSeamanship:        {models.AbilityDEX, +1},
	models.SkillAppraisal:         {models.AbilityINT, -2},
	models.SkillTrade:             {models.AbilityCHA, -1},
	models.SkillCustomsInspection: {models.AbilityWIS, -2},
	models.SkillShipCarpentry:     {models.AbilityDEX, -1},
	models.SkillShipwright:        {models.AbilityINT, -1},
}

// pilotingUnskilledAdjustment is the WIS adjustment used when the acting
// officer lacks piloting entirely (spec.md §4.2: "falls back to WIS − 4").
const pilotingUnskilledAdjustment = -4

// Result exposes the outcome of a proficiency check.
type Result struct {
	Success    bool
	Roll       int // d20 + effective modifier
	Needed     int // target number
	MissMargin int // max(0, Roll-Needed)
}

// Target computes the target number for a skill check by the given
// officer. ok is false when the officer lacks the skill and no fallback
// applies (the check has no target and automatically fails per spec.md).
func Target(skill models.Skill, officer *models.Officer) (target int, ok bool) {
	mapping, known := targetTable[skill]
	if !known {
		return 0, false
	}
	if officer.HasSkill(skill) {
		return officer.Scores.Score(mapping.Ability) + mapping.Adjustment, true
	}
	if skill == models.SkillPiloting {
		return officer.Scores.Score(models.AbilityWIS) + pilotingUnskilledAdjustment, true
	}
	return 0, false
}

// Check runs a 1d20 proficiency check for the acting officer, with the
// lieutenant's assist bonus (+1, not applied to smuggling or piloting),
// the crew-quality modifier, a caller-supplied modifier, and (for
// smuggling only) a +1 if either officer knows customs-inspection.
//
// ok is false when the check has no target (officer lacks the skill and
// no fallback applies); the caller must treat this as an automatic
// failure/refusal rather than invoking Check.
func Check(
	roller dice.Roller,
	skill models.Skill,
	officer *models.Officer,
	lieutenant *models.Officer,
	crewQuality models.CrewQuality,
	modifier int,
) (Result, bool) {
	target, ok := Target(skill, officer)
	if !ok {
		return Result{}, false
	}

	effective := crewQuality.Modifier() + modifier

	lieutenantAssists := lieutenant.HasSkill(skill) && skill != models.SkillSmuggling && skill != models.SkillPiloting
	if lieutenantAssists {
		effective++
	}

	if skill == models.SkillSmuggling {
		if officer.HasSkill(models.SkillCustomsInspection) || lieutenant.HasSkill(models.SkillCustomsInspection) {
			effective++
		}
	}

	roll := roller.D(1, 20, effective)
	missMargin := roll - target
	if missMargin < 0 {
		missMargin = 0
	}

	return Result{
		Success:    roll <= target,
		Roll:       roll,
		Needed:     target,
		MissMargin: missMargin,
	}, true
}
