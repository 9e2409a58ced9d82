package proficiency_test

import (
	"testing"

	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/proficiency"
)

// fixedRoller always returns a pinned total from D, ignoring the dice
// parameters, so a scenario's literal roll can be reproduced exactly.
type fixedRoller struct {
	total int
}

func (f fixedRoller) Intn(n int) int { return 0 }
func (f fixedRoller) Roll(expr string) (int, error) { return f.total, nil }
func (f fixedRoller) D(count, sides, mod int) int { return f.total + mod }

func TestCheck_PilotingWorkedScenario(t *testing.T) {
	captain := &models.Officer{
		Name:   "Captain",
		Scores: models.AbilityScores{WIS: 12, CHA: 10, INT: 10, DEX: 10, STR: 10, CON: 10},
		Skills: map[models.Skill]bool{models.SkillPiloting: true},
	}

	roller := fixedRoller{total: 20}
	result, ok := proficiency.Check(roller, models.SkillPiloting, captain, nil, models.CrewAverage, 0)
	if !ok {
		t.Fatalf("expected a target to exist")
	}
	if result.Needed != 13 {
		t.Fatalf("needed = %d, want 13", result.Needed)
	}
	if result.Roll != 20 {
		t.Fatalf("roll = %d, want 20", result.Roll)
	}
	if result.MissMargin != 7 {
		t.Fatalf("miss margin = %d, want 7", result.MissMargin)
	}
	if result.Success {
		t.Fatalf("expected failure on a roll over target")
	}
}

func TestTarget_PilotingUnskilledFallback(t *testing.T) {
	captain := &models.Officer{Scores: models.AbilityScores{WIS: 14}}
	target, ok := proficiency.Target(models.SkillPiloting, captain)
	if !ok {
		t.Fatalf("expected unskilled piloting fallback to produce a target")
	}
	if target != 10 {
		t.Fatalf("target = %d, want 10 (WIS 14 - 4)", target)
	}
}

func TestTarget_UnknownSkillNoFallback(t *testing.T) {
	captain := &models.Officer{Scores: models.AbilityScores{CHA: 14}}
	_, ok := proficiency.Target(models.SkillBargaining, captain)
	if ok {
		t.Fatalf("expected bargaining without the skill to have no target")
	}
}

func TestCheck_LieutenantAssistExcludedForSmugglingAndPiloting(t *testing.T) {
	captain := &models.Officer{
		Scores: models.AbilityScores{WIS: 12},
		Skills: map[models.Skill]bool{models.SkillPiloting: true},
	}
	lieutenant := &models.Officer{
		Skills: map[models.Skill]bool{models.SkillPiloting: true},
	}
	roller := fixedRoller{total: 10}

	withLieutenant, ok := proficiency.Check(roller, models.SkillPiloting, captain, lieutenant, models.CrewAverage, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	withoutLieutenant, ok := proficiency.Check(roller, models.SkillPiloting, captain, nil, models.CrewAverage, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	if withLieutenant.Roll != withoutLieutenant.Roll {
		t.Fatalf("lieutenant assist must not apply to piloting: got %d vs %d", withLieutenant.Roll, withoutLieutenant.Roll)
	}
}

func TestCheck_CustomsInspectionBoostsSmuggling(t *testing.T) {
	captain := &models.Officer{
		Scores: models.AbilityScores{WIS: 14},
		Skills: map[models.Skill]bool{models.SkillSmuggling: true},
	}
	lieutenant := &models.Officer{
		Skills: map[models.Skill]bool{models.SkillCustomsInspection: true},
	}
	roller := fixedRoller{total: 5}

	boosted, ok := proficiency.Check(roller, models.SkillSmuggling, captain, lieutenant, models.CrewAverage, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	plain, ok := proficiency.Check(roller, models.SkillSmuggling, captain, nil, models.CrewAverage, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	if boosted.Roll != plain.Roll+1 {
		t.Fatalf("customs-inspection should add +1 to the smuggling roll: got %d vs %d", boosted.Roll, plain.Roll)
	}
}

func TestCheck_CrewQualityShiftsEffectiveModifier(t *testing.T) {
	captain := &models.Officer{
		Scores: models.AbilityScores{CHA: 14},
		Skills: map[models.Skill]bool{models.SkillBargaining: true},
	}
	roller := fixedRoller{total: 10}

	crack, ok := proficiency.Check(roller, models.SkillBargaining, captain, nil, models.CrewCrack, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	green, ok := proficiency.Check(roller, models.SkillBargaining, captain, nil, models.CrewGreen, 0)
	if !ok {
		t.Fatalf("expected a target")
	}
	if crack.Roll <= green.Roll {
		t.Fatalf("crack crew roll (%d) should exceed green crew roll (%d)", crack.Roll, green.Roll)
	}
}
