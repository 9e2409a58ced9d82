package encounter_test

import (
	"testing"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/encounter"
	"github.com/saltmarch/voyage-engine/internal/models"
)

func TestSchedule_WaterTypeCadence(t *testing.T) {
	if len(encounter.Schedule(models.WaterFresh)) != 3 {
		t.Fatalf("fresh water should have 3 checks/day")
	}
	if len(encounter.Schedule(models.WaterCoastal)) != 2 {
		t.Fatalf("coastal water should have 2 checks/day")
	}
	if len(encounter.Schedule(models.WaterDeep)) != 1 {
		t.Fatalf("deep water should have 1 check/day")
	}
}

func TestRollFrequencyClass_Buckets(t *testing.T) {
	cases := []struct {
		roll int
		want models.EncounterFrequency
	}{
		{1, models.FrequencyCommon},
		{65, models.FrequencyCommon},
		{66, models.FrequencyUncommon},
		{85, models.FrequencyUncommon},
		{86, models.FrequencyRare},
		{97, models.FrequencyRare},
		{98, models.FrequencyVeryRare},
		{100, models.FrequencyVeryRare},
	}
	for _, c := range cases {
		roller := fixedD100{value: c.roll}
		got := encounter.RollFrequencyClass(roller)
		if got != c.want {
			t.Fatalf("roll %d: got %v, want %v", c.roll, got, c.want)
		}
	}
}

// fixedD100 returns a pinned value from D regardless of requested dice,
// letting a test pin the underlying 1d100 roll precisely.
type fixedD100 struct{ value int }

func (f fixedD100) Intn(n int) int                  { return 0 }
func (f fixedD100) Roll(expr string) (int, error)   { return f.value, nil }
func (f fixedD100) D(count, sides, mod int) int     { return f.value }

func TestParseNumberAppearing_DiceTimesConstant(t *testing.T) {
	roller := dice.New(7)
	n := encounter.ParseNumberAppearing("d4x20", roller)
	if n <= 0 || n%20 != 0 {
		t.Fatalf("expected a positive multiple of 20, got %d", n)
	}
}

func TestParseNumberAppearing_DefaultsToOne(t *testing.T) {
	roller := dice.New(1)
	if n := encounter.ParseNumberAppearing("-", roller); n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if n := encounter.ParseNumberAppearing("", roller); n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
}

func TestDamageForThreat_LargeReturnsRolledDie(t *testing.T) {
	roller := fixedD100{value: 1}
	dmg := encounter.DamageForThreat(models.ThreatLarge, 25, roller)
	if dmg != 1 {
		t.Fatalf("fixed-roll damage should equal the pinned value, got %d", dmg)
	}
}

func TestCrewCasualty_ThresholdAtSixHD(t *testing.T) {
	roller := fixedD100{value: 3}
	if _, occurred := encounter.CrewCasualty(5, true, roller); occurred {
		t.Fatalf("5 total HD should not trigger crew casualties")
	}
	count, occurred := encounter.CrewCasualty(6, true, roller)
	if !occurred || count != 3 {
		t.Fatalf("6 total HD with deck access should cost crew: occurred=%v count=%d", occurred, count)
	}
	if _, occurred := encounter.CrewCasualty(6, false, roller); occurred {
		t.Fatalf("creature that cannot reach the deck should not cost crew")
	}
}

func TestResolveHazard_Seaweed(t *testing.T) {
	roller := fixedD100{value: 30}
	out := encounter.ResolveHazard("seaweed", roller)
	if out.SpeedFactor != 0.5 {
		t.Fatalf("seaweed should halve speed, got %v", out.SpeedFactor)
	}
	if !out.ExtraCheck {
		t.Fatalf("roll of 30 should trigger the extra check (<=40)")
	}
}

func TestCapsizeProbability_Tiers(t *testing.T) {
	if p := encounter.CapsizeProbability(10); p != 25 {
		t.Fatalf("hullMax=10: got %d, want 25", p)
	}
	if p := encounter.CapsizeProbability(50); p != 10 {
		t.Fatalf("hullMax=50: got %d, want 10", p)
	}
	if p := encounter.CapsizeProbability(90); p != 0 {
		t.Fatalf("hullMax=90: got %d, want 0", p)
	}
}
