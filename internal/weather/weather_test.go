package weather_test

import (
	"testing"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/weather"
)

func TestSailingSpeed_Becalmed(t *testing.T) {
	ship := models.Ship{Movement: 10}
	roller := dice.New(1)
	speed := weather.SailingSpeed(ship, weather.Record{Wind: weather.Wind{SpeedMPH: 3}}, roller)
	if speed != 0 {
		t.Fatalf("speed = %d, want 0 (becalmed)", speed)
	}
}

func TestSailingSpeed_GoodWindMatchesBase(t *testing.T) {
	ship := models.Ship{Movement: 10} // base 80
	roller := dice.New(1)
	speed := weather.SailingSpeed(ship, weather.Record{Wind: weather.Wind{SpeedMPH: 25}}, roller)
	if speed != 80 {
		t.Fatalf("speed = %d, want 80", speed)
	}
}

func TestSailingSpeed_StrongWindAddsBonus(t *testing.T) {
	ship := models.Ship{Movement: 10} // base 80
	roller := dice.New(1)
	speed := weather.SailingSpeed(ship, weather.Record{Wind: weather.Wind{SpeedMPH: 45}}, roller)
	if speed != 96 {
		t.Fatalf("speed = %d, want 96 (80 + 16*1)", speed)
	}
}

func TestSailingSpeed_LightWindReducesBase(t *testing.T) {
	ship := models.Ship{Movement: 10} // base 80
	roller := dice.New(1)
	speed := weather.SailingSpeed(ship, weather.Record{Wind: weather.Wind{SpeedMPH: 8}}, roller)
	if speed != 72 {
		t.Fatalf("speed = %d, want 72 (80 - 8*floor((20-8)/10))", speed)
	}
}

func TestClassifyHazard_CriticalFromWindAloneBeatsFog(t *testing.T) {
	h := weather.ClassifyHazard(weather.Record{Wind: weather.Wind{SpeedMPH: 80}, Sky: "fog"})
	if h.Severity != models.HazardCritical {
		t.Fatalf("severity = %v, want Critical", h.Severity)
	}
	if h.PilotingModifier != 13 {
		t.Fatalf("modifier = %d, want 13 (10 + 3 fog)", h.PilotingModifier)
	}
}

func TestClassifyHazard_NoneWhenCalm(t *testing.T) {
	h := weather.ClassifyHazard(weather.Record{Wind: weather.Wind{SpeedMPH: 10}})
	if h.Severity != models.HazardNone {
		t.Fatalf("severity = %v, want None", h.Severity)
	}
	if h.PilotingModifier != 0 {
		t.Fatalf("modifier = %d, want 0", h.PilotingModifier)
	}
}

func TestHullPenalty_DeadInWaterAtThreshold(t *testing.T) {
	penalty, dead := weather.HullPenalty(75)
	if !dead {
		t.Fatalf("expected dead in water at 75%% damage")
	}
	if penalty != 70 {
		t.Fatalf("penalty = %d, want 70", penalty)
	}
}

func TestRow_FatiguedAfterThreeConsecutiveDays(t *testing.T) {
	speed, fatigued := weather.Row(4)
	if !fatigued {
		t.Fatalf("expected fatigued on day 4")
	}
	if speed != 4 {
		t.Fatalf("speed = %d, want 4 (half of base 8)", speed)
	}

	speed, fatigued = weather.Row(3)
	if fatigued {
		t.Fatalf("did not expect fatigue on day 3")
	}
	if speed != 8 {
		t.Fatalf("speed = %d, want 8", speed)
	}
}
