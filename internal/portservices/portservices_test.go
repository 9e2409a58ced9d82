package portservices_test

import (
	"testing"

	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/portservices"
)

type fixedRoller struct{ value int }

func (f fixedRoller) Intn(n int) int                { return 0 }
func (f fixedRoller) Roll(expr string) (int, error) { return f.value, nil }
func (f fixedRoller) D(count, sides, mod int) int   { return f.value + mod }

func TestResolveFees_BerthWhenDamagedAndAvailable(t *testing.T) {
	roller := fixedRoller{value: 1} // berth roll 1 <= 80, entrance 1+10=11
	fees := portservices.ResolveFees(roller, 40, 15.0, 3)
	if !fees.UsedBerth {
		t.Fatalf("expected berth use when damaged and available")
	}
	if fees.Moorage != 40*3 {
		t.Fatalf("moorage = %d, want %d", fees.Moorage, 40*3)
	}
	if fees.Entrance != 11 {
		t.Fatalf("entrance = %d, want 11", fees.Entrance)
	}
	if fees.Pilot != 40 {
		t.Fatalf("pilot = %d, want 40", fees.Pilot)
	}
}

func TestResolveFees_AnchorsWhenUndamaged(t *testing.T) {
	roller := fixedRoller{value: 1}
	fees := portservices.ResolveFees(roller, 40, 0, 2)
	if fees.UsedBerth {
		t.Fatalf("expected anchor for an undamaged, non-tiny ship")
	}
	if fees.Moorage != 5*2 {
		t.Fatalf("moorage = %d, want %d", fees.Moorage, 5*2)
	}
}

func TestQuoteProfessional(t *testing.T) {
	quote := portservices.QuoteProfessional(10)
	if quote.Cost != 1000 || quote.Duration != 10 || quote.Restored != 10 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestQuoteSelfRepair_CapsAtHalfMax(t *testing.T) {
	plan := portservices.QuoteSelfRepair(50, 60) // cap = 30
	if plan.Points != 30 {
		t.Fatalf("points = %d, want 30 (capped)", plan.Points)
	}
	if plan.Cost != 1500 || plan.Weeks != 30 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

func TestAutoRepairDecision(t *testing.T) {
	if portservices.AutoRepairDecision(5, 100, 1000) != models.RepairDeferred {
		t.Fatalf("damage below 10%% should defer")
	}
	if portservices.AutoRepairDecision(20, 2000, 100) != models.RepairDeferred {
		t.Fatalf("insufficient treasury should defer")
	}
	if portservices.AutoRepairDecision(20, 100, 1000) != models.RepairProfessional {
		t.Fatalf("sufficient damage and treasury should repair professionally")
	}
}

func TestComputeShortfalls(t *testing.T) {
	ship := models.Ship{Crew: []models.CrewGroup{
		{Role: models.RoleSailor, Count: 6, Required: 10},
		{Role: models.RoleMarine, Count: 4, Required: 4},
	}}

	shortfalls := portservices.ComputeShortfalls(ship)
	if len(shortfalls) != 1 {
		t.Fatalf("expected exactly one role short of complement, got %d", len(shortfalls))
	}
	if shortfalls[0].Role != models.RoleSailor || shortfalls[0].Shortfall != 4 {
		t.Fatalf("unexpected shortfall: %+v", shortfalls[0])
	}
}

func TestHiringAllowed_SmallShipsAlwaysAllowed(t *testing.T) {
	if !portservices.HiringAllowed(models.PortAnchorage, 10) {
		t.Fatalf("small ships should always allow hiring")
	}
	if portservices.HiringAllowed(models.PortAnchorage, 100) {
		t.Fatalf("large ships at an anchorage should not allow hiring")
	}
	if !portservices.HiringAllowed(models.PortMinor, 100) {
		t.Fatalf("large ships at a minor port should allow hiring")
	}
}

func TestPassengerRevenue(t *testing.T) {
	revenue := portservices.PassengerRevenue(4, 1000)
	if revenue != 4*20*2 {
		t.Fatalf("revenue = %d, want %d", revenue, 4*20*2)
	}
}

func TestRollCharter_OffersWithinFivePercent(t *testing.T) {
	roller := fixedRoller{value: 5}
	charter := portservices.RollCharter(roller)
	if !charter.Offered {
		t.Fatalf("expected a charter offer at roll 5")
	}
	if charter.Fee < 100 {
		t.Fatalf("fee should floor at 100, got %d", charter.Fee)
	}
}

func TestRollCharter_NoneAboveFivePercent(t *testing.T) {
	roller := fixedRoller{value: 6}
	charter := portservices.RollCharter(roller)
	if charter.Offered {
		t.Fatalf("expected no charter offer at roll 6")
	}
}
