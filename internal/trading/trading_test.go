package trading_test

import (
	"testing"

	"github.com/saltmarch/voyage-engine/internal/trading"
)

func TestDistanceBonus_Monotone(t *testing.T) {
	distances := []int{0, 80, 81, 250, 251, 500, 501, 1000}
	prev := trading.DistanceBonus(distances[0])
	for _, d := range distances[1:] {
		next := trading.DistanceBonus(d)
		if next < prev {
			t.Fatalf("distance bonus decreased from %d to %d at distance %d", prev, next, d)
		}
		prev = next
	}
	if trading.DistanceBonus(1000) != 4 {
		t.Fatalf("expected +4 beyond 500")
	}
	if trading.DistanceBonus(50) != -1 {
		t.Fatalf("expected -1 at or under 80")
	}
}

func TestSaleAdjustmentPercent_ClampsAndMonotone(t *testing.T) {
	if trading.SaleAdjustmentPercent(1) != 30 {
		t.Fatalf("rolls below 3 should clamp to 30%%")
	}
	if trading.SaleAdjustmentPercent(25) != 400 {
		t.Fatalf("rolls above 20 should clamp to 400%%")
	}
	prev := trading.SaleAdjustmentPercent(3)
	for roll := 4; roll <= 20; roll++ {
		next := trading.SaleAdjustmentPercent(roll)
		if next < prev {
			t.Fatalf("SA table not monotone at roll %d", roll)
		}
		prev = next
	}
}

func TestDecideBuy_RefusesAtFinalPort(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyInput{AtFinalPort: true})
	if decision.Accept {
		t.Fatalf("should never buy at the final port")
	}
}

func TestDecideBuy_AcceptsExtraordinaryDistanceWithReserve(t *testing.T) {
	decision := trading.DecideBuy(trading.BuyInput{
		BestSaleDistance: 600,
		PricePerLoad:     100,
		BaseValue:        90,
		ShipCapacity:     50,
		LoadsAvailable:   50,
		Treasury:         10000,
	})
	if !decision.Accept {
		t.Fatalf("expected acceptance at extraordinary distance")
	}
	if decision.MaxLoads > 50 {
		t.Fatalf("max loads should be capped by ship capacity/availability, got %d", decision.MaxLoads)
	}
}

func TestDecideBuy_ShortDistanceRequiresCheapPrice(t *testing.T) {
	expensive := trading.DecideBuy(trading.BuyInput{
		BestSaleDistance: 100,
		PricePerLoad:     100,
		BaseValue:        100,
		ShipCapacity:     10,
		LoadsAvailable:   10,
		Treasury:         1000,
	})
	if expensive.Accept {
		t.Fatalf("short sale distance with a 1.0 price ratio should be refused (needs <=0.85)")
	}

	cheap := trading.DecideBuy(trading.BuyInput{
		BestSaleDistance: 100,
		PricePerLoad:     80,
		BaseValue:        100,
		ShipCapacity:     10,
		LoadsAvailable:   10,
		Treasury:         1000,
	})
	if !cheap.Accept {
		t.Fatalf("short sale distance with a 0.80 price ratio should be accepted")
	}
}

func TestDecideSell_HoldsForExtraordinaryJump(t *testing.T) {
	decision := trading.DecideSell(false, 400, 150)
	if decision.Sell {
		t.Fatalf("expected to hold: 400->550 crosses the +4 threshold")
	}
}

func TestDecideSell_SellsAtFinalPort(t *testing.T) {
	decision := trading.DecideSell(true, 0, 0)
	if !decision.Sell {
		t.Fatalf("must always sell at the final port")
	}
}

func TestDecideWait_Threshold(t *testing.T) {
	if !trading.DecideWait(100, 50) {
		t.Fatalf("100 > 1.5*50=75 should wait")
	}
	if trading.DecideWait(70, 50) {
		t.Fatalf("70 <= 75 should not wait")
	}
}
