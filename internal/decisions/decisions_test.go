package decisions_test

import (
	"context"
	"testing"

	"github.com/saltmarch/voyage-engine/internal/decisions"
	"github.com/saltmarch/voyage-engine/internal/models"
)

func TestAutomatePolicy_ChooseRepair_PicksFirstQuote(t *testing.T) {
	p := decisions.NewAutomatePolicy()
	choice, err := p.ChooseRepair(context.Background(), "v1", []string{"professional", "deferred"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if choice.Method != models.RepairProfessional {
		t.Fatalf("method = %v, want professional", choice.Method)
	}
}

func TestAutomatePolicy_ChooseRepair_NoQuotesDefers(t *testing.T) {
	p := decisions.NewAutomatePolicy()
	choice, err := p.ChooseRepair(context.Background(), "v1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if choice.Method != models.RepairDeferred {
		t.Fatalf("method = %v, want deferred", choice.Method)
	}
}

func TestAutomatePolicy_ChooseHiring_AcceptsPositiveShortfall(t *testing.T) {
	p := decisions.NewAutomatePolicy()
	choice, _ := p.ChooseHiring(context.Background(), "v1", 3)
	if !choice.Accept {
		t.Fatalf("expected acceptance for a positive shortfall")
	}
	choice, _ = p.ChooseHiring(context.Background(), "v1", 0)
	if choice.Accept {
		t.Fatalf("expected no hiring action for zero shortfall")
	}
}

func TestSimulationThrottle_AllowsWithinBurst(t *testing.T) {
	th := decisions.NewSimulationThrottle(1, 2)
	if !th.Allow() || !th.Allow() {
		t.Fatalf("expected the first two steps within burst capacity to be allowed")
	}
}
