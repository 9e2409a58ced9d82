package decisions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltmarch/voyage-engine/internal/models"
)

func TestRequestPolicy_ChooseTrade_UsesRequestInstruction(t *testing.T) {
	p := NewRequestPolicy(&models.TradingRecord{Action: "buy", Loads: 3})
	choice, err := p.ChooseTrade(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "buy", choice.Action)
	assert.Equal(t, 3, choice.Loads)
}

func TestRequestPolicy_ChooseTrade_NilRequestDefersToEngine(t *testing.T) {
	p := NewRequestPolicy(nil)
	choice, err := p.ChooseTrade(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, "", choice.Action)
}
