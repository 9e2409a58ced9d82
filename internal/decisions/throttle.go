package decisions

import (
	"context"

	"golang.org/x/time/rate"
)

// SimulationThrottle rate-limits simulate-day requests with one token
// bucket shared by every voyage it guards, so a misbehaving client can't
// spin voyages through unbounded days in a tight loop. Requests are not
// limited separately per voyage id.
type SimulationThrottle struct {
	limiter *rate.Limiter
}

// NewSimulationThrottle builds a throttle allowing stepsPerSecond steady
// state with the given burst capacity.
func NewSimulationThrottle(stepsPerSecond float64, burst int) *SimulationThrottle {
	return &SimulationThrottle{limiter: rate.NewLimiter(rate.Limit(stepsPerSecond), burst)}
}

// Wait blocks until a simulation step may proceed or ctx is canceled.
func (t *SimulationThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Allow reports whether a step may proceed immediately without blocking.
func (t *SimulationThrottle) Allow() bool {
	return t.limiter.Allow()
}
