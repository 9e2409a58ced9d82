// Package voyage orchestrates a single voyage's state machine: origin
// processing, per-day sailing, port visits, and finalization, wiring
// together the dice, proficiency, weather, encounter, trading, market,
// and portservices subsystems (spec.md §4.8).
package voyage

import (
	"context"

	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/weather"
)

// WeatherAdapter supplies a day's weather record. Absent in tests or
// minimal configurations; the engine falls back to FallbackWeather.
type WeatherAdapter interface {
	GenerateDayWeather(ctx context.Context) (weather.Record, error)
}

// CalendarAdapter tracks and advances the voyage's current date.
type CalendarAdapter interface {
	CurrentDate(ctx context.Context) (models.CalendarDate, error)
	AdvanceDay(ctx context.Context) (models.CalendarDate, error)
}

// StateStore persists voyage state keyed by voyage id.
type StateStore interface {
	Load(ctx context.Context, id string) (*models.VoyageState, error)
	Save(ctx context.Context, id string, state *models.VoyageState) error
}

// RepairChoice is the decision adapter's reply for a repair branch.
type RepairChoice struct {
	Method models.RepairMethod
}

// HiringChoice is the decision adapter's reply for a hiring shortfall.
type HiringChoice struct {
	Accept bool
}

// TradeChoice is the decision adapter's reply for a buy/sell/wait prompt.
type TradeChoice struct {
	Action string // "buy" | "sell" | "hold" | "wait"
	Loads  int
}

// DecisionAdapter presents choices in manual/interactive mode. The
// engine always has an automate fallback so these calls are optional.
type DecisionAdapter interface {
	ChooseRepair(ctx context.Context, voyageID string, quotes []string) (RepairChoice, error)
	ChooseHiring(ctx context.Context, voyageID string, shortfallTotal int) (HiringChoice, error)
	ChooseTrade(ctx context.Context, voyageID string) (TradeChoice, error)
}

// Notifier publishes structured events as they're produced, independent
// of whether they're also appended to the voyage's own event log.
type Notifier interface {
	Notify(ctx context.Context, voyageID string, event models.Event) error
}

// Journal emits the terminal presentation artifacts: a completed voyage
// report or a failure summary.
type Journal interface {
	EmitReport(ctx context.Context, report models.VoyageReport) error
	EmitFailure(ctx context.Context, report models.VoyageReport) error
}

// PriceRecorder logs a completed cargo sale to the historical price
// record, feeding the market's price-snapshot aggregation. Optional: a
// nil PriceRecorder simply means no history is kept.
type PriceRecorder interface {
	RecordSale(ctx context.Context, voyageID, portID string, kind models.CargoCategoryKind, loads, pricePerLoad int) error
}

// ReferenceData is the read-only static registry: ship templates, ports,
// routes, and cargo categories, loaded once at startup.
type ReferenceData interface {
	Ship(id string) (models.Ship, bool)
	Port(id string) (models.Port, bool)
	Route(id string) (models.Route, bool)
	CargoCategories() []models.CargoCategory
}

// FallbackWeather computes the degraded weather record used when no
// WeatherAdapter is configured: wind = 2d10+5, sky "partly_cloudy".
func FallbackWeather(roller interface{ D(count, sides, mod int) int }) weather.Record {
	return weather.Record{
		Wind: weather.Wind{SpeedMPH: roller.D(2, 10, 5), Direction: "variable"},
		Sky:  "partly_cloudy",
	}
}
