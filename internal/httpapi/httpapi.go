// Package httpapi exposes the voyage lifecycle over a Fiber REST surface:
// starting a voyage, fetching its state/report, stepping it forward one
// day (manual mode), and listing active voyages. Grounded on the
// teacher's cmd/api/main.go route table and handlers/trading.go handler
// shape.
package httpapi

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"

	"github.com/saltmarch/voyage-engine/internal/cache"
	"github.com/saltmarch/voyage-engine/internal/decisions"
	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/notify"
	"github.com/saltmarch/voyage-engine/internal/voyage"
	"github.com/saltmarch/voyage-engine/internal/voyageerr"
	applogger "github.com/saltmarch/voyage-engine/pkg/logger"
)

// Handler wires the voyage engine and registry to HTTP.
type Handler struct {
	Engine   *voyage.Engine
	Registry *voyage.Registry
	Hub      *notify.Hub
	Throttle *decisions.SimulationThrottle
	Log      *applogger.Logger

	// WeatherCache and Roller, when both set, back each simulate-day call
	// with a per-voyage cached weather adapter so a retried request for
	// the same voyage day doesn't reroll the weather. Either left nil
	// falls back to the engine's own configured Weather/FallbackWeather.
	WeatherCache *cache.WeatherCache
	Roller       dice.Roller
}

// NewHandler builds a Handler from its collaborators. Throttle may be
// nil, in which case simulate-day requests are never rate limited.
func NewHandler(engine *voyage.Engine, registry *voyage.Registry, hub *notify.Hub, throttle *decisions.SimulationThrottle, log *applogger.Logger) *Handler {
	return &Handler{Engine: engine, Registry: registry, Hub: hub, Throttle: throttle, Log: log}
}

// NewApp builds the Fiber app with CORS, request logging, and the
// voyage lifecycle routes mounted under /api/v1/voyages.
func NewApp(h *Handler, corsOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "voyage-engine"})

	app.Use(fiberlog.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	api := app.Group("/api/v1")
	api.Get("/health", h.Health)

	voyages := api.Group("/voyages")
	voyages.Post("", h.StartVoyage)
	voyages.Get("", h.ListVoyages)
	voyages.Get("/:id", h.GetVoyage)
	voyages.Post("/:id/simulate-day", h.SimulateDay)

	return app
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// startVoyageRequest is the recognized JSON body for POST /voyages.
type startVoyageRequest struct {
	ShipID         string             `json:"ship_id"`
	RouteID        string             `json:"route_id"`
	Mode           models.VoyageMode  `json:"mode"`
	StartingGold   int                `json:"starting_gold"`
	TradeMode      models.TradeMode   `json:"trade_mode"`
	CommissionRate int                `json:"commission_rate"`
	CrewQuality    models.CrewQuality `json:"crew_quality"`
	AutoRepair     bool               `json:"auto_repair"`
	EnableRowing   bool               `json:"enable_rowing"`
}

// StartVoyage handles POST /api/v1/voyages.
func (h *Handler) StartVoyage(c *fiber.Ctx) error {
	var req startVoyageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	cfg := models.VoyageConfig{
		ShipID:          req.ShipID,
		RouteID:         req.RouteID,
		Mode:            req.Mode,
		StartingGold:    req.StartingGold,
		TradeMode:       req.TradeMode,
		CommissionRate:  req.CommissionRate,
		CrewQuality:     req.CrewQuality,
		AutoRepair:      req.AutoRepair,
		EnableRowing:    req.EnableRowing,
		AutomateTrading: req.Mode != models.ModeManual,
	}

	if err := h.Engine.ValidateConfig(cfg); err != nil {
		return writeVoyageError(c, err)
	}

	id := uuid.NewString()
	ctx := c.Context()
	state, err := h.Engine.StartVoyage(ctx, id, cfg)
	if err != nil {
		return writeVoyageError(c, err)
	}

	if err := h.Registry.Track(ctx, state); err != nil {
		h.Log.Warn("failed to persist new voyage", "voyage_id", id, "error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetVoyage handles GET /api/v1/voyages/:id.
func (h *Handler) GetVoyage(c *fiber.Ctx) error {
	id := c.Params("id")
	state, err := h.Registry.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if state == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "voyage not found"})
	}
	return c.JSON(state)
}

// ListVoyages handles GET /api/v1/voyages.
func (h *Handler) ListVoyages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"voyage_ids": h.Registry.List()})
}

// simulateDayRequest optionally carries a manual-mode decision, applied
// via the engine's DecisionAdapter before the day is sailed.
type simulateDayRequest struct {
	Trade *models.TradingRecord `json:"trade,omitempty"`
}

// SimulateDay handles POST /api/v1/voyages/:id/simulate-day.
func (h *Handler) SimulateDay(c *fiber.Ctx) error {
	id := c.Params("id")
	ctx := c.Context()

	if h.Throttle != nil && !h.Throttle.Allow() {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "simulate-day rate limit exceeded"})
	}

	state, err := h.Registry.Get(ctx, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if state == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "voyage not found"})
	}

	var req simulateDayRequest
	_ = c.BodyParser(&req) // optional body; ignore absence/malformed-empty cases

	if state.Finished {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "voyage already finished"})
	}

	engine := h.Engine
	if state.Config.Mode == models.ModeManual || h.WeatherCache != nil {
		perRequest := *h.Engine
		if state.Config.Mode == models.ModeManual {
			perRequest.Decisions = decisions.NewRequestPolicy(req.Trade)
		}
		if h.WeatherCache != nil && h.Roller != nil {
			perRequest.Weather = cache.NewCachingWeatherAdapter(h.WeatherCache, h.Engine.Weather, h.Roller, id, func() int { return state.TotalDays })
		}
		engine = &perRequest
	}

	eventsBefore := len(state.Events)
	if err := engine.SailOneDay(ctx, state); err != nil {
		if handleErr := engine.HandleFailure(ctx, state, err.Error()); handleErr != nil {
			return writeVoyageError(c, handleErr)
		}
		h.Registry.Remove(id)
		return c.JSON(state)
	}

	if state.Finished {
		h.Registry.Remove(id)
	}
	if err := h.Registry.Save(ctx, state); err != nil {
		h.Log.Warn("failed to persist voyage step", "voyage_id", id, "error", err)
	}

	if h.Hub != nil {
		notifyLatestEvents(ctx, h.Hub, id, state.Events[eventsBefore:])
	}

	return c.JSON(state)
}

func notifyLatestEvents(ctx context.Context, hub *notify.Hub, voyageID string, events []models.Event) {
	for _, event := range events {
		if err := hub.Notify(ctx, voyageID, event); err != nil {
			// Best-effort: the simulation already advanced; a dropped live
			// notification doesn't invalidate the persisted state.
			return
		}
	}
}

func writeVoyageError(c *fiber.Ctx, err error) error {
	var verr *voyageerr.Error
	status := fiber.StatusInternalServerError
	if errors.As(err, &verr) {
		switch verr.Kind {
		case voyageerr.ConfigInvalid:
			status = fiber.StatusBadRequest
		case voyageerr.ResourceExhausted, voyageerr.MissingCapability:
			status = fiber.StatusUnprocessableEntity
		case voyageerr.VoyageFatal:
			status = fiber.StatusOK
		case voyageerr.Persistence:
			status = fiber.StatusServiceUnavailable
		}
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
