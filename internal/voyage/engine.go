package voyage

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/saltmarch/voyage-engine/internal/dice"
	"github.com/saltmarch/voyage-engine/internal/encounter"
	"github.com/saltmarch/voyage-engine/internal/market"
	"github.com/saltmarch/voyage-engine/internal/metrics"
	"github.com/saltmarch/voyage-engine/internal/models"
	"github.com/saltmarch/voyage-engine/internal/portservices"
	"github.com/saltmarch/voyage-engine/internal/proficiency"
	"github.com/saltmarch/voyage-engine/internal/trading"
	"github.com/saltmarch/voyage-engine/internal/voyageerr"
	"github.com/saltmarch/voyage-engine/internal/weather"
	"github.com/saltmarch/voyage-engine/pkg/logger"
)

// EncounterTable is supplied by the caller's reference data; the engine
// itself carries no creature data.
type EncounterTable = encounter.Table

// Engine advances a single voyage's state machine one day, port visit,
// or full run at a time. It owns no voyage state itself: every call
// takes and returns a *models.VoyageState so the caller controls
// persistence timing.
type Engine struct {
	Roller    dice.Roller
	Weather   WeatherAdapter
	Calendar  CalendarAdapter
	Decisions DecisionAdapter
	Notifier  Notifier
	Prices    PriceRecorder
	Reference ReferenceData
	Encounters EncounterTable
	Log       *logger.Logger
}

// NewEngine builds an Engine from its collaborators. Weather, Calendar,
// Decisions, and Notifier may be nil; the engine degrades per spec.md §7
// (missing-capability fallback, automate paths).
func NewEngine(roller dice.Roller, reference ReferenceData, encounters EncounterTable) *Engine {
	return &Engine{
		Roller:    roller,
		Reference: reference,
		Encounters: encounters,
		Log:       logger.New(),
	}
}

// ValidateConfig checks the recognized voyage configuration fields,
// returning a ConfigInvalid error describing the first violation found.
func (e *Engine) ValidateConfig(cfg models.VoyageConfig) error {
	if _, ok := e.Reference.Ship(cfg.ShipID); !ok {
		return voyageerr.New(voyageerr.ConfigInvalid, fmt.Sprintf("unknown ship id %q", cfg.ShipID))
	}
	if _, ok := e.Reference.Route(cfg.RouteID); !ok {
		return voyageerr.New(voyageerr.ConfigInvalid, fmt.Sprintf("unknown route id %q", cfg.RouteID))
	}
	if cfg.StartingGold < 0 {
		return voyageerr.New(voyageerr.ConfigInvalid, "starting gold must not be negative")
	}
	if cfg.TradeMode == models.TradeConsignment && (cfg.CommissionRate < 10 || cfg.CommissionRate > 40) {
		return voyageerr.New(voyageerr.ConfigInvalid, "commission rate must fall in [10,40] for consignment voyages")
	}
	if cfg.Captain == nil || cfg.Captain.Name == "" {
		return voyageerr.New(voyageerr.ConfigInvalid, "captain must be named")
	}
	if !cfg.Captain.Scores.Valid() {
		return voyageerr.New(voyageerr.ConfigInvalid, "captain ability scores must fall in [3,18]")
	}
	if cfg.Lieutenant != nil && !cfg.Lieutenant.Scores.Valid() {
		return voyageerr.New(voyageerr.ConfigInvalid, "lieutenant ability scores must fall in [3,18]")
	}
	return nil
}

// StartVoyage validates configuration, resolves the ship and route
// templates, and runs origin processing: start date, fees, repair/hiring
// offers, and the initial cargo decision.
func (e *Engine) StartVoyage(ctx context.Context, id string, cfg models.VoyageConfig) (*models.VoyageState, error) {
	if err := e.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	template, _ := e.Reference.Ship(cfg.ShipID)
	route, _ := e.Reference.Route(cfg.RouteID)
	ship := template.Clone()

	state := &models.VoyageState{
		ID:              id,
		Config:          cfg,
		Ship:            ship,
		StartingCapital: cfg.StartingGold,
		CurrentDate:     cfg.StartDate,
		Phase:           models.PhaseOrigin,
		InPort:          true,
		CurrentLegIndex: 0,
	}
	state.OpenLedger(cfg.StartDate, "Voyage start", cfg.StartingGold)

	legs := route.Legs()
	if len(legs) > 0 {
		if originPort, ok := e.Reference.Port(legs[0][0]); ok {
			state.RemainingLegDistance = originPort.Connections[legs[0][1]]
		}
	}

	originPort := ""
	if len(route.PortIDs) > 0 {
		originPort = route.PortIDs[0]
	}
	state.LastPortID = originPort
	state.PortsVisited = append(state.PortsVisited, originPort)

	if err := e.processPortArrival(ctx, state, originPort, 3); err != nil {
		return nil, err
	}

	if cfg.TradeMode == models.TradeConsignment {
		e.loadConsignmentCargo(state)
	}

	state.Phase = models.PhaseSailing
	state.InPort = false
	metrics.VoyagesStartedTotal.WithLabelValues(string(cfg.TradeMode)).Inc()
	return state, nil
}

// dailyOperationalCost computes wages/30 + souls/5, per spec.md §4.8 step 1.
func dailyOperationalCost(ship models.Ship, captain, lieutenant *models.Officer) int {
	totalSouls := ship.TotalCrew()
	if captain != nil {
		totalSouls++
	}
	if lieutenant != nil {
		totalSouls++
	}
	wage := 0
	for _, g := range ship.Crew {
		wage += g.Count * g.Role.MonthlyWage()
	}
	if lieutenant != nil {
		wage += portservices.LieutenantWage(lieutenant.Level)
	}
	cost := ceilDiv(wage, 30) + ceilDiv(totalSouls, 5)
	return cost
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// SailOneDay runs one day of the per-day sailing loop inside a leg:
// costs, weather, propulsion, hazard resolution, encounters, and
// calendar advance (spec.md §4.8).
func (e *Engine) SailOneDay(ctx context.Context, state *models.VoyageState) error {
	timer := prometheus.NewTimer(metrics.SimulationStepDuration)
	defer timer.ObserveDuration()

	cost := dailyOperationalCost(state.Ship, state.Config.Captain, state.Config.Lieutenant)
	state.LegAccumulatedCost += cost
	foodPortion := cost * 3 / 10
	state.Breakdown.Food += foodPortion
	state.Breakdown.Wages += cost - foodPortion

	record, usedFallback := e.dayWeather(ctx)
	if usedFallback {
		state.AppendEvent(models.Event{Kind: models.EventWarning, Message: "weather adapter unavailable, using fallback"})
	}

	speed := weather.SailingSpeed(state.Ship, record, e.Roller)
	if speed == 0 && state.Config.EnableRowing && state.Ship.Oarsmen > 0 {
		rowSpeed, fatigued := weather.Row(state.ConsecutiveRowingDays)
		speed = rowSpeed
		state.ConsecutiveRowingDays++
		if fatigued {
			state.AppendEvent(models.Event{Kind: models.EventInfo, Message: "rowing crew fatigued"})
		}
	} else {
		state.ConsecutiveRowingDays = 0
	}

	hazard := weather.ClassifyHazard(record)
	if hazard.Severity != models.HazardNone {
		result, ok := proficiency.Check(e.Roller, models.SkillPiloting, state.Config.Captain, state.Config.Lieutenant, state.Config.CrewQuality, hazard.PilotingModifier)
		if ok && !result.Success {
			damage := weather.HazardDamage(hazard.Severity, result.MissMargin, e.Roller)
			e.applyHullDamage(state, damage, "hazard", string(hazard.Severity))
			metrics.HazardDamageEventsTotal.WithLabelValues(string(hazard.Severity)).Inc()
			if state.Ship.Hull.Sunk() {
				return e.HandleFailure(ctx, state, "hull destroyed by a sailing hazard")
			}
		}
	}

	legWater := e.waterTypeForLeg(state)
	for _, tod := range encounter.Schedule(legWater) {
		if !encounter.Occurs(e.Roller) {
			continue
		}
		freq := encounter.RollFrequencyClass(e.Roller)
		creature, ok := encounter.SelectEntry(e.Encounters, legWater, freq, e.Roller)
		if !ok {
			continue
		}
		resolution := encounter.Resolve(creature, tod, e.Roller)
		state.AppendEvent(models.Event{
			Kind: models.EventEncounter,
			Encounter: &models.EncounterEvent{
				WaterType:      legWater,
				Name:           creature.Name,
				Classification: creature.Classification,
				TimeOfDay:      tod,
				Number:         resolution.NumberAppearing,
				Distance:       resolution.Distance,
				Surprise:       resolution.Surprise,
			},
		})
		if creature.Threat != models.ThreatNone {
			damage := encounter.DamageForThreat(creature.Threat, resolution.TotalHD, e.Roller)
			if damage > 0 {
				e.applyHullDamage(state, damage, "encounter", creature.Name)
				metrics.EncounterDamageEventsTotal.WithLabelValues(string(creature.Threat)).Inc()
			}
			if count, occurred := encounter.CrewCasualty(resolution.TotalHD, creature.CanReachDeck, e.Roller); occurred {
				e.applyCrewLoss(state, count, creature.Name)
			}
			if state.Ship.Hull.Sunk() {
				return e.HandleFailure(ctx, state, "hull destroyed by an encounter")
			}
		}
	}

	if e.Calendar != nil {
		next, err := e.Calendar.AdvanceDay(ctx)
		if err != nil {
			state.AppendEvent(models.Event{Kind: models.EventWarning, Message: "calendar adapter failed to advance, using local arithmetic"})
			state.CurrentDate = state.CurrentDate.AddDay()
		} else {
			state.CurrentDate = next
		}
	} else {
		state.CurrentDate = state.CurrentDate.AddDay()
	}
	state.TotalDays++
	state.TotalDistance += speed
	state.RemainingLegDistance -= speed
	if state.RemainingLegDistance < 0 {
		state.RemainingLegDistance = 0
	}
	return nil
}

func (e *Engine) waterTypeForLeg(state *models.VoyageState) models.WaterType {
	route, ok := e.Reference.Route(state.Config.RouteID)
	if !ok {
		return models.WaterCoastal
	}
	return route.WaterTypeForLeg(state.CurrentLegIndex)
}

func (e *Engine) dayWeather(ctx context.Context) (weather.Record, bool) {
	if e.Weather != nil {
		record, err := e.Weather.GenerateDayWeather(ctx)
		if err == nil {
			return record, false
		}
	}
	return FallbackWeather(e.Roller), true
}

func (e *Engine) applyHullDamage(state *models.VoyageState, damage int, source, name string) {
	state.Ship.Hull.Value -= damage
	if state.Ship.Hull.Value < 0 {
		state.Ship.Hull.Value = 0
	}
	state.TotalHullDamage += damage
	state.AppendEvent(models.Event{
		Kind: models.EventDamage,
		Damage: &models.DamageEvent{
			Source:        source,
			SourceName:    name,
			HullDamage:    damage,
			HullRemaining: state.Ship.Hull.Value,
		},
	})
}

func (e *Engine) applyCrewLoss(state *models.VoyageState, count int, sourceName string) {
	remaining := count
	removed := state.Ship.RemoveCrew(models.RoleSailor, remaining)
	remaining -= removed
	if remaining > 0 {
		state.Ship.RemoveCrew(models.RoleMarine, remaining)
	}
	state.AppendEvent(models.Event{
		Kind:     models.EventCrewLoss,
		CrewLoss: &models.CrewLossEvent{SourceName: sourceName, Count: count},
	})
}

// HandleFailure transitions the voyage to Failed and emits the terminal
// failure summary.
func (e *Engine) HandleFailure(ctx context.Context, state *models.VoyageState, reason string) error {
	state.Phase = models.PhaseFailed
	state.Finished = true
	end := state.CurrentDate
	state.EndDate = &end
	metrics.VoyagesFinishedTotal.WithLabelValues(string(models.PhaseFailed)).Inc()
	return voyageerr.New(voyageerr.VoyageFatal, reason)
}

// processPortArrival runs the port-visit flow: flush leg cost, fees,
// repairs, hiring, per-day accumulation, passengers/charter, and trade.
func (e *Engine) processPortArrival(ctx context.Context, state *models.VoyageState, portID string, daysInPort int) error {
	if state.LegAccumulatedCost > 0 {
		state.AppendLedger(state.CurrentDate, "Leg operating costs", 0, state.LegAccumulatedCost)
		state.LegAccumulatedCost = 0
	}

	port, _ := e.Reference.Port(portID)
	fees := portservices.ResolveFees(e.Roller, state.Ship.Hull.Max, state.Ship.Hull.DamagePercent(), daysInPort)
	totalFees := fees.Entrance + fees.Pilot + fees.Moorage
	state.AppendLedger(state.CurrentDate, fmt.Sprintf("Port fees at %s", portID), 0, totalFees)
	state.Breakdown.Fees += totalFees

	activity := models.PortActivity{
		PortID:      portID,
		ArrivalDay:  state.TotalDays,
		DaysInPort:  daysInPort,
		EntranceFee: fees.Entrance,
		MoorageFee:  fees.Moorage,
		PilotFee:    fees.Pilot,
	}

	damagePct := int(state.Ship.Hull.DamagePercent())
	if damagePct > 0 {
		damage := state.Ship.Hull.Max - state.Ship.Hull.Value
		quote := portservices.QuoteProfessional(damage)
		decision := portservices.AutoRepairDecision(state.Ship.Hull.DamagePercent(), quote.Cost, state.Treasury)
		if state.Config.Mode == models.ModeManual && e.Decisions != nil {
			choice, err := e.Decisions.ChooseRepair(ctx, state.ID, []string{string(models.RepairProfessional), string(models.RepairDeferred)})
			if err == nil {
				decision = choice.Method
			}
		}
		if decision == models.RepairProfessional {
			if state.Treasury >= quote.Cost {
				state.AppendLedger(state.CurrentDate, "Professional repair", 0, quote.Cost)
				state.Breakdown.Repairs += quote.Cost
				state.Ship.Hull.Value = state.Ship.Hull.Max
				state.RepairLog = append(state.RepairLog, models.RepairLogEntry{PortID: portID, Method: models.RepairProfessional, Cost: quote.Cost, Duration: quote.Duration, Restored: quote.Restored})
			}
		} else {
			state.RepairLog = append(state.RepairLog, models.RepairLogEntry{PortID: portID, Method: models.RepairDeferred})
		}
	}

	shortfalls := portservices.ComputeShortfalls(state.Ship)
	if len(shortfalls) > 0 && portservices.HiringAllowed(port.Size, state.Ship.Hull.Max) {
		totalRequired := 0
		for _, g := range state.Ship.Crew {
			totalRequired += g.Required
		}
		hire := portservices.ShouldAutoHire(shortfalls, totalRequired)
		if state.Config.Mode == models.ModeManual && e.Decisions != nil {
			shortfallTotal := 0
			for _, s := range shortfalls {
				shortfallTotal += s.Shortfall
			}
			choice, err := e.Decisions.ChooseHiring(ctx, state.ID, shortfallTotal)
			if err == nil {
				hire = choice.Accept
			}
		}
		if hire {
			for _, s := range shortfalls {
				for i := range state.Ship.Crew {
					if state.Ship.Crew[i].Role == s.Role {
						state.Ship.Crew[i].Count += s.Shortfall
					}
				}
			}
			activity.ActivityLines = append(activity.ActivityLines, "auto-hired crew to fill shortfall")
		}
	}

	portSizeMod := port.Size.SizeModifier()

	captainCHA := 0
	if state.Config.Captain != nil {
		captainCHA = state.Config.Captain.Scores.CHA
	}
	merchantsTotal := market.MerchantsAvailable(e.Roller, portSizeMod, market.ReactionAdjustment(captainCHA))
	merchantsOffered := market.StaggerOffered(merchantsTotal, 1)
	activity.ActivityLines = append(activity.ActivityLines, fmt.Sprintf("%d merchant(s) available, %d offered this visit", merchantsTotal, merchantsOffered))

	passengers := portservices.PassengerCount(e.Roller, portSizeMod)
	if passengers > 0 {
		remaining := state.RemainingLegDistance
		revenue := portservices.PassengerRevenue(passengers, remaining)
		state.AppendLedger(state.CurrentDate, "Passenger fares", revenue, 0)
		state.PassengerManifest = append(state.PassengerManifest, models.PassengerManifestEntry{PortID: portID, Count: passengers, Revenue: revenue, Accepted: true})
	}
	charter := portservices.RollCharter(e.Roller)
	if charter.Offered {
		state.AppendLedger(state.CurrentDate, "Charter fee", charter.Fee, 0)
		state.PassengerManifest = append(state.PassengerManifest, models.PassengerManifestEntry{PortID: portID, Revenue: charter.Fee, Charter: true, Accepted: true})
	}

	if merchantsOffered > 0 {
		if !state.Cargo.Empty() {
			activity.Trading = e.resolveSale(ctx, state, portID, portSizeMod)
		} else if portID != lastPortID(e.Reference, state.Config.RouteID) && state.Config.TradeMode == models.TradeSpeculation {
			activity.Trading = e.attemptStrategicPurchase(ctx, state, state.CurrentLegIndex, portSizeMod)
		}
	}

	state.PortActivities = append(state.PortActivities, activity)
	return nil
}

func lastPortID(ref ReferenceData, routeID string) string {
	route, ok := ref.Route(routeID)
	if !ok || len(route.PortIDs) == 0 {
		return ""
	}
	return route.PortIDs[len(route.PortIDs)-1]
}

// loadConsignmentCargo fills the hold at origin and pays the upfront
// transport fee half.
func (e *Engine) loadConsignmentCargo(state *models.VoyageState) {
	categories := e.Reference.CargoCategories()
	if len(categories) == 0 {
		return
	}
	category := categories[0]
	loads := state.Ship.CargoCapacity
	state.Cargo = models.Cargo{Type: category.Kind, Loads: loads, PurchasePricePerLoad: category.BaseValue, PurchaseLegIndex: -1}
	total := market.TotalTransportFee(500, loads)
	upfront, delivery := market.TransportFeeHalves(total)
	state.AppendLedger(state.CurrentDate, "Consignment transport fee (upfront)", upfront, 0)
	state.PendingTransportFeeDelivery = delivery
}

// manualTradeOverride asks a manual-mode decision adapter for a trade
// choice, returning ok=false when no adapter is present or it errors, in
// which case the caller falls back to its automated rule.
func (e *Engine) manualTradeOverride(ctx context.Context, state *models.VoyageState) (TradeChoice, bool) {
	if state.Config.Mode != models.ModeManual || e.Decisions == nil {
		return TradeChoice{}, false
	}
	choice, err := e.Decisions.ChooseTrade(ctx, state.ID)
	if err != nil || choice.Action == "" {
		return TradeChoice{}, false
	}
	return choice, true
}

// attemptStrategicPurchase consults the trading decision rules and, if
// accepted, resolves a purchase against the market subsystem. portSizeMod
// is the visited port's fixed merchant/demand modifier.
func (e *Engine) attemptStrategicPurchase(ctx context.Context, state *models.VoyageState, legIndex, portSizeMod int) *models.TradingRecord {
	categories := e.Reference.CargoCategories()
	if len(categories) == 0 {
		return nil
	}

	appraisalResult, hasAppraisal := proficiency.Check(e.Roller, models.SkillAppraisal, state.Config.Captain, state.Config.Lieutenant, state.Config.CrewQuality, 0)
	appraisalAdj := 0
	if hasAppraisal {
		appraisalAdj = market.AppraisalAdjustment(appraisalResult.Success, appraisalResult.MissMargin)
	}
	rawRoll := market.OfferedCargoRoll(e.Roller, portSizeMod, appraisalAdj)
	category := models.CategoryForRoll(rawRoll, categories)
	var base int
	for _, c := range categories {
		if c.Kind == category {
			base = c.BaseValue
		}
	}
	bargainResult, hasBargaining := proficiency.Check(e.Roller, models.SkillBargaining, state.Config.Captain, state.Config.Lieutenant, state.Config.CrewQuality, 0)
	bargainPct := market.BargainPercent(hasBargaining, bargainResult.Success, bargainResult.Roll, bargainResult.Needed)
	price := market.PurchasePrice(base, bargainPct)

	decision := trading.DecideBuy(trading.BuyInput{
		// The caller only attempts a purchase at a non-final port, so
		// AtFinalPort is always false by the time this rule is reached.
		AtFinalPort:      false,
		BestSaleDistance: state.RemainingLegDistance,
		PricePerLoad:     price,
		BaseValue:        base,
		ShipCapacity:     state.Ship.CargoCapacity,
		LoadsAvailable:   market.QuantityAvailable(e.Roller, rawRoll),
		Treasury:         state.Treasury,
	})
	maxLoads := decision.MaxLoads
	accept := decision.Accept
	reason := decision.Reason
	if choice, ok := e.manualTradeOverride(ctx, state); ok {
		accept = choice.Action == "buy"
		reason = "Manual override"
		if accept && choice.Loads > 0 {
			maxLoads = choice.Loads
		}
	}
	if !accept || maxLoads <= 0 {
		return &models.TradingRecord{Action: "hold", Reason: reason, Type: category}
	}
	total := price * maxLoads
	if total > state.Treasury {
		return &models.TradingRecord{Action: "hold", Reason: "insufficient treasury for the offered price", Type: category}
	}
	state.AppendLedger(state.CurrentDate, "Cargo purchase", 0, total)
	state.Breakdown.Cargo += total
	state.Cargo = models.Cargo{Type: category, Loads: maxLoads, PurchasePricePerLoad: price, PurchaseLegIndex: legIndex}
	return &models.TradingRecord{Action: "buy", Reason: reason, Type: category, Loads: maxLoads, PricePerLoad: price, TotalValue: total}
}

// resolveSale consults the trading decision rules and, if selling, resolves
// the sale: demand/distance/skill pricing (captain self-trading, or a port
// agent substituting when the captain holds none of the three trade-related
// skills), customs tax with its smuggling branch, perishability, and the
// speculation/consignment profit split. portSizeMod is the visited port's
// fixed merchant/demand modifier.
func (e *Engine) resolveSale(ctx context.Context, state *models.VoyageState, portID string, portSizeMod int) *models.TradingRecord {
	decision := trading.DecideSell(portID == lastPortID(e.Reference, state.Config.RouteID), state.TotalDistance, state.RemainingLegDistance)
	sell := decision.Sell
	reason := decision.Reason
	if choice, ok := e.manualTradeOverride(ctx, state); ok {
		sell = choice.Action == "sell"
		reason = "Manual override"
	}
	if !sell {
		return &models.TradingRecord{Action: "hold", Reason: reason, Type: state.Cargo.Type, Loads: state.Cargo.Loads}
	}

	categories := e.Reference.CargoCategories()
	var base int
	for _, c := range categories {
		if c.Kind == state.Cargo.Type {
			base = c.BaseValue
		}
	}

	captain := state.Config.Captain
	lieutenant := state.Config.Lieutenant
	crewQuality := state.Config.CrewQuality

	bargainResult, hasBargaining := proficiency.Check(e.Roller, models.SkillBargaining, captain, lieutenant, crewQuality, 0)
	appraisalResult, hasAppraisal := proficiency.Check(e.Roller, models.SkillAppraisal, captain, lieutenant, crewQuality, 0)
	tradeResult, hasTrade := proficiency.Check(e.Roller, models.SkillTrade, captain, lieutenant, crewQuality, 0)
	noSkill := market.NoSkillPenalty(hasBargaining, hasAppraisal, hasTrade)

	// A port agent substitutes for the captain whenever none of the three
	// trade-related skills are known; agents cannot smuggle.
	usingAgent := !hasBargaining && !hasAppraisal && !hasTrade

	bargainMod := market.SimpleModifier(hasBargaining, bargainResult.Success, bargainResult.MissMargin)
	appraisalMod := market.SimpleModifier(hasAppraisal, appraisalResult.Success, appraisalResult.MissMargin)
	bargainMargin := 0
	if hasBargaining && bargainResult.Success {
		bargainMargin = bargainResult.Needed - bargainResult.Roll
	}

	var agentFeePercent int
	if usingAgent {
		agentFeePercent = market.AgentFeePercent(e.Roller)
		agentTarget := market.AgentSkill(e.Roller)
		agentRoll := e.Roller.D(1, 20, 0)
		agentSuccess := agentRoll <= agentTarget
		agentMissMargin := agentRoll - agentTarget
		if agentMissMargin < 0 {
			agentMissMargin = 0
		}
		bargainMod = market.SimpleModifier(true, agentSuccess, agentMissMargin)
		appraisalMod = bargainMod
		bargainMargin = 0
		if agentSuccess {
			bargainMargin = agentTarget - agentRoll
		}
	}

	demandMod := market.DemandMod(e.Roller, tradeResult.Success, hasTrade, tradeResult.MissMargin%2 == 1, portSizeMod, usingAgent)
	distCat, distMod := market.DistanceMod(e.Roller, state.TotalDistance)
	precious := market.PreciousBonus(state.Cargo.Type == models.CargoPrecious, e.Roller)
	sa := market.SaleAdjustmentRoll(e.Roller, demandMod, distMod, bargainMod, appraisalMod, precious, noSkill)
	pct := trading.SaleAdjustmentPercent(sa)

	steps := market.PerishabilitySteps(distCat, state.TotalDistance)
	remainingLoads := market.ApplyPerishability(steps, state.Cargo.Loads, e.Roller)
	spoiled := state.Cargo.Loads - remainingLoads
	if remainingLoads <= 0 {
		state.AppendEvent(models.Event{Kind: models.EventInfo, Message: "cargo spoiled entirely before sale"})
		record := &models.TradingRecord{Action: "sell", Reason: "cargo spoiled entirely before sale", Type: state.Cargo.Type, Spoiled: spoiled}
		state.Cargo = models.Cargo{}
		return record
	}

	// Customs tax is levied on the appraised base cargo value, not the
	// skill-adjusted sale proceeds.
	appraisedValue := base * remainingLoads
	pricePerLoad := int(float64(base*pct/100) * market.FinalMultiplier(bargainMargin))
	totalSale := pricePerLoad * remainingLoads

	basePercent, baseTax := market.CustomsTax(e.Roller, appraisedValue)
	tax := baseTax
	if !usingAgent {
		smugglingTarget, hasSmuggling := proficiency.Target(models.SkillSmuggling, captain)
		estimatedTax := appraisedValue * 11 / 100 // mean of a 2d10 customs roll
		if hasSmuggling && market.AttemptsSmuggling(smugglingTarget, estimatedTax) {
			smugglingResult, _ := proficiency.Check(e.Roller, models.SkillSmuggling, captain, lieutenant, crewQuality, 0)
			tax, _ = market.SmugglingOutcome(smugglingResult.Success, baseTax, basePercent)
		}
	}
	totalSale -= tax
	state.Breakdown.Taxes += tax

	record := &models.TradingRecord{Action: "sell", Reason: reason, Type: state.Cargo.Type, Loads: remainingLoads, PricePerLoad: pricePerLoad, TotalValue: totalSale, Spoiled: spoiled}

	if state.Config.TradeMode == models.TradeConsignment {
		commission, consignor := market.ConsignmentSplit(totalSale, state.Config.CommissionRate)
		ownerRevenue := consignor + state.PendingTransportFeeDelivery
		state.AppendLedger(state.CurrentDate, "Consignment sale (consignor share + delivery transport fee)", ownerRevenue, 0)
		state.PendingTransportFeeDelivery = 0
		state.CrewEarningsFromTrade += commission
	} else {
		agentFee := totalSale * agentFeePercent / 100
		ownerShare, crewShare := market.SpeculationSplit(totalSale, state.Cargo.PurchasePricePerLoad*state.Cargo.Loads, agentFee)
		state.AppendLedger(state.CurrentDate, "Cargo sale", ownerShare, 0)
		state.CrewEarningsFromTrade += crewShare
	}

	if e.Prices != nil {
		if err := e.Prices.RecordSale(ctx, state.ID, portID, state.Cargo.Type, remainingLoads, pricePerLoad); err != nil {
			e.logWarn("failed to record cargo sale history", "voyage_id", state.ID, "port_id", portID, "error", err)
		}
	}

	state.Cargo = models.Cargo{}
	return record
}

func (e *Engine) logWarn(msg string, keysAndValues ...interface{}) {
	if e.Log != nil {
		e.Log.Warn(msg, keysAndValues...)
	}
}

// FinalizeVoyage records the end date, transitions to Final, and emits
// the terminal voyage report.
func (e *Engine) FinalizeVoyage(ctx context.Context, state *models.VoyageState) models.VoyageReport {
	state.Phase = models.PhaseFinal
	state.Finished = true
	end := state.CurrentDate
	state.EndDate = &end
	metrics.VoyagesFinishedTotal.WithLabelValues(string(models.PhaseFinal)).Inc()
	return models.BuildReport(state, false, "")
}
