package models

// VoyageConfig is the recognized voyage configuration input (spec.md §6).
type VoyageConfig struct {
	ShipID          string
	RouteID         string
	Mode            VoyageMode
	Captain         *Officer
	Lieutenant      *Officer
	StartingGold    int
	TradeMode       TradeMode
	CommissionRate  int // [10,40], only meaningful when TradeMode == TradeConsignment
	Latitude        float64
	Longitude       float64
	AutoRepair      bool
	EnableRowing    bool
	AutomateTrading bool
	StartDate       CalendarDate
	CrewQuality     CrewQuality
}

// Breakdown is the expense_total decomposition tracked on the voyage state.
type Breakdown struct {
	Wages   int
	Food    int
	Repairs int
	Fees    int
	Cargo   int
	Taxes   int
}

// Total returns the sum of all breakdown buckets.
func (b Breakdown) Total() int {
	return b.Wages + b.Food + b.Repairs + b.Fees + b.Cargo + b.Taxes
}

// LedgerEntry is one append-only financial ledger row. For every entry
// except a designated opening entry, Balance = previous.Balance + Income -
// Expense (spec.md §3 invariant).
type LedgerEntry struct {
	Date        CalendarDate
	Description string
	Income      int
	Expense     int
	Balance     int
	Opening     bool
}

// DamageEvent records a hull-damage occurrence.
type DamageEvent struct {
	Source        string // "hazard" | "encounter"
	SourceName    string
	HullDamage    int
	HullRemaining int
}

// EncounterEvent records a resolved sea encounter.
type EncounterEvent struct {
	WaterType      WaterType
	Name           string
	Classification EncounterClassification
	TimeOfDay      TimeOfDay
	Number         int
	Distance       int
	Surprise       bool
}

// CrewLossEvent records crew casualties from a hazard or encounter.
type CrewLossEvent struct {
	SourceName string
	Count      int
}

// Event is a tagged, append-only voyage log record. Exactly the field
// matching Kind is populated.
type Event struct {
	Day       int
	Kind      EventKind
	Message   string
	Damage    *DamageEvent
	Encounter *EncounterEvent
	CrewLoss  *CrewLossEvent
}

// TradingRecord summarizes the buy/sell/hold/wait decision and outcome at
// one port visit, attached to a PortActivity.
type TradingRecord struct {
	Action      string // "buy" | "sell" | "hold" | "wait" | "none"
	Reason      string
	Type        CargoCategoryKind
	Loads       int
	PricePerLoad int
	TotalValue  int
	Spoiled     int
}

// PortActivity is the per-port-visit activity log: fees paid, trading
// outcome, and free-text activity lines.
type PortActivity struct {
	PortID        string
	ArrivalDay    int
	DaysInPort    int
	EntranceFee   int
	MoorageFee    int
	PilotFee      int
	Trading       *TradingRecord
	ActivityLines []string
}

// RepairLogEntry records one repair transaction, including temporary
// self-repair failures that expire after a rolled number of days.
type RepairLogEntry struct {
	PortID      string
	Method      RepairMethod
	Cost        int
	Duration    int // days (professional/drydock) or weeks (self, see spec §4.7)
	Restored    int // hull points restored
	TemporaryFailureExpiresDay int // 0 if not a temporary failure
}

// PassengerManifestEntry records one passenger or charter booking.
type PassengerManifestEntry struct {
	PortID      string
	Count       int
	Revenue     int
	Charter     bool
	Destination string
	Accepted    bool
}

// VoyageState is the single long-lived aggregate for a running voyage,
// exclusively owned by its engine instance and persisted whole under a
// voyage id (spec.md §3).
type VoyageState struct {
	ID     string
	Config VoyageConfig
	Ship   Ship

	Treasury              int
	StartingCapital       int
	CrewEarningsFromTrade int
	RevenueTotal          int
	ExpenseTotal          int
	DailyOperationalCost  int
	LegAccumulatedCost    int
	Breakdown             Breakdown

	Cargo Cargo

	// PendingTransportFeeDelivery is the unpaid delivery half of a
	// consignment transport fee, owed to the owner when the cargo sells.
	PendingTransportFeeDelivery int

	TotalDays             int
	TotalDistance         int
	TotalHullDamage       int
	ConsecutiveRowingDays int

	Events            []Event
	PortsVisited      []string
	PortActivities    []PortActivity
	Ledger            []LedgerEntry
	RepairLog         []RepairLogEntry
	PassengerManifest []PassengerManifestEntry

	AtSea      bool
	InPort     bool
	Finished   bool
	LastPortID string
	Phase      VoyagePhase

	CurrentLegIndex      int
	RemainingLegDistance int
	CurrentDate          CalendarDate
	EndDate              *CalendarDate
}

// LastLedgerBalance returns the balance of the most recent ledger entry,
// or 0 if the ledger is empty.
func (s *VoyageState) LastLedgerBalance() int {
	if len(s.Ledger) == 0 {
		return 0
	}
	return s.Ledger[len(s.Ledger)-1].Balance
}

// AppendLedger appends an income/expense entry, computing Balance from the
// prior entry's balance (spec.md §3 invariant). It also mutates Treasury to
// match.
func (s *VoyageState) AppendLedger(date CalendarDate, description string, income, expense int) LedgerEntry {
	balance := s.LastLedgerBalance() + income - expense
	entry := LedgerEntry{Date: date, Description: description, Income: income, Expense: expense, Balance: balance}
	s.Ledger = append(s.Ledger, entry)
	s.Treasury = balance
	s.RevenueTotal += income
	s.ExpenseTotal += expense
	return entry
}

// OpenLedger appends the designated opening entry, which sets Balance
// directly rather than accumulating from a prior entry.
func (s *VoyageState) OpenLedger(date CalendarDate, description string, openingBalance int) LedgerEntry {
	entry := LedgerEntry{Date: date, Description: description, Balance: openingBalance, Opening: true}
	s.Ledger = append(s.Ledger, entry)
	s.Treasury = openingBalance
	return entry
}

// AppendEvent appends a structured event to the append-only event stream.
func (s *VoyageState) AppendEvent(e Event) {
	e.Day = s.TotalDays
	s.Events = append(s.Events, e)
}
