package models

// VoyageReport is the structured output record of a completed (or failed)
// voyage. The HTML journal is a pure presentation function over this
// record and lives outside the core (spec.md §6).
type VoyageReport struct {
	Ship          Ship
	RouteID       string
	Captain       *Officer
	Lieutenant    *Officer
	StartDate     CalendarDate
	EndDate       CalendarDate
	TotalDays     int
	TotalDistance int
	FinalHull     Hull

	StartingCapital       int
	Treasury              int
	CrewEarningsFromTrade int
	RevenueTotal          int
	ExpenseTotal          int
	Breakdown             Breakdown

	PortsVisited      []string
	PortActivities    []PortActivity
	RepairLog         []RepairLogEntry
	PassengerManifest []PassengerManifestEntry
	Ledger            []LedgerEntry
	Events            []Event

	Failed        bool
	FailureReason string
}

// BuildReport assembles a VoyageReport from a terminal VoyageState.
func BuildReport(s *VoyageState, failed bool, failureReason string) VoyageReport {
	end := s.CurrentDate
	if s.EndDate != nil {
		end = *s.EndDate
	}
	return VoyageReport{
		Ship:                  s.Ship,
		RouteID:               s.Config.RouteID,
		Captain:               s.Config.Captain,
		Lieutenant:            s.Config.Lieutenant,
		StartDate:             s.Config.StartDate,
		EndDate:               end,
		TotalDays:             s.TotalDays,
		TotalDistance:         s.TotalDistance,
		FinalHull:             s.Ship.Hull,
		StartingCapital:       s.StartingCapital,
		Treasury:              s.Treasury,
		CrewEarningsFromTrade: s.CrewEarningsFromTrade,
		RevenueTotal:          s.RevenueTotal,
		ExpenseTotal:          s.ExpenseTotal,
		Breakdown:             s.Breakdown,
		PortsVisited:          s.PortsVisited,
		PortActivities:        s.PortActivities,
		RepairLog:             s.RepairLog,
		PassengerManifest:     s.PassengerManifest,
		Ledger:                s.Ledger,
		Events:                s.Events,
		Failed:                failed,
		FailureReason:         failureReason,
	}
}
