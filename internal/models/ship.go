package models

// CrewRole is a member category within a ship's complement.
type CrewRole string

const (
	RoleSailor     CrewRole = "sailor"
	RoleOarsman    CrewRole = "oarsman"
	RoleMarine     CrewRole = "marine"
	RoleMate       CrewRole = "mate"
	RoleLieutenant CrewRole = "lieutenant"
	RoleCaptain    CrewRole = "captain"
)

// MonthlyWage is the gp/month wage for a crew role (§4.7). Lieutenant wage
// depends on the officer's level and is computed by the caller.
func (r CrewRole) MonthlyWage() int {
	switch r {
	case RoleSailor:
		return 2
	case RoleOarsman:
		return 5
	case RoleMarine:
		return 3
	case RoleMate:
		return 30
	default:
		return 0
	}
}

// CrewGroup is a count of crew members of a given role at a given level.
// Required is the ship template's full complement for the role; Count is
// the currently aboard headcount, which can fall below Required after
// casualties until the shortfall is hired away.
type CrewGroup struct {
	Role     CrewRole
	Count    int
	Required int
	Level    int
}

// Hull holds current and maximum hull points; 0 ≤ Value ≤ Max.
type Hull struct {
	Value int
	Max   int
}

// DamagePercent returns the percentage of hull points lost, in [0,100].
func (h Hull) DamagePercent() float64 {
	if h.Max <= 0 {
		return 0
	}
	lost := h.Max - h.Value
	if lost < 0 {
		lost = 0
	}
	return float64(lost) / float64(h.Max) * 100
}

// Sunk reports whether the hull has reached zero or below.
func (h Hull) Sunk() bool {
	return h.Value <= 0
}

// Ship is a ship instance: a deep clone of its template, mutated only
// within the voyage that owns it.
type Ship struct {
	Name          string
	ShipType      string
	Hull          Hull
	CargoCapacity int // loads
	Movement      int // abstract units; 1 unit = 8 mi/day base
	Crew          []CrewGroup
	Oarsmen       int
}

// BaseSpeed returns the ship's base sailing speed in miles/day.
func (s Ship) BaseSpeed() int {
	return s.Movement * 8
}

// Clone returns a deep copy of the ship suitable for a new voyage instance.
func (s Ship) Clone() Ship {
	crew := make([]CrewGroup, len(s.Crew))
	copy(crew, s.Crew)
	clone := s
	clone.Crew = crew
	return clone
}

// RequiredComplement returns the template's required count for a role,
// used by crew hiring to compute shortfall.
func (s Ship) RequiredComplement(role CrewRole) int {
	for _, g := range s.Crew {
		if g.Role == role {
			return g.Required
		}
	}
	return 0
}

// TotalCrew returns the sum of all crew group counts. Officers are not
// crew groups and are not counted here; the daily food-cost calculation
// adds them to this figure to get the souls aboard.
func (s Ship) TotalCrew() int {
	total := 0
	for _, g := range s.Crew {
		total += g.Count
	}
	return total
}

// CountOf returns the current headcount of the given role.
func (s Ship) CountOf(role CrewRole) int {
	for _, g := range s.Crew {
		if g.Role == role {
			return g.Count
		}
	}
	return 0
}

// RemoveCrew deducts n crew of the given role (clamped at 0) and returns
// the number actually removed.
func (s *Ship) RemoveCrew(role CrewRole, n int) int {
	for i := range s.Crew {
		if s.Crew[i].Role != role {
			continue
		}
		removed := n
		if removed > s.Crew[i].Count {
			removed = s.Crew[i].Count
		}
		s.Crew[i].Count -= removed
		return removed
	}
	return 0
}
