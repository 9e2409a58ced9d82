package models

// Port is a static reference-data entry: id, display name, size band, and
// the distances (in miles) to the ports it directly connects to.
type Port struct {
	ID          string
	Name        string
	Size        PortSize
	Connections map[string]int // port id -> distance in miles
}

// Route is an ordered list of port ids. Circuit is true when the route
// closes back to its first port (spec.md §4.8). LegWaterTypes is indexed
// parallel to Legs(): the water type a leg sails through, which sets its
// encounter-check schedule (spec.md §4.4). A leg with no entry, or an
// index out of range, defaults to WaterCoastal.
type Route struct {
	ID            string
	PortIDs       []string
	Circuit       bool
	LegWaterTypes []WaterType
}

// Legs returns the ordered directed port-to-port segments of the route,
// appending a closing leg back to the first port when the route is a
// circuit.
func (r Route) Legs() [][2]string {
	ids := r.PortIDs
	if len(ids) < 2 {
		return nil
	}
	legs := make([][2]string, 0, len(ids))
	for i := 0; i+1 < len(ids); i++ {
		legs = append(legs, [2]string{ids[i], ids[i+1]})
	}
	if r.Circuit {
		legs = append(legs, [2]string{ids[len(ids)-1], ids[0]})
	}
	return legs
}

// WaterTypeForLeg returns the water type of the leg at the given index,
// defaulting to WaterCoastal when unset.
func (r Route) WaterTypeForLeg(legIndex int) WaterType {
	if legIndex < 0 || legIndex >= len(r.LegWaterTypes) {
		return WaterCoastal
	}
	return r.LegWaterTypes[legIndex]
}
