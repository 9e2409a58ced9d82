package models

// CargoCategory is a static reference-data entry describing one trade
// category: its base value per load and the 3d6 determination range that
// maps an offered-cargo roll onto it.
type CargoCategory struct {
	Kind      CargoCategoryKind
	BaseValue int // gp/load
	RollMin   int // inclusive, on the clamped [3,20] 3d6-derived roll
	RollMax   int // inclusive
}

// CategoryForRoll resolves a clamped [3,20] roll to a category using the
// standard 3d6→category ranges.
func CategoryForRoll(roll int, categories []CargoCategory) CargoCategoryKind {
	for _, c := range categories {
		if roll >= c.RollMin && roll <= c.RollMax {
			return c.Kind
		}
	}
	return CargoPrimitive
}

// DefaultCargoCategories is the standard 3d6→category table used when no
// reference-data override is loaded.
func DefaultCargoCategories() []CargoCategory {
	return []CargoCategory{
		{Kind: CargoPrimitive, BaseValue: 10, RollMin: 3, RollMax: 7},
		{Kind: CargoConsumer, BaseValue: 50, RollMin: 8, RollMax: 12},
		{Kind: CargoComfort, BaseValue: 150, RollMin: 13, RollMax: 15},
		{Kind: CargoFine, BaseValue: 400, RollMin: 16, RollMax: 18},
		{Kind: CargoPrecious, BaseValue: 1000, RollMin: 19, RollMax: 20},
	}
}

// Cargo is the voyage's current hold contents. Loads is 0 iff Type is
// empty (invariant I5 of spec.md §8).
type Cargo struct {
	Type              CargoCategoryKind
	Loads             int
	PurchasePricePerLoad int
	PurchaseLegIndex  int // -1 means "all legs remain" (bought at origin)
}

// Empty reports whether the hold currently carries no cargo.
func (c Cargo) Empty() bool {
	return c.Loads == 0
}
