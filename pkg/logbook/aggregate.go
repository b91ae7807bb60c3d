package logbook

import (
	"zetanom/domain"
	"zetanom/entities"
)

// baseMultiplier converts an amount counted in 100-unit blocks of the food's base
// unit into a fraction of the per-100 nutrition profile.
const baseMultiplier = 0.01

// Unit is the resolved meaning of one unit of an entry's amount.
type Unit struct {
	Multiplier float64
	Label      string
	// ServingMissing is set when the entry names a serving that no longer exists
	// for the food and the base unit was used instead.
	ServingMissing bool
}

// ResolveUnit picks the multiplier for an entry. servings must be the serving
// sizes of the entry's food.
func ResolveUnit(base domain.ServingUnit, servingID *int64, servings []*entities.ServingSize) Unit {
	if servingID == nil {
		return Unit{Multiplier: baseMultiplier, Label: base.String()}
	}
	for _, serving := range servings {
		if serving.ID == *servingID {
			return Unit{Multiplier: serving.Amount / 100.0, Label: serving.Name}
		}
	}
	return Unit{Multiplier: baseMultiplier, Label: base.String(), ServingMissing: true}
}

// Contribution scales a per-100 profile by amount units.
func Contribution(per100 domain.Nutrition, amount float64, unit Unit) domain.Nutrition {
	return per100.Scale(amount * unit.Multiplier)
}
