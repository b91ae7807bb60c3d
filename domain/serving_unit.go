package domain

import "fmt"

// ServingUnit is the base unit a food's nutrition facts are expressed in.
type ServingUnit int

const (
	Grams ServingUnit = iota + 1
	Milliliters
)

var ErrInvalidServingUnit = NewError(KindValidation, "invalid value for serving unit")

// ParseServingUnit accepts exactly "g" and "ml".
func ParseServingUnit(s string) (ServingUnit, error) {
	switch s {
	case "g":
		return Grams, nil
	case "ml":
		return Milliliters, nil
	default:
		return 0, ErrInvalidServingUnit.Wrap(fmt.Errorf("unknown unit %q", s))
	}
}

func (u ServingUnit) String() string {
	switch u {
	case Grams:
		return "g"
	case Milliliters:
		return "ml"
	default:
		return fmt.Sprintf("ServingUnit(%d)", int(u))
	}
}
