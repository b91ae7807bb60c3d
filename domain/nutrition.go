package domain

import "math"

// Nutrition is the nutrient content of some amount of food. Energy is in kcal,
// sodium in mg, everything else in grams.
type Nutrition struct {
	Energy       float64 `json:"energy"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	FatSaturated float64 `json:"fat_saturated"`
	Carbs        float64 `json:"carbs"`
	CarbsSugars  float64 `json:"carbs_sugars"`
	Fibre        float64 `json:"fibre"`
	Sodium       float64 `json:"sodium"`
}

func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Energy:       n.Energy * factor,
		Protein:      n.Protein * factor,
		Fat:          n.Fat * factor,
		FatSaturated: n.FatSaturated * factor,
		Carbs:        n.Carbs * factor,
		CarbsSugars:  n.CarbsSugars * factor,
		Fibre:        n.Fibre * factor,
		Sodium:       n.Sodium * factor,
	}
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Energy:       n.Energy + o.Energy,
		Protein:      n.Protein + o.Protein,
		Fat:          n.Fat + o.Fat,
		FatSaturated: n.FatSaturated + o.FatSaturated,
		Carbs:        n.Carbs + o.Carbs,
		CarbsSugars:  n.CarbsSugars + o.CarbsSugars,
		Fibre:        n.Fibre + o.Fibre,
		Sodium:       n.Sodium + o.Sodium,
	}
}

// Round rounds every field to the given number of decimal places.
func (n Nutrition) Round(places int) Nutrition {
	p := math.Pow(10, float64(places))
	r := func(v float64) float64 { return math.Round(v*p) / p }
	return Nutrition{
		Energy:       r(n.Energy),
		Protein:      r(n.Protein),
		Fat:          r(n.Fat),
		FatSaturated: r(n.FatSaturated),
		Carbs:        r(n.Carbs),
		CarbsSugars:  r(n.CarbsSugars),
		Fibre:        r(n.Fibre),
		Sodium:       r(n.Sodium),
	}
}

// SumNutrition folds values with Add starting from the zero value.
func SumNutrition(values ...Nutrition) Nutrition {
	var total Nutrition
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
