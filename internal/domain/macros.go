package domain

// Macros holds aggregate nutrition values for a meal or recipe.
type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
}

// Add returns the component-wise sum of two macro sets.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		ProteinG: m.ProteinG + other.ProteinG,
		CarbsG:   m.CarbsG + other.CarbsG,
		FatsG:    m.FatsG + other.FatsG,
	}
}

// Scale returns the macros multiplied by a linear scale factor.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		ProteinG: m.ProteinG * factor,
		CarbsG:   m.CarbsG * factor,
		FatsG:    m.FatsG * factor,
	}
}
