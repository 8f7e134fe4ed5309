package domain

// Profile holds a user's personalized daily nutrition targets.
// Owned by the onboarding/profile surfaces; the engine reads it as an
// immutable snapshot per invocation.
type Profile struct {
	UserID         string  `json:"user_id"`
	TargetCalories float64 `json:"target_calories"`
	TargetProteinG float64 `json:"target_protein_g"`
	TargetCarbsG   float64 `json:"target_carbs_g"`
	TargetFatsG    float64 `json:"target_fats_g"`
}

// Targets returns the profile's daily targets as a macro set.
func (p Profile) Targets() Macros {
	return Macros{
		Calories: p.TargetCalories,
		ProteinG: p.TargetProteinG,
		CarbsG:   p.TargetCarbsG,
		FatsG:    p.TargetFatsG,
	}
}
