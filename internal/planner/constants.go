package planner

// CalorieBandTolerance widens the per-slot calorie target into the selector's
// inclusive search band (±15%).
const CalorieBandTolerance = 0.15

// MinScaleFactor is the floor for shrinking a scalable ingredient. Amounts
// never drop below 10% of base, keeping every ingredient meaningfully present.
const MinScaleFactor = 0.10

// MealSlotsPerDay is the number of meal types filled per day.
const MealSlotsPerDay = 3

// Per-slot failure codes surfaced to callers alongside partial results.
const (
	FailureCodeNoCandidateRecipe = "NO_CANDIDATE_RECIPE"
	FailureCodePersistence       = "PERSISTENCE_ERROR"
)
