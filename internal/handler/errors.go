package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidDateParam  = "Invalid %s parameter, expected YYYY-MM-DD"

	// Plan operation error messages
	ErrMsgGeneratePlanFailed   = "Failed to generate plan"
	ErrMsgGetPlanFailed        = "Failed to retrieve plan"
	ErrMsgMissingDaysFailed    = "Failed to check plan completeness"
	ErrMsgPlanCountFailed      = "Failed to count planned meals"
	ErrMsgSwapMealFailed       = "Failed to swap meal"
	ErrMsgReplacementsFailed   = "Failed to list replacement recipes"
	ErrMsgComputeMacrosFailed  = "Failed to compute macros"
	ErrMsgValidateOverrideFail = "Failed to validate override"
)

// Success messages for API responses
const (
	MsgSwapAcceptedFormat = "%s swapped successfully"
	MsgOverrideValid      = "Override is valid"
)
