package util

// Wire-level error messages returned by the API handlers.
const (
	FAILED_TO_FETCH_APPOINTMENTS = "Failed to fetch appointments"
	FAILED_TO_SAVE_APPOINTMENT   = "Failed to save appointment"
	FAILED_TO_FETCH_REVIEWS      = "Failed to fetch reviews"
	FAILED_TO_SAVE_REVIEW        = "Failed to save review"
	LOGIN_REQUIRED_FOR_BOOKING   = "Please log in to book an appointment."
	UNAUTHORIZED                 = "Unauthorized"
)
