package errors

import "net/http"

var (
	ErrEmptyStopSet = New(
		"EMPTY_STOP_SET",
		"Stop set is empty",
		http.StatusBadRequest,
	)

	ErrTooFewStops = New(
		"TOO_FEW_STOPS",
		"At least two stops (depot included) are required",
		http.StatusBadRequest,
	)

	ErrDepotOutOfRange = New(
		"DEPOT_OUT_OF_RANGE",
		"Depot index is outside the stop list",
		http.StatusBadRequest,
	)

	ErrUnknownMethod = New(
		"UNKNOWN_METHOD",
		"Unknown optimization method",
		http.StatusBadRequest,
	)

	ErrInvalidTour = New(
		"INVALID_TOUR",
		"Tour must start and end at the depot and visit every stop exactly once",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrStopsNotFound = New(
		"STOPS_NOT_FOUND",
		"No stops configured for this instance",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
