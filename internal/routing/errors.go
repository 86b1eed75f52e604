package routing

import "errors"

// Sentinel errors for precondition violations. The use-case layer maps
// these onto transport-level AppError codes.
var (
	ErrEmptyStopSet    = errors.New("routing: stop set is empty")
	ErrTooFewStops     = errors.New("routing: at least two stops are required")
	ErrDepotOutOfRange = errors.New("routing: depot index out of range")
	ErrUnknownMethod   = errors.New("routing: unknown optimization method")
	ErrInvalidTour     = errors.New("routing: tour is not a closed permutation over the stop set")
)
