package solution

import "errors"

// Sentinel errors for CreateSolutionFromRoutes and Solution.ValidateInvariants.
var (
	// ErrDuplicateClient indicates a client location appears in more than one route.
	ErrDuplicateClient = errors.New("solution: client visited more than once")

	// ErrMissingRequiredClient indicates a required client is absent from every route.
	ErrMissingRequiredClient = errors.New("solution: required client not visited")

	// ErrMutexGroupViolation indicates more than one (or, if required, not
	// exactly one) member of a mutually-exclusive group is visited.
	ErrMutexGroupViolation = errors.New("solution: mutually-exclusive group violated")

	// ErrSameVehicleGroupViolation indicates visited members of a
	// same-vehicle group are assigned to routes of different vehicle identities.
	ErrSameVehicleGroupViolation = errors.New("solution: same-vehicle group violated")

	// ErrTooManyRoutes indicates more routes of one vehicle type are present
	// than that type's NumAvailable.
	ErrTooManyRoutes = errors.New("solution: more routes than vehicle type allows")

	// ErrUnknownVehicleType indicates a route references a vehicle type
	// index out of range for the ProblemData.
	ErrUnknownVehicleType = errors.New("solution: route references unknown vehicle type")
)
