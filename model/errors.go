package model

import (
	"errors"
	"fmt"
)

// ValidationErrorKind enumerates the distinct structural problems
// NewProblemData can detect in a candidate instance.
type ValidationErrorKind int

const (
	// ErrKindNoDepot indicates the instance has zero depots.
	ErrKindNoDepot ValidationErrorKind = iota
	// ErrKindNoVehicleType indicates the instance has zero vehicle types.
	ErrKindNoVehicleType
	// ErrKindNoClient indicates the instance has zero clients.
	ErrKindNoClient
	// ErrKindLoadDimensionMismatch indicates clients or vehicles disagree on load dimension D.
	ErrKindLoadDimensionMismatch
	// ErrKindMatrixShape indicates a distance/duration matrix is not N×N.
	ErrKindMatrixShape
	// ErrKindMatrixDiagonal indicates a non-zero matrix diagonal entry.
	ErrKindMatrixDiagonal
	// ErrKindProfileCount indicates the number of matrix pairs does not match declared profiles.
	ErrKindProfileCount
	// ErrKindNegativeServiceDuration indicates a negative client or depot service duration.
	ErrKindNegativeServiceDuration
	// ErrKindNegativeCapacity indicates a negative vehicle capacity component.
	ErrKindNegativeCapacity
	// ErrKindNegativeLoad indicates a negative delivery or pickup component.
	ErrKindNegativeLoad
	// ErrKindTimeWindow indicates tw_late < tw_early.
	ErrKindTimeWindow
	// ErrKindReleaseTime indicates release_time > tw_late.
	ErrKindReleaseTime
	// ErrKindNumAvailable indicates a vehicle type with num_available == 0.
	ErrKindNumAvailable
	// ErrKindInvalidDepotIndex indicates an out-of-range depot reference.
	ErrKindInvalidDepotIndex
	// ErrKindInvalidReloadDepot indicates an out-of-range reload depot reference.
	ErrKindInvalidReloadDepot
	// ErrKindInvalidProfile indicates an out-of-range profile index.
	ErrKindInvalidProfile
	// ErrKindInvalidGroup indicates a group referencing a non-existent client.
	ErrKindInvalidGroup
)

// String gives a short, human-readable tag for the kind, used in error text.
func (k ValidationErrorKind) String() string {
	switch k {
	case ErrKindNoDepot:
		return "no depot"
	case ErrKindNoVehicleType:
		return "no vehicle type"
	case ErrKindNoClient:
		return "no client"
	case ErrKindLoadDimensionMismatch:
		return "load dimension mismatch"
	case ErrKindMatrixShape:
		return "matrix shape"
	case ErrKindMatrixDiagonal:
		return "matrix diagonal"
	case ErrKindProfileCount:
		return "profile count"
	case ErrKindNegativeServiceDuration:
		return "negative service duration"
	case ErrKindNegativeCapacity:
		return "negative capacity"
	case ErrKindNegativeLoad:
		return "negative load"
	case ErrKindTimeWindow:
		return "invalid time window"
	case ErrKindReleaseTime:
		return "release time after tw_late"
	case ErrKindNumAvailable:
		return "num_available is zero"
	case ErrKindInvalidDepotIndex:
		return "invalid depot index"
	case ErrKindInvalidReloadDepot:
		return "invalid reload depot index"
	case ErrKindInvalidProfile:
		return "invalid profile index"
	case ErrKindInvalidGroup:
		return "group references unknown client"
	default:
		return "unknown validation error"
	}
}

// ValidationError reports a structural problem found while constructing a
// ProblemData. Kind is stable and suitable for programmatic branching; Msg
// carries the offending index/value for diagnostics.
type ValidationError struct {
	Kind ValidationErrorKind
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: validation failed (%s): %s", e.Kind, e.Msg)
}

func validationErrorf(kind ValidationErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports a misconfigured caller-supplied parameter, as
// opposed to a structural problem in the ProblemData itself: negative
// penalties, bad neighbourhood parameters, min > max perturbation counts,
// fleet-minimisation preconditions, and similar.
type ConfigurationError struct {
	Op  string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: configuration error: %s", e.Op, e.Msg)
}

// NewConfigurationError builds a *ConfigurationError tagged with the
// operation that rejected its input; shared by costeval, neighbourhood,
// perturb, and fleetmin.
func NewConfigurationError(op, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
