package timeclockerrors

import (
	"fmt"
	"net/http"

	"fichaje/internal/shared/apperror"
)

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeUnknownPerson        = "UNKNOWN_PERSON"
	CodeAlreadyActive        = "ALREADY_ACTIVE"
	CodeAnotherSessionActive = "ANOTHER_SESSION_ACTIVE"
	CodeNoActiveSession      = "NO_ACTIVE_SESSION"
	CodeInvalidInterval      = "INVALID_INTERVAL"
	CodeShiftTooLong         = "SHIFT_TOO_LONG"
	CodeFutureEntry          = "FUTURE_ENTRY"
	CodeScheduleConflict     = "SCHEDULE_CONFLICT"
	CodeStoreUnavailable     = "STORE_UNAVAILABLE"
)

var (
	ErrUnknownPerson = apperror.New(
		CodeUnknownPerson,
		"person is not on the caregiver roster",
		http.StatusBadRequest,
	)
	ErrInvalidInterval = apperror.New(
		CodeInvalidInterval,
		"clock-out must be strictly after clock-in",
		http.StatusBadRequest,
	)
	ErrShiftTooLong = apperror.New(
		CodeShiftTooLong,
		"a single shift cannot exceed 24 hours",
		http.StatusBadRequest,
	)
	ErrFutureEntry = apperror.New(
		CodeFutureEntry,
		"clock-in cannot be in the future",
		http.StatusBadRequest,
	)
)

// ErrInvalidTimestamp names the offending field; inputs must be unambiguous
// absolute instants.
func ErrInvalidTimestamp(field string) *apperror.AppError {
	return apperror.New(
		CodeValidation,
		fmt.Sprintf("%s must be an RFC3339 timestamp", field),
		http.StatusBadRequest,
	)
}

func ErrAlreadyActive(person string) *apperror.AppError {
	return apperror.New(
		CodeAlreadyActive,
		fmt.Sprintf("%s is already clocked in", person),
		http.StatusConflict,
	)
}

func ErrAnotherSessionActive(person string) *apperror.AppError {
	return apperror.New(
		CodeAnotherSessionActive,
		fmt.Sprintf("%s is already clocked in and must clock out first", person),
		http.StatusConflict,
	)
}

func ErrNoActiveSession(person string) *apperror.AppError {
	return apperror.New(
		CodeNoActiveSession,
		fmt.Sprintf("no open session found for %s", person),
		http.StatusConflict,
	)
}

// ErrScheduleConflict carries the rendered conflicting interval; the API layer
// must surface it verbatim.
func ErrScheduleConflict(details string) *apperror.AppError {
	return apperror.NewWithDetails(
		CodeScheduleConflict,
		"the entry overlaps an existing record",
		http.StatusConflict,
		details,
	)
}

// ErrStoreUnavailable wraps any store read/write failure, timeouts included.
// Never masked, never retried, never defaulted to empty data.
func ErrStoreUnavailable(err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		CodeStoreUnavailable,
		"the record store is unreachable",
		http.StatusServiceUnavailable,
	)
}
