package timeclock

import (
	"errors"
	"net/http"
	"strings"

	"fichaje/internal/shared/apperror"
	timeclockerrors "fichaje/internal/timeclock/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapStoreError classifies repository failures. A tripped uq_time_entries_open
// index means a concurrent writer opened a session between our derivation and
// our insert; everything else is the store being unreachable.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_time_entries_open" {
			return apperror.New(
				timeclockerrors.CodeAnotherSessionActive,
				"another session was opened concurrently",
				http.StatusConflict,
			)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_time_entries_open") {
		return apperror.New(
			timeclockerrors.CodeAnotherSessionActive,
			"another session was opened concurrently",
			http.StatusConflict,
		)
	}

	// Timeouts land here too; expiry is a store failure by definition.
	return timeclockerrors.ErrStoreUnavailable(err)
}
