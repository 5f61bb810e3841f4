package timeclock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fichaje/internal/shared/apperror"
	"fichaje/internal/shared/sheettime"
	"fichaje/internal/timeclock"
	timeclockerrors "fichaje/internal/timeclock/errors"
	"fichaje/internal/timeclock/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_AddHistoricalEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Nombre", "Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{}, nil)

	var stored *timeclock.TimeEntry
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *timeclock.TimeEntry) error {
			stored = e
			return nil
		})

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	svc := timeclock.NewService(db, repo)
	resp, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T09:00:00-05:00",
		ClockOut:   "2024-01-01T17:00:00-05:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "01/01/2024, 09:00:00", resp.ClockIn)
	assert.Equal(t, "01/01/2024, 17:00:00", resp.ClockOut)
	if assert.NotNil(t, resp.TotalHours) {
		assert.Equal(t, 8.00, *resp.TotalHours)
	}
	if assert.NotNil(t, stored) {
		assert.Equal(t, "8.00", stored.TotalHours)
		assert.False(t, stored.Open())
	}
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_AddHistoricalEntry_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	existing := timeclock.TimeEntry{
		ID:         uuid.New(),
		ClockIn:    "01/01/2024, 09:00:00",
		ClockOut:   "01/01/2024, 17:00:00",
		PersonName: "Ana",
		TotalHours: "8.00",
	}

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{existing}, nil)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	svc := timeclock.NewService(db, repo)
	_, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T16:00:00-05:00",
		ClockOut:   "2024-01-01T18:00:00-05:00",
	})

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, timeclockerrors.CodeScheduleConflict, appErr.Code)
		assert.Equal(t,
			"Ana already has a record from 01/01/2024, 09:00:00 to 01/01/2024, 17:00:00",
			appErr.Details,
		)
	}
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

// Back-to-back shifts share an endpoint without overlapping.
func TestService_AddHistoricalEntry_AdjacentAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	existing := timeclock.TimeEntry{
		ID:         uuid.New(),
		ClockIn:    "01/01/2024, 09:00:00",
		ClockOut:   "01/01/2024, 17:00:00",
		PersonName: "Ana",
		TotalHours: "8.00",
	}

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{existing}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	svc := timeclock.NewService(db, repo)
	_, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T17:00:00-05:00",
		ClockOut:   "2024-01-01T19:00:00-05:00",
	})
	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_AddHistoricalEntry_ConflictWithOpenRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	// Open record started an hour ago; its effective end is "now".
	start := time.Now().Add(-time.Hour)
	open := timeclock.TimeEntry{
		ID:         uuid.New(),
		ClockIn:    sheettime.Format(start),
		PersonName: "Ana",
	}

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{open}, nil)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	svc := timeclock.NewService(db, repo)
	_, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    start.Add(-30 * time.Minute).Format(time.RFC3339),
		ClockOut:   start.Add(30 * time.Minute).Format(time.RFC3339),
	})

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, timeclockerrors.CodeScheduleConflict, appErr.Code)
		assert.Contains(t, appErr.Details.(string), "(in progress)")
	}
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

// Validation happens before any store access, so no repo or tx expectations.
func TestService_AddHistoricalEntry_IntervalRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := timeclock.NewService(db, mock.NewMockRepository(ctrl))
	ctx := context.Background()

	_, err := svc.AddHistoricalEntry(ctx, timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T17:00:00-05:00",
		ClockOut:   "2024-01-01T09:00:00-05:00",
	})
	assert.Equal(t, timeclockerrors.CodeInvalidInterval, appErrCode(t, err))

	_, err = svc.AddHistoricalEntry(ctx, timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T09:00:00-05:00",
		ClockOut:   "2024-01-02T10:00:00-05:00", // 25 hours
	})
	assert.Equal(t, timeclockerrors.CodeShiftTooLong, appErrCode(t, err))

	future := time.Now().Add(48 * time.Hour)
	_, err = svc.AddHistoricalEntry(ctx, timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    future.Format(time.RFC3339),
		ClockOut:   future.Add(2 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, timeclockerrors.CodeFutureEntry, appErrCode(t, err))
}

func TestService_AddHistoricalEntry_ExactlyMaxShiftAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	svc := timeclock.NewService(db, repo)
	resp, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T09:00:00-05:00",
		ClockOut:   "2024-01-02T09:00:00-05:00",
	})
	assert.NoError(t, err)
	if assert.NotNil(t, resp.TotalHours) {
		assert.Equal(t, 24.00, *resp.TotalHours)
	}
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_AddHistoricalEntry_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock, _ := sqlmock.New()
	defer db.Close()

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().ListRoster(gomock.Any()).Return([]string{"Ana"}, nil)
	repo.EXPECT().ListAll(gomock.Any()).Return([]timeclock.TimeEntry{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	svc := timeclock.NewService(db, repo)
	_, err := svc.AddHistoricalEntry(context.Background(), timeclock.HistoricalEntryRequest{
		PersonName: "Ana",
		ClockIn:    "2024-01-01T09:00:00-05:00",
		ClockOut:   "2024-01-01T17:00:00-05:00",
	})
	assert.Equal(t, timeclockerrors.CodeStoreUnavailable, appErrCode(t, err))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
