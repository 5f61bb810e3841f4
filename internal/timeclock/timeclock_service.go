package timeclock

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"fichaje/internal/events"
	"fichaje/internal/shared/apperror"
	"fichaje/internal/shared/contextutil"
	"fichaje/internal/shared/sheettime"
	timeclockerrors "fichaje/internal/timeclock/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxShiftHours  = 24.0
	longShiftHours = 8.0

	// Store calls are blocking I/O against an external system; expiry is
	// classified as STORE_UNAVAILABLE.
	storeTimeout = 10 * time.Second
)

// rosterHeaderTokens are literal header cells that leak into the roster when
// the sheet carries a title row.
var rosterHeaderTokens = map[string]bool{"nombre": true, "name": true}

//go:generate mockgen -source=timeclock_service.go -destination=mock/timeclock_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)
	AddHistoricalEntry(ctx context.Context, req HistoricalEntryRequest) (TimeEntryResponse, error)
	ActivePerson(ctx context.Context) (*ActiveSession, error)
	ListEntries(ctx context.Context) ([]TimeEntryResponse, error)
}

// ActiveSession identifies the caregiver currently holding the open session.
type ActiveSession struct {
	PersonName string
	ClockIn    time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher EventPublisher
	logger    *zap.Logger

	// mu serializes every read-check-write sequence. The single-active-session
	// invariant lives between deriving the active person and appending a row;
	// without this lock two concurrent clock-ins could both observe "nobody
	// active" and both succeed. uq_time_entries_open backstops it at the store.
	mu sync.Mutex
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(db, repo, noopEventPublisher{}, logger...)
}

func NewServiceWithPublisher(db *sql.DB, repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeclock.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeclock.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{db: db, repo: repo, publisher: publisher, logger: l}
}

func (s *service) ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("clock-in requested",
		zap.String("request_id", rid),
		zap.String("person_name", req.PersonName),
	)

	person, ts, err := validatePersonAndInstant(req.PersonName, "Timestamp", req.Timestamp)
	if err != nil {
		s.logger.Warn("clock-in validation failed", zap.String("request_id", rid), zap.Error(err))
		return TimeEntryResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-in begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.requireOnRoster(ctx, qtx, person); err != nil {
		return TimeEntryResponse{}, err
	}

	sessions, err := s.loadSessions(ctx, qtx)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	if active := s.deriveActive(sessions); active != nil {
		if active.Person == person {
			return TimeEntryResponse{}, timeclockerrors.ErrAlreadyActive(person)
		}
		return TimeEntryResponse{}, timeclockerrors.ErrAnotherSessionActive(active.Person)
	}

	row := &TimeEntry{
		ID:         uuid.New(),
		ClockIn:    sheettime.Format(ts),
		PersonName: person,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("clock-in persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}

	s.publish(ctx, events.EventClockedIn, row)
	s.logger.Info("clock-in recorded",
		zap.String("request_id", rid),
		zap.String("entry_id", row.ID.String()),
		zap.String("person_name", person),
		zap.String("clock_in", row.ClockIn),
	)
	return mapToResponse(*row, false), nil
}

func (s *service) ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("clock-out requested",
		zap.String("request_id", rid),
		zap.String("person_name", req.PersonName),
	)

	person, ts, err := validatePersonAndInstant(req.PersonName, "Timestamp", req.Timestamp)
	if err != nil {
		s.logger.Warn("clock-out validation failed", zap.String("request_id", rid), zap.Error(err))
		return TimeEntryResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("clock-out begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.ListAll(ctx)
	if err != nil {
		return TimeEntryResponse{}, mapStoreError(err)
	}

	row, start := s.findOpenRow(rows, person)
	if row == nil {
		return TimeEntryResponse{}, timeclockerrors.ErrNoActiveSession(person)
	}
	if !ts.After(start) {
		return TimeEntryResponse{}, timeclockerrors.ErrInvalidInterval
	}

	hours := sheettime.Hours(start, ts)
	longShift := hours > longShiftHours
	if longShift {
		s.logger.Warn("long shift recorded",
			zap.String("person_name", person),
			zap.Float64("hours", hours),
		)
	}

	row.ClockOut = sheettime.Format(ts)
	row.TotalHours = sheettime.FormatHours(hours)
	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("clock-out persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}

	s.publish(ctx, events.EventClockedOut, row)
	s.logger.Info("clock-out recorded",
		zap.String("request_id", rid),
		zap.String("entry_id", row.ID.String()),
		zap.String("person_name", person),
		zap.String("total_hours", row.TotalHours),
	)
	return mapToResponse(*row, longShift), nil
}

func (s *service) AddHistoricalEntry(ctx context.Context, req HistoricalEntryRequest) (TimeEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("historical entry requested",
		zap.String("request_id", rid),
		zap.String("person_name", req.PersonName),
	)

	person, start, err := validatePersonAndInstant(req.PersonName, "Clock In", req.ClockIn)
	if err != nil {
		return TimeEntryResponse{}, err
	}
	end, err := parseInstant("Clock Out", req.ClockOut)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	if !start.Before(end) {
		return TimeEntryResponse{}, timeclockerrors.ErrInvalidInterval
	}
	// Full precision: exactly 24 hours is allowed.
	hours := sheettime.Hours(start, end)
	if hours > maxShiftHours {
		return TimeEntryResponse{}, timeclockerrors.ErrShiftTooLong
	}
	now := time.Now()
	if start.After(now) {
		return TimeEntryResponse{}, timeclockerrors.ErrFutureEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("historical entry begin tx failed", zap.Error(err))
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.requireOnRoster(ctx, qtx, person); err != nil {
		return TimeEntryResponse{}, err
	}

	sessions, err := s.loadSessions(ctx, qtx)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	if conflict := findConflict(sessions, person, start, end, now); conflict != nil {
		details := describeConflict(*conflict, now)
		s.logger.Warn("historical entry conflict",
			zap.String("request_id", rid),
			zap.String("person_name", person),
			zap.String("conflict", details),
		)
		return TimeEntryResponse{}, timeclockerrors.ErrScheduleConflict(details)
	}

	// Closed row appended directly; the single-active invariant does not
	// apply to history.
	row := &TimeEntry{
		ID:         uuid.New(),
		ClockIn:    sheettime.Format(start),
		ClockOut:   sheettime.Format(end),
		PersonName: person,
		TotalHours: sheettime.FormatHours(hours),
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("historical entry persist failed", zap.Error(err))
		return TimeEntryResponse{}, mapStoreError(err)
	}
	if err := tx.Commit(); err != nil {
		return TimeEntryResponse{}, timeclockerrors.ErrStoreUnavailable(err)
	}

	s.publish(ctx, events.EventEntryBackfilled, row)
	s.logger.Info("historical entry recorded",
		zap.String("request_id", rid),
		zap.String("entry_id", row.ID.String()),
		zap.String("person_name", person),
		zap.String("total_hours", row.TotalHours),
	)
	return mapToResponse(*row, false), nil
}

// ActivePerson derives who currently holds the open session. It is a pure
// function over the full record set, recomputed on every call.
func (s *service) ActivePerson(ctx context.Context) (*ActiveSession, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	sessions, err := s.loadSessions(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	active := s.deriveActive(sessions)
	if active == nil {
		return nil, nil
	}
	return &ActiveSession{PersonName: active.Person, ClockIn: active.Start}, nil
}

func (s *service) ListEntries(ctx context.Context) ([]TimeEntryResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	res := make([]TimeEntryResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, false)
	}
	return res, nil
}

// loadSessions parses every stored row into a Session. Rows with malformed
// timestamps are warn-logged and excluded; dirty external data must never
// break the read path. Store failures still propagate.
func (s *service) loadSessions(ctx context.Context, repo Repository) ([]Session, error) {
	rows, err := repo.ListAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	sessions := make([]Session, 0, len(rows))
	for _, r := range rows {
		start, err := sheettime.Parse(r.ClockIn)
		if err != nil {
			s.logger.Warn("excluding row with malformed clock-in",
				zap.String("entry_id", r.ID.String()),
				zap.String("clock_in", r.ClockIn),
			)
			continue
		}
		sess := Session{ID: r.ID, Person: r.PersonName, Start: start}
		if !r.Open() {
			end, err := sheettime.Parse(r.ClockOut)
			if err != nil {
				s.logger.Warn("excluding row with malformed clock-out",
					zap.String("entry_id", r.ID.String()),
					zap.String("clock_out", r.ClockOut),
				)
				continue
			}
			sess.End = &end
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// deriveActive picks the open session. The store can be edited out-of-band,
// so multiple open rows are possible: the latest clock-in wins and the rest
// surface as a warning, never an error.
func (s *service) deriveActive(sessions []Session) *Session {
	var active *Session
	open := 0
	for i := range sessions {
		sess := sessions[i]
		if sess.End != nil {
			continue
		}
		open++
		if active == nil || sess.Start.After(active.Start) {
			active = &sess
		}
	}
	if open > 1 {
		s.logger.Warn("multiple open sessions in store",
			zap.Int("open_rows", open),
			zap.String("selected_person", active.Person),
		)
	}
	return active
}

// findOpenRow scans stored rows in reverse append order for this person's
// open row. Rows whose clock-in cannot be parsed are skipped with a warning.
func (s *service) findOpenRow(rows []TimeEntry, person string) (*TimeEntry, time.Time) {
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		if r.PersonName != person || !r.Open() {
			continue
		}
		start, err := sheettime.Parse(r.ClockIn)
		if err != nil {
			s.logger.Warn("skipping open row with malformed clock-in",
				zap.String("entry_id", r.ID.String()),
				zap.String("clock_in", r.ClockIn),
			)
			continue
		}
		return &r, start
	}
	return nil, time.Time{}
}

func (s *service) requireOnRoster(ctx context.Context, repo Repository, person string) error {
	names, err := repo.ListRoster(ctx)
	if err != nil {
		// "No data" and "could not reach the store" are different things;
		// an unreachable roster must never pass as an empty one.
		return mapStoreError(err)
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || rosterHeaderTokens[strings.ToLower(name)] {
			continue
		}
		if name == person {
			return nil
		}
	}
	return timeclockerrors.ErrUnknownPerson
}

func (s *service) publish(ctx context.Context, eventType string, row *TimeEntry) {
	event := events.ClockEvent{
		EventType:  eventType,
		EntryID:    row.ID.String(),
		PersonName: row.PersonName,
		ClockIn:    row.ClockIn,
		ClockOut:   row.ClockOut,
		TotalHours: row.TotalHours,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishClockEvent(ctx, event); err != nil {
		s.logger.Warn("clock event publish failed",
			zap.String("entry_id", row.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func validatePersonAndInstant(personName, field, value string) (string, time.Time, error) {
	person := strings.TrimSpace(personName)
	if person == "" {
		return "", time.Time{}, apperror.RequiredField("Person Name")
	}
	ts, err := parseInstant(field, value)
	if err != nil {
		return "", time.Time{}, err
	}
	return person, ts, nil
}

func parseInstant(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, apperror.RequiredField(field)
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, timeclockerrors.ErrInvalidTimestamp(field)
	}
	return ts, nil
}

func mapToResponse(e TimeEntry, longShift bool) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:         e.ID.String(),
		PersonName: e.PersonName,
		ClockIn:    e.ClockIn,
		ClockOut:   e.ClockOut,
		LongShift:  longShift,
	}
	if e.TotalHours != "" {
		if h, err := sheettime.ParseHours(e.TotalHours); err == nil {
			resp.TotalHours = &h
		}
	}
	if start, err := sheettime.Parse(e.ClockIn); err == nil {
		resp.Date = start.In(sheettime.Zone).Format("2006-01-02")
	}
	return resp
}
