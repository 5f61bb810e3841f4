package caregiver

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"fichaje/internal/shared/sheettime"
	"fichaje/internal/timeclock"
	timeclockerrors "fichaje/internal/timeclock/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	rosterCacheKey = "caregivers:roster"
	rosterCacheTTL = time.Hour // master data, changes rarely
)

//go:generate mockgen -source=caregiver_service.go -destination=mock/caregiver_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CaregiverResponse, error)
}

type service struct {
	repo   Repository
	clock  timeclock.Service
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, clock timeclock.Service, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("caregiver.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("caregiver.service")
	}
	return &service{
		repo:   repo,
		clock:  clock,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// List returns the roster overlaid with who is clocked in right now. Roster
// names are cached; the active state never is, it is re-derived per call.
func (s *service) List(ctx context.Context) ([]CaregiverResponse, error) {
	names, err := s.rosterNames(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.clock.ActivePerson(ctx)
	if err != nil {
		// An unreachable store must not degrade into "nobody is active".
		return nil, err
	}

	resp := make([]CaregiverResponse, len(names))
	for i, name := range names {
		c := CaregiverResponse{Name: name}
		if active != nil && active.PersonName == name {
			c.IsActive = true
			c.LastClockIn = sheettime.Format(active.ClockIn)
		}
		resp[i] = c
	}
	return resp, nil
}

func (s *service) rosterNames(ctx context.Context) ([]string, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, rosterCacheKey).Result(); err == nil {
			var names []string
			if json.Unmarshal([]byte(cached), &names) == nil {
				return names, nil
			}
		}
	}

	v, err, _ := s.sf.Do(rosterCacheKey, func() (interface{}, error) {
		raw, err := s.repo.ListNames(ctx)
		if err != nil {
			s.logger.Error("roster read failed", zap.Error(err))
			return nil, timeclockerrors.ErrStoreUnavailable(err)
		}

		names := filterRoster(raw)
		if len(names) == 0 {
			s.logger.Warn("no caregivers found on roster")
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(names); err == nil {
				s.rdb.Set(ctx, rosterCacheKey, jsonData, rosterCacheTTL)
			}
		}

		return names, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

// filterRoster drops blank cells and the literal header row ("Nombre"/"Name")
// that a hand-maintained roster tends to carry.
func filterRoster(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		switch strings.ToLower(name) {
		case "nombre", "name":
			continue
		}
		names = append(names, name)
	}
	return names
}
