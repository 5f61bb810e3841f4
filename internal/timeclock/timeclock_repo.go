package timeclock

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeclock_repo.go -destination=mock/timeclock_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListAll(ctx context.Context) ([]TimeEntry, error)
	ListRoster(ctx context.Context) ([]string, error)
	Create(ctx context.Context, e *TimeEntry) error
	Update(ctx context.Context, e *TimeEntry) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// ListAll returns every row in append order.
func (r *repository) ListAll(ctx context.Context) ([]TimeEntry, error) {
	var rows []TimeEntry
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

// ListRoster returns the raw roster column; blank and header-like values are
// the caller's problem, same as with the sheet.
func (r *repository) ListRoster(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&CaregiverRef{}).
		Order("id ASC").
		Pluck("name", &names).Error
	return names, err
}

func (r *repository) Create(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update overwrites the mutable fields of one existing row. Only the
// clock-out path uses it.
func (r *repository) Update(ctx context.Context, e *TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
