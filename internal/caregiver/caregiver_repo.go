package caregiver

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=caregiver_repo.go -destination=mock/caregiver_repo_mock.go -package=mock
type Repository interface {
	ListNames(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&Caregiver{}).
		Order("id ASC").
		Pluck("name", &names).Error
	return names, err
}
