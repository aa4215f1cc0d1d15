package repository

import (
	"context"

	"gorm.io/gorm"

	"publicity/internal/model"
)

// PublicityRepository defines posting persistence operations.
type PublicityRepository interface {
	Create(ctx context.Context, publicity *model.Publicity) error
	Update(ctx context.Context, publicity *model.Publicity) error
	Delete(ctx context.Context, publicity *model.Publicity) error
	FindByID(ctx context.Context, id uint) (*model.Publicity, error)
	List(ctx context.Context) ([]model.Publicity, error)
}

type publicityRepository struct {
	db *gorm.DB
}

// NewPublicityRepository builds a GORM-backed repository.
func NewPublicityRepository(db *gorm.DB) PublicityRepository {
	return &publicityRepository{db: db}
}

func (r *publicityRepository) Create(ctx context.Context, publicity *model.Publicity) error {
	return r.db.WithContext(ctx).Create(publicity).Error
}

func (r *publicityRepository) Update(ctx context.Context, publicity *model.Publicity) error {
	return r.db.WithContext(ctx).Save(publicity).Error
}

func (r *publicityRepository) Delete(ctx context.Context, publicity *model.Publicity) error {
	return r.db.WithContext(ctx).Delete(publicity).Error
}

func (r *publicityRepository) FindByID(ctx context.Context, id uint) (*model.Publicity, error) {
	var publicity model.Publicity
	if err := r.db.WithContext(ctx).First(&publicity, id).Error; err != nil {
		return nil, err
	}
	return &publicity, nil
}

func (r *publicityRepository) List(ctx context.Context) ([]model.Publicity, error) {
	var publicities []model.Publicity
	if err := r.db.WithContext(ctx).Find(&publicities).Error; err != nil {
		return nil, err
	}
	return publicities, nil
}
