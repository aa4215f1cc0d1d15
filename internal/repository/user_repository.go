package repository

import (
	"context"

	"gorm.io/gorm"

	"publicity/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByNickname(ctx context.Context, nickname string) (*model.User, error)
	// DeleteCascade removes the user and all postings it owns in one
	// transaction, returning the ids of the removed postings so callers can
	// drop their cache entries.
	DeleteCascade(ctx context.Context, user *model.User) ([]uint, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) DeleteCascade(ctx context.Context, user *model.User) ([]uint, error) {
	var postingIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Publicity{}).Where("user_id = ?", user.ID).Pluck("id", &postingIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.Publicity{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return nil, err
	}
	return postingIDs, nil
}
