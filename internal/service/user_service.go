package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"publicity/internal/auth"
	"publicity/internal/errors"
	"publicity/internal/model"
	"publicity/internal/repository"
	"publicity/internal/validation"
)

// UserUpdate carries the optional fields of a profile update. Nil pointers
// leave the stored value untouched.
type UserUpdate struct {
	Name     *string
	Fullname *string
	Email    *string
	Password *string
}

// UserService handles signup, profile reads and owner-only mutations.
type UserService interface {
	Register(ctx context.Context, name, fullname, nickname, email, password string) (*model.User, error)
	Get(ctx context.Context, caller *model.User, nickname string) (*model.User, error)
	Update(ctx context.Context, caller *model.User, nickname string, upd UserUpdate) error
	Delete(ctx context.Context, caller *model.User, nickname string) error
}

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

// NewUserService builds a UserService over the given repository. The cache is
// the one the publicity service reads through; deleting a user must drop the
// cached postings the cascade removes.
func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{repo: repo, cache: cache}
}

// Register validates all fields, hashes the password and inserts the user.
// Nickname and email uniqueness is enforced by the database unique indexes;
// a duplicate-key violation maps to ErrDuplicateUser, so concurrent signups
// with the same handle resolve to exactly one success.
func (s *userService) Register(ctx context.Context, name, fullname, nickname, email, password string) (*model.User, error) {
	if !validation.Nickname(nickname) {
		return nil, errors.ErrInvalidNickname
	}
	if !validation.NameOrFullname(name) || !validation.NameOrFullname(fullname) {
		return nil, errors.ErrInvalidName
	}
	if !validation.Email(email) {
		return nil, errors.ErrInvalidEmail
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Fullname:     fullname,
		Nickname:     nickname,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Get returns the caller's own record; reading anyone else is forbidden.
func (s *userService) Get(ctx context.Context, caller *model.User, nickname string) (*model.User, error) {
	if caller.Nickname != nickname {
		return nil, errors.ErrForbidden
	}
	return caller, nil
}

// Update applies the provided fields to the caller's own record. Every
// provided field is validated before anything is written.
func (s *userService) Update(ctx context.Context, caller *model.User, nickname string, upd UserUpdate) error {
	if caller.Nickname != nickname {
		return errors.ErrForbidden
	}

	if upd.Name != nil {
		if !validation.NameOrFullname(*upd.Name) {
			return errors.ErrInvalidName
		}
		caller.Name = *upd.Name
	}
	if upd.Fullname != nil {
		if !validation.NameOrFullname(*upd.Fullname) {
			return errors.ErrInvalidName
		}
		caller.Fullname = *upd.Fullname
	}
	if upd.Email != nil {
		if !validation.Email(*upd.Email) {
			return errors.ErrInvalidEmail
		}
		caller.Email = *upd.Email
	}
	if upd.Password != nil {
		hash, err := auth.HashPassword(*upd.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		caller.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, caller); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDuplicateUser
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the caller's own record together with all postings it owns.
func (s *userService) Delete(ctx context.Context, caller *model.User, nickname string) error {
	if caller.Nickname != nickname {
		return errors.ErrForbidden
	}
	postingIDs, err := s.repo.DeleteCascade(ctx, caller)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	keys := make([]string, 0, len(postingIDs)+1)
	for _, id := range postingIDs {
		keys = append(keys, publicityCacheKey(id))
	}
	keys = append(keys, publicityListKey)
	s.cache.Delete(ctx, keys...)
	return nil
}
