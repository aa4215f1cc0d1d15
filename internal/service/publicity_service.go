package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"publicity/internal/errors"
	"publicity/internal/model"
	"publicity/internal/repository"
)

const (
	publicityCacheTTL = 5 * time.Minute
	publicityListKey  = "publicities:all"
)

// Cache is the slice of the redis client the services use for read-through
// caching; the concrete implementation degrades to a no-op when redis is
// unavailable.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

func publicityCacheKey(id uint) string {
	return fmt.Sprintf("publicity:%d", id)
}

// PublicityInput carries the mutable fields of a posting. CompanyName and
// Contact are optional and replace the stored values wholesale, so omitting
// one clears it.
type PublicityInput struct {
	Publication string
	CompanyName string
	Contact     string
}

// PublicityService handles posting CRUD. Reads are public; mutations require
// the caller to own the posting.
type PublicityService interface {
	Create(ctx context.Context, owner *model.User, in PublicityInput) (*model.Publicity, error)
	Get(ctx context.Context, id uint) (*model.Publicity, error)
	List(ctx context.Context) ([]model.Publicity, error)
	Update(ctx context.Context, caller *model.User, id uint, in PublicityInput) (*model.Publicity, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
}

type publicityService struct {
	repo  repository.PublicityRepository
	cache Cache
}

// NewPublicityService builds a PublicityService with repository and cache.
func NewPublicityService(repo repository.PublicityRepository, cache Cache) PublicityService {
	return &publicityService{repo: repo, cache: cache}
}

func (s *publicityService) Create(ctx context.Context, owner *model.User, in PublicityInput) (*model.Publicity, error) {
	publicity := &model.Publicity{
		Publication: in.Publication,
		CompanyName: in.CompanyName,
		Contact:     in.Contact,
		UserID:      owner.ID,
	}
	if err := s.repo.Create(ctx, publicity); err != nil {
		return nil, fmt.Errorf("create publicity: %w", err)
	}
	s.cache.Delete(ctx, publicityListKey)
	return publicity, nil
}

func (s *publicityService) Get(ctx context.Context, id uint) (*model.Publicity, error) {
	if data, _ := s.cache.Get(ctx, publicityCacheKey(id)); data != nil {
		var cached model.Publicity
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	publicity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPublicityNotFound
		}
		return nil, fmt.Errorf("find publicity: %w", err)
	}

	if payload, err := json.Marshal(publicity); err == nil {
		s.cache.Set(ctx, publicityCacheKey(id), payload, publicityCacheTTL)
	}
	return publicity, nil
}

func (s *publicityService) List(ctx context.Context) ([]model.Publicity, error) {
	if data, _ := s.cache.Get(ctx, publicityListKey); data != nil {
		var cached []model.Publicity
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	publicities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publicities: %w", err)
	}

	if payload, err := json.Marshal(publicities); err == nil {
		s.cache.Set(ctx, publicityListKey, payload, publicityCacheTTL)
	}
	return publicities, nil
}

func (s *publicityService) Update(ctx context.Context, caller *model.User, id uint, in PublicityInput) (*model.Publicity, error) {
	publicity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPublicityNotFound
		}
		return nil, fmt.Errorf("find publicity: %w", err)
	}
	if publicity.UserID != caller.ID {
		return nil, errors.ErrForbidden
	}

	publicity.Publication = in.Publication
	publicity.CompanyName = in.CompanyName
	publicity.Contact = in.Contact
	if err := s.repo.Update(ctx, publicity); err != nil {
		return nil, fmt.Errorf("update publicity: %w", err)
	}

	s.cache.Delete(ctx, publicityCacheKey(id), publicityListKey)
	return publicity, nil
}

func (s *publicityService) Delete(ctx context.Context, caller *model.User, id uint) error {
	publicity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrPublicityNotFound
		}
		return fmt.Errorf("find publicity: %w", err)
	}
	if publicity.UserID != caller.ID {
		return errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, publicity); err != nil {
		return fmt.Errorf("delete publicity: %w", err)
	}

	s.cache.Delete(ctx, publicityCacheKey(id), publicityListKey)
	return nil
}
