package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"publicity/internal/auth"
	"publicity/internal/errors"
	"publicity/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByNickname(ctx context.Context, nickname string) (*model.User, error) {
	args := m.Called(ctx, nickname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, user *model.User) ([]uint, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		fullname      string
		nickname      string
		email         string
		password      string
		setupMock     func(m *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			userName: "Ana",
			fullname: "Ana Maria Lopez",
			nickname: "ana123",
			email:    "ana@example.com",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "invalid nickname",
			userName:      "Ana",
			fullname:      "Ana Maria Lopez",
			nickname:      "ana",
			email:         "ana@example.com",
			password:      "secret",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidNickname,
		},
		{
			name:          "invalid name",
			userName:      "Ana9",
			fullname:      "Ana Maria Lopez",
			nickname:      "ana123",
			email:         "ana@example.com",
			password:      "secret",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidName,
		},
		{
			name:          "invalid email",
			userName:      "Ana",
			fullname:      "Ana Maria Lopez",
			nickname:      "ana123",
			email:         "ana@example",
			password:      "secret",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidEmail,
		},
		{
			name:     "duplicate nickname or email",
			userName: "Ana",
			fullname: "Ana Maria Lopez",
			nickname: "ana123",
			email:    "ana@example.com",
			password: "secret",
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, noopCache{})
			user, err := svc.Register(context.Background(), tt.userName, tt.fullname, tt.nickname, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.nickname, user.Nickname)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
				assert.True(t, auth.CheckPassword(tt.password, user.PasswordHash))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	caller := &model.User{ID: 7, Nickname: "ana123"}
	svc := NewUserService(new(MockUserRepository), noopCache{})

	user, err := svc.Get(context.Background(), caller, "ana123")
	assert.NoError(t, err)
	assert.Equal(t, caller, user)

	user, err = svc.Get(context.Background(), caller, "bruno_d")
	assert.ErrorIs(t, err, errors.ErrForbidden)
	assert.Nil(t, user)
}

func TestUserService_Update(t *testing.T) {
	strptr := func(s string) *string { return &s }

	tests := []struct {
		name          string
		nickname      string
		upd           UserUpdate
		setupMock     func(m *MockUserRepository)
		expectedError error
	}{
		{
			name:     "update name and email",
			nickname: "ana123",
			upd:      UserUpdate{Name: strptr("Anna"), Email: strptr("anna@example.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "other user's record",
			nickname:      "bruno_d",
			upd:           UserUpdate{Name: strptr("Anna")},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrForbidden,
		},
		{
			name:          "invalid name rejected before writing",
			nickname:      "ana123",
			upd:           UserUpdate{Name: strptr("A1")},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidName,
		},
		{
			name:          "invalid email rejected before writing",
			nickname:      "ana123",
			upd:           UserUpdate{Email: strptr("not-an-email")},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidEmail,
		},
		{
			name:     "email collision",
			nickname: "ana123",
			upd:      UserUpdate{Email: strptr("taken@example.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			caller := &model.User{ID: 7, Name: "Ana", Fullname: "Ana Maria Lopez", Nickname: "ana123", Email: "ana@example.com"}
			svc := NewUserService(mockRepo, noopCache{})
			err := svc.Update(context.Background(), caller, tt.nickname, tt.upd)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Anna", caller.Name)
				assert.Equal(t, "anna@example.com", caller.Email)
				assert.Equal(t, "Ana Maria Lopez", caller.Fullname)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	caller := &model.User{ID: 7, Nickname: "ana123"}
	svc := NewUserService(mockRepo, noopCache{})

	password := "newsecret"
	err := svc.Update(context.Background(), caller, "ana123", UserUpdate{Password: &password})
	assert.NoError(t, err)
	assert.True(t, auth.CheckPassword("newsecret", caller.PasswordHash))

	mockRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	caller := &model.User{ID: 7, Nickname: "ana123"}

	t.Run("cascade delete own record", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("DeleteCascade", mock.Anything, caller).Return([]uint{}, nil)

		mockCache := new(MockCache)
		mockCache.On("Delete", mock.Anything, "publicities:all")

		svc := NewUserService(mockRepo, mockCache)
		err := svc.Delete(context.Background(), caller, "ana123")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cascade drops cached postings", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("DeleteCascade", mock.Anything, caller).Return([]uint{5, 6}, nil)

		mockCache := new(MockCache)
		mockCache.On("Delete", mock.Anything, "publicity:5", "publicity:6", "publicities:all")

		svc := NewUserService(mockRepo, mockCache)
		err := svc.Delete(context.Background(), caller, "ana123")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("other user's record", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, noopCache{})
		err := svc.Delete(context.Background(), caller, "bruno_d")

		assert.ErrorIs(t, err, errors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})
}
