package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"publicity/internal/model"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{
		Name:         "Ana",
		Fullname:     "Ana Maria Lopez",
		Nickname:     "ana123",
		Email:        "ana@example.com",
		PasswordHash: "hashed",
	}
	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnError(&mysqldriver.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'ana123' for key 'idx_users_nickname'",
	})
	mock.ExpectRollback()

	user := &model.User{
		Name:         "Ana",
		Fullname:     "Ana Maria Lopez",
		Nickname:     "ana123",
		Email:        "other@example.com",
		PasswordHash: "hashed",
	}
	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByNickname(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "fullname", "nickname", "email", "password_hash"}).
			AddRow(7, "Ana", "Ana Maria Lopez", "ana123", "ana@example.com", "hashed")
		mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(rows)

		user, err := repo.FindByNickname(context.Background(), "ana123")

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "ana123", user.Nickname)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `users`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.FindByNickname(context.Background(), "nobody99")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `publicities`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5).AddRow(6))
	mock.ExpectExec("DELETE FROM `publicities`").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &model.User{ID: 7, Nickname: "ana123"}
	postingIDs, err := repo.DeleteCascade(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, []uint{5, 6}, postingIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
