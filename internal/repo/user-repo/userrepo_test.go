package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

var createdAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "name", "photo_url", "role", "created_at"})
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, email, name, photo_url, role, created_at FROM users WHERE email = $1")

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "bob@x.com",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("bob@x.com").
					WillReturnRows(userRows().AddRow("u-1", "bob@x.com", "Bob", "http://img", "admin", createdAt))
			},
			result: &domain.User{
				ID: "u-1", Email: "bob@x.com", Name: "Bob", PhotoURL: "http://img", Role: "admin", CreatedAt: createdAt,
			},
		},
		{
			name:  "User not found",
			email: "ghost@x.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ghost@x.com").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "bob@x.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("bob@x.com").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, email, name, photo_url, role, created_at FROM users WHERE id = $1")

	mock.ExpectQuery(query).
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "bob@x.com", "Bob", "", "user", createdAt))
	user, err := repo.FindByID(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, "bob@x.com", user.Email)

	mock.ExpectQuery(query).WithArgs("u-2").WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), "u-2")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`
		INSERT INTO users (id, email, name, photo_url, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	user := &domain.User{ID: "u-1", Email: "bob@x.com", Name: "Bob", Role: "user", CreatedAt: createdAt}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("u-1", "bob@x.com", "Bob", "", "user", createdAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Duplicate email",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("u-1", "bob@x.com", "Bob", "", "user", createdAt).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs("u-1", "bob@x.com", "Bob", "", "user", createdAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, user, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, email, name, photo_url, role, created_at FROM users ORDER BY created_at, id")

	mock.ExpectQuery(query).WillReturnRows(userRows().
		AddRow("u-1", "a@x.com", "A", "", "user", createdAt).
		AddRow("u-2", "b@x.com", "B", "", "admin", createdAt))
	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "admin", users[1].Role)

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	_, err = repo.List(context.Background())
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetRole(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Role updated",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("admin", "u-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected: true,
		},
		{
			name: "Unknown user",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("admin", "u-1").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("admin", "u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.SetRole(context.Background(), "u-1", "admin")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
