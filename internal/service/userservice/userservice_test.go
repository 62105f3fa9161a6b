package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/unitedpets/internal/domain"
)

const userID = "5d0b8f2e-4a1b-4c9e-8f3a-2b7c9d1e0f11"

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, repo
}

func TestRegister(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		input         domain.User
		prepareMock   func()
		expectedError error
		expectedRole  string
	}{
		{
			name:  "Client supplied role is ignored",
			input: domain.User{Email: " Bob@X.com ", Name: "Bob", Role: domain.RoleAdmin},
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.RoleUser, u.Role)
					assert.Equal(t, "bob@x.com", u.Email)
					assert.Equal(t, fixedNow, u.CreatedAt)
					assert.NotEmpty(t, u.ID)
					return u, nil
				})
			},
			expectedRole: domain.RoleUser,
		},
		{
			name:  "Existing email conflicts",
			input: domain.User{Email: "bob@x.com"},
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(&domain.User{Email: "bob@x.com"}, nil)
			},
			expectedError: domain.ErrConflict,
		},
		{
			name:          "Missing email",
			input:         domain.User{Name: "Bob"},
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Store failure",
			input: domain.User{Email: "bob@x.com"},
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("create user: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(err, tt.expectedError) {
					return
				}
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, user.Role)
		})
	}
}

func TestGetRole(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedRole  string
		expectedError error
	}{
		{
			name: "Admin role",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(&domain.User{Role: domain.RoleAdmin}, nil)
			},
			expectedRole: domain.RoleAdmin,
		},
		{
			name: "Empty role reads as user",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(&domain.User{}, nil)
			},
			expectedRole: domain.RoleUser,
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "bob@x.com").Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			role, err := service.GetRole(context.Background(), "Bob@x.com")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRole, role)
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any()).Return(nil, nil)
	users, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{}, users)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.List(context.Background())
	assert.Error(t, err)
}

func TestSetRole(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            string
		role          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Promote to admin",
			id:   userID,
			role: domain.RoleAdmin,
			prepareMock: func() {
				repo.EXPECT().SetRole(gomock.Any(), userID, domain.RoleAdmin).Return(true, nil)
			},
		},
		{
			name: "Setting the same role twice is fine",
			id:   userID,
			role: domain.RoleAdmin,
			prepareMock: func() {
				repo.EXPECT().SetRole(gomock.Any(), userID, domain.RoleAdmin).Return(true, nil)
			},
		},
		{
			name:          "Unknown role",
			id:            userID,
			role:          "superuser",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Malformed id",
			id:            "42",
			role:          domain.RoleUser,
			prepareMock:   func() {},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Unknown user",
			id:   userID,
			role: domain.RoleUser,
			prepareMock: func() {
				repo.EXPECT().SetRole(gomock.Any(), userID, domain.RoleUser).Return(false, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.SetRole(context.Background(), tt.id, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
