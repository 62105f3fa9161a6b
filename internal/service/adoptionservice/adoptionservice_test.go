package adoptionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/notify"
)

const (
	petID     = "0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"
	otherPet  = "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
	requestID = "1e2d3c4b-5a69-4788-97a6-b5c4d3e2f100"
)

var fixedNow = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

type mocks struct {
	repo     *MockRepo
	pets     *MockPetRepo
	gate     *MockAuthorizer
	notifier *MockNotifier
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     NewMockRepo(ctrl),
		pets:     NewMockPetRepo(ctrl),
		gate:     NewMockAuthorizer(ctrl),
		notifier: NewMockNotifier(ctrl),
	}
	service := New(m.repo, m.pets, m.gate, m.notifier)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, m
}

func pet() *domain.Pet {
	return &domain.Pet{ID: petID, Name: "Rex", AddedBy: "bob@x.com", AdoptionStatus: domain.PetNotAdopted}
}

func request() *domain.AdoptionRequest {
	return &domain.AdoptionRequest{
		ID:             requestID,
		PetID:          petID,
		RequesterEmail: "amy@x.com",
		RequesterName:  "Amy",
		Status:         domain.RequestPending,
		CreatedAt:      fixedNow,
	}
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		input         domain.AdoptionRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Request for existing pet",
			input: domain.AdoptionRequest{PetID: petID, RequesterName: "Amy", RequesterEmail: "spoofed@x.com", Status: "approved"},
			prepareMock: func() {
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.AdoptionRequest) (*domain.AdoptionRequest, error) {
					assert.Equal(t, "amy@x.com", r.RequesterEmail)
					assert.Equal(t, domain.RequestPending, r.Status)
					assert.Equal(t, fixedNow, r.CreatedAt)
					return r, nil
				})
				m.notifier.EXPECT().Notify(gomock.Any()).Do(func(msg notify.Message) {
					assert.Equal(t, "bob@x.com", msg.To)
					assert.Contains(t, msg.Subject, "Rex")
				})
			},
		},
		{
			name:  "Unknown pet",
			input: domain.AdoptionRequest{PetID: petID},
			prepareMock: func() {
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Malformed pet id",
			input:         domain.AdoptionRequest{PetID: "rex"},
			prepareMock:   func() {},
			expectedError: domain.ErrNotFound,
		},
		{
			name:  "Store failure sends nothing",
			input: domain.AdoptionRequest{PetID: petID},
			prepareMock: func() {
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("create adoption request: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.Create(context.Background(), "amy@x.com", tt.input)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if !errors.Is(err, tt.expectedError) {
					assert.Equal(t, tt.expectedError.Error(), err.Error())
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListForOwner(t *testing.T) {
	service, m := NewMock(t)

	m.pets.EXPECT().IDsByOwner(gomock.Any(), "bob@x.com").Return([]string{petID, otherPet}, nil)
	m.repo.EXPECT().ListByPetIDs(gomock.Any(), []string{petID, otherPet}).Return([]domain.AdoptionRequest{*request()}, nil).Times(1)
	requests, err := service.ListForOwner(context.Background(), "bob@x.com")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)

	m.pets.EXPECT().IDsByOwner(gomock.Any(), "bob@x.com").Return(nil, errors.New("db error"))
	_, err = service.ListForOwner(context.Background(), "bob@x.com")
	assert.Error(t, err)
}

func TestListByRequester(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().ListByRequester(gomock.Any(), "amy@x.com").Return([]domain.AdoptionRequest{*request()}, nil)
	requests, err := service.ListByRequester(context.Background(), "amy@x.com")
	assert.NoError(t, err)
	assert.Equal(t, []domain.AdoptionRequest{*request()}, requests)
}

func TestUpdateStatus(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actor         string
		status        string
		petID         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner approves",
			actor:  "bob@x.com",
			status: "approved",
			petID:  petID,
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.gate.EXPECT().Authorize(gomock.Any(), "bob@x.com", "bob@x.com").Return(nil)
				m.repo.EXPECT().UpdateStatusAndAdopt(gomock.Any(), requestID, "approved", petID).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any()).Do(func(msg notify.Message) {
					assert.Equal(t, "amy@x.com", msg.To)
				})
			},
		},
		{
			name:   "Rejection still goes through the adopting update",
			actor:  "bob@x.com",
			status: "rejected",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.gate.EXPECT().Authorize(gomock.Any(), "bob@x.com", "bob@x.com").Return(nil)
				m.repo.EXPECT().UpdateStatusAndAdopt(gomock.Any(), requestID, "rejected", petID).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any())
			},
		},
		{
			name:   "Requester cannot approve own request",
			actor:  "amy@x.com",
			status: "approved",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.gate.EXPECT().Authorize(gomock.Any(), "amy@x.com", "bob@x.com").Return(domain.ErrForbidden)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Pet id does not match request",
			actor:  "bob@x.com",
			status: "approved",
			petID:  otherPet,
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Empty status",
			actor:         "bob@x.com",
			status:        "  ",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Unknown request",
			actor:  "bob@x.com",
			status: "approved",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req, err := service.UpdateStatus(context.Background(), tt.actor, requestID, tt.status, tt.petID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.status, req.Status)
		})
	}
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		actor         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Requester withdraws",
			actor: "amy@x.com",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.repo.EXPECT().Delete(gomock.Any(), requestID).Return(true, nil)
			},
		},
		{
			name:  "Pet owner removes",
			actor: "bob@x.com",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.gate.EXPECT().Authorize(gomock.Any(), "bob@x.com", "bob@x.com").Return(nil)
				m.repo.EXPECT().Delete(gomock.Any(), requestID).Return(true, nil)
			},
		},
		{
			name:  "Stranger is forbidden",
			actor: "eve@x.com",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(request(), nil)
				m.pets.EXPECT().Get(gomock.Any(), petID).Return(pet(), nil)
				m.gate.EXPECT().Authorize(gomock.Any(), "eve@x.com", "bob@x.com").Return(domain.ErrForbidden)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:  "Unknown request",
			actor: "amy@x.com",
			prepareMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), requestID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Delete(context.Background(), tt.actor, requestID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
