package donations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/dto"
	"github.com/GlebRadaev/unitedpets/pkg/auth"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
)

const campaignID = "3f2e1d0c-9b8a-4765-8432-10fedcba9876"

var donatedAt = time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*DonationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func request(method, target, body, email string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", campaignID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.EmailKey, email)
	return req.WithContext(ctx)
}

func milo() *domain.DonationCampaign {
	return &domain.DonationCampaign{
		ID:           campaignID,
		PetName:      "Milo",
		PetCategory:  "Cat",
		MaxAmount:    50000,
		AddedBy:      "bob@x.com",
		TotalDonated: 3510,
		Donators: []domain.Donator{
			{Email: "amy@x.com", Amount: 1010, DonatedAt: donatedAt},
			{Email: "cal@x.com", Amount: 2500, DonatedAt: donatedAt},
		},
	}
}

func TestListCampaignsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), domain.Page{Page: 2, Limit: 9}).Return(&domain.CampaignPage{
		Items:   []domain.DonationCampaign{{ID: campaignID}},
		Total:   10,
		HasMore: false,
	}, nil)
	rec := httptest.NewRecorder()
	handler.ListCampaigns(rec, request(http.MethodGet, "/donations?page=2&limit=9", "", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CampaignPageResponseDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 10, resp.Total)
	assert.Len(t, resp.Campaigns, 1)
	assert.Nil(t, resp.Campaigns[0].Donators)

	rec = httptest.NewRecorder()
	handler.ListCampaigns(rec, request(http.MethodGet, "/donations?limit=-1", "", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendedCampaignsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListByCategory(gomock.Any(), "cat", campaignID, 0).Return([]domain.DonationCampaign{*milo()}, nil)
	rec := httptest.NewRecorder()
	handler.RecommendedCampaigns(rec, request(http.MethodGet, "/donations/recommended?category=cat&exclude="+campaignID, "", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().ListByCategory(gomock.Any(), "", "", 0).Return(nil, fmt.Errorf("%w: category is required", domain.ErrValidation))
	rec = httptest.NewRecorder()
	handler.RecommendedCampaigns(rec, request(http.MethodGet, "/donations/recommended", "", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaignHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), campaignID).Return(milo(), nil)
	rec := httptest.NewRecorder()
	handler.GetCampaign(rec, request(http.MethodGet, "/donations/"+campaignID, "", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CampaignResponseDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []dto.DonatorDTO{
		{Email: "amy@x.com", Amount: 10.1, Date: "2024-08-01T08:00:00Z"},
		{Email: "cal@x.com", Amount: 25, Date: "2024-08-01T08:00:00Z"},
	}, resp.Donators)
	assert.Equal(t, 35.1, resp.TotalDonated)
	assert.Equal(t, 500.0, resp.MaxAmount)

	service.EXPECT().Get(gomock.Any(), campaignID).Return(nil, domain.ErrNotFound)
	rec = httptest.NewRecorder()
	handler.GetCampaign(rec, request(http.MethodGet, "/donations/"+campaignID, "", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCampaignHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Campaign created by caller",
			body: `{"petName":"Milo","petCategory":"Cat","maxAmount":500,"lastDate":"2024-12-31T00:00:00Z"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), "bob@x.com", domain.DonationCampaign{
					PetName:     "Milo",
					PetCategory: "Cat",
					MaxAmount:   50000,
					LastDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
				}).Return(milo(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Zero max amount",
			body:          `{"petName":"Milo","petCategory":"Cat","maxAmount":0,"lastDate":"2024-12-31T00:00:00Z"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "MaxAmount failed gt 0",
		},
		{
			name:          "Missing last date",
			body:          `{"petName":"Milo","petCategory":"Cat","maxAmount":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "LastDate is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.CreateCampaign(rec, request(http.MethodPost, "/donations", tt.body, "bob@x.com"))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestUpdateAndStatusHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Update(gomock.Any(), "bob@x.com", campaignID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, patch domain.CampaignPatch) (*domain.DonationCampaign, error) {
			assert.Equal(t, domain.Cents(80000), *patch.MaxAmount)
			assert.Nil(t, patch.PetName)
			return milo(), nil
		})
	rec := httptest.NewRecorder()
	handler.UpdateCampaign(rec, request(http.MethodPut, "/donations/"+campaignID, `{"maxAmount":800}`, "bob@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)

	service.EXPECT().SetPaused(gomock.Any(), "bob@x.com", campaignID, true).Return(nil)
	rec = httptest.NewRecorder()
	handler.SetStatus(rec, request(http.MethodPatch, "/donations/"+campaignID+"/status", `{"paused":true}`, "bob@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Campaign paused"}`, rec.Body.String())

	service.EXPECT().SetPaused(gomock.Any(), "eve@x.com", campaignID, false).Return(domain.ErrForbidden)
	rec = httptest.NewRecorder()
	handler.SetStatus(rec, request(http.MethodPatch, "/donations/"+campaignID+"/status", `{"paused":false}`, "eve@x.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	handler.SetStatus(rec, request(http.MethodPatch, "/donations/"+campaignID+"/status", `{}`, "bob@x.com"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDonateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Donation accepted",
			body: `{"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), "amy@x.com", campaignID, domain.Cents(2500)).Return(&domain.UserDonation{
					ID:         "d-1",
					CampaignID: campaignID,
					UserEmail:  "amy@x.com",
					Amount:     2500,
					CreatedAt:  donatedAt,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Fractional amount kept in cents",
			body: `{"amount":0.1}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), "amy@x.com", campaignID, domain.Cents(10)).Return(&domain.UserDonation{
					ID:         "d-2",
					CampaignID: campaignID,
					UserEmail:  "amy@x.com",
					Amount:     10,
					CreatedAt:  donatedAt,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Paused campaign",
			body: `{"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), "amy@x.com", campaignID, domain.Cents(2500)).
					Return(nil, fmt.Errorf("%w: campaign is paused", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative amount",
			body:         `{"amount":-3}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			body: `{"amount":25}`,
			prepareMock: func() {
				service.EXPECT().Donate(gomock.Any(), "amy@x.com", campaignID, domain.Cents(2500)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rec := httptest.NewRecorder()
			handler.Donate(rec, request(http.MethodPost, "/donate/"+campaignID, tt.body, "amy@x.com"))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestUserDonationHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListUserDonations(gomock.Any(), "amy@x.com").Return([]domain.UserDonation{
		{ID: "d-1", CampaignID: campaignID, UserEmail: "amy@x.com", Amount: 2500, CreatedAt: donatedAt},
	}, nil)
	rec := httptest.NewRecorder()
	handler.ListUserDonations(rec, request(http.MethodGet, "/user-donation", "", "amy@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.UserDonationResponseDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, campaignID, resp[0].DonationID)
	assert.Equal(t, 25.0, resp[0].Amount)

	service.EXPECT().Refund(gomock.Any(), "amy@x.com", campaignID, domain.Cents(2500)).Return(nil)
	rec = httptest.NewRecorder()
	handler.Refund(rec, request(http.MethodPost, "/user-donation/refund", `{"donationId":"`+campaignID+`","amount":25}`, "amy@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Donation refunded"}`, rec.Body.String())

	service.EXPECT().Refund(gomock.Any(), "amy@x.com", campaignID, domain.Cents(3000)).Return(domain.ErrNotFound)
	rec = httptest.NewRecorder()
	handler.Refund(rec, request(http.MethodPost, "/user-donation/refund", `{"donationId":"`+campaignID+`","amount":30}`, "amy@x.com"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMineHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListByOwner(gomock.Any(), "bob@x.com").Return(nil, nil)
	rec := httptest.NewRecorder()
	handler.ListMine(rec, request(http.MethodGet, "/donation/mine", "", "bob@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
