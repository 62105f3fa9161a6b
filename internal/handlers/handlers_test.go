package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/unitedpets/internal/handlers/mail"
	"github.com/GlebRadaev/unitedpets/internal/pg"
	"github.com/GlebRadaev/unitedpets/internal/repo"
	"github.com/GlebRadaev/unitedpets/internal/service"
	"github.com/GlebRadaev/unitedpets/internal/service/adoptionservice"
	"github.com/GlebRadaev/unitedpets/internal/service/donationservice"
	"github.com/GlebRadaev/unitedpets/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	services := service.New(
		repo.New(mockDB, pg.NewMockTXManager(ctrl)),
		adoptionservice.NewMockNotifier(ctrl),
		donationservice.NewMockPaymentProvider(ctrl),
		donationservice.NewMockRecorder(ctrl),
		"usd",
	)

	h := New(services, auth.NewMockVerifier(ctrl), mail.NewMockSender(ctrl), time.Second)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Gate)
	assert.Equal(t, time.Second, h.RequestTimeout)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserHandler := NewMockUserHandler(ctrl)
	mockPetHandler := NewMockPetHandler(ctrl)
	mockAdoptionHandler := NewMockAdoptionHandler(ctrl)
	mockDonationHandler := NewMockDonationHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockMailHandler := NewMockMailHandler(ctrl)

	mockUserHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetRole(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().SetRole(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().ListPets(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().LatestPets(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().SimilarPets(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().GetPet(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().CreatePet(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().UpdatePet(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().AdoptPet(gomock.Any(), gomock.Any()).AnyTimes()
	mockPetHandler.EXPECT().DeletePet(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdoptionHandler.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdoptionHandler.EXPECT().ListForOwner(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdoptionHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdoptionHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdoptionHandler.EXPECT().DeleteRequest(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().ListCampaigns(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().RecommendedCampaigns(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().GetCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().SetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Donate(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().ListUserDonations(gomock.Any(), gomock.Any()).AnyTimes()
	mockDonationHandler.EXPECT().Refund(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).AnyTimes()
	mockMailHandler.EXPECT().SendMail(gomock.Any(), gomock.Any()).AnyTimes()

	verifier := auth.NewMockVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), "user-token").Return(auth.Identity{Email: "amy@x.com", Subject: "amy"}, nil).AnyTimes()
	verifier.EXPECT().Verify(gomock.Any(), "admin-token").Return(auth.Identity{Email: "root@x.com", Subject: "root"}, nil).AnyTimes()
	verifier.EXPECT().Verify(gomock.Any(), "bad-token").Return(auth.Identity{}, errors.New("token expired")).AnyTimes()
	roles := auth.NewMockRoleChecker(ctrl)
	roles.EXPECT().IsAdmin(gomock.Any(), "amy@x.com").Return(false, nil).AnyTimes()
	roles.EXPECT().IsAdmin(gomock.Any(), "root@x.com").Return(true, nil).AnyTimes()

	h := &Handlers{
		UserHandler:     mockUserHandler,
		PetHandler:      mockPetHandler,
		AdoptionHandler: mockAdoptionHandler,
		DonationHandler: mockDonationHandler,
		PaymentHandler:  mockPaymentHandler,
		MailHandler:     mockMailHandler,
		Gate:            auth.NewMiddleware(verifier, roles),
		RequestTimeout:  time.Second,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	const id = "0c5f7a9e-3b1d-4e6f-a2c4-8d9e0f1a2b3c"
	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/", "", http.StatusOK},
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},

		{"POST", "/users", "", http.StatusOK},
		{"GET", "/users", "", http.StatusUnauthorized},
		{"GET", "/users", "bad-token", http.StatusForbidden},
		{"GET", "/users", "user-token", http.StatusForbidden},
		{"GET", "/users", "admin-token", http.StatusOK},
		{"PATCH", "/users/" + id + "/role", "user-token", http.StatusForbidden},
		{"PATCH", "/users/" + id + "/role", "admin-token", http.StatusOK},
		{"GET", "/users/role/amy@x.com", "", http.StatusUnauthorized},
		{"GET", "/users/role/amy@x.com", "user-token", http.StatusOK},

		{"GET", "/pets", "", http.StatusOK},
		{"GET", "/pets/latest", "", http.StatusOK},
		{"GET", "/pets/similar?category=dog", "", http.StatusOK},
		{"GET", "/pets/" + id, "", http.StatusOK},
		{"POST", "/pets", "", http.StatusUnauthorized},
		{"POST", "/pets", "bad-token", http.StatusForbidden},
		{"POST", "/pets", "user-token", http.StatusOK},
		{"PUT", "/pets/" + id, "", http.StatusUnauthorized},
		{"PATCH", "/pets/" + id + "/adopt", "", http.StatusUnauthorized},
		{"DELETE", "/pets/" + id, "", http.StatusUnauthorized},
		{"DELETE", "/pets/" + id, "user-token", http.StatusOK},

		{"POST", "/adoptionRequest", "", http.StatusUnauthorized},
		{"GET", "/adoptionRequest", "", http.StatusUnauthorized},
		{"GET", "/adoptionRequest/mine", "user-token", http.StatusOK},
		{"PATCH", "/adoptionRequest/" + id, "", http.StatusUnauthorized},
		{"DELETE", "/adoptionRequest/" + id, "user-token", http.StatusOK},

		{"GET", "/donations", "", http.StatusOK},
		{"GET", "/donations/recommended?category=cat", "", http.StatusOK},
		{"GET", "/donations/" + id, "", http.StatusOK},
		{"POST", "/donations", "", http.StatusUnauthorized},
		{"PUT", "/donations/" + id, "", http.StatusUnauthorized},
		{"PATCH", "/donations/" + id + "/status", "", http.StatusUnauthorized},
		{"GET", "/donation/mine", "", http.StatusUnauthorized},
		{"POST", "/donate/" + id, "", http.StatusUnauthorized},
		{"POST", "/donate/" + id, "user-token", http.StatusOK},
		{"GET", "/user-donation", "", http.StatusUnauthorized},
		{"POST", "/user-donation/refund", "", http.StatusUnauthorized},
		{"POST", "/create-payment-intent", "", http.StatusUnauthorized},
		{"POST", "/send-mail", "", http.StatusUnauthorized},
		{"POST", "/send-mail", "user-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWelcome(t *testing.T) {
	rec := httptest.NewRecorder()
	welcome(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "welcome to the server", rec.Body.String())
}
