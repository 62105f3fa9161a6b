package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/unitedpets/internal/pg"
	"github.com/GlebRadaev/unitedpets/internal/repo"
	"github.com/GlebRadaev/unitedpets/internal/service/access"
	"github.com/GlebRadaev/unitedpets/internal/service/adoptionservice"
	"github.com/GlebRadaev/unitedpets/internal/service/donationservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))
	services := New(
		repos,
		adoptionservice.NewMockNotifier(ctrl),
		donationservice.NewMockPaymentProvider(ctrl),
		donationservice.NewMockRecorder(ctrl),
		"usd",
	)

	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.PetService)
	assert.NotNil(t, services.AdoptionService)
	assert.NotNil(t, services.DonationService)
	assert.IsType(t, &access.Gate{}, services.Roles)
	assert.Same(t, services.DonationService, services.PaymentService)
}
