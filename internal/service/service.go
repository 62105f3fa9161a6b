package service

import (
	"github.com/GlebRadaev/unitedpets/internal/handlers/adoptions"
	"github.com/GlebRadaev/unitedpets/internal/handlers/donations"
	"github.com/GlebRadaev/unitedpets/internal/handlers/payments"
	"github.com/GlebRadaev/unitedpets/internal/handlers/pets"
	"github.com/GlebRadaev/unitedpets/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/unitedpets/pkg/auth"

	"github.com/GlebRadaev/unitedpets/internal/repo"
	"github.com/GlebRadaev/unitedpets/internal/service/access"
	"github.com/GlebRadaev/unitedpets/internal/service/adoptionservice"
	"github.com/GlebRadaev/unitedpets/internal/service/donationservice"
	"github.com/GlebRadaev/unitedpets/internal/service/petservice"
	"github.com/GlebRadaev/unitedpets/internal/service/userservice"
)

type Services struct {
	Roles           pkgauth.RoleChecker
	UserService     users.Service
	PetService      pets.Service
	AdoptionService adoptions.Service
	DonationService donations.Service
	PaymentService  payments.Service
}

func New(
	repo *repo.Repositories,
	notifier adoptionservice.Notifier,
	paymentProvider donationservice.PaymentProvider,
	recorder donationservice.Recorder,
	currency string,
) *Services {
	gate := access.New(repo.UserRepo)
	donationService := donationservice.New(repo.DonationRepo, gate, paymentProvider, recorder, currency)

	return &Services{
		Roles:           gate,
		UserService:     userservice.New(repo.UserRepo),
		PetService:      petservice.New(repo.PetRepo, gate),
		AdoptionService: adoptionservice.New(repo.AdoptionRepo, repo.PetRepo, gate, notifier),
		DonationService: donationService,
		PaymentService:  donationService,
	}
}
