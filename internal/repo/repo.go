package repo

import (
	"github.com/GlebRadaev/unitedpets/internal/pg"
	adoptionrepo "github.com/GlebRadaev/unitedpets/internal/repo/adoption-repo"
	donationrepo "github.com/GlebRadaev/unitedpets/internal/repo/donation-repo"
	petrepo "github.com/GlebRadaev/unitedpets/internal/repo/pet-repo"
	userrepo "github.com/GlebRadaev/unitedpets/internal/repo/user-repo"
	"github.com/GlebRadaev/unitedpets/internal/service/adoptionservice"
	"github.com/GlebRadaev/unitedpets/internal/service/donationservice"
	"github.com/GlebRadaev/unitedpets/internal/service/petservice"
	"github.com/GlebRadaev/unitedpets/internal/service/userservice"
)

type PetRepo interface {
	petservice.Repo
	adoptionservice.PetRepo
}

type Repositories struct {
	UserRepo     userservice.Repo
	PetRepo      PetRepo
	AdoptionRepo adoptionservice.Repo
	DonationRepo donationservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	petRepo := petrepo.New(conn)
	adoptionRepo := adoptionrepo.New(conn, txManager)
	donationRepo := donationrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:     userRepo,
		PetRepo:      petRepo,
		AdoptionRepo: adoptionRepo,
		DonationRepo: donationRepo,
	}
}
