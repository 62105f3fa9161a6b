package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/unitedpets/docs"
	adoptionhandlers "github.com/GlebRadaev/unitedpets/internal/handlers/adoptions"
	donationhandlers "github.com/GlebRadaev/unitedpets/internal/handlers/donations"
	mailhandlers "github.com/GlebRadaev/unitedpets/internal/handlers/mail"
	paymenthandlers "github.com/GlebRadaev/unitedpets/internal/handlers/payments"
	pethandlers "github.com/GlebRadaev/unitedpets/internal/handlers/pets"
	userhandlers "github.com/GlebRadaev/unitedpets/internal/handlers/users"
	"github.com/GlebRadaev/unitedpets/internal/metrics"
	"github.com/GlebRadaev/unitedpets/internal/service"
	"github.com/GlebRadaev/unitedpets/pkg/auth"
	"github.com/GlebRadaev/unitedpets/pkg/logger"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
}

type PetHandler interface {
	ListPets(w http.ResponseWriter, r *http.Request)
	LatestPets(w http.ResponseWriter, r *http.Request)
	SimilarPets(w http.ResponseWriter, r *http.Request)
	GetPet(w http.ResponseWriter, r *http.Request)
	CreatePet(w http.ResponseWriter, r *http.Request)
	UpdatePet(w http.ResponseWriter, r *http.Request)
	AdoptPet(w http.ResponseWriter, r *http.Request)
	DeletePet(w http.ResponseWriter, r *http.Request)
}

type AdoptionHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListForOwner(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	ListCampaigns(w http.ResponseWriter, r *http.Request)
	RecommendedCampaigns(w http.ResponseWriter, r *http.Request)
	GetCampaign(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	CreateCampaign(w http.ResponseWriter, r *http.Request)
	UpdateCampaign(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	ListUserDonations(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePaymentIntent(w http.ResponseWriter, r *http.Request)
}

type MailHandler interface {
	SendMail(w http.ResponseWriter, r *http.Request)
}

// Gate guards the authenticated and admin route tiers.
type Gate interface {
	Authenticate(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

type Handlers struct {
	UserHandler     UserHandler
	PetHandler      PetHandler
	AdoptionHandler AdoptionHandler
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler
	MailHandler     MailHandler
	Gate            Gate
	RequestTimeout  time.Duration
}

func New(s *service.Services, verifier auth.Verifier, mailer mailhandlers.Sender, requestTimeout time.Duration) *Handlers {
	return &Handlers{
		UserHandler:     userhandlers.New(s.UserService),
		PetHandler:      pethandlers.New(s.PetService),
		AdoptionHandler: adoptionhandlers.New(s.AdoptionService),
		DonationHandler: donationhandlers.New(s.DonationService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		MailHandler:     mailhandlers.New(mailer),
		Gate:            auth.NewMiddleware(verifier, s.Roles),
		RequestTimeout:  requestTimeout,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		logger.RequestLogger,
		metrics.InstrumentHandler,
	)
	if h.RequestTimeout > 0 {
		r.Use(middleware.Timeout(h.RequestTimeout))
	}

	r.Get("/", welcome)
	r.Get("/health", health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.UserHandler.Register)
		r.Group(func(r chi.Router) {
			r.Use(h.Gate.Authenticate)
			r.Get("/role/{email}", h.UserHandler.GetRole)
			r.Group(func(r chi.Router) {
				r.Use(h.Gate.RequireAdmin)
				r.Get("/", h.UserHandler.ListUsers)
				r.Patch("/{id}/role", h.UserHandler.SetRole)
			})
		})
	})

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", h.PetHandler.ListPets)
		r.Get("/latest", h.PetHandler.LatestPets)
		r.Get("/similar", h.PetHandler.SimilarPets)
		r.Get("/{id}", h.PetHandler.GetPet)
		r.Group(func(r chi.Router) {
			r.Use(h.Gate.Authenticate)
			r.Post("/", h.PetHandler.CreatePet)
			r.Put("/{id}", h.PetHandler.UpdatePet)
			r.Patch("/{id}/adopt", h.PetHandler.AdoptPet)
			r.Delete("/{id}", h.PetHandler.DeletePet)
		})
	})

	r.Route("/donations", func(r chi.Router) {
		r.Get("/", h.DonationHandler.ListCampaigns)
		r.Get("/recommended", h.DonationHandler.RecommendedCampaigns)
		r.Get("/{id}", h.DonationHandler.GetCampaign)
		r.Group(func(r chi.Router) {
			r.Use(h.Gate.Authenticate)
			r.Post("/", h.DonationHandler.CreateCampaign)
			r.Put("/{id}", h.DonationHandler.UpdateCampaign)
			r.Patch("/{id}/status", h.DonationHandler.SetStatus)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.Gate.Authenticate)

		r.Route("/adoptionRequest", func(r chi.Router) {
			r.Post("/", h.AdoptionHandler.CreateRequest)
			r.Get("/", h.AdoptionHandler.ListForOwner)
			r.Get("/mine", h.AdoptionHandler.ListMine)
			r.Patch("/{id}", h.AdoptionHandler.UpdateStatus)
			r.Delete("/{id}", h.AdoptionHandler.DeleteRequest)
		})

		r.Get("/donation/mine", h.DonationHandler.ListMine)
		r.Post("/donate/{id}", h.DonationHandler.Donate)
		r.Get("/user-donation", h.DonationHandler.ListUserDonations)
		r.Post("/user-donation/refund", h.DonationHandler.Refund)
		r.Post("/create-payment-intent", h.PaymentHandler.CreatePaymentIntent)
		r.Post("/send-mail", h.MailHandler.SendMail)
	})

	return r
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("welcome to the server"))
}

func health(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
