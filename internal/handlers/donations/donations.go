package donations

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/dto"
	"github.com/GlebRadaev/unitedpets/internal/handlers/httperr"
	"github.com/GlebRadaev/unitedpets/pkg/auth"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
	"github.com/GlebRadaev/unitedpets/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, actor string, c domain.DonationCampaign) (*domain.DonationCampaign, error)
	Get(ctx context.Context, id string) (*domain.DonationCampaign, error)
	Update(ctx context.Context, actor string, id string, patch domain.CampaignPatch) (*domain.DonationCampaign, error)
	SetPaused(ctx context.Context, actor string, id string, paused bool) error
	List(ctx context.Context, page domain.Page) (*domain.CampaignPage, error)
	ListByOwner(ctx context.Context, email string) ([]domain.DonationCampaign, error)
	ListByCategory(ctx context.Context, category string, excludeID string, limit int) ([]domain.DonationCampaign, error)
	Donate(ctx context.Context, actor string, id string, amount domain.Cents) (*domain.UserDonation, error)
	Refund(ctx context.Context, actor string, id string, amount domain.Cents) error
	ListUserDonations(ctx context.Context, email string) ([]domain.UserDonation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// ListCampaigns godoc
//
//	@Summary	List donation campaigns
//	@Tags		Donations
//	@Produce	json
//	@Param		page	query		int	false	"Page number, from 1"
//	@Param		limit	query		int	false	"Page size"	default(9)
//	@Success	200		{object}	dto.CampaignPageResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid paging parameters"
//	@Router		/donations [get]
func (h *DonationHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNum, err := intParam(q.Get("page"), "page", 1)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	limit, err := intParam(q.Get("limit"), "limit", 0)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	page, err := h.donationService.List(r.Context(), domain.Page{Page: pageNum, Limit: limit})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CampaignPageResponseDTO{
		Campaigns: toCampaignResponses(page.Items),
		Total:     page.Total,
		HasMore:   page.HasMore,
	})
}

// RecommendedCampaigns godoc
//
//	@Summary	Campaigns for pets of a similar category
//	@Tags		Donations
//	@Produce	json
//	@Param		category	query		string	true	"Category substring"
//	@Param		exclude		query		string	false	"Campaign id to leave out"
//	@Param		limit		query		int		false	"How many campaigns"	default(3)
//	@Success	200			{array}		dto.CampaignResponseDTO
//	@Failure	400			{object}	utils.Response	"Category is required"
//	@Router		/donations/recommended [get]
func (h *DonationHandler) RecommendedCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q.Get("limit"), "limit", 0)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	campaigns, err := h.donationService.ListByCategory(r.Context(), q.Get("category"), q.Get("exclude"), limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

// GetCampaign godoc
//
//	@Summary	Get a donation campaign with its donators
//	@Tags		Donations
//	@Produce	json
//	@Param		id	path		string	true	"Campaign id"
//	@Success	200	{object}	dto.CampaignResponseDTO
//	@Failure	404	{object}	utils.Response	"Campaign not found"
//	@Router		/donations/{id} [get]
func (h *DonationHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.donationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// ListMine godoc
//
//	@Summary	Campaigns created by the caller
//	@Tags		Donations
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.CampaignResponseDTO
//	@Failure	401	{object}	utils.Response	"Missing credentials"
//	@Router		/donation/mine [get]
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	campaigns, err := h.donationService.ListByOwner(r.Context(), actor)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

// CreateCampaign godoc
//
//	@Summary	Start a donation campaign
//	@Tags		Donations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		campaign	body		dto.CreateCampaignRequestDTO	true	"Campaign"
//	@Success	201			{object}	dto.CampaignResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid body"
//	@Failure	401			{object}	utils.Response	"Missing credentials"
//	@Router		/donations [post]
func (h *DonationHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.CreateCampaignRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	c, err := h.donationService.Create(r.Context(), actor, domain.DonationCampaign{
		PetName:          req.PetName,
		PetImage:         req.PetImage,
		PetCategory:      req.PetCategory,
		MaxAmount:        domain.ToCents(req.MaxAmount),
		LastDate:         req.LastDate,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCampaignResponse(*c))
}

// UpdateCampaign godoc
//
//	@Summary	Update a donation campaign
//	@Tags		Donations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string							true	"Campaign id"
//	@Param		campaign	body		dto.UpdateCampaignRequestDTO	true	"Fields to replace"
//	@Success	200			{object}	dto.CampaignResponseDTO
//	@Failure	400			{object}	utils.Response	"Invalid body"
//	@Failure	403			{object}	utils.Response	"Caller does not own the campaign"
//	@Failure	404			{object}	utils.Response	"Campaign not found"
//	@Router		/donations/{id} [put]
func (h *DonationHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.UpdateCampaignRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	c, err := h.donationService.Update(r.Context(), actor, chi.URLParam(r, "id"), domain.CampaignPatch{
		PetName:          req.PetName,
		PetImage:         req.PetImage,
		PetCategory:      req.PetCategory,
		MaxAmount:        centsPtr(req.MaxAmount),
		LastDate:         req.LastDate,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// SetStatus godoc
//
//	@Summary	Pause or resume a donation campaign
//	@Tags		Donations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Campaign id"
//	@Param		status	body		dto.SetPausedRequestDTO	true	"Pause flag"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Caller does not own the campaign"
//	@Failure	404		{object}	utils.Response	"Campaign not found"
//	@Router		/donations/{id}/status [patch]
func (h *DonationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.SetPausedRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.donationService.SetPaused(r.Context(), actor, chi.URLParam(r, "id"), *req.Paused); err != nil {
		httperr.Write(w, err)
		return
	}
	msg := "Campaign resumed"
	if *req.Paused {
		msg = "Campaign paused"
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: msg})
}

// Donate godoc
//
//	@Summary	Donate to a campaign
//	@Tags		Donations
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Campaign id"
//	@Param		amount	body		dto.DonateRequestDTO	true	"Donation"
//	@Success	201		{object}	dto.UserDonationResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid amount or campaign paused"
//	@Failure	404		{object}	utils.Response	"Campaign not found"
//	@Router		/donate/{id} [post]
func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.DonateRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	record, err := h.donationService.Donate(r.Context(), actor, chi.URLParam(r, "id"), domain.ToCents(req.Amount))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toUserDonationResponse(*record))
}

// ListUserDonations godoc
//
//	@Summary	Donations made by the caller
//	@Tags		Donations
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserDonationResponseDTO
//	@Failure	401	{object}	utils.Response	"Missing credentials"
//	@Router		/user-donation [get]
func (h *DonationHandler) ListUserDonations(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	donations, err := h.donationService.ListUserDonations(r.Context(), actor)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	response := make([]dto.UserDonationResponseDTO, 0, len(donations))
	for _, d := range donations {
		response = append(response, toUserDonationResponse(d))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Refund godoc
//
//	@Summary		Refund a donation
//	@Description	Removes one donation of exactly this amount made by the caller.
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			refund	body		dto.RefundRequestDTO	true	"Refund"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid body"
//	@Failure		404		{object}	utils.Response	"No matching donation"
//	@Router			/user-donation/refund [post]
func (h *DonationHandler) Refund(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.RefundRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.donationService.Refund(r.Context(), actor, req.DonationID, domain.ToCents(req.Amount)); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Donation refunded"})
}

func intParam(raw, key string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrValidation, key)
	}
	return n, nil
}

func centsPtr(amount *float64) *domain.Cents {
	if amount == nil {
		return nil
	}
	c := domain.ToCents(*amount)
	return &c
}

func toCampaignResponses(campaigns []domain.DonationCampaign) []dto.CampaignResponseDTO {
	response := make([]dto.CampaignResponseDTO, 0, len(campaigns))
	for _, c := range campaigns {
		response = append(response, toCampaignResponse(c))
	}
	return response
}

func toCampaignResponse(c domain.DonationCampaign) dto.CampaignResponseDTO {
	resp := dto.CampaignResponseDTO{
		ID:               c.ID,
		PetName:          c.PetName,
		PetImage:         c.PetImage,
		PetCategory:      c.PetCategory,
		MaxAmount:        c.MaxAmount.Float(),
		LastDate:         c.LastDate.Format(time.RFC3339),
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		AddedBy:          c.AddedBy,
		Paused:           c.Paused,
		TotalDonated:     c.TotalDonated.Float(),
		CreatedAt:        c.CreatedAt.Format(time.RFC3339),
	}
	for _, d := range c.Donators {
		resp.Donators = append(resp.Donators, dto.DonatorDTO{
			Email:  d.Email,
			Amount: d.Amount.Float(),
			Date:   d.DonatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func toUserDonationResponse(d domain.UserDonation) dto.UserDonationResponseDTO {
	return dto.UserDonationResponseDTO{
		ID:         d.ID,
		DonationID: d.CampaignID,
		UserEmail:  d.UserEmail,
		Amount:     d.Amount.Float(),
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
}
