package adoptions

import (
	"context"
	"net/http"
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
	Create(ctx context.Context, actor string, req domain.AdoptionRequest) (*domain.AdoptionRequest, error)
	ListForOwner(ctx context.Context, owner string) ([]domain.AdoptionRequest, error)
	ListByRequester(ctx context.Context, email string) ([]domain.AdoptionRequest, error)
	UpdateStatus(ctx context.Context, actor string, id string, status string, petID string) (*domain.AdoptionRequest, error)
	Delete(ctx context.Context, actor string, id string) error
}

type AdoptionHandler struct {
	adoptionService Service
}

func New(adoptionService Service) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionService: adoptionService,
	}
}

// CreateRequest godoc
//
//	@Summary		Ask to adopt a pet
//	@Description	The caller becomes the requester. The pet owner is notified by mail.
//	@Tags			Adoption requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateAdoptionRequestDTO	true	"Adoption request"
//	@Success		201		{object}	dto.AdoptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid body"
//	@Failure		401		{object}	utils.Response	"Missing credentials"
//	@Failure		404		{object}	utils.Response	"Pet not found"
//	@Router			/adoptionRequest [post]
func (h *AdoptionHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.CreateAdoptionRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	created, err := h.adoptionService.Create(r.Context(), actor, domain.AdoptionRequest{
		PetID:         req.PetID,
		RequesterName: req.RequesterName,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAdoptionResponse(*created))
}

// ListForOwner godoc
//
//	@Summary	Requests for the caller's pets
//	@Tags		Adoption requests
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.AdoptionResponseDTO
//	@Failure	401	{object}	utils.Response	"Missing credentials"
//	@Router		/adoptionRequest [get]
func (h *AdoptionHandler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	requests, err := h.adoptionService.ListForOwner(r.Context(), actor)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdoptionResponses(requests))
}

// ListMine godoc
//
//	@Summary	Requests made by the caller
//	@Tags		Adoption requests
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.AdoptionResponseDTO
//	@Failure	401	{object}	utils.Response	"Missing credentials"
//	@Router		/adoptionRequest/mine [get]
func (h *AdoptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	requests, err := h.adoptionService.ListByRequester(r.Context(), actor)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdoptionResponses(requests))
}

// UpdateStatus godoc
//
//	@Summary		Change the status of a request
//	@Description	Only the pet owner or an admin may do this. The pet is marked adopted whatever the new status.
//	@Tags			Adoption requests
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Request id"
//	@Param			status	body		dto.UpdateAdoptionStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.AdoptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid body"
//	@Failure		403		{object}	utils.Response	"Caller does not own the pet"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Router			/adoptionRequest/{id} [patch]
func (h *AdoptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.UpdateAdoptionStatusRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	updated, err := h.adoptionService.UpdateStatus(r.Context(), actor, chi.URLParam(r, "id"), req.Status, req.PetID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAdoptionResponse(*updated))
}

// DeleteRequest godoc
//
//	@Summary	Withdraw or dismiss a request
//	@Tags		Adoption requests
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Request id"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Caller is neither requester nor pet owner"
//	@Failure	404	{object}	utils.Response	"Request not found"
//	@Router		/adoptionRequest/{id} [delete]
func (h *AdoptionHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	if err := h.adoptionService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Adoption request deleted"})
}

func toAdoptionResponses(requests []domain.AdoptionRequest) []dto.AdoptionResponseDTO {
	response := make([]dto.AdoptionResponseDTO, 0, len(requests))
	for _, req := range requests {
		response = append(response, toAdoptionResponse(req))
	}
	return response
}

func toAdoptionResponse(req domain.AdoptionRequest) dto.AdoptionResponseDTO {
	return dto.AdoptionResponseDTO{
		ID:             req.ID,
		PetID:          req.PetID,
		RequesterEmail: req.RequesterEmail,
		RequesterName:  req.RequesterName,
		Phone:          req.Phone,
		Address:        req.Address,
		Status:         req.Status,
		CreatedAt:      req.CreatedAt.Format(time.RFC3339),
	}
}
