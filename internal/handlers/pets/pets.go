package pets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
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
	Create(ctx context.Context, actor string, pet domain.Pet) (*domain.Pet, error)
	Get(ctx context.Context, id string) (*domain.Pet, error)
	Update(ctx context.Context, actor string, id string, patch domain.PetPatch) (*domain.Pet, error)
	MarkAdopted(ctx context.Context, actor string, id string) error
	Delete(ctx context.Context, actor string, id string) error
	List(ctx context.Context, filter domain.PetFilter, page domain.Page) (*domain.PetPage, error)
	Latest(ctx context.Context, n int) ([]domain.Pet, error)
	Similar(ctx context.Context, category string, excludeID string, limit int) ([]domain.Pet, error)
}

type PetHandler struct {
	petService Service
}

func New(petService Service) *PetHandler {
	return &PetHandler{
		petService: petService,
	}
}

// ListPets godoc
//
//	@Summary		List pets
//	@Description	Newest first. Category and search match case-insensitively as substrings.
//	@Tags			Pets
//	@Produce		json
//	@Param			page			query		int		false	"Page number, from 1"
//	@Param			limit			query		int		false	"Page size"
//	@Param			name			query		string	false	"Exact name"
//	@Param			location		query		string	false	"Exact location"
//	@Param			adoptionStatus	query		string	false	"Adopted or Not Adopted"
//	@Param			addedBy			query		string	false	"Owner email"
//	@Param			category		query		string	false	"Category substring"
//	@Param			search			query		string	false	"Name substring"
//	@Success		200				{object}	dto.PetPageResponseDTO
//	@Failure		400				{object}	utils.Response	"Invalid paging parameters"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/pets [get]
func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNum, err := intParam(q, "page", 1)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	limit, err := intParam(q, "limit", 0)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	filter := domain.PetFilter{
		Name:           q.Get("name"),
		Location:       q.Get("location"),
		AdoptionStatus: q.Get("adoptionStatus"),
		AddedBy:        q.Get("addedBy"),
		Category:       q.Get("category"),
		Search:         q.Get("search"),
	}
	page, err := h.petService.List(r.Context(), filter, domain.Page{Page: pageNum, Limit: limit})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PetPageResponseDTO{
		Pets:    toPetResponses(page.Items),
		Total:   page.Total,
		HasMore: page.HasMore,
	})
}

// LatestPets godoc
//
//	@Summary	Latest pets
//	@Tags		Pets
//	@Produce	json
//	@Param		n	query		int	false	"How many pets"	default(6)
//	@Success	200	{array}		dto.PetResponseDTO
//	@Router		/pets/latest [get]
func (h *PetHandler) LatestPets(w http.ResponseWriter, r *http.Request) {
	n, err := intParam(r.URL.Query(), "n", 0)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	pets, err := h.petService.Latest(r.Context(), n)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPetResponses(pets))
}

// SimilarPets godoc
//
//	@Summary	Pets of a similar category
//	@Tags		Pets
//	@Produce	json
//	@Param		category	query		string	true	"Category substring"
//	@Param		exclude		query		string	false	"Pet id to leave out"
//	@Param		limit		query		int		false	"How many pets"	default(4)
//	@Success	200			{array}		dto.PetResponseDTO
//	@Failure	400			{object}	utils.Response	"Category is required"
//	@Router		/pets/similar [get]
func (h *PetHandler) SimilarPets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit", 0)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	pets, err := h.petService.Similar(r.Context(), q.Get("category"), q.Get("exclude"), limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPetResponses(pets))
}

// GetPet godoc
//
//	@Summary	Get a pet
//	@Tags		Pets
//	@Produce	json
//	@Param		id	path		string	true	"Pet id"
//	@Success	200	{object}	dto.PetResponseDTO
//	@Failure	404	{object}	utils.Response	"Pet not found"
//	@Router		/pets/{id} [get]
func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPetResponse(*pet))
}

// CreatePet godoc
//
//	@Summary		Add a pet for adoption
//	@Description	The caller becomes the owner. New pets are Not Adopted.
//	@Tags			Pets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pet	body		dto.CreatePetRequestDTO	true	"Pet"
//	@Success		201	{object}	dto.PetResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid body"
//	@Failure		401	{object}	utils.Response	"Missing credentials"
//	@Failure		403	{object}	utils.Response	"Invalid credentials"
//	@Router			/pets [post]
func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.CreatePetRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	pet, err := h.petService.Create(r.Context(), actor, domain.Pet{
		Name:             req.Name,
		Age:              req.Age,
		Category:         req.Category,
		Location:         req.Location,
		Image:            req.Image,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPetResponse(*pet))
}

// UpdatePet godoc
//
//	@Summary	Update a pet
//	@Tags		Pets
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string					true	"Pet id"
//	@Param		pet	body		dto.UpdatePetRequestDTO	true	"Fields to replace"
//	@Success	200	{object}	dto.PetResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid body"
//	@Failure	403	{object}	utils.Response	"Caller does not own the pet"
//	@Failure	404	{object}	utils.Response	"Pet not found"
//	@Router		/pets/{id} [put]
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	var req dto.UpdatePetRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	pet, err := h.petService.Update(r.Context(), actor, chi.URLParam(r, "id"), domain.PetPatch{
		Name:             req.Name,
		Age:              req.Age,
		Category:         req.Category,
		Location:         req.Location,
		Image:            req.Image,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPetResponse(*pet))
}

// AdoptPet godoc
//
//	@Summary	Mark a pet adopted
//	@Tags		Pets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Pet id"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Caller does not own the pet"
//	@Failure	404	{object}	utils.Response	"Pet not found"
//	@Router		/pets/{id}/adopt [patch]
func (h *PetHandler) AdoptPet(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	if err := h.petService.MarkAdopted(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pet marked as adopted"})
}

// DeletePet godoc
//
//	@Summary	Delete a pet
//	@Tags		Pets
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Pet id"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Caller does not own the pet"
//	@Failure	404	{object}	utils.Response	"Pet not found"
//	@Router		/pets/{id} [delete]
func (h *PetHandler) DeletePet(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.EmailFrom(r.Context())

	if err := h.petService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Pet deleted"})
}

func intParam(q url.Values, key string, def int) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrValidation, key)
	}
	return n, nil
}

func toPetResponses(pets []domain.Pet) []dto.PetResponseDTO {
	response := make([]dto.PetResponseDTO, 0, len(pets))
	for _, pet := range pets {
		response = append(response, toPetResponse(pet))
	}
	return response
}

func toPetResponse(pet domain.Pet) dto.PetResponseDTO {
	return dto.PetResponseDTO{
		ID:               pet.ID,
		Name:             pet.Name,
		Age:              pet.Age,
		Category:         pet.Category,
		Location:         pet.Location,
		Image:            pet.Image,
		ShortDescription: pet.ShortDescription,
		LongDescription:  pet.LongDescription,
		AddedBy:          pet.AddedBy,
		AdoptionStatus:   pet.AdoptionStatus,
		AddedTime:        pet.AddedTime.Format(time.RFC3339),
	}
}
