package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/dto"
	"github.com/GlebRadaev/unitedpets/internal/handlers/httperr"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
	"github.com/GlebRadaev/unitedpets/pkg/validate"
)

type Service interface {
	Register(ctx context.Context, user domain.User) (*domain.User, error)
	GetRole(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]domain.User, error)
	SetRole(ctx context.Context, id string, role string) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Store the profile of a newly signed-in user. Any role in the body is ignored.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.RegisterUserRequestDTO	true	"User profile"
//	@Success		201		{object}	dto.RegisterUserResponseDTO
//	@Failure		400		{object}	dto.RegisterUserResponseDTO	"Invalid body or user already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	user, err := h.userService.Register(r.Context(), domain.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.RegisterUserResponseDTO{
				Message:  "user already exist",
				Inserted: false,
			})
			return
		}
		httperr.Write(w, err)
		return
	}

	resp := toUserResponse(*user)
	utils.RespondWithJSON(w, http.StatusCreated, dto.RegisterUserResponseDTO{
		Message:  "User successfully registered",
		Inserted: true,
		User:     &resp,
	})
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"Missing credentials"
//	@Failure	403	{object}	utils.Response	"Caller is not an admin"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	response := make([]dto.UserResponseDTO, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRole godoc
//
//	@Summary	Get the role of a user
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	path		string	true	"User email"
//	@Success	200		{object}	dto.RoleResponseDTO
//	@Failure	401		{object}	utils.Response	"Missing credentials"
//	@Failure	403		{object}	utils.Response	"Invalid credentials"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/users/role/{email} [get]
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.userService.GetRole(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RoleResponseDTO{Role: role})
}

// SetRole godoc
//
//	@Summary	Change the role of a user
//	@Tags		Users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"User id"
//	@Param		role	body		dto.SetRoleRequestDTO	true	"New role"
//	@Success	200		{object}	dto.RoleResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid role"
//	@Failure	403		{object}	utils.Response	"Caller is not an admin"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/users/{id}/role [patch]
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRoleRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	if err := h.userService.SetRole(r.Context(), chi.URLParam(r, "id"), req.Role); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RoleResponseDTO{Role: req.Role})
}

func toUserResponse(user domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		PhotoURL:  user.PhotoURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
