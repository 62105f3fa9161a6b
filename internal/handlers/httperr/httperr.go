// Package httperr turns service errors into JSON error responses.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
	"github.com/GlebRadaev/unitedpets/pkg/validate"
)

func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, validate.Message(err))
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
	default:
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
