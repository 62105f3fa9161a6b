package payments

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/unitedpets/internal/domain"
	"github.com/GlebRadaev/unitedpets/internal/dto"
	"github.com/GlebRadaev/unitedpets/internal/handlers/httperr"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
	"github.com/GlebRadaev/unitedpets/pkg/validate"
)

type Service interface {
	PaymentIntent(ctx context.Context, amount domain.Cents) (string, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentIntent godoc
//
//	@Summary		Create a payment intent
//	@Description	Returns the client secret the browser needs to confirm the card payment.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			payment	body		dto.PaymentIntentRequestDTO	true	"Amount in major units"
//	@Success		200		{object}	dto.PaymentIntentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"Missing credentials"
//	@Failure		500		{object}	utils.Response	"Payment provider failure"
//	@Router			/create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentIntentRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	secret, err := h.paymentService.PaymentIntent(r.Context(), domain.ToCents(req.Amount))
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentIntentResponseDTO{ClientSecret: secret})
}
