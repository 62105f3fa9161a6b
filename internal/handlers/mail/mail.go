package mail

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/internal/dto"
	"github.com/GlebRadaev/unitedpets/internal/handlers/httperr"
	"github.com/GlebRadaev/unitedpets/internal/notify"
	"github.com/GlebRadaev/unitedpets/pkg/utils"
	"github.com/GlebRadaev/unitedpets/pkg/validate"
)

type Sender interface {
	Send(ctx context.Context, msg notify.Message) error
}

type MailHandler struct {
	sender Sender
}

func New(sender Sender) *MailHandler {
	return &MailHandler{
		sender: sender,
	}
}

// SendMail godoc
//
//	@Summary	Send an HTML mail
//	@Tags		Mail
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		mail	body		dto.SendMailRequestDTO	true	"Mail"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.Response	"Invalid body"
//	@Failure	401		{object}	utils.Response	"Missing credentials"
//	@Failure	500		{object}	utils.Response	"Mail adapter failure"
//	@Router		/send-mail [post]
func (h *MailHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMailRequestDTO
	if err := validate.DecodeJSON(r.Body, &req); err != nil {
		httperr.Write(w, err)
		return
	}

	err := h.sender.Send(r.Context(), notify.Message{
		To:      req.To,
		Subject: req.Subject,
		HTML:    req.HTML,
	})
	if err != nil {
		if errors.Is(err, notify.ErrNoRecipient) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		zap.L().Error("can't send mail", zap.String("to", req.To), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Mail sent"})
}
