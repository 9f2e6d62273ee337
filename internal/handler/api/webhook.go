package api

import (
	"errors"
	"io"
	"net/http"

	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"
	"opsboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	fanout usecase.WebhookFanout
}

func NewWebhookHandler(fanout usecase.WebhookFanout) *WebhookHandler {
	return &WebhookHandler{fanout: fanout}
}

// @Summary Receive Zabbix alert
// @Description Fan an inbound monitoring alert out to every matching subscription
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /webhooks/zabbix [post]
func (h *WebhookHandler) ReceiveZabbix(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	res, err := h.fanout.Handle(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, usecase.ErrMalformedPayload) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook payload", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFanout(res))
}
