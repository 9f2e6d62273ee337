package api

import (
	"errors"
	"net/http"

	reqdto "opsboard/internal/handler/dto/request"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionsHandler struct {
	commands commands.SubscriptionCommands
	queries  queries.SubscriptionQueries
}

func NewSubscriptionsHandler(cmds commands.SubscriptionCommands, qs queries.SubscriptionQueries) *SubscriptionsHandler {
	return &SubscriptionsHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create webhook subscription
// @Tags webhook-subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSubscriptionRequest true "Subscription definition"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /webhook-subscriptions [post]
func (h *SubscriptionsHandler) Create(c *gin.Context) {
	var req reqdto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubscriptionView(view))
}

// @Summary List webhook subscriptions
// @Tags webhook-subscriptions
// @Produce json
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /webhook-subscriptions [get]
func (h *SubscriptionsHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)

	views, err := h.queries.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.SubscriptionResponse, len(views))
	for i, view := range views {
		out[i] = resdto.FromSubscriptionView(view)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get webhook subscription
// @Tags webhook-subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /webhook-subscriptions/{id} [get]
func (h *SubscriptionsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Update webhook subscription
// @Tags webhook-subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body reqdto.UpdateSubscriptionRequest true "Fields to change"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /webhook-subscriptions/{id} [patch]
func (h *SubscriptionsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Delete webhook subscription
// @Tags webhook-subscriptions
// @Param id path string true "Subscription ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /webhook-subscriptions/{id} [delete]
func (h *SubscriptionsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondSubscriptionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSubscriptionNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Webhook subscription not found", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
