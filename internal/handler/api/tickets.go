package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "opsboard/internal/handler/dto/request"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketsHandler struct {
	commands commands.TicketCommands
	queries  queries.TicketQueries
}

func NewTicketsHandler(cmds commands.TicketCommands, qs queries.TicketQueries) *TicketsHandler {
	return &TicketsHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create scheduled ticket job
// @Tags scheduled-tickets
// @Accept json
// @Produce json
// @Param request body reqdto.CreateScheduledTicketRequest true "Job definition"
// @Success 201 {object} resdto.ScheduledTicketResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /scheduled-tickets [post]
func (h *TicketsHandler) Create(c *gin.Context) {
	var req reqdto.CreateScheduledTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTicketView(view))
}

// @Summary List scheduled ticket jobs
// @Tags scheduled-tickets
// @Produce json
// @Success 200 {array} resdto.ScheduledTicketResponse
// @Router /scheduled-tickets [get]
func (h *TicketsHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)

	views, err := h.queries.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.ScheduledTicketResponse, len(views))
	for i, view := range views {
		out[i] = resdto.FromTicketView(view)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get scheduled ticket job
// @Tags scheduled-tickets
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.ScheduledTicketResponse
// @Failure 404 {object} map[string]string
// @Router /scheduled-tickets/{id} [get]
func (h *TicketsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Update scheduled ticket job
// @Tags scheduled-tickets
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateScheduledTicketRequest true "Fields to change"
// @Success 200 {object} resdto.ScheduledTicketResponse
// @Failure 404 {object} map[string]string
// @Router /scheduled-tickets/{id} [patch]
func (h *TicketsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateScheduledTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Delete scheduled ticket job
// @Tags scheduled-tickets
// @Param id path string true "Job ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /scheduled-tickets/{id} [delete]
func (h *TicketsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondJobCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrScheduledJobNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Scheduled job not found", nil)
	case errors.Is(err, errs.ErrInvalidCronExpr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cron expression", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (limit, offset int32) {
	limit = 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v > 0 && v <= 500 {
			limit = int32(v)
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil && v >= 0 {
			offset = int32(v)
		}
	}
	return limit, offset
}
