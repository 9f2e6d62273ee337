package api

import (
	"net/http"

	reqdto "opsboard/internal/handler/dto/request"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	commands commands.ReportCommands
	queries  queries.ReportQueries
}

func NewReportsHandler(cmds commands.ReportCommands, qs queries.ReportQueries) *ReportsHandler {
	return &ReportsHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create scheduled report job
// @Tags scheduled-reports
// @Accept json
// @Produce json
// @Param request body reqdto.CreateScheduledReportRequest true "Job definition"
// @Success 201 {object} resdto.ScheduledReportResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /scheduled-reports [post]
func (h *ReportsHandler) Create(c *gin.Context) {
	var req reqdto.CreateScheduledReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReportView(view))
}

// @Summary List scheduled report jobs
// @Tags scheduled-reports
// @Produce json
// @Success 200 {array} resdto.ScheduledReportResponse
// @Router /scheduled-reports [get]
func (h *ReportsHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)

	views, err := h.queries.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.ScheduledReportResponse, len(views))
	for i, view := range views {
		out[i] = resdto.FromReportView(view)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get scheduled report job
// @Tags scheduled-reports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.ScheduledReportResponse
// @Failure 404 {object} map[string]string
// @Router /scheduled-reports/{id} [get]
func (h *ReportsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportView(view))
}

// @Summary Update scheduled report job
// @Tags scheduled-reports
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateScheduledReportRequest true "Fields to change"
// @Success 200 {object} resdto.ScheduledReportResponse
// @Failure 404 {object} map[string]string
// @Router /scheduled-reports/{id} [patch]
func (h *ReportsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateScheduledReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondJobCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportView(view))
}

// @Summary Delete scheduled report job
// @Tags scheduled-reports
// @Param id path string true "Job ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /scheduled-reports/{id} [delete]
func (h *ReportsHandler) Delete(c *gin.Context) {
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
