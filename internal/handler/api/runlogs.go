package api

import (
	"net/http"

	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/handler/httperr"
	"opsboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RunLogsHandler struct {
	queries queries.RunLogQueries
}

func NewRunLogsHandler(qs queries.RunLogQueries) *RunLogsHandler {
	return &RunLogsHandler{queries: qs}
}

// @Summary List batch run logs
// @Description Audit trail of pipeline invocations, newest first
// @Tags run-logs
// @Produce json
// @Param job_name query string false "Filter by pipeline name"
// @Success 200 {array} resdto.RunLogResponse
// @Router /run-logs [get]
func (h *RunLogsHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)
	jobName := c.Query("job_name")

	views, err := h.queries.List(c.Request.Context(), jobName, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	out := make([]*resdto.RunLogResponse, len(views))
	for i, view := range views {
		out[i] = resdto.FromRunLogView(view)
	}
	c.JSON(http.StatusOK, out)
}
