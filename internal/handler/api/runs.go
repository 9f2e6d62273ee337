package api

import (
	"net/http"
	"time"

	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

type runFlagsPayload struct {
	Debug         bool `json:"debug"`
	CronExecution bool `json:"cron_execution"`
	ManualTest    bool `json:"manual_test"`
}

// RunsHandler exposes the batch trigger endpoints called by the external
// cron scheduler and by the dashboard's "run now" button.
type RunsHandler struct {
	tickets usecase.TicketRunner
	reports usecase.ReportRunner
}

func NewRunsHandler(tickets usecase.TicketRunner, reports usecase.ReportRunner) *RunsHandler {
	return &RunsHandler{
		tickets: tickets,
		reports: reports,
	}
}

// @Summary Run scheduled ticket batch
// @Description Process every due scheduled ticket job once
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body runFlagsPayload false "Trigger flags (logging only)"
// @Success 200 {object} resdto.TicketBatchResponse
// @Failure 500 {object} resdto.BatchErrorResponse
// @Router /jobs/tickets/run [post]
func (h *RunsHandler) RunTickets(c *gin.Context) {
	flags := bindRunFlags(c)
	started := time.Now()

	res, err := h.tickets.Run(c.Request.Context(), flags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, batchError(err, started,
			"Falha no processamento de tickets agendados"))
		return
	}
	c.JSON(http.StatusOK, resdto.FromTicketBatch(res))
}

// @Summary Run scheduled report batch
// @Description Process every due scheduled report job once
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body runFlagsPayload false "Trigger flags (logging only)"
// @Success 200 {object} resdto.ReportBatchResponse
// @Failure 500 {object} resdto.BatchErrorResponse
// @Router /jobs/reports/run [post]
func (h *RunsHandler) RunReports(c *gin.Context) {
	flags := bindRunFlags(c)
	started := time.Now()

	res, err := h.reports.Run(c.Request.Context(), flags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, batchError(err, started,
			"Falha no processamento de relatórios agendados"))
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportBatch(res))
}

// bindRunFlags tolerates a missing or malformed body: the flags only affect
// logging, so a bad body never blocks a trigger.
func bindRunFlags(c *gin.Context) usecase.RunFlags {
	var payload runFlagsPayload
	_ = c.ShouldBindJSON(&payload)
	return usecase.RunFlags{
		Debug:         payload.Debug,
		CronExecution: payload.CronExecution,
		ManualTest:    payload.ManualTest,
	}
}

func batchError(err error, started time.Time, msg string) *resdto.BatchErrorResponse {
	return &resdto.BatchErrorResponse{
		Success:         false,
		Error:           err.Error(),
		ExecutionTimeMs: time.Since(started).Milliseconds(),
		Timestamp:       time.Now(),
		Message:         msg,
	}
}
