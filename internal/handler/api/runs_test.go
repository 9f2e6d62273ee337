//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opsboard/internal/domain/job"
	"opsboard/internal/handler/api"
	resdto "opsboard/internal/handler/dto/response"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase"
	"opsboard/tests/common/httptest"
	usecasemock "opsboard/tests/mock/usecase"
)

type RunsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockTickets *usecasemock.MockTicketRunner
	mockReports *usecasemock.MockReportRunner
}

func (s *RunsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockTickets = usecasemock.NewMockTicketRunner(s.mockCtrl)
	s.mockReports = usecasemock.NewMockReportRunner(s.mockCtrl)
	handler := api.NewRunsHandler(s.mockTickets, s.mockReports)

	s.router.POST("/jobs/tickets/run", handler.RunTickets)
	s.router.POST("/jobs/reports/run", handler.RunReports)
}

func (s *RunsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRunsHandlerSuite(t *testing.T) {
	suite.Run(t, new(RunsHandlerTestSuite))
}

func (s *RunsHandlerTestSuite) batchResult(msg string) *usecase.BatchResult {
	externalID := "42"
	return &usecase.BatchResult{
		Success:         true,
		Executed:        2,
		Successful:      1,
		Failed:          1,
		ExecutionTimeMs: 120,
		Results: []job.ExecutionResult{
			{JobID: uuid.New(), JobName: "a", Success: true, ExternalID: &externalID},
			{JobID: uuid.New(), JobName: "b", Error: "GLPI API error: status 401"},
		},
		Timestamp: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		Message:   msg,
	}
}

func (s *RunsHandlerTestSuite) TestRunTickets() {
	url := "/jobs/tickets/run"

	s.Run("success: returns 200 OK with batch summary", func() {
		s.mockTickets.EXPECT().Run(gomock.Any(), usecase.RunFlags{}).
			Return(s.batchResult("Processamento de tickets agendados concluído"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.TicketBatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(2, response.ExecutedTickets)
		s.Equal(1, response.Successful)
		s.Equal(1, response.Failed)
		s.Len(response.Results, 2)
		s.Equal("Processamento de tickets agendados concluído", response.Message)
	})

	s.Run("success: trigger flags are forwarded", func() {
		s.mockTickets.EXPECT().
			Run(gomock.Any(), usecase.RunFlags{Debug: true, CronExecution: true}).
			Return(s.batchResult("ok"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"debug": true, "cron_execution": true}, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: malformed body never blocks a trigger", func() {
		s.mockTickets.EXPECT().Run(gomock.Any(), usecase.RunFlags{}).
			Return(s.batchResult("ok"), nil).Times(1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte("{{{"))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 500 with error envelope when the batch aborts", func() {
		s.mockTickets.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("connection refused")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		s.Equal(http.StatusInternalServerError, rec.Code)
		var response resdto.BatchErrorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.False(response.Success)
		s.Contains(response.Error, "connection refused")
		s.Equal("Falha no processamento de tickets agendados", response.Message)
	})
}

func (s *RunsHandlerTestSuite) TestRunReports() {
	url := "/jobs/reports/run"

	s.Run("success: returns 200 OK with batch summary", func() {
		s.mockReports.EXPECT().Run(gomock.Any(), usecase.RunFlags{}).
			Return(s.batchResult("Processamento de relatórios agendados concluído"), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.ReportBatchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.ExecutedReports)
	})

	s.Run("error: 500 with error envelope when the batch aborts", func() {
		s.mockReports.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("insert failed")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError,
			"Falha no processamento de relatórios agendados")
	})
}
