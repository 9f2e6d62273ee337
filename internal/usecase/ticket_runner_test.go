//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opsboard/internal/domain/integration"
	"opsboard/internal/domain/job"
	"opsboard/internal/infra"
	"opsboard/internal/metrics"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/usecase"
	usecasemock "opsboard/tests/mock/usecase"
)

type TicketRunnerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	tickets *usecasemock.MockTicketJobStore
	creds   *usecasemock.MockCredentialStore
	glpi    *usecasemock.MockTicketCreator
	calc    *usecasemock.MockScheduleCalculator
	runLogs *usecasemock.MockRunLogStore
	clock   *clock.MockClock
	runner  usecase.TicketRunner

	now time.Time
}

func (s *TicketRunnerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tickets = usecasemock.NewMockTicketJobStore(s.ctrl)
	s.creds = usecasemock.NewMockCredentialStore(s.ctrl)
	s.glpi = usecasemock.NewMockTicketCreator(s.ctrl)
	s.calc = usecasemock.NewMockScheduleCalculator(s.ctrl)
	s.runLogs = usecasemock.NewMockRunLogStore(s.ctrl)
	s.now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.runner = usecase.NewTicketRunner(
		s.tickets, s.creds, s.glpi, s.calc, s.runLogs,
		s.clock, logger, metrics.NewNoopSink(), nil,
	)
}

func (s *TicketRunnerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TicketRunnerTestSuite) newTicket(name string) *job.ScheduledTicket {
	return &job.ScheduledTicket{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Name:           name,
		IsActive:       true,
		CronExpression: "0 8 * * *",
		Title:          "Daily checklist",
		Content:        "Run the morning checklist",
		Urgency:        3,
		Impact:         3,
		Priority:       3,
		EntityID:       1,
	}
}

func (s *TicketRunnerTestSuite) expectRunLogs() {
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunStarted, gomock.Any()).
		Return(nil)
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunCompleted, gomock.Any()).
		Return(nil)
}

func (s *TicketRunnerTestSuite) TestRun_Success() {
	t := s.newTicket("daily-checklist")
	cred := &integration.Integration{Kind: integration.KindGLPI, BaseURL: "https://glpi.example"}
	next := s.now.Add(24 * time.Hour)

	s.expectRunLogs()
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).Return([]*job.ScheduledTicket{t}, nil)
	s.creds.EXPECT().FindActive(gomock.Any(), t.OwnerID, integration.KindGLPI).Return(cred, nil)
	s.glpi.EXPECT().CreateTicket(gomock.Any(), *cred, gomock.Any()).Return("123", nil)
	s.calc.EXPECT().Next("0 8 * * *", s.now).Return(next, nil)
	s.tickets.EXPECT().Advance(gomock.Any(), t.ID, s.now, &next).Return(nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(1, res.Executed)
	s.Equal(1, res.Successful)
	s.Equal(0, res.Failed)
	s.Require().Len(res.Results, 1)
	s.True(res.Results[0].Success)
	s.Require().NotNil(res.Results[0].ExternalID)
	s.Equal("123", *res.Results[0].ExternalID)
	s.Equal("Processamento de tickets agendados concluído", res.Message)
}

func (s *TicketRunnerTestSuite) TestRun_MissingCredentialStillAdvances() {
	t := s.newTicket("no-creds")
	next := s.now.Add(24 * time.Hour)

	s.expectRunLogs()
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).Return([]*job.ScheduledTicket{t}, nil)
	s.creds.EXPECT().FindActive(gomock.Any(), t.OwnerID, integration.KindGLPI).
		Return(nil, infra.WrapRepoErr("integration not found", nil, infra.KindNotFound))
	s.calc.EXPECT().Next("0 8 * * *", s.now).Return(next, nil)
	s.tickets.EXPECT().Advance(gomock.Any(), t.ID, s.now, &next).Return(nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(1, res.Failed)
	s.Require().Len(res.Results, 1)
	s.False(res.Results[0].Success)
	s.Equal("Integração GLPI não configurada", res.Results[0].Error)
}

func (s *TicketRunnerTestSuite) TestRun_SideEffectFailureIsIsolated() {
	failing := s.newTicket("failing")
	passing := s.newTicket("passing")
	cred := &integration.Integration{Kind: integration.KindGLPI}
	next := s.now.Add(24 * time.Hour)

	s.expectRunLogs()
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).
		Return([]*job.ScheduledTicket{failing, passing}, nil)
	s.creds.EXPECT().FindActive(gomock.Any(), gomock.Any(), integration.KindGLPI).
		Return(cred, nil).Times(2)
	s.glpi.EXPECT().CreateTicket(gomock.Any(), *cred, gomock.Any()).
		Return("", errs.New("GLPI API error: status 401")).
		Times(1)
	s.glpi.EXPECT().CreateTicket(gomock.Any(), *cred, gomock.Any()).
		Return("77", nil).
		Times(1)
	s.calc.EXPECT().Next("0 8 * * *", s.now).Return(next, nil).Times(2)
	s.tickets.EXPECT().Advance(gomock.Any(), gomock.Any(), s.now, &next).Return(nil).Times(2)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(2, res.Executed)
	s.Equal(1, res.Successful)
	s.Equal(1, res.Failed)
	s.Contains(res.Results[0].Error, "401")
}

func (s *TicketRunnerTestSuite) TestRun_BadCronPausesJob() {
	t := s.newTicket("bad-cron")
	t.CronExpression = "not a cron"
	cred := &integration.Integration{Kind: integration.KindGLPI}

	s.expectRunLogs()
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).Return([]*job.ScheduledTicket{t}, nil)
	s.creds.EXPECT().FindActive(gomock.Any(), t.OwnerID, integration.KindGLPI).Return(cred, nil)
	s.glpi.EXPECT().CreateTicket(gomock.Any(), *cred, gomock.Any()).Return("5", nil)
	s.calc.EXPECT().Next("not a cron", s.now).
		Return(time.Time{}, errs.ErrInvalidCronExpr)
	s.tickets.EXPECT().Advance(gomock.Any(), t.ID, s.now, (*time.Time)(nil)).Return(nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().NoError(err)
	s.Require().Len(res.Results, 1)
	s.True(res.Results[0].Success)
	s.Nil(res.Results[0].NextExecution)
}

func (s *TicketRunnerTestSuite) TestRun_FindDueFailureIsCritical() {
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunStarted, gomock.Any()).
		Return(nil)
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).
		Return(nil, errs.New("connection refused"))
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunCriticalError, gomock.Any()).
		Return(nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().Error(err)
	s.Nil(res)
}

func (s *TicketRunnerTestSuite) TestRun_StartLogFailureIsCritical() {
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunStarted, gomock.Any()).
		Return(errs.New("insert failed"))
	s.runLogs.EXPECT().
		Insert(gomock.Any(), job.PipelineScheduledTickets, job.RunCriticalError, gomock.Any()).
		Return(nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().Error(err)
	s.Nil(res)
}

func (s *TicketRunnerTestSuite) TestRun_EmptyBatch() {
	s.expectRunLogs()
	s.tickets.EXPECT().FindDue(gomock.Any(), s.now).Return(nil, nil)

	res, err := s.runner.Run(context.Background(), usecase.RunFlags{})
	s.Require().NoError(err)
	s.True(res.Success)
	s.Equal(0, res.Executed)
	s.Empty(res.Results)
}

func TestTicketRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(TicketRunnerTestSuite))
}
