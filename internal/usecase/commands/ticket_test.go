//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opsboard/internal/domain/job"
	reqdto "opsboard/internal/handler/dto/request"
	"opsboard/internal/infra"
	"opsboard/internal/pkg/clock"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/ptr"
	"opsboard/internal/usecase/commands"
	"opsboard/internal/usecase/queries"
	commandsmock "opsboard/tests/mock/commands"
	queriesmock "opsboard/tests/mock/queries"
	usecasemock "opsboard/tests/mock/usecase"
)

type TicketCommandsTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	repo  *commandsmock.MockTicketWriteRepo
	views *queriesmock.MockTicketQueries
	calc  *usecasemock.MockScheduleCalculator
	cmds  commands.TicketCommands

	now time.Time
}

func (s *TicketCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = commandsmock.NewMockTicketWriteRepo(s.ctrl)
	s.views = queriesmock.NewMockTicketQueries(s.ctrl)
	s.calc = usecasemock.NewMockScheduleCalculator(s.ctrl)
	s.now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.cmds = commands.NewTicketCommands(s.repo, s.views, s.calc, clock.NewMockClock(s.now))
}

func (s *TicketCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TicketCommandsTestSuite) createRequest() reqdto.CreateScheduledTicketRequest {
	return reqdto.CreateScheduledTicketRequest{
		OwnerID:        uuid.New(),
		Name:           "daily-checklist",
		CronExpression: "0 8 * * *",
		Title:          "Daily checklist",
		Content:        "Run the morning checklist",
		Urgency:        3,
		Impact:         3,
		Priority:       3,
		EntityID:       1,
	}
}

func (s *TicketCommandsTestSuite) TestCreate_SetsNextExecution() {
	req := s.createRequest()
	next := s.now.Add(20 * time.Hour)

	s.calc.EXPECT().Validate("0 8 * * *").Return(nil)
	s.calc.EXPECT().Next("0 8 * * *", s.now).Return(next, nil)
	s.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *job.ScheduledTicket) error {
			s.Equal("daily-checklist", t.Name)
			s.True(t.IsActive)
			s.Require().NotNil(t.NextExecution)
			s.Equal(next, *t.NextExecution)
			return nil
		})
	s.views.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		Return(&queries.ScheduledTicketView{Name: "daily-checklist"}, nil)

	view, err := s.cmds.Create(context.Background(), req)
	s.Require().NoError(err)
	s.Equal("daily-checklist", view.Name)
}

func (s *TicketCommandsTestSuite) TestCreate_RejectsInvalidCron() {
	req := s.createRequest()
	req.CronExpression = "not a cron"

	s.calc.EXPECT().Validate("not a cron").Return(errs.New("bad expression"))

	_, err := s.cmds.Create(context.Background(), req)
	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrInvalidCronExpr))
}

func (s *TicketCommandsTestSuite) TestCreate_RejectsBlankName() {
	req := s.createRequest()
	req.Name = "   "

	s.calc.EXPECT().Validate("0 8 * * *").Return(nil)

	_, err := s.cmds.Create(context.Background(), req)
	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrDomainValidation))
}

func (s *TicketCommandsTestSuite) TestUpdate_ChangedCronRestartsSchedule() {
	id := uuid.New()
	existing := &job.ScheduledTicket{
		ID:             id,
		Name:           "daily-checklist",
		CronExpression: "0 8 * * *",
		IsActive:       true,
	}
	next := s.now.Add(2 * time.Hour)

	s.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
	s.calc.EXPECT().Validate("0 14 * * *").Return(nil)
	s.calc.EXPECT().Next("0 14 * * *", s.now).Return(next, nil)
	s.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *job.ScheduledTicket) error {
			s.Equal("0 14 * * *", t.CronExpression)
			s.Require().NotNil(t.NextExecution)
			s.Equal(next, *t.NextExecution)
			return nil
		})
	s.views.EXPECT().GetByID(gomock.Any(), id).Return(&queries.ScheduledTicketView{ID: id}, nil)

	_, err := s.cmds.Update(context.Background(), id, reqdto.UpdateScheduledTicketRequest{
		CronExpression: ptr.To("0 14 * * *"),
	})
	s.Require().NoError(err)
}

func (s *TicketCommandsTestSuite) TestUpdate_SameCronKeepsSchedule() {
	id := uuid.New()
	next := s.now.Add(time.Hour)
	existing := &job.ScheduledTicket{
		ID:             id,
		Name:           "daily-checklist",
		CronExpression: "0 8 * * *",
		NextExecution:  &next,
		IsActive:       true,
	}

	s.repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
	s.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *job.ScheduledTicket) error {
			s.Equal("renamed", t.Name)
			s.Equal(&next, t.NextExecution)
			return nil
		})
	s.views.EXPECT().GetByID(gomock.Any(), id).Return(&queries.ScheduledTicketView{ID: id}, nil)

	_, err := s.cmds.Update(context.Background(), id, reqdto.UpdateScheduledTicketRequest{
		Name: ptr.To("renamed"),
	})
	s.Require().NoError(err)
}

func (s *TicketCommandsTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.repo.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("scheduled ticket not found", nil, infra.KindNotFound))

	_, err := s.cmds.Update(context.Background(), id, reqdto.UpdateScheduledTicketRequest{})
	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrScheduledJobNotFound))
}

func (s *TicketCommandsTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.repo.EXPECT().Delete(gomock.Any(), id).
		Return(infra.WrapRepoErr("scheduled ticket not found", nil, infra.KindNotFound))

	err := s.cmds.Delete(context.Background(), id)
	s.Require().Error(err)
	s.True(errors.Is(err, errs.ErrScheduledJobNotFound))
}

func TestTicketCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(TicketCommandsTestSuite))
}
