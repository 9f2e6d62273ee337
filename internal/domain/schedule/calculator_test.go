package schedule_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain/schedule"
	"opsboard/internal/pkg/errs"
)

func mustCalculator(t *testing.T) *schedule.Calculator {
	t.Helper()
	calc, err := schedule.NewCalculator("America/Sao_Paulo")
	require.NoError(t, err)
	return calc
}

func TestNewCalculator_InvalidTimezone(t *testing.T) {
	_, err := schedule.NewCalculator("Not/AZone")
	assert.Error(t, err)
}

func TestNext_DailyAtEight(t *testing.T) {
	calc := mustCalculator(t)
	loc := calc.Location()

	// 07:59 local advances to 08:00 the same day
	from := time.Date(2025, 3, 10, 7, 59, 0, 0, loc)
	next, err := calc.Next("0 8 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, loc), next.In(loc))

	// 08:00 sharp advances to tomorrow, never returns from itself
	from = time.Date(2025, 3, 10, 8, 0, 0, 0, loc)
	next, err = calc.Next("0 8 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 11, 8, 0, 0, 0, loc), next.In(loc))
}

func TestNext_StrictlyAfterFrom(t *testing.T) {
	calc := mustCalculator(t)

	from := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	next, err := calc.Next("*/15 * * * *", from)
	require.NoError(t, err)
	assert.True(t, next.After(from))
}

func TestNext_EvaluatesInConfiguredZone(t *testing.T) {
	calc := mustCalculator(t)
	loc := calc.Location()

	// 10:00 UTC is 07:00 in Sao Paulo, so the 08:00 slot is still ahead today
	from := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	next, err := calc.Next("0 8 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 1, 8, 0, 0, 0, loc), next.In(loc))
}

func TestNext_MalformedExpression(t *testing.T) {
	calc := mustCalculator(t)

	_, err := calc.Next("not a cron", time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidCronExpr))
}

func TestValidate(t *testing.T) {
	calc := mustCalculator(t)

	assert.NoError(t, calc.Validate("0 8 * * *"))
	assert.NoError(t, calc.Validate("*/5 * * * *"))

	err := calc.Validate("61 8 * * *")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidCronExpr))
}
