package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	"opsboard/internal/pkg/errs"
)

// Calculator evaluates standard 5-field cron expressions
// (minute hour day-of-month month day-of-week) in a single fixed timezone.
// It is a pure function of (expression, from); persistence never computes
// schedules.
type Calculator struct {
	parser cron.Parser
	loc    *time.Location
}

func NewCalculator(timezone string) (*Calculator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errs.Wrap(err, "load schedule timezone")
	}
	return &Calculator{
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
		loc:    loc,
	}, nil
}

// Next returns the first timestamp strictly after from that matches expr.
func (c *Calculator) Next(expr string, from time.Time) (time.Time, error) {
	sched, err := c.parser.Parse(expr)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrap(err, "parse cron expression"), errs.ErrInvalidCronExpr)
	}
	return sched.Next(from.In(c.loc)), nil
}

// Validate reports whether expr parses under the 5-field grammar.
func (c *Calculator) Validate(expr string) error {
	if _, err := c.parser.Parse(expr); err != nil {
		return errs.Mark(errs.Wrap(err, "parse cron expression"), errs.ErrInvalidCronExpr)
	}
	return nil
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}
