package memdate

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

type Period int

const (
	PeriodYear Period = iota
	PeriodQuarter
	PeriodMonth
	PeriodDay
)

var allPeriods = []Period{PeriodYear, PeriodQuarter, PeriodMonth, PeriodDay}

func (p Period) String() string {
	switch p {
	case PeriodYear:
		return "year"
	case PeriodQuarter:
		return "quarter"
	case PeriodMonth:
		return "month"
	case PeriodDay:
		return "day"
	}

	return "unknown"
}

// Label names the bucket of period p that contains t, e.g. "2023", "2023-Q4", "2023-12",
// "2023-12-21".
func (p Period) Label(t time.Time) string {
	switch p {
	case PeriodYear:
		return fmt.Sprintf("%04d", t.Year())
	case PeriodQuarter:
		return fmt.Sprintf("%04d-Q%d", t.Year(), now.With(t).Quarter())
	case PeriodMonth:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	case PeriodDay:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	}

	return ""
}

// Begin returns the first instant of the bucket of period p that contains t.
func (p Period) Begin(t time.Time) time.Time {
	n := now.With(t)

	switch p {
	case PeriodYear:
		return n.BeginningOfYear()
	case PeriodQuarter:
		return n.BeginningOfQuarter()
	case PeriodMonth:
		return n.BeginningOfMonth()
	}

	return n.BeginningOfDay()
}
