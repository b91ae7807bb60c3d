package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = NewError(KindValidation, "invalid date")

// Date is a calendar date without a time component.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate.Wrap(fmt.Errorf("failed to parse date: '%s'", s))
	}
	return Date{t: t}, nil
}

// Today returns the current date in loc.
func Today(loc *time.Location) Date {
	return DateOf(time.Now(), loc)
}

// DateOf returns the calendar date of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return NewDate(y, m, d)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Humanize renders the date as e.g. "Monday, 02 January 2006".
func (d Date) Humanize() string {
	return d.t.Format("Monday, 02 January 2006")
}

func (d Date) Previous() Date {
	return Date{t: d.t.AddDate(0, 0, -1)}
}

func (d Date) Next() Date {
	return Date{t: d.t.AddDate(0, 0, 1)}
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}
