// Package daterange resolves the [start, end] interval a report covers from
// explicit dates, a month token, or the previous-month default.
package daterange

import (
	"fmt"
	"time"

	"mmexport/internal/core"
)

// Query holds the user inputs that select a date range. Empty fields are
// absent.
type Query struct {
	Start string
	End   string
	Month string
}

// Resolver computes start and end once and then keeps them.
//
// Start defaults to the first day of the month before now. End defaults to
// the last day of Start's month and is derived from Start when first read:
// calling SetStart after End was read leaves End unchanged.
type Resolver struct {
	now   func() time.Time
	start *core.Date
	end   *core.Date
}

type Option func(*Resolver)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start returns the cached start date, computing the default on first read.
func (r *Resolver) Start() core.Date {
	if r.start == nil {
		d := PreviousMonth(r.now()).Start
		r.start = &d
	}
	return *r.start
}

// End returns the cached end date, computing the last day of Start's month
// on first read.
func (r *Resolver) End() core.Date {
	if r.end == nil {
		d := r.Start().LastOfMonth()
		r.end = &d
	}
	return *r.end
}

// SetStart overwrites the start date. A nil date clears it.
func (r *Resolver) SetStart(d *core.Date) {
	if d == nil {
		r.start = nil
		return
	}
	v := *d
	r.start = &v
}

// SetEnd overwrites the end date. A nil date clears it.
func (r *Resolver) SetEnd(d *core.Date) {
	if d == nil {
		r.end = nil
		return
	}
	v := *d
	r.end = &v
}

// SetMonth sets both dates to the full month of the current year. An
// unresolved token clears both dates so the default applies.
func (r *Resolver) SetMonth(token string) int {
	now := r.now()
	month := ParseMonth(token, now)
	if month == Unresolved {
		r.SetStart(nil)
		r.SetEnd(nil)
		return month
	}
	rng := core.MonthRange(now.Year(), time.Month(month))
	r.SetStart(&rng.Start)
	r.SetEnd(&rng.End)
	return month
}

// Range returns the current [Start, End] pair.
func (r *Resolver) Range() core.DateRange {
	return core.DateRange{Start: r.Start(), End: r.End()}
}

// ResolveExplicit sets the explicit dates and returns the range. Empty
// strings are absent. Malformed dates and an end before the start wrap
// core.ErrArgument.
func (r *Resolver) ResolveExplicit(start, end string) (core.DateRange, error) {
	startDate, err := parseOptional(start)
	if err != nil {
		return core.DateRange{}, fmt.Errorf("start: %w", err)
	}
	endDate, err := parseOptional(end)
	if err != nil {
		return core.DateRange{}, fmt.Errorf("end: %w", err)
	}
	r.SetStart(startDate)
	r.SetEnd(endDate)

	rng := r.Range()
	if err := rng.Validate(); err != nil {
		return core.DateRange{}, err
	}
	return rng, nil
}

// ResolveMonth sets the range to the month named by token. Unresolved
// tokens yield the previous-month default.
func (r *Resolver) ResolveMonth(token string) core.DateRange {
	r.SetMonth(token)
	return r.Range()
}

// Resolve applies q: a month, when given, takes precedence over explicit
// dates.
func (r *Resolver) Resolve(q Query) (core.DateRange, error) {
	if q.Month != "" {
		return r.ResolveMonth(q.Month), nil
	}
	return r.ResolveExplicit(q.Start, q.End)
}

// PreviousMonth returns the full calendar month before now.
func PreviousMonth(now time.Time) core.DateRange {
	year, month := now.Year(), now.Month()-1
	if month == 0 {
		year, month = year-1, time.December
	}
	return core.MonthRange(year, month)
}

func parseOptional(s string) (*core.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
