package domain

import (
	"strings"
	"time"
)

type StatusFilter string

const (
	FilterAll       StatusFilter = "All"
	FilterPending   StatusFilter = "Pending"
	FilterFinished  StatusFilter = "Finished"
	FilterPaid      StatusFilter = "Paid"
	FilterUnpaid    StatusFilter = "Unpaid"
	FilterClaimed   StatusFilter = "Claimed"
	FilterUnclaimed StatusFilter = "Unclaimed"
)

var statusFilters = []StatusFilter{
	FilterAll, FilterPending, FilterFinished, FilterPaid, FilterUnpaid, FilterClaimed, FilterUnclaimed,
}

// ParseStatusFilter matches case-insensitively; an empty string means All.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, true
	}
	for _, f := range statusFilters {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}
	return "", false
}

// Matches reports whether a status belongs to the filter. Unclaimed only
// covers finished orders, mirroring the unclaimed income total.
func (f StatusFilter) Matches(s OrderStatus) bool {
	switch f {
	case FilterPending:
		return !s.IsFinished
	case FilterFinished:
		return s.IsFinished
	case FilterPaid:
		return s.IsPaid
	case FilterUnpaid:
		return !s.IsPaid
	case FilterClaimed:
		return s.IsClaimed
	case FilterUnclaimed:
		return s.IsFinished && !s.IsClaimed
	}
	return true
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayWindow returns [start, end) of the calendar day containing t in loc.
func DayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := StartOfDay(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// WithinDayRange compares calendar days only; a nil bound is open.
func WithinDayRange(t time.Time, from, to *time.Time, loc *time.Location) bool {
	day := StartOfDay(t, loc)
	if from != nil && day.Before(StartOfDay(*from, loc)) {
		return false
	}
	if to != nil && day.After(StartOfDay(*to, loc)) {
		return false
	}
	return true
}

// ReportEntry is one row of the laundry status report.
type ReportEntry struct {
	OrderID         string
	CustomerID      string
	CustomerName    string
	ServiceTypeName string
	Weight          float64
	Instructions    string
	Gross           float64
	CreatedAt       time.Time
	Status          OrderStatus
}

func FilterReport(entries []ReportEntry, filter StatusFilter, from, to *time.Time, loc *time.Location) []ReportEntry {
	out := make([]ReportEntry, 0, len(entries))
	for _, e := range entries {
		if !filter.Matches(e.Status) {
			continue
		}
		if !WithinDayRange(e.CreatedAt, from, to, loc) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DashboardCounts holds independent counters; an order is counted once in
// each of the three pairs.
type DashboardCounts struct {
	CustomersToday int
	Pending        int
	Finished       int
	Paid           int
	Unpaid         int
	Claimed        int
	Unclaimed      int
}

// StatusSnapshot is the slice of an order needed to build dashboard counts.
type StatusSnapshot struct {
	CustomerID string
	CreatedAt  time.Time
	Status     OrderStatus
}

func CountDashboard(rows []StatusSnapshot, now time.Time, loc *time.Location) DashboardCounts {
	var c DashboardCounts
	start, end := DayWindow(now, loc)
	today := make(map[string]struct{})

	for _, r := range rows {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			today[r.CustomerID] = struct{}{}
		}
		if r.Status.IsFinished {
			c.Finished++
		} else {
			c.Pending++
		}
		if r.Status.IsPaid {
			c.Paid++
		} else {
			c.Unpaid++
		}
		if r.Status.IsClaimed {
			c.Claimed++
		} else {
			c.Unclaimed++
		}
	}
	c.CustomersToday = len(today)
	return c
}

type IncomeSummary struct {
	TotalIncome    float64
	TodayIncome    float64
	ToCollect      float64
	UnclaimedTotal float64
}
