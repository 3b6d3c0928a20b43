// Package reports computes read-only projections from store snapshots. Every
// function is stateless and deterministic for a fixed reference time; callers
// pass the snapshots they already hold, nothing is fetched here.
package reports

import (
	"sort"
	"time"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
)

const (
	DashboardHireWindow = 30 * 24 * time.Hour
	ReportHireWindow    = 90 * 24 * time.Hour
	upcomingLeaveWindow = 7 * 24 * time.Hour
	trendMonths         = 6
	monthLabel          = "Jan 2006"
)

type DepartmentHeadcount struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Active int    `json:"active"`
}

// DepartmentHeadcounts counts employees per department by case-sensitive
// name match, in department store order.
func DepartmentHeadcounts(departments []core.Department, employees []core.Employee) []DepartmentHeadcount {
	out := make([]DepartmentHeadcount, 0, len(departments))
	for _, dept := range departments {
		entry := DepartmentHeadcount{Name: dept.Name}
		for _, emp := range employees {
			if emp.Department != dept.Name {
				continue
			}
			entry.Count++
			if emp.Status == core.StatusActive {
				entry.Active++
			}
		}
		out = append(out, entry)
	}
	return out
}

// StatusBreakdown counts employees grouped by whatever status values the
// snapshot actually contains.
func StatusBreakdown(employees []core.Employee) map[string]int {
	out := make(map[string]int)
	for _, emp := range employees {
		out[emp.Status]++
	}
	return out
}

// RecentHires returns employees whose start date falls within the trailing
// window, newest start date first. A limit of zero means no cap.
func RecentHires(employees []core.Employee, now time.Time, window time.Duration, limit int) []core.Employee {
	cutoff := now.Add(-window)
	out := make([]core.Employee, 0)
	for _, emp := range employees {
		if !emp.StartDate.Before(cutoff) && !emp.StartDate.After(now) {
			out = append(out, emp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UpcomingLeave returns approved requests starting within the next seven
// days, in store order.
func UpcomingLeave(requests []leave.LeaveRequest, now time.Time) []leave.LeaveRequest {
	horizon := now.Add(upcomingLeaveWindow)
	out := make([]leave.LeaveRequest, 0)
	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		if req.StartDate.Before(now) || req.StartDate.After(horizon) {
			continue
		}
		out = append(out, req)
	}
	return out
}

type TrendBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// LeaveTrend buckets requests by the calendar month of their start date over
// the trailing six months, oldest first. Months are anchored to the first of
// the month so the bucketing is stable near month ends.
func LeaveTrend(requests []leave.LeaveRequest, now time.Time) []TrendBucket {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]TrendBucket, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		label := anchor.AddDate(0, -i, 0).Format(monthLabel)
		bucket := TrendBucket{Label: label}
		for _, req := range requests {
			if req.StartDate.Format(monthLabel) == label {
				bucket.Count++
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

type LeaveTotals struct {
	Total    int `json:"total"`
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// CountLeaveTotals groups requests by status.
func CountLeaveTotals(requests []leave.LeaveRequest) LeaveTotals {
	totals := LeaveTotals{Total: len(requests)}
	for _, req := range requests {
		switch req.Status {
		case leave.StatusApproved:
			totals.Approved++
		case leave.StatusPending:
			totals.Pending++
		case leave.StatusRejected:
			totals.Rejected++
		}
	}
	return totals
}
