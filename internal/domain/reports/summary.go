package reports

import (
	"time"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
)

const dashboardListLimit = 5

type DashboardSummary struct {
	TotalEmployees       int                   `json:"totalEmployees"`
	ActiveEmployees      int                   `json:"activeEmployees"`
	EmployeesOnLeave     int                   `json:"employeesOnLeave"`
	PendingLeaveRequests int                   `json:"pendingLeaveRequests"`
	RecentHires          []core.Employee       `json:"recentHires"`
	UpcomingLeave        []leave.LeaveRequest  `json:"upcomingLeave"`
	Departments          []DepartmentHeadcount `json:"departments"`
}

// BuildDashboard assembles the dashboard projection: headline counts, the
// five most recent hires of the last 30 days, approved leave starting within
// a week, and per-department headcounts.
func BuildDashboard(employees []core.Employee, departments []core.Department, requests []leave.LeaveRequest, now time.Time) DashboardSummary {
	breakdown := StatusBreakdown(employees)
	upcoming := UpcomingLeave(requests, now)
	if len(upcoming) > dashboardListLimit {
		upcoming = upcoming[:dashboardListLimit]
	}
	return DashboardSummary{
		TotalEmployees:       len(employees),
		ActiveEmployees:      breakdown[core.StatusActive],
		EmployeesOnLeave:     breakdown[core.StatusOnLeave],
		PendingLeaveRequests: CountLeaveTotals(requests).Pending,
		RecentHires:          RecentHires(employees, now, DashboardHireWindow, dashboardListLimit),
		UpcomingLeave:        upcoming,
		Departments:          DepartmentHeadcounts(departments, employees),
	}
}

type ReportSummary struct {
	GeneratedAt     time.Time             `json:"generatedAt"`
	TotalEmployees  int                   `json:"totalEmployees"`
	StatusBreakdown map[string]int        `json:"statusBreakdown"`
	Departments     []DepartmentHeadcount `json:"departments"`
	RecentHires     []core.Employee       `json:"recentHires"`
	LeaveTotals     LeaveTotals           `json:"leaveTotals"`
	LeaveTrend      []TrendBucket         `json:"leaveTrend"`
}

// BuildReport assembles the report projection with the wider 90-day hire
// window and the six-month leave trend.
func BuildReport(employees []core.Employee, departments []core.Department, requests []leave.LeaveRequest, now time.Time) ReportSummary {
	return ReportSummary{
		GeneratedAt:     now,
		TotalEmployees:  len(employees),
		StatusBreakdown: StatusBreakdown(employees),
		Departments:     DepartmentHeadcounts(departments, employees),
		RecentHires:     RecentHires(employees, now, ReportHireWindow, 0),
		LeaveTotals:     CountLeaveTotals(requests),
		LeaveTrend:      LeaveTrend(requests, now),
	}
}
