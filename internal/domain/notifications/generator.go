// Package notifications derives the activity feed once at startup by
// scanning the employee and leave stores. The feed is synthetic: timestamps
// and read flags come from an injectable random source so tests can pin the
// output with a fixed seed.
package notifications

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
)

const recentHireWindow = 30 * 24 * time.Hour

type Activity struct {
	ID           int       `json:"id"`
	Type         string    `json:"type"`
	EmployeeID   int       `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Photo        string    `json:"employeePhoto,omitempty"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
	Read         bool      `json:"read"`
}

// Generate scans employees and leave requests and synthesizes the activity
// feed: joins within the trailing 30 days, random profile updates, leave
// submissions, and leave decisions. Output is sorted newest first and
// truncated to MaxActivities. Deterministic for a fixed now and rng.
func Generate(employees []core.Employee, requests []leave.LeaveRequest, now time.Time, rng *rand.Rand) []Activity {
	var activities []Activity
	id := 1

	byID := make(map[int]core.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	for _, emp := range employees {
		if now.Sub(emp.StartDate) < recentHireWindow {
			activities = append(activities, Activity{
				ID:           id,
				Type:         TypeEmployeeCreated,
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Photo:        emp.Photo,
				Description:  fmt.Sprintf("joined the %s department as %s", emp.Department, emp.Role),
				Timestamp:    emp.StartDate.Add(time.Duration(rng.Float64() * float64(24 * time.Hour))),
				Read:         rng.Float64() > 0.3,
			})
			id++
		}

		if rng.Float64() > 0.7 {
			activities = append(activities, Activity{
				ID:           id,
				Type:         TypeEmployeeUpdated,
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName(),
				Photo:        emp.Photo,
				Description:  "updated their profile information",
				Timestamp:    now.Add(-time.Duration(rng.Float64() * float64(7 * 24 * time.Hour))),
				Read:         rng.Float64() > 0.4,
			})
			id++
		}
	}

	for _, req := range requests {
		emp, ok := byID[req.EmployeeID]
		if !ok {
			// Dangling employee reference; the feed just skips it.
			continue
		}

		activities = append(activities, Activity{
			ID:           id,
			Type:         TypeLeaveRequested,
			EmployeeID:   req.EmployeeID,
			EmployeeName: emp.FullName(),
			Photo:        emp.Photo,
			Description: fmt.Sprintf("requested %s leave from %s to %s",
				strings.ToLower(req.Type), req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02")),
			Timestamp: now.Add(-time.Duration(rng.Float64() * float64(14 * 24 * time.Hour))),
			Read:      rng.Float64() > 0.3,
		})
		id++

		if req.Status != leave.StatusPending {
			activityType := TypeLeaveRejected
			if req.Status == leave.StatusApproved {
				activityType = TypeLeaveApproved
			}
			description := fmt.Sprintf("%s leave request was %s", strings.ToLower(req.Type), strings.ToLower(req.Status))
			if req.ApprovedBy != "" {
				description += " by " + req.ApprovedBy
			}
			activities = append(activities, Activity{
				ID:           id,
				Type:         activityType,
				EmployeeID:   req.EmployeeID,
				EmployeeName: emp.FullName(),
				Photo:        emp.Photo,
				Description:  description,
				Timestamp:    now.Add(-time.Duration(rng.Float64() * float64(10 * 24 * time.Hour))),
				Read:         rng.Float64() > 0.5,
			})
			id++
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > MaxActivities {
		activities = activities[:MaxActivities]
	}
	return activities
}
