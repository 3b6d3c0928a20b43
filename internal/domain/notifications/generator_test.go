package notifications

import (
	"context"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/platform/memstore"
)

func fixtureEmployees(now time.Time, n int) []core.Employee {
	employees := make([]core.Employee, 0, n)
	for i := 1; i <= n; i++ {
		employees = append(employees, core.Employee{
			ID:         i,
			FirstName:  "Emp",
			LastName:   string(rune('A' + i - 1)),
			Department: "Engineering",
			Role:       "Engineer",
			Status:     core.StatusActive,
			StartDate:  now.AddDate(0, 0, -i),
		})
	}
	return employees
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	employees := fixtureEmployees(now, 4)
	requests := []leave.LeaveRequest{
		{ID: 1, EmployeeID: 1, Type: "Vacation", Status: leave.StatusApproved, ApprovedBy: "Dana Whitfield",
			StartDate: now.AddDate(0, 0, 3), EndDate: now.AddDate(0, 0, 5)},
		{ID: 2, EmployeeID: 2, Type: "Sick", Status: leave.StatusPending,
			StartDate: now.AddDate(0, 0, 1), EndDate: now.AddDate(0, 0, 2)},
	}

	first := Generate(employees, requests, now, rand.New(rand.NewSource(42)))
	second := Generate(employees, requests, now, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed must produce the same feed")
	}

	other := Generate(employees, requests, now, rand.New(rand.NewSource(7)))
	if reflect.DeepEqual(first, other) {
		t.Fatal("different seeds should not collide on timestamps")
	}
}

func TestGenerateSortsNewestFirstAndCaps(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	employees := fixtureEmployees(now, 15)
	requests := make([]leave.LeaveRequest, 0, 15)
	for i := 1; i <= 15; i++ {
		requests = append(requests, leave.LeaveRequest{
			ID: i, EmployeeID: i, Type: "Vacation", Status: leave.StatusApproved,
			StartDate: now.AddDate(0, 0, i), EndDate: now.AddDate(0, 0, i+2),
		})
	}

	feed := Generate(employees, requests, now, rand.New(rand.NewSource(1)))
	if len(feed) != MaxActivities {
		t.Fatalf("expected %d activities, got %d", MaxActivities, len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Fatalf("feed not sorted at index %d", i)
		}
	}
}

func TestGenerateSkipsDanglingEmployee(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	employees := []core.Employee{
		{ID: 1, FirstName: "Only", LastName: "One", Status: core.StatusActive, StartDate: now.AddDate(-1, 0, 0)},
	}
	requests := []leave.LeaveRequest{
		{ID: 1, EmployeeID: 99, Type: "Vacation", Status: leave.StatusApproved,
			StartDate: now, EndDate: now.AddDate(0, 0, 1)},
	}

	feed := Generate(employees, requests, now, rand.New(rand.NewSource(3)))
	for _, activity := range feed {
		if activity.EmployeeID == 99 {
			t.Fatalf("dangling reference surfaced: %+v", activity)
		}
	}
}

func TestGenerateLeaveDecisionDescriptions(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	employees := []core.Employee{
		{ID: 1, FirstName: "Ada", LastName: "Okafor", Status: core.StatusActive, StartDate: now.AddDate(-1, 0, 0)},
	}
	requests := []leave.LeaveRequest{
		{ID: 1, EmployeeID: 1, Type: "Vacation", Status: leave.StatusApproved, ApprovedBy: "Dana Whitfield",
			StartDate: now, EndDate: now.AddDate(0, 0, 2)},
	}

	feed := Generate(employees, requests, now, rand.New(rand.NewSource(5)))
	var decision *Activity
	for i := range feed {
		if feed[i].Type == TypeLeaveApproved {
			decision = &feed[i]
		}
	}
	if decision == nil {
		t.Fatal("no approval activity generated")
	}
	want := "vacation leave request was approved by Dana Whitfield"
	if decision.Description != want {
		t.Fatalf("description: %q", decision.Description)
	}
	if decision.EmployeeName != "Ada Okafor" {
		t.Fatalf("employee name: %q", decision.EmployeeName)
	}
}

func TestServiceReadFlags(t *testing.T) {
	ctx := context.Background()
	svc := NewService([]Activity{
		{ID: 1, Type: TypeEmployeeCreated, Read: false},
		{ID: 2, Type: TypeLeaveRequested, Read: false},
		{ID: 3, Type: TypeLeaveApproved, Read: true},
	}, memstore.Latency{})

	count, err := svc.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	updated, err := svc.MarkRead(ctx, 1)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !updated.Read {
		t.Fatal("activity should be read")
	}

	if err := svc.MarkAllRead(ctx); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	count, err = svc.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 unread, got %d", count)
	}
}
