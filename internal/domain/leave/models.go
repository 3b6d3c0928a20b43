package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequest references its employee by id with no foreign-key check.
// ApprovedBy is set only when a request leaves the Pending state.
type LeaveRequest struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	Type       string    `json:"type"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	ApprovedBy string    `json:"approvedBy,omitempty"`
}

// LeaveRequestPatch deliberately has no ApprovedBy; the approver is recorded
// through the status transition only.
type LeaveRequestPatch struct {
	EmployeeID *int       `json:"employeeId"`
	Type       *string    `json:"type"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	Reason     *string    `json:"reason"`
	Status     *string    `json:"status"`
}

func (p LeaveRequestPatch) Apply(req *LeaveRequest) {
	if p.EmployeeID != nil {
		req.EmployeeID = *p.EmployeeID
	}
	if p.Type != nil {
		req.Type = *p.Type
	}
	if p.StartDate != nil {
		req.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		req.EndDate = *p.EndDate
	}
	if p.Reason != nil {
		req.Reason = *p.Reason
	}
	if p.Status != nil {
		req.Status = *p.Status
	}
}
