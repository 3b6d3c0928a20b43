package notifications

const (
	TypeEmployeeCreated = "employee_created"
	TypeEmployeeUpdated = "employee_updated"
	TypeLeaveRequested  = "leave_requested"
	TypeLeaveApproved   = "leave_approved"
	TypeLeaveRejected   = "leave_rejected"
)

// MaxActivities caps the feed after sorting newest first.
const MaxActivities = 20
