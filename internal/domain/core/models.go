package core

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

// Employee status and department are plain strings: the form layer constrains
// them, the store does not. A ManagerID of zero means no manager.
type Employee struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	ManagerID  int       `json:"managerId,omitempty"`
	StartDate  time.Time `json:"startDate"`
	Status     string    `json:"status"`
	Photo      string    `json:"photo,omitempty"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Department references its manager by employee id; Employee.Department
// references departments by name. Neither side is enforced as a foreign key,
// so deletes can leave dangling references.
type Department struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ManagerID int    `json:"managerId,omitempty"`
}

// EmployeePatch carries a partial update; nil fields keep their current
// values.
type EmployeePatch struct {
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Role       *string    `json:"role"`
	Department *string    `json:"department"`
	ManagerID  *int       `json:"managerId"`
	StartDate  *time.Time `json:"startDate"`
	Status     *string    `json:"status"`
	Photo      *string    `json:"photo"`
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.ManagerID != nil {
		e.ManagerID = *p.ManagerID
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Photo != nil {
		e.Photo = *p.Photo
	}
}

type DepartmentPatch struct {
	Name      *string `json:"name"`
	ManagerID *int    `json:"managerId"`
}

func (p DepartmentPatch) Apply(d *Department) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.ManagerID != nil {
		d.ManagerID = *p.ManagerID
	}
}
