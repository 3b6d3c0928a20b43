package core

import (
	"context"
	"fmt"

	"hrconsole/internal/platform/memstore"
)

// Service exposes the employee and department accessors. Both tables are
// independent; nothing here coordinates cross-entity writes, so deleting an
// employee never touches departments or any other store.
type Service struct {
	Employees   *memstore.Table[Employee]
	Departments *memstore.Table[Department]
}

func NewService(latency memstore.Latency) *Service {
	return &Service{
		Employees: memstore.NewTable(
			func(e Employee) int { return e.ID },
			func(e *Employee, id int) { e.ID = id },
			latency,
		),
		Departments: memstore.NewTable(
			func(d Department) int { return d.ID },
			func(d *Department, id int) { d.ID = id },
			latency,
		),
	}
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.Employees.List(ctx)
}

func (s *Service) GetEmployee(ctx context.Context, id int) (Employee, bool, error) {
	return s.Employees.Get(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	return s.Employees.Create(ctx, emp)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int, patch EmployeePatch) (Employee, error) {
	emp, err := s.Employees.Update(ctx, id, patch.Apply)
	if err != nil {
		return Employee{}, fmt.Errorf("employee %d: %w", id, err)
	}
	return emp, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int) error {
	if err := s.Employees.Delete(ctx, id); err != nil {
		return fmt.Errorf("employee %d: %w", id, err)
	}
	return nil
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.Departments.List(ctx)
}

func (s *Service) GetDepartment(ctx context.Context, id int) (Department, bool, error) {
	return s.Departments.Get(ctx, id)
}

func (s *Service) CreateDepartment(ctx context.Context, dept Department) (Department, error) {
	return s.Departments.Create(ctx, dept)
}

func (s *Service) UpdateDepartment(ctx context.Context, id int, patch DepartmentPatch) (Department, error) {
	dept, err := s.Departments.Update(ctx, id, patch.Apply)
	if err != nil {
		return Department{}, fmt.Errorf("department %d: %w", id, err)
	}
	return dept, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id int) error {
	if err := s.Departments.Delete(ctx, id); err != nil {
		return fmt.Errorf("department %d: %w", id, err)
	}
	return nil
}
