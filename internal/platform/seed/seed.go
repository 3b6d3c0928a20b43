// Package seed loads the embedded fixtures every store starts from. All
// state is volatile: a restart resets the stores to exactly this data.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"hrconsole/internal/domain/core"
	"hrconsole/internal/domain/leave"
	"hrconsole/internal/domain/performance"
)

//go:embed fixtures/*.json
var fixtures embed.FS

type Data struct {
	Employees     []core.Employee
	Departments   []core.Department
	LeaveRequests []leave.LeaveRequest
	Reviews       []performance.Review
}

func Load() (Data, error) {
	var data Data
	if err := loadFixture("employees.json", &data.Employees); err != nil {
		return Data{}, err
	}
	if err := loadFixture("departments.json", &data.Departments); err != nil {
		return Data{}, err
	}
	if err := loadFixture("leave_requests.json", &data.LeaveRequests); err != nil {
		return Data{}, err
	}
	if err := loadFixture("performance_reviews.json", &data.Reviews); err != nil {
		return Data{}, err
	}
	return data, nil
}

func loadFixture(name string, target any) error {
	raw, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}
