package leave

import (
	"context"
	"fmt"

	"hrconsole/internal/platform/memstore"
)

type Service struct {
	Requests *memstore.Table[LeaveRequest]
}

func NewService(latency memstore.Latency) *Service {
	return &Service{
		Requests: memstore.NewTable(
			func(r LeaveRequest) int { return r.ID },
			func(r *LeaveRequest, id int) { r.ID = id },
			latency,
		),
	}
}

func (s *Service) List(ctx context.Context) ([]LeaveRequest, error) {
	return s.Requests.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (LeaveRequest, bool, error) {
	return s.Requests.Get(ctx, id)
}

// Create stores a new request. Status is always forced to Pending and the
// approver cleared, whatever the caller supplied.
func (s *Service) Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	req.Status = StatusPending
	req.ApprovedBy = ""
	return s.Requests.Create(ctx, req)
}

func (s *Service) Update(ctx context.Context, id int, patch LeaveRequestPatch) (LeaveRequest, error) {
	req, err := s.Requests.Update(ctx, id, patch.Apply)
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("leave request %d: %w", id, err)
	}
	return req, nil
}

// SetStatus transitions a request and records who decided it. The approver
// name is written only here, never on plain field updates.
func (s *Service) SetStatus(ctx context.Context, id int, status, approver string) (LeaveRequest, error) {
	req, err := s.Requests.Update(ctx, id, func(r *LeaveRequest) {
		r.Status = status
		r.ApprovedBy = approver
	})
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("leave request %d: %w", id, err)
	}
	return req, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.Requests.Delete(ctx, id); err != nil {
		return fmt.Errorf("leave request %d: %w", id, err)
	}
	return nil
}
