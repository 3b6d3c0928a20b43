package performance

import (
	"context"
	"fmt"

	"hrconsole/internal/platform/memstore"
)

type Service struct {
	Reviews *memstore.Table[Review]
}

func NewService(latency memstore.Latency) *Service {
	return &Service{
		Reviews: memstore.NewTable(
			func(r Review) int { return r.ID },
			func(r *Review, id int) { r.ID = id },
			latency,
		),
	}
}

func (s *Service) List(ctx context.Context) ([]Review, error) {
	return s.Reviews.List(ctx)
}

// ListByEmployee filters reviews for one employee, preserving store order.
func (s *Service) ListByEmployee(ctx context.Context, employeeID int) ([]Review, error) {
	reviews, err := s.Reviews.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Review, 0, len(reviews))
	for _, review := range reviews {
		if review.EmployeeID == employeeID {
			out = append(out, review)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int) (Review, bool, error) {
	return s.Reviews.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, review Review) (Review, error) {
	return s.Reviews.Create(ctx, review)
}

func (s *Service) Update(ctx context.Context, id int, patch ReviewPatch) (Review, error) {
	review, err := s.Reviews.Update(ctx, id, patch.Apply)
	if err != nil {
		return Review{}, fmt.Errorf("performance review %d: %w", id, err)
	}
	return review, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.Reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("performance review %d: %w", id, err)
	}
	return nil
}
