package notifications

import (
	"context"
	"fmt"

	"hrconsole/internal/platform/memstore"
)

// Service serves the generated feed. Activities are never created through
// the accessor after startup; the only mutation is flipping the read flag.
type Service struct {
	Activities *memstore.Table[Activity]
}

func NewService(activities []Activity, latency memstore.Latency) *Service {
	table := memstore.NewTable(
		func(a Activity) int { return a.ID },
		func(a *Activity, id int) { a.ID = id },
		latency,
	)
	table.Seed(activities)
	return &Service{Activities: table}
}

func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.Activities.List(ctx)
}

func (s *Service) MarkRead(ctx context.Context, id int) (Activity, error) {
	activity, err := s.Activities.Update(ctx, id, func(a *Activity) { a.Read = true })
	if err != nil {
		return Activity{}, fmt.Errorf("activity %d: %w", id, err)
	}
	return activity, nil
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.Activities.UpdateAll(ctx, func(a *Activity) { a.Read = true })
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	activities, err := s.Activities.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, activity := range activities {
		if !activity.Read {
			count++
		}
	}
	return count, nil
}
