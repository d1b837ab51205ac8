package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/health"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
)

// HealthScheduler runs the health check on a fixed interval and logs every
// component that is DOWN.
type HealthScheduler struct {
	scheduler gocron.Scheduler
	interval  time.Duration
	useCase   health.UseCase
}

func NewHealthScheduler(useCase health.UseCase, interval time.Duration) (*HealthScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &HealthScheduler{scheduler: scheduler, interval: interval, useCase: useCase}, nil
}

// Start schedules the check and shuts the scheduler down when ctx is done.
func (s *HealthScheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.Check(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("schedule health check every %s: %w", s.interval, err)
	}

	s.scheduler.Start()
	go func() {
		<-ctx.Done()
		if err := s.scheduler.Shutdown(); err != nil {
			log.Warn("health scheduler shutdown failed", zap.Error(err))
		}
	}()
	return nil
}

// Check runs the health use case once and returns the components that are DOWN.
func (s *HealthScheduler) Check(ctx context.Context) []string {
	response := s.useCase.CheckHealth(ctx)

	components := map[string]model.ComponentHealthStatus{
		"flagStore": response.FlagStore,
		"users":     response.Users,
		"events":    response.Events,
	}

	var down []string
	for _, name := range []string{"flagStore", "users", "events"} {
		status := components[name]
		if status.Status != model.StatusDown {
			continue
		}
		down = append(down, name)
		log.Warn(msg.GetMessage("todo-list.health.down", name, string(status.Status)),
			zap.String("message", status.Details["message"]))
	}
	return down
}
