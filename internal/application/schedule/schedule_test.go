package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-list/configs"
	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/gateway/flag"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/model"
	"todo-list/internal/domain/usecase/health"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/util/idutils"
)

type fakeLock struct {
	free     bool
	err      error
	locked   int
	unlocked int
}

func (l *fakeLock) TryLock(ctx context.Context) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.free {
		l.locked++
	}
	return l.free, nil
}

func (l *fakeLock) Unlock(ctx context.Context) error {
	l.unlocked++
	return nil
}

func newToDoUseCase(t *testing.T) (todo.UseCase, user.UserGateway) {
	t.Helper()
	users := user.NewMemoryUserGateway(
		entity.User{ID: "p2", Name: "Player 2"},
		entity.User{ID: "p1", Name: "Player 1"},
	)
	useCase := todo.NewToDoUseCase(configs.NewModuleConfig(""), flag.NewMemoryFlagGateway(), users,
		queue.LogEventPublisher{}, idutils.NewRandomIDGenerator(idutils.DefaultLength), 0)
	return useCase, users
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()
	useCase, users := newToDoUseCase(t)

	done := true
	useCase.CreateToDo(ctx, "p1", model.CreateToDoDTO{Label: "a"})
	useCase.CreateToDo(ctx, "p1", model.CreateToDoDTO{Label: "b", IsDone: &done})
	useCase.CreateToDo(ctx, "p1", model.CreateToDoDTO{Label: "c"})

	summaries, err := NewToDoSummaryScheduler(useCase, users, "@hourly", nil).Summarize(ctx)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := []UserSummary{{UserID: "p1", Pending: 2, Done: 1}, {UserID: "p2"}}
	if len(summaries) != len(want) {
		t.Fatalf("Summarize: got %v", summaries)
	}
	for i := range want {
		if summaries[i] != want[i] {
			t.Errorf("summary %d: got %+v, want %+v", i, summaries[i], want[i])
		}
	}
}

func TestExecuteScheduledTaskHonoursLock(t *testing.T) {
	useCase, users := newToDoUseCase(t)

	tests := []struct {
		name         string
		lock         *fakeLock
		wantUnlocked int
	}{
		{"lock free", &fakeLock{free: true}, 1},
		{"lock held elsewhere", &fakeLock{}, 0},
		{"lock error", &fakeLock{err: errors.New("redis down")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewToDoSummaryScheduler(useCase, users, "@hourly", tt.lock).ExecuteScheduledTask(context.Background())
			if tt.lock.unlocked != tt.wantUnlocked {
				t.Errorf("unlocked: got %d, want %d", tt.lock.unlocked, tt.wantUnlocked)
			}
		})
	}
}

func TestInitToDoSummaryScheduleTasksRejectsBadCron(t *testing.T) {
	useCase, users := newToDoUseCase(t)
	scheduler := NewToDoSummaryScheduler(useCase, users, "not a cron", nil)
	if err := scheduler.InitToDoSummaryScheduleTasks(context.Background()); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

type downUsers struct{ user.UserGateway }

func (downUsers) Health(ctx context.Context) model.ComponentHealthStatus {
	return model.DownStatus(errors.New("connection refused"), nil)
}

func TestHealthSchedulerCheck(t *testing.T) {
	useCase := health.NewHealthUseCase(flag.NewMemoryFlagGateway(), downUsers{user.NewMemoryUserGateway()}, queue.LogEventPublisher{})

	scheduler, err := NewHealthScheduler(useCase, time.Minute)
	if err != nil {
		t.Fatalf("NewHealthScheduler: %v", err)
	}
	down := scheduler.Check(context.Background())
	if len(down) != 1 || down[0] != "users" {
		t.Errorf("Check: got %v, want [users]", down)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := scheduler.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()
}
