package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
)

// Locker guards a run across replicas. *redis.Lock satisfies it.
type Locker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// UserSummary counts the todos of one user.
type UserSummary struct {
	UserID  string
	Pending int
	Done    int
}

// ToDoSummaryScheduler periodically logs how many todos every user has open.
type ToDoSummaryScheduler struct {
	cron        *cron.Cron
	cronExpr    string
	useCase     todo.UseCase
	userGateway user.UserGateway
	lock        Locker
}

// NewToDoSummaryScheduler builds the scheduler. lock may be nil when only one
// replica runs.
func NewToDoSummaryScheduler(useCase todo.UseCase, userGateway user.UserGateway, cronExpr string, lock Locker) *ToDoSummaryScheduler {
	return &ToDoSummaryScheduler{
		cron:        cron.New(),
		cronExpr:    cronExpr,
		useCase:     useCase,
		userGateway: userGateway,
		lock:        lock,
	}
}

// InitToDoSummaryScheduleTasks registers the summary job and starts the cron.
// The cron stops when ctx is done.
func (scheduler *ToDoSummaryScheduler) InitToDoSummaryScheduleTasks(ctx context.Context) error {
	_, err := scheduler.cron.AddFunc(scheduler.cronExpr, func() { scheduler.ExecuteScheduledTask(ctx) })
	if err != nil {
		return fmt.Errorf("schedule todo summary %q: %w", scheduler.cronExpr, err)
	}

	scheduler.cron.Start()
	go func() {
		<-ctx.Done()
		<-scheduler.cron.Stop().Done()
	}()
	return nil
}

// ExecuteScheduledTask runs one summary unless another replica holds the lock.
func (scheduler *ToDoSummaryScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.NewString()

	if scheduler.lock != nil {
		acquired, err := scheduler.lock.TryLock(ctx)
		if err != nil {
			log.Error(msg.GetMessage("todo-list.summary.failed"), zap.String("request_id", requestID), zap.Error(err))
			return
		}
		if !acquired {
			log.Info(msg.GetMessage("todo-list.summary.skipped"), zap.String("request_id", requestID))
			return
		}
		defer func() {
			if err := scheduler.lock.Unlock(ctx); err != nil {
				log.Warn("failed to release summary lock", zap.String("request_id", requestID), zap.Error(err))
			}
		}()
	}

	log.Info(msg.GetMessage("todo-list.summary.start"), zap.String("request_id", requestID))

	summaries, err := scheduler.Summarize(ctx)
	if err != nil {
		log.Error(msg.GetMessage("todo-list.summary.failed"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	total := 0
	for _, summary := range summaries {
		total += summary.Pending + summary.Done
		log.Info(msg.GetMessage("todo-list.summary.user", summary.UserID, summary.Pending, summary.Done),
			zap.String("request_id", requestID))
	}
	log.Info(msg.GetMessage("todo-list.summary.end", len(summaries), total), zap.String("request_id", requestID))
}

// Summarize counts pending and done todos per registered user, ordered by user id.
func (scheduler *ToDoSummaryScheduler) Summarize(ctx context.Context) ([]UserSummary, error) {
	users, err := scheduler.userGateway.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	all, err := scheduler.useCase.AllToDos(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*UserSummary, len(users))
	summaries := make([]*UserSummary, 0, len(users))
	for _, u := range users {
		summary := &UserSummary{UserID: u.ID}
		byUser[u.ID] = summary
		summaries = append(summaries, summary)
	}
	for _, toDo := range all {
		summary, ok := byUser[toDo.UserID]
		if !ok {
			continue
		}
		if toDo.IsDone {
			summary.Done++
		} else {
			summary.Pending++
		}
	}

	result := make([]UserSummary, len(summaries))
	for i, summary := range summaries {
		result[i] = *summary
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}
