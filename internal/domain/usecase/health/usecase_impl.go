package health

import (
	"context"

	"todo-list/internal/domain/gateway/flag"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/model"
)

type healthUseCase struct {
	flagGateway flag.FlagGateway
	userGateway user.UserGateway
	publisher   queue.EventPublisher
}

func NewHealthUseCase(flagGateway flag.FlagGateway, userGateway user.UserGateway, publisher queue.EventPublisher) UseCase {
	return &healthUseCase{
		flagGateway: flagGateway,
		userGateway: userGateway,
		publisher:   publisher,
	}
}

// CheckHealth is UP when the flag store and user registry are UP. The event
// publisher may also be UNKNOWN since events are best effort.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	flagHealth := useCase.flagGateway.Health(ctx)
	userHealth := useCase.userGateway.Health(ctx)
	eventHealth := useCase.publisher.Health(ctx)

	overallStatus := model.StatusUp
	if flagHealth.Status != model.StatusUp || userHealth.Status != model.StatusUp || eventHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		FlagStore: flagHealth,
		Users:     userHealth,
		Events:    eventHealth,
	}
}
