package user

import (
	"context"
	"strconv"
	"sync"

	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/model"
)

// MemoryUserGateway keeps users in insertion order.
type MemoryUserGateway struct {
	mu    sync.RWMutex
	order []string
	users map[string]entity.User
}

var _ UserGateway = (*MemoryUserGateway)(nil)

func NewMemoryUserGateway(seed ...entity.User) *MemoryUserGateway {
	gateway := &MemoryUserGateway{users: make(map[string]entity.User, len(seed))}
	for _, user := range seed {
		gateway.put(user)
	}
	return gateway
}

func (gateway *MemoryUserGateway) put(user entity.User) {
	if _, ok := gateway.users[user.ID]; !ok {
		gateway.order = append(gateway.order, user.ID)
	}
	gateway.users[user.ID] = user
}

func (gateway *MemoryUserGateway) FindAll(ctx context.Context) ([]entity.User, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	users := make([]entity.User, 0, len(gateway.order))
	for _, id := range gateway.order {
		users = append(users, gateway.users[id])
	}
	return users, nil
}

func (gateway *MemoryUserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	user, ok := gateway.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (gateway *MemoryUserGateway) Save(ctx context.Context, user entity.User) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	gateway.put(user)
	return nil
}

func (gateway *MemoryUserGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	return model.UpStatus(map[string]string{
		"driver": "memory",
		"users":  strconv.Itoa(len(gateway.users)),
	})
}
