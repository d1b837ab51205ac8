package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-list/configs"
	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/gateway/flag"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/domain/model"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
	"todo-list/pkg/util/idutils"
)

const (
	DefaultMaxLabelLength = 512
	maxIDAttempts         = 5
)

type toDoUseCase struct {
	module         *configs.ModuleConfig
	flagGateway    flag.FlagGateway
	userGateway    user.UserGateway
	publisher      queue.EventPublisher
	ids            idutils.IDGenerator
	maxLabelLength int
}

func NewToDoUseCase(
	module *configs.ModuleConfig,
	flagGateway flag.FlagGateway,
	userGateway user.UserGateway,
	publisher queue.EventPublisher,
	ids idutils.IDGenerator,
	maxLabelLength int,
) UseCase {
	if publisher == nil {
		publisher = queue.LogEventPublisher{}
	}
	if ids == nil {
		ids = idutils.NewRandomIDGenerator(idutils.DefaultLength)
	}
	if maxLabelLength <= 0 {
		maxLabelLength = DefaultMaxLabelLength
	}
	return &toDoUseCase{
		module:         module,
		flagGateway:    flagGateway,
		userGateway:    userGateway,
		publisher:      publisher,
		ids:            ids,
		maxLabelLength: maxLabelLength,
	}
}

func (useCase *toDoUseCase) GetToDosForUser(ctx context.Context, userID string) (model.ToDos, error) {
	if err := useCase.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return useCase.readToDos(ctx, userID)
}

func (useCase *toDoUseCase) AllToDos(ctx context.Context) (model.ToDos, error) {
	users, err := useCase.userGateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	all := make(model.ToDos)
	for _, u := range users {
		toDos, err := useCase.readToDos(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		for id, toDo := range toDos {
			all[id] = toDo
		}
	}
	return all, nil
}

func (useCase *toDoUseCase) CreateToDo(ctx context.Context, userID string, data model.CreateToDoDTO) (*entity.ToDo, error) {
	label, err := useCase.normalizeLabel(data.Label)
	if err != nil {
		return nil, err
	}
	if err := useCase.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := useCase.readToDos(ctx, userID)
	if err != nil {
		return nil, err
	}
	id, err := useCase.freshID(existing)
	if err != nil {
		return nil, err
	}

	toDo := entity.ToDo{ID: id, Label: label, UserID: userID}
	if data.IsDone != nil {
		toDo.IsDone = *data.IsDone
	}

	if err := useCase.write(ctx, userID, map[string]any{id: toDo}); err != nil {
		return nil, err
	}

	useCase.publish(ctx, model.ToDoCreated, userID, id)
	return &toDo, nil
}

func (useCase *toDoUseCase) UpdateToDo(ctx context.Context, id string, data model.UpdateToDoDTO) (*entity.ToDo, error) {
	data, err := useCase.normalizeUpdate(data)
	if err != nil {
		return nil, err
	}

	current, err := useCase.findToDo(ctx, id)
	if err != nil {
		return nil, err
	}
	if data.IsEmpty() {
		return current, nil
	}

	// The lookup and the merge are separate store calls. A DeleteToDo landing
	// between them is overwritten: the merge re-adds id and userId and leaves a
	// partial entry without a label.
	if err := useCase.write(ctx, current.UserID, map[string]any{id: mergeFields(*current, data)}); err != nil {
		return nil, err
	}

	updated := data.ApplyTo(*current)
	useCase.publish(ctx, model.ToDoUpdated, updated.UserID, id)
	return &updated, nil
}

func (useCase *toDoUseCase) UpdateUserToDos(ctx context.Context, userID string, updates model.ToDoUpdates) (model.ToDos, error) {
	if err := useCase.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	toDos, err := useCase.readToDos(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]any, len(updates))
	for id, data := range updates {
		current, ok := toDos[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrToDoNotFound, id)
		}
		data, err := useCase.normalizeUpdate(data)
		if err != nil {
			return nil, fmt.Errorf("todo %s: %w", id, err)
		}
		if data.IsEmpty() {
			continue
		}
		payload[id] = mergeFields(current, data)
		toDos[id] = data.ApplyTo(current)
	}

	if len(payload) == 0 {
		return toDos, nil
	}
	if err := useCase.write(ctx, userID, payload); err != nil {
		return nil, err
	}

	changed := make(model.ToDos, len(payload))
	for id := range payload {
		changed[id] = toDos[id]
	}
	useCase.publish(ctx, model.ToDoUpdated, userID, changed.IDs()...)
	return toDos, nil
}

func (useCase *toDoUseCase) DeleteToDo(ctx context.Context, id string) error {
	current, err := useCase.findToDo(ctx, id)
	if err != nil {
		return err
	}

	if err := useCase.flagGateway.DeleteFlagKey(ctx, current.UserID, useCase.module.ID, useCase.module.Flags.ToDos, id); err != nil {
		return fmt.Errorf("delete todo %s of user %s: %w", id, current.UserID, err)
	}

	useCase.publish(ctx, model.ToDoDeleted, current.UserID, id)
	return nil
}

func (useCase *toDoUseCase) requireUser(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty id", ErrUserNotFound)
	}
	u, err := useCase.userGateway.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user %s: %w", userID, err)
	}
	if u == nil {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return nil
}

// readToDos decodes the stored collection. The storage partition is the
// source of truth for userId and the map key for id.
func (useCase *toDoUseCase) readToDos(ctx context.Context, userID string) (model.ToDos, error) {
	entries, _, err := useCase.flagGateway.GetFlag(ctx, userID, useCase.module.ID, useCase.module.Flags.ToDos)
	if err != nil {
		return nil, fmt.Errorf("read todos of user %s: %w", userID, err)
	}

	toDos := make(model.ToDos, len(entries))
	for id, raw := range entries {
		var toDo entity.ToDo
		if err := json.Unmarshal(raw, &toDo); err != nil {
			log.Warn("skipping malformed todo", zap.String("userId", userID), zap.String("id", id), zap.Error(err))
			continue
		}
		toDo.ID = id
		toDo.UserID = userID
		toDos[id] = toDo
	}
	return toDos, nil
}

func (useCase *toDoUseCase) findToDo(ctx context.Context, id string) (*entity.ToDo, error) {
	all, err := useCase.AllToDos(ctx)
	if err != nil {
		return nil, err
	}
	toDo, ok := all[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToDoNotFound, id)
	}
	return &toDo, nil
}

func (useCase *toDoUseCase) write(ctx context.Context, userID string, payload map[string]any) error {
	if err := useCase.flagGateway.SetFlag(ctx, userID, useCase.module.ID, useCase.module.Flags.ToDos, payload); err != nil {
		return fmt.Errorf("write todos of user %s: %w", userID, err)
	}
	return nil
}

func (useCase *toDoUseCase) freshID(existing model.ToDos) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := useCase.ids.NewID()
		if err != nil {
			return "", fmt.Errorf("generate todo id: %w", err)
		}
		if _, taken := existing[id]; id != "" && !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("no unused todo id after %d attempts", maxIDAttempts)
}

func (useCase *toDoUseCase) normalizeLabel(label string) (string, error) {
	label = strings.TrimSpace(label)
	if utf8.RuneCountInString(label) > useCase.maxLabelLength {
		return "", fmt.Errorf("%w: %s", ErrInvalidToDo, msg.GetMessage("todo-list.error.label-too-long", useCase.maxLabelLength))
	}
	return label, nil
}

func (useCase *toDoUseCase) normalizeUpdate(data model.UpdateToDoDTO) (model.UpdateToDoDTO, error) {
	if data.Label == nil {
		return data, nil
	}
	label, err := useCase.normalizeLabel(*data.Label)
	if err != nil {
		return data, err
	}
	data.Label = &label
	return data, nil
}

func (useCase *toDoUseCase) publish(ctx context.Context, eventType model.ToDoEventType, userID string, ids ...string) {
	event := model.ToDoEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Module:     useCase.module.ID,
		UserID:     userID,
		ToDoIDs:    ids,
		OccurredAt: time.Now().UTC(),
	}
	if err := useCase.publisher.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("todo-list.error.publish-failed", string(eventType), userID), zap.Error(err))
	}
}

// mergeFields is the partial document merged into the stored entry. id and
// userId are re-asserted so a merge can never move an entry.
func mergeFields(current entity.ToDo, data model.UpdateToDoDTO) map[string]any {
	fields := data.Fields()
	fields["id"] = current.ID
	fields["userId"] = current.UserID
	return fields
}
