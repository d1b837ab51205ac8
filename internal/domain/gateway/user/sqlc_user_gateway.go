package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/model"
)

const (
	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id     VARCHAR(64) PRIMARY KEY,
			name   VARCHAR(255) NOT NULL,
			role   VARCHAR(32) NOT NULL DEFAULT 'player',
			active BOOLEAN NOT NULL DEFAULT FALSE
		)`

	selectAllUsers = `SELECT id, name, role, active FROM users ORDER BY id ASC`

	selectUserByID = `SELECT id, name, role, active FROM users WHERE id = $1`

	upsertUser = `
		INSERT INTO users (id, name, role, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role, active = EXCLUDED.active`
)

type SQLCUserGateway struct {
	DB *sql.DB
}

var _ UserGateway = (*SQLCUserGateway)(nil)

func NewSQLCUserGateway(db *sql.DB) *SQLCUserGateway {
	return &SQLCUserGateway{DB: db}
}

// EnsureSchema creates the users table when it does not exist.
func (gateway *SQLCUserGateway) EnsureSchema(ctx context.Context) error {
	_, err := gateway.DB.ExecContext(ctx, createUsersTable)
	return err
}

func (gateway *SQLCUserGateway) FindAll(ctx context.Context) ([]entity.User, error) {
	rows, err := gateway.DB.QueryContext(ctx, selectAllUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Role, &user.Active); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (gateway *SQLCUserGateway) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := gateway.DB.QueryRowContext(ctx, selectUserByID, id).
		Scan(&user.ID, &user.Name, &user.Role, &user.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (gateway *SQLCUserGateway) Save(ctx context.Context, user entity.User) error {
	_, err := gateway.DB.ExecContext(ctx, upsertUser, user.ID, user.Name, user.Role, user.Active)
	return err
}

func (gateway *SQLCUserGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	details := map[string]string{"driver": "postgres"}
	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.DownStatus(err, details)
	}
	return model.UpStatus(details)
}
