package main

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	gormdb "gorm.io/gorm"

	"todo-list/configs"
	"todo-list/internal/domain/entity"
	"todo-list/internal/domain/gateway/flag"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/gateway/user"
	"todo-list/internal/infra/aws"
	"todo-list/internal/infra/database/gorm"
	"todo-list/internal/infra/database/sqlc"
	"todo-list/internal/infra/redisdb"
	"todo-list/pkg/log"
	"todo-list/pkg/redis"
	"todo-list/pkg/resource"
	"todo-list/pkg/sqs"
)

// infrastructure opens shared connections on first use so only the
// configured drivers connect.
type infrastructure struct {
	module *configs.ModuleConfig
	redis  *redis.Client
	gorm   *gormdb.DB
	sql    *sql.DB
}

func (infra *infrastructure) redisClient() (*redis.Client, error) {
	if infra.redis == nil {
		client, err := redisdb.NewClient(infra.module.ID)
		if err != nil {
			return nil, err
		}
		infra.redis = client
	}
	return infra.redis, nil
}

func (infra *infrastructure) gormDB() (*gormdb.DB, error) {
	if infra.gorm == nil {
		db, err := gorm.Open()
		if err != nil {
			return nil, err
		}
		infra.gorm = db
	}
	return infra.gorm, nil
}

func (infra *infrastructure) sqlDB() (*sql.DB, error) {
	if infra.sql == nil {
		db, err := sqlc.Open()
		if err != nil {
			return nil, err
		}
		infra.sql = db
	}
	return infra.sql, nil
}

func (infra *infrastructure) Close() {
	if infra.redis != nil {
		if err := infra.redis.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if infra.sql != nil {
		_ = infra.sql.Close()
	}
	if infra.gorm != nil {
		if db, err := infra.gorm.DB(); err == nil {
			_ = db.Close()
		}
	}
}

func newFlagGateway(ctx context.Context, infra *infrastructure, driver string) (flag.FlagGateway, error) {
	switch driver {
	case "redis":
		client, err := infra.redisClient()
		if err != nil {
			return nil, err
		}
		return flag.NewRedisFlagGateway(client, resource.GetInt("app.store.max-retries")), nil
	case "postgres":
		db, err := infra.gormDB()
		if err != nil {
			return nil, err
		}
		gateway := flag.NewGormFlagGateway(db)
		if err := gateway.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate user_flags: %w", err)
		}
		return gateway, nil
	case "memory":
		return flag.NewMemoryFlagGateway(), nil
	default:
		return nil, fmt.Errorf("unknown flag store driver %q", driver)
	}
}

func newUserGateway(ctx context.Context, infra *infrastructure, driver string) (user.UserGateway, error) {
	var gateway user.UserGateway
	switch driver {
	case "redis":
		client, err := infra.redisClient()
		if err != nil {
			return nil, err
		}
		gateway = user.NewRedisUserGateway(client)
	case "postgres":
		db, err := infra.sqlDB()
		if err != nil {
			return nil, err
		}
		sqlGateway := user.NewSQLCUserGateway(db)
		if err := sqlGateway.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("create users table: %w", err)
		}
		gateway = sqlGateway
	case "memory":
		gateway = user.NewMemoryUserGateway()
	default:
		return nil, fmt.Errorf("unknown user registry driver %q", driver)
	}

	var seed []entity.User
	if err := resource.UnmarshalKey("app.users.seed", &seed); err != nil {
		return nil, fmt.Errorf("read app.users.seed: %w", err)
	}
	if err := seedUsers(ctx, gateway, seed); err != nil {
		return nil, err
	}
	return gateway, nil
}

// seedUsers registers the configured users that the registry does not know yet.
// Users without a role are registered as players.
func seedUsers(ctx context.Context, gateway user.UserGateway, seed []entity.User) error {
	for _, seeded := range seed {
		if seeded.ID == "" {
			return fmt.Errorf("seed user %q: missing id", seeded.Name)
		}
		existing, err := gateway.FindByID(ctx, seeded.ID)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", seeded.ID, err)
		}
		if existing != nil {
			continue
		}
		if seeded.Role == "" {
			seeded.Role = "player"
		}
		if err := gateway.Save(ctx, seeded); err != nil {
			return fmt.Errorf("seed user %s: %w", seeded.ID, err)
		}
	}
	return nil
}

func newEventPublisher(ctx context.Context, infra *infrastructure, driver string) (queue.EventPublisher, error) {
	switch driver {
	case "redis":
		client, err := infra.redisClient()
		if err != nil {
			return nil, err
		}
		return queue.NewRedisEventPublisher(client), nil
	case "sqs":
		client, err := aws.NewSQSClient(ctx)
		if err != nil {
			return nil, err
		}
		return queue.NewSQSEventPublisher(sqs.NewSender(client), resource.GetString("app.events.queue-name")), nil
	case "none", "":
		return queue.LogEventPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", driver)
	}
}
