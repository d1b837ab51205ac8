package flag

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-list/internal/domain/model"
)

type userFlagRecord struct {
	UserID    string          `gorm:"column:user_id;primaryKey"`
	Namespace string          `gorm:"column:namespace;primaryKey"`
	FlagKey   string          `gorm:"column:flag_key;primaryKey"`
	Value     json.RawMessage `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (userFlagRecord) TableName() string {
	return "user_flags"
}

// GormFlagGateway keeps flag documents in the user_flags table, one row per
// user, namespace and key.
type GormFlagGateway struct {
	db *gorm.DB
}

var _ FlagGateway = (*GormFlagGateway)(nil)

func NewGormFlagGateway(db *gorm.DB) *GormFlagGateway {
	return &GormFlagGateway{db: db}
}

// Migrate creates or updates the user_flags table.
func (gateway *GormFlagGateway) Migrate(ctx context.Context) error {
	return gateway.db.WithContext(ctx).AutoMigrate(&userFlagRecord{})
}

func (gateway *GormFlagGateway) GetFlag(ctx context.Context, userID, namespace, key string) (map[string]json.RawMessage, bool, error) {
	var record userFlagRecord
	err := gateway.db.WithContext(ctx).
		Where("user_id = ? AND namespace = ? AND flag_key = ?", userID, namespace, key).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	entries, err := decodeEntries(record.Value)
	if err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (gateway *GormFlagGateway) SetFlag(ctx context.Context, userID, namespace, key string, value map[string]any) error {
	return gateway.rewrite(ctx, userID, namespace, key, func(current []byte) ([]byte, bool, error) {
		merged, err := mergeDocument(current, value)
		return merged, true, err
	})
}

func (gateway *GormFlagGateway) DeleteFlagKey(ctx context.Context, userID, namespace, key, field string) error {
	return gateway.rewrite(ctx, userID, namespace, key, func(current []byte) ([]byte, bool, error) {
		if current == nil {
			return nil, false, nil
		}
		return deleteDocumentKey(current, field)
	})
}

func (gateway *GormFlagGateway) UnsetFlag(ctx context.Context, userID, namespace, key string) error {
	return gateway.db.WithContext(ctx).
		Where("user_id = ? AND namespace = ? AND flag_key = ?", userID, namespace, key).
		Delete(&userFlagRecord{}).Error
}

func (gateway *GormFlagGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	details := map[string]string{"driver": "postgres"}

	sqlDB, err := gateway.db.DB()
	if err != nil {
		return model.DownStatus(err, details)
	}
	pingCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return model.DownStatus(err, details)
	}
	return model.UpStatus(details)
}

// rewrite locks the row with SELECT ... FOR UPDATE and upserts the document
// change computes. A missing row is not locked, concurrent first writes race
// and the last upsert wins.
func (gateway *GormFlagGateway) rewrite(ctx context.Context, userID, namespace, key string, change func(current []byte) ([]byte, bool, error)) error {
	return gateway.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record userFlagRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND namespace = ? AND flag_key = ?", userID, namespace, key).
			Take(&record).Error

		var current []byte
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			current = record.Value
		}

		updated, changed, err := change(current)
		if err != nil || !changed {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "namespace"}, {Name: "flag_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&userFlagRecord{
			UserID:    userID,
			Namespace: namespace,
			FlagKey:   key,
			Value:     updated,
			UpdatedAt: time.Now().UTC(),
		}).Error
	})
}
