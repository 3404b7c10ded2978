package repositories

import (
	"context"

	"github.com/tawann/tawann-space/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationRepository defines the interface for read-marker operations.
// Feed entries themselves are computed from comments and likes on every
// fetch; only the acknowledgments are persisted.
type NotificationRepository interface {
	MarkRead(ctx context.Context, read *models.NotificationRead) error
	ReadNotificationIDs(ctx context.Context, userID uint) ([]string, error)
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// MarkRead records a read marker. Marking the same notification twice for
// the same user is a no-op (ON CONFLICT DO NOTHING).
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, read *models.NotificationRead) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "notification_id"}},
		DoNothing: true,
	}).Create(read).Error
}

// ReadNotificationIDs returns every notification identity the user has acknowledged
func (r *PostgresNotificationRepository) ReadNotificationIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.NotificationRead{}).
		Where("user_id = ?", userID).
		Pluck("notification_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
