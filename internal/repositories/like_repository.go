package repositories

import (
	"context"
	"time"

	"github.com/tawann/tawann-space/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	HasUserLikedPost(ctx context.Context, postID, userID uint) (bool, error)
	RecentEvents(ctx context.Context, since time.Time) ([]models.LikeEvent, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like row
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// HasUserLikedPost checks whether a user already liked a post
func (r *PostgresLikeRepository) HasUserLikedPost(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecentEvents returns likes created since the given time, joined with the
// liking user and the liked post, newest first.
func (r *PostgresLikeRepository) RecentEvents(ctx context.Context, since time.Time) ([]models.LikeEvent, error) {
	var events []models.LikeEvent
	err := r.db.WithContext(ctx).Table("post_likes").
		Select(`post_likes.id, post_likes.created_at, users.username, users.profile_pic,
posts.title AS article_title, posts.id AS post_id`).
		Joins("INNER JOIN users ON post_likes.user_id = users.id").
		Joins("INNER JOIN posts ON post_likes.post_id = posts.id").
		Where("post_likes.created_at >= ?", since).
		Order("post_likes.created_at DESC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
