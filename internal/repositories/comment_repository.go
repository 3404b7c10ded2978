package repositories

import (
	"context"
	"time"

	"github.com/tawann/tawann-space/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	RecentEvents(ctx context.Context, since time.Time) ([]models.CommentEvent, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByPostID retrieves all comments for a post, newest first
func (r *PostgresCommentRepository) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// RecentEvents returns comments created since the given time, joined with the
// commenting user and the commented post, newest first.
func (r *PostgresCommentRepository) RecentEvents(ctx context.Context, since time.Time) ([]models.CommentEvent, error) {
	var events []models.CommentEvent
	err := r.db.WithContext(ctx).Table("comments").
		Select(`comments.id, comments.comment_text AS content, comments.created_at,
users.username, users.profile_pic, posts.title AS article_title, posts.id AS post_id`).
		Joins("INNER JOIN users ON comments.user_id = users.id").
		Joins("INNER JOIN posts ON comments.post_id = posts.id").
		Where("comments.created_at >= ?", since).
		Order("comments.created_at DESC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
