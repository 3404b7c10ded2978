package repositories

import (
	"context"
	"math"

	"github.com/tawann/tawann-space/backend/internal/models"
	"gorm.io/gorm"
)

// Default and maximum page sizes for the post listing.
const (
	DefaultPostLimit = 6
	maxPostLimit     = 100
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.PostView, error)
	SearchPosts(ctx context.Context, category, keyword string, page, limit int) (*models.PostPage, error)
	UpdatePost(ctx context.Context, id uint, post *models.Post) error
	DeletePost(ctx context.Context, id uint) error
	IncrementLikesCount(ctx context.Context, postID uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

const postViewColumns = `posts.id, posts.image, categories.name AS category, posts.title,
posts.description, posts.date, posts.content, statuses.status, posts.likes_count`

// searchFilter maps the optional category and keyword filters to a single
// WHERE clause with its arguments. The listing query and the count query
// both consume this one clause, so they can never disagree on the filter.
// Empty strings count as absent; a category restricts the keyword search
// rather than unioning with it.
func searchFilter(category, keyword string) (string, []interface{}) {
	cat := "%" + category + "%"
	kw := "%" + keyword + "%"
	switch {
	case category != "" && keyword != "":
		return "categories.name ILIKE ? AND (posts.title ILIKE ? OR posts.description ILIKE ? OR posts.content ILIKE ?)",
			[]interface{}{cat, kw, kw, kw}
	case category != "":
		return "categories.name ILIKE ?", []interface{}{cat}
	case keyword != "":
		return "posts.title ILIKE ? OR posts.description ILIKE ? OR posts.content ILIKE ?",
			[]interface{}{kw, kw, kw}
	default:
		return "", nil
	}
}

// normalizePage treats non-positive (or unparsed) page numbers as page 1.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// normalizeLimit applies the default page size when the caller sent nothing,
// then clamps to [1, maxPostLimit].
func normalizeLimit(limit int) int {
	if limit == 0 {
		return DefaultPostLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxPostLimit {
		return maxPostLimit
	}
	return limit
}

// newPostPage assembles pagination metadata around one page of results.
// NextPage and PreviousPage stay nil (and drop out of the JSON) when the
// window touches the corresponding end of the result set.
func newPostPage(posts []models.PostView, total int64, page, limit int) *models.PostPage {
	if posts == nil {
		posts = []models.PostView{}
	}
	result := &models.PostPage{
		TotalPosts:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
		Limit:       limit,
		Posts:       posts,
	}
	offset := (page - 1) * limit
	if int64(offset+limit) < total {
		next := page + 1
		result.NextPage = &next
	}
	if offset > 0 {
		previous := page - 1
		result.PreviousPage = &previous
	}
	return result
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// joined returns the posts table joined with its category and status lookups
func (r *PostgresPostRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("posts").
		Joins("INNER JOIN categories ON posts.category_id = categories.id").
		Joins("INNER JOIN statuses ON posts.status_id = statuses.id")
}

// GetPostByID retrieves a single joined post view by ID
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.PostView, error) {
	var view models.PostView
	err := r.joined(ctx).
		Select(postViewColumns).
		Where("posts.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// SearchPosts returns one page of posts matching the optional category and
// keyword filters, newest first, together with the matching total count.
func (r *PostgresPostRepository) SearchPosts(ctx context.Context, category, keyword string, page, limit int) (*models.PostPage, error) {
	page = normalizePage(page)
	limit = normalizeLimit(limit)
	offset := (page - 1) * limit
	filter, args := searchFilter(category, keyword)

	countQuery := r.joined(ctx)
	listQuery := r.joined(ctx)
	if filter != "" {
		countQuery = countQuery.Where(filter, args...)
		listQuery = listQuery.Where(filter, args...)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.PostView
	err := listQuery.
		Select(postViewColumns).
		Order("posts.date DESC, posts.id DESC").
		Limit(limit).Offset(offset).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}

	return newPostPage(posts, total, page, limit), nil
}

// UpdatePost replaces the mutable fields of a post
func (r *PostgresPostRepository) UpdatePost(ctx context.Context, id uint, post *models.Post) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       post.Title,
		"image":       post.Image,
		"category_id": post.CategoryID,
		"description": post.Description,
		"content":     post.Content,
		"status_id":   post.StatusID,
		"date":        post.Date,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePost deletes a post by ID
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementLikesCount bumps the denormalized like counter on a post
func (r *PostgresPostRepository) IncrementLikesCount(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
}
