package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/middleware"
	"github.com/tawann/tawann-space/backend/internal/models"
	"github.com/tawann/tawann-space/backend/internal/repositories"
	"gorm.io/gorm"
)

// CommentHandler handles comments on posts
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment routes on the posts group.
// Creating a comment requires an authenticated user.
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, authenticated ...echo.MiddlewareFunc) {
	g.GET("/:postId/comments", h.GetComments)
	g.POST("/:postId/comments", h.CreateComment, authenticated...)
}

// GetComments lists the comments on a post, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comments")
	}

	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

// CreateComment adds a comment to an existing post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Server could not find a requested post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create comment")
	}

	comment := &models.Comment{
		PostID:      postID,
		UserID:      claims.UserID,
		CommentText: req.CommentText,
	}
	if err := h.commentRepository.CreateComment(ctx, comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create comment")
	}

	return c.JSON(http.StatusCreated, comment)
}
