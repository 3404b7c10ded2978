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

// LikeHandler handles likes on posts
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like routes on the posts group
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, authenticated ...echo.MiddlewareFunc) {
	g.POST("/:postId/likes", h.LikePost, authenticated...)
}

// LikePost records a like: one durable row per (post, user) plus a bump of
// the post's denormalized counter.
func (h *LikeHandler) LikePost(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	ctx := c.Request().Context()

	if _, err := h.postRepository.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Server could not find a requested post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}

	liked, err := h.likeRepository.HasUserLikedPost(ctx, postID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}
	if liked {
		return echo.NewHTTPError(http.StatusBadRequest, "You have already liked this post")
	}

	like := &models.Like{PostID: postID, UserID: claims.UserID}
	if err := h.likeRepository.CreateLike(ctx, like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}
	if err := h.postRepository.IncrementLikesCount(ctx, postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like post")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Liked post successfully"})
}
