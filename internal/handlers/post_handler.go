package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/models"
	"github.com/tawann/tawann-space/backend/internal/repositories"
	"github.com/tawann/tawann-space/backend/pkg/storage"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	uploader       storage.Uploader
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, uploader storage.Uploader) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		uploader:       uploader,
	}
}

// RegisterPostRoutes registers post routes. Listing and reads are public;
// mutations run behind the given admin middleware chain.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, admin ...echo.MiddlewareFunc) {
	g.GET("", h.GetPosts)
	g.GET("/:postId", h.GetPost)
	g.POST("", h.CreatePost, admin...)
	g.PUT("/:postId", h.UpdatePost, admin...)
	g.DELETE("/:postId", h.DeletePost, admin...)
}

// GetPosts lists posts filtered by optional category and keyword substrings,
// paginated. Parse failures on page/limit fall back to the defaults.
func (h *PostHandler) GetPosts(c echo.Context) error {
	category := c.QueryParam("category")
	keyword := c.QueryParam("keyword")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.postRepository.SearchPosts(c.Request().Context(), category, keyword, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not read post because database connection")
	}

	return c.JSON(http.StatusOK, result)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Server could not find a requested post")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not read post because database connection")
	}

	return c.JSON(http.StatusOK, echo.Map{"data": post})
}

// CreatePost creates a new post from a multipart form, uploading the image
// to the storage bucket first.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read image file")
	}
	defer file.Close()

	imageURL, err := h.uploader.Upload(
		c.Request().Context(),
		storage.PostImageKey(fileHeader.Filename),
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not upload post image")
	}

	post := &models.Post{
		Title:       req.Title,
		Image:       imageURL,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Content:     req.Content,
		StatusID:    req.StatusID,
		Date:        time.Now(),
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not create post because database connection")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Created post successfully"})
}

// UpdatePost replaces an existing post and refreshes its publish date
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:       req.Title,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Content:     req.Content,
		StatusID:    req.StatusID,
		Date:        time.Now(),
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, post); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Server could not find a requested post to update")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not update post because database connection")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Updated post successfully"})
}

// DeletePost deletes a post
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Server could not find a requested post to delete")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server could not delete post because database connection")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted post successfully"})
}

// parseID parses a decimal path parameter into a uint ID
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
