package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/models"
	"github.com/tawann/tawann-space/backend/internal/repositories"
	"gorm.io/gorm"
)

// CategoryHandler handles category management
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepository: categoryRepo}
}

// RegisterCategoryRoutes registers category routes. The listing is public;
// mutations run behind the given admin middleware chain.
func (h *CategoryHandler) RegisterCategoryRoutes(g *echo.Group, admin ...echo.MiddlewareFunc) {
	g.GET("/categories", h.GetCategories)
	g.POST("/categories", h.CreateCategory, admin...)
	g.PUT("/categories/:categoryId", h.UpdateCategory, admin...)
	g.DELETE("/categories/:categoryId", h.DeleteCategory, admin...)
}

// GetCategories lists all categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryRepository.GetCategories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	name, err := bindCategoryName(c)
	if err != nil {
		return err
	}

	category := &models.Category{Name: name}
	if err := h.categoryRepository.CreateCategory(c.Request().Context(), category); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create category")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory renames a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := parseID(c.Param("categoryId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	name, err := bindCategoryName(c)
	if err != nil {
		return err
	}

	category, err := h.categoryRepository.UpdateCategory(c.Request().Context(), categoryID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update category")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory deletes a category
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := parseID(c.Param("categoryId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category ID")
	}

	category, err := h.categoryRepository.DeleteCategory(c.Request().Context(), categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Category deleted successfully",
		"category": category,
	})
}

// bindCategoryName binds and trims the category name, rejecting blanks
func bindCategoryName(c echo.Context) (string, error) {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Category name is required")
	}
	return name, nil
}
