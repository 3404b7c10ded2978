package handlers

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/middleware"
	"github.com/tawann/tawann-space/backend/internal/models"
	"github.com/tawann/tawann-space/backend/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// The admin feed pages in fixed windows of 10 and only looks back 30 days.
const (
	feedPageLimit = 10
	feedWindow    = 30 * 24 * time.Hour
)

// NotificationHandler serves the admin notification feed: recent comments
// and likes merged into one unread, time-ordered stream.
type NotificationHandler struct {
	commentRepository      repositories.CommentRepository
	likeRepository         repositories.LikeRepository
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	notifRepo repositories.NotificationRepository,
) *NotificationHandler {
	return &NotificationHandler{
		commentRepository:      commentRepo,
		likeRepository:         likeRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group, admin ...echo.MiddlewareFunc) {
	g.GET("/notifications", h.GetNotifications, admin...)
	g.POST("/notifications/read", h.MarkRead, admin...)
}

// GetNotifications returns the requesting admin's unread feed, newest first.
// The three source fetches are independent reads, so they run concurrently
// and join before the merge.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	since := time.Now().Add(-feedWindow)

	var (
		comments []models.CommentEvent
		likes    []models.LikeEvent
		readIDs  []string
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		comments, err = h.commentRepository.RecentEvents(ctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = h.likeRepository.RecentEvents(ctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		readIDs, err = h.notificationRepository.ReadNotificationIDs(ctx, claims.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notifications")
	}

	return c.JSON(http.StatusOK, buildFeed(comments, likes, readIDs, page))
}

// MarkRead acknowledges one feed entry for the requesting admin. Marking the
// same entry twice is a no-op success.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	read := &models.NotificationRead{
		UserID:           claims.UserID,
		NotificationType: notificationType(req.NotificationID),
		NotificationID:   req.NotificationID,
	}
	if err := h.notificationRepository.MarkRead(c.Request().Context(), read); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark notification as read")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Notification marked as read"})
}

// notificationType extracts the kind prefix from a feed identity,
// e.g. "comment-123" -> "comment".
func notificationType(notificationID string) string {
	return strings.SplitN(notificationID, "-", 2)[0]
}

// buildFeed merges comment and like events into one stream, orders it newest
// first (identity breaks timestamp ties so pages are reproducible), drops
// everything the user already read, and pages the remainder.
func buildFeed(comments []models.CommentEvent, likes []models.LikeEvent, readIDs []string, page int) *models.FeedPage {
	read := make(map[string]struct{}, len(readIDs))
	for _, id := range readIDs {
		read[id] = struct{}{}
	}

	all := make([]models.NotificationView, 0, len(comments)+len(likes))
	for _, ev := range comments {
		all = append(all, models.NotificationView{
			ID:           models.CommentNotificationID(ev.ID),
			Type:         models.NotificationTypeComment,
			UserName:     ev.Username,
			UserAvatar:   ev.ProfilePic,
			ArticleTitle: ev.ArticleTitle,
			Content:      ev.Content,
			Timestamp:    ev.CreatedAt,
			PostID:       ev.PostID,
		})
	}
	for _, ev := range likes {
		all = append(all, models.NotificationView{
			ID:           models.LikeNotificationID(ev.ID),
			Type:         models.NotificationTypeLike,
			UserName:     ev.Username,
			UserAvatar:   ev.ProfilePic,
			ArticleTitle: ev.ArticleTitle,
			Timestamp:    ev.CreatedAt,
			PostID:       ev.PostID,
		})
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.After(all[j].Timestamp)
		}
		return all[i].ID < all[j].ID
	})

	var unread []models.NotificationView
	for _, n := range all {
		if _, ok := read[n.ID]; !ok {
			unread = append(unread, n)
		}
	}

	return paginateFeed(unread, page)
}

// paginateFeed slices the unread stream into the requested fixed-size page
func paginateFeed(unread []models.NotificationView, page int) *models.FeedPage {
	if page < 1 {
		page = 1
	}
	total := len(unread)
	offset := (page - 1) * feedPageLimit

	window := []models.NotificationView{}
	if offset < total {
		end := offset + feedPageLimit
		if end > total {
			end = total
		}
		window = unread[offset:end]
	}

	return &models.FeedPage{
		Notifications:      window,
		TotalNotifications: total,
		TotalPages:         int(math.Ceil(float64(total) / float64(feedPageLimit))),
		CurrentPage:        page,
		Limit:              feedPageLimit,
	}
}
