package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tawann/tawann-space/backend/internal/models"
)

type stubCommentRepository struct {
	events []models.CommentEvent
	err    error
}

func (s *stubCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return s.err
}

func (s *stubCommentRepository) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	return nil, s.err
}

func (s *stubCommentRepository) RecentEvents(ctx context.Context, since time.Time) ([]models.CommentEvent, error) {
	return s.events, s.err
}

type stubLikeRepository struct {
	events []models.LikeEvent
	err    error
}

func (s *stubLikeRepository) CreateLike(ctx context.Context, like *models.Like) error { return s.err }

func (s *stubLikeRepository) HasUserLikedPost(ctx context.Context, postID, userID uint) (bool, error) {
	return false, s.err
}

func (s *stubLikeRepository) RecentEvents(ctx context.Context, since time.Time) ([]models.LikeEvent, error) {
	return s.events, s.err
}

type stubNotificationRepository struct {
	readIDs []string
	marked  []models.NotificationRead
	err     error
}

func (s *stubNotificationRepository) MarkRead(ctx context.Context, read *models.NotificationRead) error {
	if s.err != nil {
		return s.err
	}
	// Mirrors the ON CONFLICT DO NOTHING upsert: repeats succeed without
	// creating a second marker.
	for _, m := range s.marked {
		if m.UserID == read.UserID && m.NotificationID == read.NotificationID {
			return nil
		}
	}
	s.marked = append(s.marked, *read)
	return nil
}

func (s *stubNotificationRepository) ReadNotificationIDs(ctx context.Context, userID uint) ([]string, error) {
	return s.readIDs, s.err
}

func adminContext(t *testing.T, method, target string, body *string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, target, body)
	c.Set("user", &models.JwtCustomClaims{UserID: 9, Email: "admin@example.com", Role: "admin"})
	return c, rec
}

func TestGetNotificationsMergesSourcesNewestFirst(t *testing.T) {
	h := NewNotificationHandler(
		&stubCommentRepository{events: []models.CommentEvent{
			commentEvent(1, 2*time.Hour),
			commentEvent(2, 30*time.Minute),
		}},
		&stubLikeRepository{events: []models.LikeEvent{likeEvent(5, time.Hour)}},
		&stubNotificationRepository{},
	)

	c, rec := adminContext(t, http.MethodGet, "/auth/notifications?page=1", nil)
	if err := h.GetNotifications(c); err != nil {
		t.Fatalf("GetNotifications returned error: %v", err)
	}

	var got models.FeedPage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if got.TotalNotifications != 3 {
		t.Errorf("totalNotifications = %d, want 3", got.TotalNotifications)
	}
	if len(got.Notifications) != 3 || got.Notifications[0].ID != "comment-2" {
		t.Errorf("feed = %v, want comment-2 first", got.Notifications)
	}
}

func TestGetNotificationsHidesReadEntries(t *testing.T) {
	h := NewNotificationHandler(
		&stubCommentRepository{events: []models.CommentEvent{commentEvent(1, time.Hour)}},
		&stubLikeRepository{events: []models.LikeEvent{likeEvent(5, 2*time.Hour)}},
		&stubNotificationRepository{readIDs: []string{"like-5"}},
	)

	c, rec := adminContext(t, http.MethodGet, "/auth/notifications", nil)
	if err := h.GetNotifications(c); err != nil {
		t.Fatalf("GetNotifications returned error: %v", err)
	}

	var got models.FeedPage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if got.TotalNotifications != 1 {
		t.Fatalf("totalNotifications = %d, want 1", got.TotalNotifications)
	}
	if got.Notifications[0].ID != "comment-1" {
		t.Errorf("feed = %v, want only comment-1", got.Notifications)
	}
}

func TestGetNotificationsFetchFailure(t *testing.T) {
	h := NewNotificationHandler(
		&stubCommentRepository{},
		&stubLikeRepository{err: errors.New("relation post_likes does not exist")},
		&stubNotificationRepository{},
	)

	c, _ := adminContext(t, http.MethodGet, "/auth/notifications", nil)
	err := h.GetNotifications(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", he.Code)
	}
	if msg, _ := he.Message.(string); msg != "Failed to fetch notifications" {
		t.Errorf("message = %q, want the generic fetch failure", msg)
	}
}

func TestGetNotificationsRequiresClaims(t *testing.T) {
	h := NewNotificationHandler(&stubCommentRepository{}, &stubLikeRepository{}, &stubNotificationRepository{})

	c, _ := newTestContext(t, http.MethodGet, "/auth/notifications", nil)
	err := h.GetNotifications(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", he.Code)
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	notifRepo := &stubNotificationRepository{}
	h := NewNotificationHandler(&stubCommentRepository{}, &stubLikeRepository{}, notifRepo)

	body := `{"notificationId":"comment-12"}`
	for i := 0; i < 2; i++ {
		c, rec := adminContext(t, http.MethodPost, "/auth/notifications/read", &body)
		if err := h.MarkRead(c); err != nil {
			t.Fatalf("MarkRead attempt %d returned error: %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("MarkRead attempt %d status = %d, want 200", i+1, rec.Code)
		}
	}

	if len(notifRepo.marked) != 1 {
		t.Fatalf("stored %d read markers, want 1", len(notifRepo.marked))
	}
	marker := notifRepo.marked[0]
	if marker.UserID != 9 || marker.NotificationID != "comment-12" || marker.NotificationType != "comment" {
		t.Errorf("stored marker = %+v, want user 9 / comment-12 / comment", marker)
	}
}

func TestMarkReadRejectsMissingID(t *testing.T) {
	h := NewNotificationHandler(&stubCommentRepository{}, &stubLikeRepository{}, &stubNotificationRepository{})

	body := `{}`
	c, _ := adminContext(t, http.MethodPost, "/auth/notifications/read", &body)
	err := h.MarkRead(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", he.Code)
	}
}
