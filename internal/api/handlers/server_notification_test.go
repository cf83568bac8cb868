package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"formgate.io/formgate/ent"
	"formgate.io/formgate/internal/testutil"
)

func seedNotification(t *testing.T, client *ent.Client, id, userID string, read bool) {
	t.Helper()
	create := client.Notification.Create().
		SetID(id).
		SetType("SUBMISSION_PENDING").
		SetTitle("Approval requested").
		SetMessage("Leave Request is waiting for your approval").
		SetResourceType("submission").
		SetResourceID("sub-1").
		SetRead(read).
		SetUserID(userID)
	if _, err := create.Save(context.Background()); err != nil {
		t.Fatalf("seed notification %s: %v", id, err)
	}
}

func seedNotificationUser(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	if _, err := client.User.Create().
		SetID(id).
		SetUsername(id).
		SetName("User " + id).
		Save(context.Background()); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func TestNotifications_ListAndUnreadCount(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "notifications_list")
	seedNotificationUser(t, client, "user-1")
	seedNotificationUser(t, client, "user-2")
	seedNotification(t, client, "n-1", "user-1", false)
	seedNotification(t, client, "n-2", "user-1", true)
	seedNotification(t, client, "n-3", "user-2", false)

	server := NewServer(ServerDeps{EntClient: client})
	router := gin.New()
	router.GET("/notifications", authAs("user-1"), server.ListNotifications)
	router.GET("/notifications/unread-count", authAs("user-1"), server.GetUnreadCount)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d (body %s)", w.Code, w.Body.String())
	}
	var list NotificationList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("items = %d, want 2 (another user's rows must stay invisible)", len(list.Items))
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil))
	var count UnreadCount
	if err := json.Unmarshal(w.Body.Bytes(), &count); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if count.Count != 1 {
		t.Errorf("unread count = %d, want 1", count.Count)
	}
}

func TestMarkNotificationRead_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "notifications_read")
	seedNotificationUser(t, client, "user-1")
	seedNotificationUser(t, client, "user-2")
	seedNotification(t, client, "n-1", "user-1", false)

	server := NewServer(ServerDeps{EntClient: client})
	router := gin.New()
	router.POST("/as/:user/notifications/:notification_id/read", func(c *gin.Context) {
		authAs(c.Param("user"))(c)
	}, server.MarkNotificationRead)

	// Another user cannot mark it.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/as/user-2/notifications/n-1/read", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign mark status = %d, want %d", w.Code, http.StatusNotFound)
	}

	// The owner can, and the operation is idempotent.
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/as/user-1/notifications/n-1/read", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("mark %d status = %d, want %d", i+1, w.Code, http.StatusNoContent)
		}
	}

	n, err := client.Notification.Get(context.Background(), "n-1")
	if err != nil {
		t.Fatalf("reload notification: %v", err)
	}
	if !n.Read || n.ReadAt == nil {
		t.Errorf("notification read = %v read_at = %v, want marked", n.Read, n.ReadAt)
	}
}
