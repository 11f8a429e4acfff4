package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/util"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		Client: config.ClientConfig{
			BaseURL:     "http://127.0.0.1:1/api",
			DemoMode:    true,
			DemoLatency: time.Millisecond,
		},
		Cache: config.CacheConfig{
			SubjectsTTL:  time.Minute,
			ResourcesTTL: time.Minute,
			ExamsTTL:     time.Minute,
			TutorsTTL:    time.Minute,
			ForumsTTL:    time.Minute,
		},
		Prefs:   config.PrefsConfig{Path: filepath.Join(dir, "prefs.yaml")},
		JWT:     config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: "local", LocalPath: filepath.Join(dir, "uploads")},
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(testConfig(t), repository.NewStore())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func loginDemo(t *testing.T, c *Client) model.User {
	t.Helper()
	res, err := c.Login(context.Background(), repository.DemoEmail, repository.DemoPassword, false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success {
		t.Fatalf("Login failed: %s", res.Message)
	}
	return res.User
}

func TestLoginSuccessPersistsSession(t *testing.T) {
	c := newTestClient(t)

	user := loginDemo(t, c)

	if got := c.Prefs().Token(); got != DemoToken {
		t.Errorf("stored token = %q, want %q", got, DemoToken)
	}
	if user.Name != "Daniela Yáñez" {
		t.Errorf("user.Name = %q, want %q", user.Name, "Daniela Yáñez")
	}
	if user.Role != model.Student {
		t.Errorf("user.Role = %q, want %q", user.Role, model.Student)
	}
	if user.Stats.Level != 3 || user.Stats.Points != 820 {
		t.Errorf("user.Stats = %+v, want level 3 / 820 points", user.Stats)
	}
}

func TestLoginAcceptsUsernameCaseInsensitive(t *testing.T) {
	c := newTestClient(t)

	res, err := c.Login(context.Background(), "DANIELA.DEMO", repository.DemoPassword, false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success {
		t.Fatalf("Login failed: %s", res.Message)
	}
}

func TestLoginFailureReturnsResultNotError(t *testing.T) {
	c := newTestClient(t)

	res, err := c.Login(context.Background(), repository.DemoEmail, "not-the-password", false)
	if err != nil {
		t.Fatalf("Login returned error for bad credentials: %v", err)
	}
	if res.Success {
		t.Fatal("Login succeeded with bad credentials")
	}
	if res.Message == "" {
		t.Error("failure result has no message")
	}
	if c.Prefs().Token() != "" {
		t.Error("token persisted after failed login")
	}
}

func TestLoginRememberStoresIdentifier(t *testing.T) {
	c := newTestClient(t)

	res, err := c.Login(context.Background(), repository.DemoEmail, repository.DemoPassword, true)
	if err != nil || !res.Success {
		t.Fatalf("Login: %v / %+v", err, res)
	}
	if got := c.Prefs().RememberedIdentifier(); got != repository.DemoEmail {
		t.Errorf("remembered identifier = %q, want %q", got, repository.DemoEmail)
	}

	// A later login without remember clears it.
	if _, err := c.Login(context.Background(), repository.DemoEmail, repository.DemoPassword, false); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := c.Prefs().RememberedIdentifier(); got != "" {
		t.Errorf("remembered identifier = %q after login without remember", got)
	}
}

func TestAuthenticatedCallsRejectedWithoutLogin(t *testing.T) {
	c := newTestClient(t)

	_, err := c.GetAllSubjects(context.Background(), false)
	if !errors.Is(err, util.ErrUnauthorized) {
		t.Fatalf("GetAllSubjects without login: err = %v, want ErrUnauthorized", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)

	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if c.Prefs().Token() != "" {
		t.Error("token survives logout")
	}
	if _, err := c.GetUserSubjects(context.Background()); !errors.Is(err, util.ErrUnauthorized) {
		t.Errorf("post-logout request err = %v, want ErrUnauthorized", err)
	}
}

func TestPurchaseIsIdempotent(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)
	ctx := context.Background()

	before, err := c.GetPurchasedResources(ctx)
	if err != nil {
		t.Fatalf("GetPurchasedResources: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := c.PurchaseResource(ctx, "res-002"); err != nil {
			t.Fatalf("PurchaseResource #%d: %v", i+1, err)
		}
	}

	after, err := c.GetPurchasedResources(ctx)
	if err != nil {
		t.Fatalf("GetPurchasedResources: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("purchased count = %d, want %d", len(after), len(before)+1)
	}
}

func TestPurchaseUnknownResource(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)

	err := c.PurchaseResource(context.Background(), "res-999")
	if !errors.Is(err, util.ErrResourceNotFound) {
		t.Fatalf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestDownloadRequiresOwnership(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)
	ctx := context.Background()

	// res-003 is free, res-002 is paid and not owned.
	if _, err := c.DownloadResource(ctx, "res-003"); err != nil {
		t.Errorf("free resource download: %v", err)
	}
	if _, err := c.DownloadResource(ctx, "res-002"); !errors.Is(err, util.ErrResourceNotOwned) {
		t.Errorf("unowned download err = %v, want ErrResourceNotOwned", err)
	}

	if err := c.PurchaseResource(ctx, "res-002"); err != nil {
		t.Fatalf("PurchaseResource: %v", err)
	}
	resp, err := c.DownloadResource(ctx, "res-002")
	if err != nil {
		t.Fatalf("download after purchase: %v", err)
	}
	if !resp.Success || resp.URL == "" {
		t.Errorf("download response = %+v", resp)
	}
}

func TestSubmitExamGrades(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)

	// Whitespace and case must not matter; one of two answers is wrong.
	result, err := c.SubmitExam(context.Background(), "exam-algebra", map[string]string{
		"alg-q1": "  5 ",
		"alg-q2": "wrong",
	})
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}
	if result.Correct != 1 || result.Total != 2 || result.Score != 50 {
		t.Errorf("result = %+v, want 1/2 correct, score 50", result)
	}
}

func TestSubmitExamUnknownID(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)

	_, err := c.SubmitExam(context.Background(), "exam-nope", nil)
	if !errors.Is(err, util.ErrExamNotFound) {
		t.Fatalf("err = %v, want ErrExamNotFound", err)
	}
}

func TestAddSubjectAndExamDate(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)
	ctx := context.Background()

	if err := c.AddSubject(ctx, "ecu-1"); err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	// Enrolling twice is a no-op, not an error.
	if err := c.AddSubject(ctx, "ecu-1"); err != nil {
		t.Fatalf("AddSubject repeat: %v", err)
	}
	if err := c.AddSubject(ctx, "no-such"); !errors.Is(err, util.ErrSubjectNotFound) {
		t.Fatalf("AddSubject unknown err = %v, want ErrSubjectNotFound", err)
	}

	if err := c.UpdateExamDate(ctx, "ecu-1", "2026-01-15"); err != nil {
		t.Fatalf("UpdateExamDate: %v", err)
	}

	subjects, err := c.GetUserSubjects(ctx)
	if err != nil {
		t.Fatalf("GetUserSubjects: %v", err)
	}
	found := false
	for _, s := range subjects {
		if s.ID == "ecu-1" {
			found = true
			if s.ExamDate != "2026-01-15" {
				t.Errorf("exam date = %q, want 2026-01-15", s.ExamDate)
			}
		}
	}
	if !found {
		t.Error("enrolled subject missing from user subjects")
	}
}

func TestCreateForumTopicShowsFirstInList(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)
	ctx := context.Background()

	topic, err := c.CreateForumTopic(ctx, "¿Cómo estudiar Laplace?", "ecu-1")
	if err != nil {
		t.Fatalf("CreateForumTopic: %v", err)
	}
	if topic.SubjectName != "Ecuaciones Diferenciales" {
		t.Errorf("subject name = %q", topic.SubjectName)
	}

	topics, err := c.GetForumTopics(ctx, false)
	if err != nil {
		t.Fatalf("GetForumTopics: %v", err)
	}
	if len(topics) == 0 || topics[0].ID != topic.ID {
		t.Errorf("new topic is not first in list")
	}

	detail, err := c.GetForumTopic(ctx, topic.ID)
	if err != nil {
		t.Fatalf("GetForumTopic: %v", err)
	}
	if detail.Title != topic.Title || len(detail.Posts) == 0 {
		t.Errorf("detail = %+v", detail)
	}
}

func TestScheduleTutoring(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)

	session, err := c.ScheduleTutoring(context.Background(), ScheduleTutoringInput{
		TutorID:  "tutor-ale",
		Duration: 60,
		Topic:    "Derivadas",
	})
	if err != nil {
		t.Fatalf("ScheduleTutoring: %v", err)
	}
	if session.ID == "" || session.TutorID != "tutor-ale" {
		t.Errorf("session = %+v", session)
	}

	_, err = c.ScheduleTutoring(context.Background(), ScheduleTutoringInput{TutorID: "tutor-nope"})
	if !errors.Is(err, util.ErrTutorNotFound) {
		t.Errorf("unknown tutor err = %v, want ErrTutorNotFound", err)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	c := newTestClient(t)
	loginDemo(t, c)
	ctx := context.Background()

	if err := c.MarkNotificationRead(ctx, "notif-1"); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}

	notifications, err := c.GetNotifications(ctx)
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	for _, n := range notifications {
		if n.ID == "notif-1" && !n.Read {
			t.Error("notif-1 still unread")
		}
	}
}

func TestRequestHonorsContextCancellation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Client.DemoLatency = 500 * time.Millisecond
	c, err := New(cfg, repository.NewStore())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = c.Login(ctx, repository.DemoEmail, repository.DemoPassword, false)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}
