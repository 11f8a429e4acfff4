package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/model"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/service"
	"estudiapro_client/internal/util"
)

func newTestBackend(t *testing.T, cfg *config.Config) (*DemoBackend, *Prefs) {
	t.Helper()
	prefs, err := OpenPrefs(cfg.Prefs.Path, cfg.Client.DemoMode)
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	svcs := service.NewServices(cfg, repository.NewStore())
	return NewDemoBackend(cfg, prefs, svcs), prefs
}

func TestUnmatchedRouteIsHardError(t *testing.T) {
	backend, prefs := newTestBackend(t, testConfig(t))
	if err := prefs.SetToken(DemoToken); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	_, err := backend.Handle(context.Background(), Endpoint("/no-such-route/"), http.MethodGet, nil, true)
	if !errors.Is(err, util.ErrUnknownEndpoint) {
		t.Fatalf("err = %v, want ErrUnknownEndpoint", err)
	}

	// A known endpoint with the wrong method is unmatched too.
	_, err = backend.Handle(context.Background(), SubjectsAll, http.MethodDelete, nil, true)
	if !errors.Is(err, util.ErrUnknownEndpoint) {
		t.Fatalf("wrong-method err = %v, want ErrUnknownEndpoint", err)
	}
}

func TestLenientRoutingAnswersWithStub(t *testing.T) {
	cfg := testConfig(t)
	cfg.Client.LenientRouting = true
	backend, prefs := newTestBackend(t, cfg)
	if err := prefs.SetToken(DemoToken); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	result, err := backend.Handle(context.Background(), Endpoint("/no-such-route/"), http.MethodGet, nil, true)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	stub, ok := result.(map[string]any)
	if !ok || stub["success"] != true {
		t.Errorf("stub = %#v", result)
	}
}

func TestHandleRejectsForeignToken(t *testing.T) {
	backend, prefs := newTestBackend(t, testConfig(t))

	// A live-session token is not the demo sentinel.
	if err := prefs.SetToken("some-live-jwt"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	_, err := backend.Handle(context.Background(), SubjectsAll, http.MethodGet, nil, true)
	if !errors.Is(err, util.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	// Unauthenticated endpoints skip the gate.
	if _, err := backend.Handle(context.Background(), AuthLogin, http.MethodPost, map[string]string{
		"email":    repository.DemoEmail,
		"password": repository.DemoPassword,
	}, false); err != nil {
		t.Fatalf("login with requiresAuth=false: %v", err)
	}
}

func TestForumDetailRouteMatchesIDSuffix(t *testing.T) {
	backend, prefs := newTestBackend(t, testConfig(t))
	if err := prefs.SetToken(DemoToken); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	result, err := backend.Handle(context.Background(), JoinPath(ForumsAll, "forum-1"), http.MethodGet, nil, true)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	detail, ok := result.(model.ForumTopicDetail)
	if !ok {
		t.Fatalf("result = %#v, want ForumTopicDetail", result)
	}
	if detail.ID != "forum-1" || detail.Title == "" || len(detail.Posts) == 0 {
		t.Errorf("detail = %+v", detail)
	}

	// Unknown ids still render with the placeholder title.
	result, err = backend.Handle(context.Background(), JoinPath(ForumsAll, "forum-nope"), http.MethodGet, nil, true)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if detail := result.(model.ForumTopicDetail); detail.Title != "Tema" {
		t.Errorf("placeholder title = %q", detail.Title)
	}
}
