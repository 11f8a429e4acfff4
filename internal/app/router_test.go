package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/repository"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		Client: config.ClientConfig{DemoMode: true},
		Prefs:  config.PrefsConfig{Path: filepath.Join(dir, "prefs.yaml")},
		JWT:    config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: filepath.Join(dir, "uploads"),
		},
		RateLimit: config.RateLimitConfig{MaxRequests: 10000, WindowMinutes: 1},
	}
	return NewApp(cfg)
}

func doRequest(t *testing.T, a *App, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func loginHTTP(t *testing.T, a *App) string {
	t.Helper()
	w := doRequest(t, a, http.MethodPost, "/api/auth/login/", "", map[string]string{
		"email":    repository.DemoEmail,
		"password": repository.DemoPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	a := newTestApp(t)

	w := doRequest(t, a, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLoginAndAuthorizedCatalog(t *testing.T) {
	a := newTestApp(t)
	token := loginHTTP(t, a)

	w := doRequest(t, a, http.MethodGet, "/api/cursos/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var subjects []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &subjects); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(subjects) != 4 {
		t.Errorf("catalog size = %d, want 4", len(subjects))
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestApp(t)

	w := doRequest(t, a, http.MethodPost, "/api/auth/login/", "", map[string]string{
		"email":    repository.DemoEmail,
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message == "" {
		t.Error("error body has no message")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/cursos/", "/api/recursos/", "/api/examenes/"} {
		if w := doRequest(t, a, http.MethodGet, path, "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, w.Code)
		}
	}

	if w := doRequest(t, a, http.MethodGet, "/api/cursos/", "not-a-jwt", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestPurchaseFlowOverHTTP(t *testing.T) {
	a := newTestApp(t)
	token := loginHTTP(t, a)

	for i := 0; i < 2; i++ {
		w := doRequest(t, a, http.MethodPost, "/api/recursos/comprar/", token, map[string]string{
			"resourceId": "res-002",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("purchase #%d status = %d, body %s", i+1, w.Code, w.Body.String())
		}
	}

	w := doRequest(t, a, http.MethodGet, "/api/recursos/mis-compras/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var purchased []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &purchased); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(purchased) != 3 {
		t.Errorf("purchased = %d, want 3 (2 seeded + 1 bought once)", len(purchased))
	}
}

func TestSubmitExamOverHTTP(t *testing.T) {
	a := newTestApp(t)
	token := loginHTTP(t, a)

	w := doRequest(t, a, http.MethodPost, "/api/examenes/enviar/", token, map[string]any{
		"examId":  "exam-algebra",
		"answers": map[string]string{"alg-q1": "5", "alg-q2": "nope"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var result struct {
		Score   int `json:"calificacion"`
		Correct int `json:"correctas"`
		Total   int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Score != 50 || result.Correct != 1 || result.Total != 2 {
		t.Errorf("result = %+v, want 50 / 1 / 2", result)
	}
}

func TestAdminRoutesNeedAdminRole(t *testing.T) {
	a := newTestApp(t)
	token := loginHTTP(t, a)

	// The demo account is a student.
	w := doRequest(t, a, http.MethodGet, "/api/admin/users/", token, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("admin route with student token: status = %d, want 403", w.Code)
	}
}
