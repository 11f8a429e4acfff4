package client

import (
	"path/filepath"
	"testing"
)

func openTestPrefs(t *testing.T, path string, demoDefault bool) *Prefs {
	t.Helper()
	p, err := OpenPrefs(path, demoDefault)
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	return p
}

func TestPrefsDefaultsWithoutFile(t *testing.T) {
	p := openTestPrefs(t, filepath.Join(t.TempDir(), "prefs.yaml"), true)

	if !p.DemoMode() {
		t.Error("demo mode default not applied")
	}
	if p.Token() != "" {
		t.Error("token not empty on fresh prefs")
	}
	if p.RememberedIdentifier() != "" {
		t.Error("remembered identifier not empty on fresh prefs")
	}
}

func TestToggleDemoModePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	p := openTestPrefs(t, path, true)
	on, err := p.ToggleDemoMode()
	if err != nil {
		t.Fatalf("ToggleDemoMode: %v", err)
	}
	if on {
		t.Fatal("toggle from true should yield false")
	}

	// A fresh instance over the same file observes the write, even though
	// its default says demo mode is on.
	fresh := openTestPrefs(t, path, true)
	if fresh.DemoMode() {
		t.Error("fresh prefs did not observe persisted toggle")
	}

	on, err = fresh.ToggleDemoMode()
	if err != nil {
		t.Fatalf("ToggleDemoMode: %v", err)
	}
	if !on {
		t.Error("second toggle should restore demo mode")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	p := openTestPrefs(t, path, true)
	if err := p.SetToken("demo-token"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	fresh := openTestPrefs(t, path, true)
	if got := fresh.Token(); got != "demo-token" {
		t.Errorf("token = %q after reopen", got)
	}

	if err := fresh.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if got := openTestPrefs(t, path, true).Token(); got != "" {
		t.Errorf("token = %q after clear", got)
	}
}

func TestRememberedIdentifierRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	p := openTestPrefs(t, path, true)
	if err := p.SetRememberedIdentifier("demo@estudiapro.com"); err != nil {
		t.Fatalf("SetRememberedIdentifier: %v", err)
	}
	if got := openTestPrefs(t, path, true).RememberedIdentifier(); got != "demo@estudiapro.com" {
		t.Errorf("identifier = %q after reopen", got)
	}
}
