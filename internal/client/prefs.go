package client

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	prefDemoMode     = "demo_mode"
	prefAuthToken    = "auth_token"
	prefRememberedID = "remembered_identifier"
)

// Prefs is the small persisted key/value store the data layer consults on
// every request: whether demo mode is on, the current session token, and the
// remembered login identifier. It lives in one yaml file so a freshly opened
// Prefs over the same path sees everything a previous instance wrote.
type Prefs struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// OpenPrefs loads the prefs file at path, creating defaults in memory when
// the file does not exist yet. demoDefault seeds demo_mode on first open.
func OpenPrefs(path string, demoDefault bool) (*Prefs, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(prefDemoMode, demoDefault)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &Prefs{v: v, path: path}, nil
}

func (p *Prefs) DemoMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v.GetBool(prefDemoMode)
}

func (p *Prefs) SetDemoMode(on bool) error {
	return p.set(prefDemoMode, on)
}

// ToggleDemoMode flips the mode and returns the new value. In-flight
// requests keep the mode they started with.
func (p *Prefs) ToggleDemoMode() (bool, error) {
	p.mu.Lock()
	next := !p.v.GetBool(prefDemoMode)
	p.v.Set(prefDemoMode, next)
	err := p.v.WriteConfigAs(p.path)
	p.mu.Unlock()
	return next, err
}

func (p *Prefs) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v.GetString(prefAuthToken)
}

func (p *Prefs) SetToken(token string) error {
	return p.set(prefAuthToken, token)
}

func (p *Prefs) ClearToken() error {
	return p.set(prefAuthToken, "")
}

func (p *Prefs) RememberedIdentifier() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v.GetString(prefRememberedID)
}

func (p *Prefs) SetRememberedIdentifier(identifier string) error {
	return p.set(prefRememberedID, identifier)
}

func (p *Prefs) ClearRememberedIdentifier() error {
	return p.set(prefRememberedID, "")
}

func (p *Prefs) set(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.v.Set(key, value)
	return p.v.WriteConfigAs(p.path)
}
