package client

import (
	"context"
	"encoding/json"
	"net/http"

	"estudiapro_client/internal/config"
	"estudiapro_client/internal/repository"
	"estudiapro_client/internal/service"
)

// Client is the typed facade the application talks to. Each method builds
// the right endpoint, method and payload, hands them to the dispatcher, and
// decodes the raw JSON into domain types — normalizing shapes that differ
// between the demo and live backends along the way.
type Client struct {
	cfg        *config.Config
	prefs      *Prefs
	dispatcher *Dispatcher
	cache      *CatalogCache
}

// New wires a Client over the given seed store. The store is injected so
// tests can build an isolated graph per case.
func New(cfg *config.Config, store *repository.Store) (*Client, error) {
	prefs, err := OpenPrefs(cfg.Prefs.Path, cfg.Client.DemoMode)
	if err != nil {
		return nil, err
	}

	svcs := service.NewServices(cfg, store)
	demo := NewDemoBackend(cfg, prefs, svcs)

	return &Client{
		cfg:        cfg,
		prefs:      prefs,
		dispatcher: NewDispatcher(cfg, prefs, demo),
		cache:      NewCatalogCache(&cfg.Cache),
	}, nil
}

// Prefs exposes the persisted preferences (mode toggle, remembered login).
func (c *Client) Prefs() *Prefs {
	return c.prefs
}

func (c *Client) DemoMode() bool {
	return c.prefs.DemoMode()
}

// ToggleDemoMode flips the backend for future requests and drops every
// cached list, since the two backends serve different data.
func (c *Client) ToggleDemoMode() (bool, error) {
	on, err := c.prefs.ToggleDemoMode()
	c.cache.ClearAll()
	return on, err
}

// get issues a GET and decodes the response into out.
func (c *Client) get(ctx context.Context, endpoint Endpoint, out any) error {
	return c.send(ctx, endpoint, http.MethodGet, nil, out)
}

func (c *Client) send(ctx context.Context, endpoint Endpoint, method string, payload, out any) error {
	raw, err := c.dispatcher.Request(ctx, endpoint, method, payload, true)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// cachedList serves a catalog list through the TTL cache.
func cachedList[T any](ctx context.Context, c *Client, kind CacheKind, endpoint Endpoint, forceRefresh bool) ([]T, error) {
	v, err := c.cache.Get(ctx, kind, forceRefresh, func(ctx context.Context) (any, error) {
		var list []T
		if err := c.get(ctx, endpoint, &list); err != nil {
			return nil, err
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
