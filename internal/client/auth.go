package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"estudiapro_client/internal/model"
	"estudiapro_client/internal/util"
)

// LoginResult is what the login flow hands back to the UI. Expected failures
// (bad credentials, backend rejection) come back as Success=false with a
// message instead of an error; only transport and decoding problems error.
type LoginResult struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Token   string     `json:"token,omitempty"`
	User    model.User `json:"user,omitempty"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  model.RawProfile `json:"user"`
}

// Login authenticates against the active backend. On success the token is
// persisted for subsequent requests; with remember set, the identifier is
// stored for pre-filling the next login form.
func (c *Client) Login(ctx context.Context, identifier, password string, remember bool) (LoginResult, error) {
	payload := map[string]any{"password": password}
	if strings.Contains(identifier, "@") {
		payload["email"] = identifier
	} else {
		payload["username"] = identifier
	}

	raw, err := c.dispatcher.Request(ctx, AuthLogin, http.MethodPost, payload, false)
	if err != nil {
		if msg, expected := expectedLoginFailure(err); expected {
			return LoginResult{Success: false, Message: msg}, nil
		}
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return LoginResult{}, err
	}

	if err := c.prefs.SetToken(resp.Token); err != nil {
		return LoginResult{}, err
	}
	if remember {
		if err := c.prefs.SetRememberedIdentifier(identifier); err != nil {
			return LoginResult{}, err
		}
	} else {
		if err := c.prefs.ClearRememberedIdentifier(); err != nil {
			return LoginResult{}, err
		}
	}

	return LoginResult{
		Success: true,
		Token:   resp.Token,
		User:    model.NormalizeUser(resp.User),
	}, nil
}

func expectedLoginFailure(err error) (string, bool) {
	if errors.Is(err, util.ErrInvalidCredentials) {
		return "Credenciales inválidas. Usa demo@estudiapro.com / demo123.", true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return apiErr.Message, true
	}
	return "", false
}

// Register creates an account on the live backend; the simulator accepts any
// registration and signs the demo profile in.
func (c *Client) Register(ctx context.Context, req RegisterInput) (LoginResult, error) {
	raw, err := c.dispatcher.Request(ctx, AuthRegister, http.MethodPost, req, false)
	if err != nil {
		if msg, expected := expectedLoginFailure(err); expected {
			return LoginResult{Success: false, Message: msg}, nil
		}
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return LoginResult{}, err
	}
	if resp.Token != "" {
		if err := c.prefs.SetToken(resp.Token); err != nil {
			return LoginResult{}, err
		}
	}

	return LoginResult{
		Success: true,
		Token:   resp.Token,
		User:    model.NormalizeUser(resp.User),
	}, nil
}

type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Verify checks whether the stored session token is still accepted and
// returns the refreshed profile when it is.
func (c *Client) Verify(ctx context.Context) (model.User, error) {
	var resp struct {
		Valid bool             `json:"valid"`
		User  model.RawProfile `json:"user"`
	}
	if err := c.get(ctx, AuthVerify, &resp); err != nil {
		return model.User{}, err
	}
	if !resp.Valid {
		return model.User{}, util.ErrUnauthorized
	}
	return model.NormalizeUser(resp.User), nil
}

// Logout tells the backend, then clears the local session and every cached
// list. A failed backend call still clears local state.
func (c *Client) Logout(ctx context.Context) error {
	_ = c.send(ctx, AuthLogout, http.MethodPost, nil, nil)

	c.cache.ClearAll()
	return c.prefs.ClearToken()
}
