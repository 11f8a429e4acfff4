package client

import (
	"context"
	"net/http"

	"estudiapro_client/internal/model"
)

// GetProfile fetches the session profile and normalizes it to the canonical
// shape, whichever backend (and field spelling) produced it.
func (c *Client) GetProfile(ctx context.Context) (model.User, error) {
	var raw model.RawProfile
	if err := c.get(ctx, UsersProfile, &raw); err != nil {
		return model.User{}, err
	}
	return model.NormalizeUser(raw), nil
}

type UpdateProfileInput struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Photo     string `json:"foto_perfil_url,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) (model.User, error) {
	var raw model.RawProfile
	if err := c.send(ctx, UsersUpdateProfile, http.MethodPatch, input, &raw); err != nil {
		return model.User{}, err
	}
	return model.NormalizeUser(raw), nil
}

// Admin surface.

func (c *Client) GetAdminUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, AdminUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ManageUser(ctx context.Context, userID, action string) error {
	payload := map[string]string{"action": action}
	return c.send(ctx, JoinPath(AdminUsers, userID), http.MethodPatch, payload, nil)
}

func (c *Client) CreateSubjectAdmin(ctx context.Context, subject model.Subject) error {
	if err := c.send(ctx, AdminSubjects, http.MethodPost, subject, nil); err != nil {
		return err
	}
	c.cache.Invalidate(CacheSubjects)
	return nil
}

func (c *Client) UpdateSubjectAdmin(ctx context.Context, subject model.Subject) error {
	if err := c.send(ctx, JoinPath(AdminSubjects, subject.ID), http.MethodPut, subject, nil); err != nil {
		return err
	}
	c.cache.Invalidate(CacheSubjects)
	return nil
}

func (c *Client) DeleteSubjectAdmin(ctx context.Context, subjectID string) error {
	if err := c.send(ctx, JoinPath(AdminSubjects, subjectID), http.MethodDelete, nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(CacheSubjects)
	return nil
}
