package api

import (
	"context"

	"github.com/thuysan/seapos/internal/models"
)

// Login exchanges credentials for a bearer token and user profile. The token
// is installed on the client so follow-up calls are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out models.LoginResponse
	if err := c.post(ctx, "/api/users/login", body, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.AccessToken)
	return &out, nil
}

// Register creates an account and, like the login screen, signs the new user
// straight in.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.post(ctx, "/api/users/register", req, &out); err != nil {
		return nil, err
	}
	if out.AccessToken != "" {
		c.SetToken(out.AccessToken)
	}
	return &out, nil
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/api/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns all users (admin screen).
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/api/users/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
