package client

import (
	"context"
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

// Health returns the version reported by the backend.
func (c *client) Health(ctx context.Context) (string, error) {
	response, err := c.doResponse(ctx, Request{
		Path: data.RouteHealth,
	})
	if err != nil {
		return "", err
	}
	return response.Version, nil
}

// Login authenticates the user, the session cookie set by the backend is
// kept by the client and sent on every subsequent request.
func (c *client) Login(ctx context.Context, request data.LoginRequest) (*data.User, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   data.RouteAuthLogin,
		Method: http.MethodPost,
		Body:   &request,
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.User, "user")
}

func (c *client) Register(ctx context.Context, request data.RegisterRequest) (*data.User, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   data.RouteAuthRegister,
		Method: http.MethodPost,
		Body:   &request,
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.User, "user")
}

func (c *client) Logout(ctx context.Context) error {
	_, err := c.Do(ctx, Request{
		Path:   data.RouteAuthLogout,
		Method: http.MethodPost,
	})
	return err
}
