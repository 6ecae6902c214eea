package client

import (
	"context"
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (c *client) UsersList(ctx context.Context) ([]*data.User, error) {
	response, err := c.doResponse(ctx, Request{
		Path: data.RouteAdminUsers,
	})
	if err != nil {
		return nil, err
	}
	return response.Users, nil
}

func (c *client) UserRoleUpdate(ctx context.Context, id, role string) (*data.User, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   pathf(data.RouteAdminUsersRolef, id),
		Method: http.MethodPatch,
		Body:   &data.UserRoleUpdate{Role: role},
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.User, "user")
}

func (c *client) UserStatusUpdate(ctx context.Context, id, status string) (*data.User, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   pathf(data.RouteAdminUsersStatusf, id),
		Method: http.MethodPatch,
		Body:   &data.UserStatusUpdate{Status: status},
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.User, "user")
}
