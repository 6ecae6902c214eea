package client

import (
	"context"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (c *client) DepartmentsList(ctx context.Context) ([]*data.Department, error) {
	response, err := c.doResponse(ctx, Request{Path: data.RouteDepartments})
	if err != nil {
		return nil, err
	}
	return response.Departments, nil
}

func (c *client) DesignationsList(ctx context.Context) ([]*data.Designation, error) {
	response, err := c.doResponse(ctx, Request{Path: data.RouteDesignations})
	if err != nil {
		return nil, err
	}
	return response.Designations, nil
}

func (c *client) ManagersList(ctx context.Context) ([]*data.Manager, error) {
	response, err := c.doResponse(ctx, Request{Path: data.RouteManagers})
	if err != nil {
		return nil, err
	}
	return response.Managers, nil
}

func (c *client) RolesList(ctx context.Context) ([]*data.Role, error) {
	response, err := c.doResponse(ctx, Request{Path: data.RouteRoles})
	if err != nil {
		return nil, err
	}
	return response.Roles, nil
}
