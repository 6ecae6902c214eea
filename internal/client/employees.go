package client

import (
	"context"
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (c *client) EmployeeCreate(ctx context.Context, employeePartial data.EmployeePartial) (*data.Employee, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   data.RouteEmployees,
		Method: http.MethodPost,
		Body:   &employeePartial,
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.Employee, "employee")
}

func (c *client) EmployeeRead(ctx context.Context, id string) (*data.Employee, error) {
	response, err := c.doResponse(ctx, Request{
		Path: pathf(data.RouteEmployeesIdf, id),
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.Employee, "employee")
}

func (c *client) EmployeesSearch(ctx context.Context, search data.EmployeeSearch) ([]*data.Employee, error) {
	path := data.RouteEmployees
	if params := search.ToParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}
	response, err := c.doResponse(ctx, Request{
		Path: path,
	})
	if err != nil {
		return nil, err
	}
	return response.Employees, nil
}

func (c *client) EmployeeUpdate(ctx context.Context, id string, employeePartial data.EmployeePartial) (*data.Employee, error) {
	response, err := c.doResponse(ctx, Request{
		Path:   pathf(data.RouteEmployeesIdf, id),
		Method: http.MethodPut,
		Body:   &employeePartial,
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.Employee, "employee")
}

func (c *client) EmployeeDelete(ctx context.Context, id string) error {
	_, err := c.Do(ctx, Request{
		Path:   pathf(data.RouteEmployeesIdf, id),
		Method: http.MethodDelete,
	})
	return err
}

func (c *client) EmployeeStats(ctx context.Context) (*data.EmployeeStats, error) {
	response, err := c.doResponse(ctx, Request{
		Path: data.RouteEmployeesStats,
	})
	if err != nil {
		return nil, err
	}
	return validateItem(response.Stats, "stats")
}
