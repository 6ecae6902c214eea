package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antonio-alexander/go-bizadmin/internal/client"
	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type route struct {
	method string
	path   string
}

type reply struct {
	statusCode int
	body       string
}

func newRoutedServer(t *testing.T, routes map[route]reply) (*httptest.Server, chan string) {
	bodies := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		r, ok := routes[route{request.Method, request.URL.RequestURI()}]
		if !ok {
			writeJSON(writer, http.StatusNotFound, `{"message":"no route: `+request.Method+` `+request.URL.RequestURI()+`"}`)
			return
		}
		body, _ := io.ReadAll(request.Body)
		select {
		case bodies <- string(body):
		default:
		}
		writeJSON(writer, r.statusCode, r.body)
	}))
	t.Cleanup(server.Close)
	return server, bodies
}

func TestClientEndpoints(t *testing.T) {
	server, bodies := newRoutedServer(t, map[route]reply{
		{http.MethodGet, "/api/health"}:                      {200, `{"message":"ok","version":"1.2.3"}`},
		{http.MethodPost, "/api/auth/register"}:              {201, `{"message":"registered","user":{"id":"u1","email":"a@b.c","role":"employee"}}`},
		{http.MethodPost, "/api/auth/logout"}:                {200, `{"message":"logged out"}`},
		{http.MethodPatch, "/api/admin/users/u1/role"}:       {200, `{"user":{"id":"u1","email":"a@b.c","role":"hr"}}`},
		{http.MethodPatch, "/api/admin/users/u1/status"}:     {200, `{"user":{"id":"u1","email":"a@b.c","status":"inactive"}}`},
		{http.MethodGet, "/api/employees?department=Sales&search=ada"}: {200, `{"employees":[{"id":"e1","firstName":"Ada"}]}`},
		{http.MethodGet, "/api/employees"}:                   {200, `{}`},
		{http.MethodPost, "/api/employees"}:                  {201, `{"employee":{"id":"e1","firstName":"Ada"}}`},
		{http.MethodGet, "/api/employees/e%201"}:             {200, `{"employee":{"id":"e 1"}}`},
		{http.MethodPut, "/api/employees/e1"}:                {200, `{"employee":{"id":"e1","lastName":"Lovelace"}}`},
		{http.MethodDelete, "/api/employees/e1"}:             {204, ``},
		{http.MethodGet, "/api/employees/stats"}:             {200, `{"stats":{"total":3,"active":2,"inactive":0,"onLeave":1,"byDepartment":{"Sales":3}}}`},
		{http.MethodGet, "/api/departments"}:                 {200, `{"departments":[{"id":"sales","name":"Sales"}]}`},
		{http.MethodGet, "/api/designations"}:                {200, `{"designations":[{"id":"se","name":"Software Engineer"}]}`},
		{http.MethodGet, "/api/managers"}:                    {200, `{"managers":[{"id":"e9","name":"Grace Hopper"}]}`},
		{http.MethodGet, "/api/roles"}:                       {200, `{"roles":[{"id":"admin","name":"Administrator"}]}`},
		{http.MethodGet, "/api/documents/employee/e1"}:       {200, `{"documents":[{"id":"d1","employeeId":"e1"}]}`},
		{http.MethodGet, "/api/debug/timers"}:                {200, `{"totals":{"employee_read":10},"averages":{"employee_read":5}}`},
		{http.MethodDelete, "/api/debug/timers"}:             {204, ``},
		{http.MethodGet, "/api/debug/counters"}:              {200, `{"successes":{"employee_read":2},"failures":{"login":1}}`},
		{http.MethodDelete, "/api/debug/counters"}:           {204, ``},
	})
	c := newClient(t, server.URL)
	ctx := context.TODO()

	version, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
	<-bodies

	user, err := c.Register(ctx, data.RegisterRequest{Name: "Ada", Email: "a@b.c", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.JSONEq(t, `{"name":"Ada","email":"a@b.c","password":"password1"}`, <-bodies)
	assert.NoError(t, c.Logout(ctx))
	<-bodies

	user, err = c.UserRoleUpdate(ctx, "u1", data.RoleHR)
	require.NoError(t, err)
	assert.Equal(t, data.RoleHR, user.Role)
	assert.JSONEq(t, `{"role":"hr"}`, <-bodies)
	user, err = c.UserStatusUpdate(ctx, "u1", data.UserStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, data.UserStatusInactive, user.Status)
	assert.JSONEq(t, `{"status":"inactive"}`, <-bodies)

	employees, err := c.EmployeesSearch(ctx, data.EmployeeSearch{Search: "ada", Department: "Sales"})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ada", employees[0].FirstName)
	<-bodies
	employees, err = c.EmployeesSearch(ctx, data.EmployeeSearch{})
	require.NoError(t, err)
	assert.Empty(t, employees)
	<-bodies

	firstName := "Ada"
	employee, err := c.EmployeeCreate(ctx, data.EmployeePartial{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, "e1", employee.ID)
	assert.JSONEq(t, `{"firstName":"Ada"}`, <-bodies)
	employee, err = c.EmployeeRead(ctx, "e 1")
	require.NoError(t, err)
	assert.Equal(t, "e 1", employee.ID)
	<-bodies
	lastName := "Lovelace"
	employee, err = c.EmployeeUpdate(ctx, "e1", data.EmployeePartial{LastName: &lastName})
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", employee.LastName)
	assert.JSONEq(t, `{"lastName":"Lovelace"}`, <-bodies)
	assert.NoError(t, c.EmployeeDelete(ctx, "e1"))
	<-bodies

	stats, err := c.EmployeeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &data.EmployeeStats{
		Total: 3, Active: 2, OnLeave: 1,
		ByDepartment: map[string]int{"Sales": 3},
	}, stats)
	<-bodies

	departments, err := c.DepartmentsList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*data.Department{{ID: "sales", Name: "Sales"}}, departments)
	<-bodies
	designations, err := c.DesignationsList(ctx)
	require.NoError(t, err)
	assert.Len(t, designations, 1)
	<-bodies
	managers, err := c.ManagersList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", managers[0].Name)
	<-bodies
	roles, err := c.RolesList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", roles[0].ID)
	<-bodies
	documents, err := c.DocumentsList(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, documents, 1)
	<-bodies

	timers, err := c.TimersRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), timers.Averages["employee_read"])
	<-bodies
	assert.NoError(t, c.TimersClear(ctx))
	<-bodies
	counters, err := c.CountersRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counters.Failures["login"])
	<-bodies
	assert.NoError(t, c.CountersClear(ctx))
	<-bodies

	_, err = c.EmployeeRead(ctx, "missing")
	assert.True(t, client.IsStatus(err, http.StatusNotFound))
}

func TestClientMalformedResponses(t *testing.T) {
	server, _ := newRoutedServer(t, map[route]reply{
		{http.MethodGet, "/api/employees/no-employee"}:  {200, `{"message":"ok"}`},
		{http.MethodGet, "/api/employees/no-id"}:        {200, `{"employee":{"firstName":"Ada"}}`},
		{http.MethodGet, "/api/employees/wrong-type"}:   {200, `{"employee":{"id":7}}`},
		{http.MethodGet, "/api/employees/array"}:        {200, `[{"id":"e1"}]`},
		{http.MethodGet, "/api/employees/not-json"}:     {200, ``},
		{http.MethodGet, "/api/employees?search=x"}:     {200, `{"employees":[{"firstName":"no id"}]}`},
		{http.MethodGet, "/api/employees?search=null"}:  {200, `{"employees":[null]}`},
		{http.MethodGet, "/api/departments"}:            {200, `{"departments":[{"id":"d"}]}`},
		{http.MethodGet, "/api/employees/stats"}:        {200, `{}`},
	})
	c := newClient(t, server.URL)
	ctx := context.TODO()

	for _, id := range []string{"no-employee", "no-id", "wrong-type", "array", "not-json"} {
		t.Run(id, func(t *testing.T) {
			employee, err := c.EmployeeRead(ctx, id)
			assert.ErrorIs(t, err, client.ErrMalformedResponse)
			assert.Nil(t, employee)
		})
	}
	_, err := c.EmployeesSearch(ctx, data.EmployeeSearch{Search: "x"})
	assert.ErrorIs(t, err, client.ErrMalformedResponse)
	_, err = c.EmployeesSearch(ctx, data.EmployeeSearch{Search: "null"})
	assert.ErrorIs(t, err, client.ErrMalformedResponse)
	_, err = c.DepartmentsList(ctx)
	assert.ErrorIs(t, err, client.ErrMalformedResponse)
	_, err = c.EmployeeStats(ctx)
	assert.ErrorIs(t, err, client.ErrMalformedResponse)
}
