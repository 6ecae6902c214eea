package service

import (
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (s *service) endpointDepartmentsList(writer http.ResponseWriter, request *http.Request) {
	departments, err := s.logic.DepartmentsList(request.Context())
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Departments: departments,
	})
}

func (s *service) endpointDesignationsList(writer http.ResponseWriter, request *http.Request) {
	designations, err := s.logic.DesignationsList(request.Context())
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Designations: designations,
	})
}

func (s *service) endpointManagersList(writer http.ResponseWriter, request *http.Request) {
	managers, err := s.logic.ManagersList(request.Context())
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Managers: managers,
	})
}

func (s *service) endpointRolesList(writer http.ResponseWriter, request *http.Request) {
	roles, err := s.logic.RolesList(request.Context())
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Roles: roles,
	})
}
