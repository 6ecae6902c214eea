package service

import (
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/logic"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *service) endpointEmployeeCreate(writer http.ResponseWriter, request *http.Request) {
	var employeePartial data.EmployeePartial

	if err := readJSON(request, &employeePartial); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	employee, err := s.logic.EmployeeCreate(request.Context(), employeePartial)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusCreated, nil, &data.Response{
		Employee: employee,
	})
}

func (s *service) endpointEmployeeRead(writer http.ResponseWriter, request *http.Request) {
	employee, err := s.logic.EmployeeRead(request.Context(), mux.Vars(request)[data.PathId])
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Employee: employee,
	})
}

func (s *service) endpointEmployeesSearch(writer http.ResponseWriter, request *http.Request) {
	var search data.EmployeeSearch

	if err := request.ParseForm(); err != nil {
		handleResponse(writer, 0, errors.Wrap(logic.ErrInvalid, err.Error()))
		return
	}
	search.FromParams(request.Form)
	employees, err := s.logic.EmployeesSearch(request.Context(), search)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Employees: employees,
	})
}

func (s *service) endpointEmployeeUpdate(writer http.ResponseWriter, request *http.Request) {
	var employeePartial data.EmployeePartial

	if err := readJSON(request, &employeePartial); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	employee, err := s.logic.EmployeeUpdate(request.Context(), mux.Vars(request)[data.PathId], employeePartial)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Employee: employee,
	})
}

func (s *service) endpointEmployeeDelete(writer http.ResponseWriter, request *http.Request) {
	if err := s.logic.EmployeeDelete(request.Context(), mux.Vars(request)[data.PathId]); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusNoContent, nil)
}

func (s *service) endpointEmployeeStats(writer http.ResponseWriter, request *http.Request) {
	stats, err := s.logic.EmployeeStats(request.Context())
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Stats: stats,
	})
}
