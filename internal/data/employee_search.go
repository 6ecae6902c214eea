package data

import (
	"net/url"
	"strings"
)

type EmployeeSearch struct {
	Search     string `json:"search,omitempty"`
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (e *EmployeeSearch) ToParams() url.Values {
	params := make(url.Values)
	if e.Search != "" {
		params.Set(ParameterSearch, e.Search)
	}
	if e.Department != "" {
		params.Set(ParameterDepartment, e.Department)
	}
	if e.Status != "" {
		params.Set(ParameterStatus, e.Status)
	}
	return params
}

func (e *EmployeeSearch) FromParams(params url.Values) {
	for key, values := range params {
		if len(values) == 0 {
			continue
		}
		switch strings.ToLower(key) {
		case strings.ToLower(ParameterSearch):
			e.Search = values[0]
		case strings.ToLower(ParameterDepartment):
			e.Department = values[0]
		case strings.ToLower(ParameterStatus):
			e.Status = values[0]
		}
	}
}

// Matches reports whether the employee satisfies every criteria set on the
// search; Search is a case-insensitive substring match over name, email and
// employee code.
func (e *EmployeeSearch) Matches(employee *Employee) bool {
	if e.Department != "" && !strings.EqualFold(e.Department, employee.Department) {
		return false
	}
	if e.Status != "" && e.Status != employee.Status {
		return false
	}
	if e.Search == "" {
		return true
	}
	search := strings.ToLower(e.Search)
	for _, field := range []string{
		employee.FullName(),
		employee.Email,
		employee.EmployeeCode,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
