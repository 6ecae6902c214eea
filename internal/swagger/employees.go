package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:route GET /employees Employee SearchEmployees
// Searches employees using search criteria.
//
// responses:
//   200: EmployeesResponseOk
//   401: ErrorResponse

// swagger:response EmployeesResponseOk
type EmployeesResponseOk struct {
	// in:body
	Body struct {
		Employees []data.Employee `json:"employees"`
	}
}

// swagger:parameters SearchEmployees
type EmployeesSearchParams struct {
	// in:query
	data.EmployeeSearch
}

// swagger:route POST /employees Employee CreateEmployee
// Creates an employee, firstName, lastName and email are required.
//
// responses:
//   201: EmployeeResponseOk
//   400: ErrorResponse
//   409: ErrorResponse

// swagger:parameters CreateEmployee
type EmployeeCreateParams struct {
	// in:body
	Body data.EmployeePartial
}

// swagger:route GET /employees/{id} Employee ReadEmployee
// Reads an employee using its id.
//
// responses:
//   200: EmployeeResponseOk
//   404: ErrorResponse

// swagger:route PUT /employees/{id} Employee UpdateEmployee
// Updates the fields provided for an employee.
//
// responses:
//   200: EmployeeResponseOk
//   400: ErrorResponse
//   404: ErrorResponse

// swagger:parameters UpdateEmployee
type EmployeeUpdateParams struct {
	// in:body
	Body data.EmployeePartial
}

// swagger:route DELETE /employees/{id} Employee DeleteEmployee
// Deletes an employee along with their documents.
//
// responses:
//   204: NoContentResponse
//   404: ErrorResponse

// swagger:parameters ReadEmployee UpdateEmployee DeleteEmployee
type EmployeeIdParam struct {
	// in:path
	ID string `json:"id"`
}

// swagger:response EmployeeResponseOk
type EmployeeResponseOk struct {
	// in:body
	Body struct {
		Employee data.Employee `json:"employee"`
	}
}

// swagger:route GET /employees/stats Employee EmployeeStats
// Counts employees by status and department.
//
// responses:
//   200: EmployeeStatsResponseOk

// swagger:response EmployeeStatsResponseOk
type EmployeeStatsResponseOk struct {
	// in:body
	Body struct {
		Stats data.EmployeeStats `json:"stats"`
	}
}
