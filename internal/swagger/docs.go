// Package Swagger go-bizadmin
//
// The REST api consumed by the go-bizadmin client.
//
//   Schemes: http, https
//   Version: 1.0
//   Host: localhost:5000
//   BasePath: /api
//
//   Consumes:
//   - application/json
//
//   Produces:
//   - application/json
//
//   Security:
//   - session
//
//  SecurityDefinitions:
//  session:
//    type: apiKey
//    in: cookie
//    name: session
//
// swagger:meta
package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:response ErrorResponse
type ErrorResponse struct {
	// in:body
	Body data.Message
}

// swagger:response NoContentResponse
type NoContentResponse struct{}

// swagger:parameters Health Login Register Logout ListUsers UpdateUserRole UpdateUserStatus SearchEmployees CreateEmployee ReadEmployee UpdateEmployee DeleteEmployee EmployeeStats ListDepartments ListDesignations ListManagers ListRoles UploadDocument ListDocuments DownloadDocument ReadTimers DeleteTimers ReadCounters DeleteCounters
type CorrelationIdParam struct {
	// in:header
	CorrelationId string `json:"Correlation-Id"`
}
