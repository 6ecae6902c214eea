package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:route GET /admin/users Users ListUsers
// Lists every user, administrators only.
//
// responses:
//   200: UsersResponseOk
//   401: ErrorResponse
//   403: ErrorResponse

// swagger:response UsersResponseOk
type UsersResponseOk struct {
	// in:body
	Body struct {
		Users []data.User `json:"users"`
	}
}

// swagger:route PATCH /admin/users/{id}/role Users UpdateUserRole
// Changes the role of a user, administrators only.
//
// responses:
//   200: UserResponseOk
//   400: ErrorResponse
//   403: ErrorResponse
//   404: ErrorResponse

// swagger:parameters UpdateUserRole
type UserRoleParams struct {
	// in:path
	ID string `json:"id"`

	// in:body
	Body data.UserRoleUpdate
}

// swagger:route PATCH /admin/users/{id}/status Users UpdateUserStatus
// Activates or deactivates a user, administrators only.
//
// responses:
//   200: UserResponseOk
//   400: ErrorResponse
//   403: ErrorResponse
//   404: ErrorResponse

// swagger:parameters UpdateUserStatus
type UserStatusParams struct {
	// in:path
	ID string `json:"id"`

	// in:body
	Body data.UserStatusUpdate
}
