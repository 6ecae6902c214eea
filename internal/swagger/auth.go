package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:route GET /health Health Health
// Reports the backend version.
//
// responses:
//   200: HealthResponseOk

// swagger:response HealthResponseOk
type HealthResponseOk struct {
	// in:body
	Body struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}
}

// swagger:route POST /auth/login Auth Login
// Authenticates a user and sets the session cookie.
//
// responses:
//   200: UserResponseOk
//   400: ErrorResponse
//   401: ErrorResponse
//   403: ErrorResponse

// swagger:parameters Login
type LoginParams struct {
	// in:body
	Body data.LoginRequest
}

// swagger:route POST /auth/register Auth Register
// Registers a user with the employee role.
//
// responses:
//   201: UserResponseOk
//   400: ErrorResponse
//   409: ErrorResponse

// swagger:parameters Register
type RegisterParams struct {
	// in:body
	Body data.RegisterRequest
}

// swagger:route POST /auth/logout Auth Logout
// Ends the session and expires the session cookie.
//
// responses:
//   200: ErrorResponse

// swagger:response UserResponseOk
type UserResponseOk struct {
	// in:body
	Body struct {
		User data.User `json:"user"`
	}
}
