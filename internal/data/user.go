package data

import "encoding/json"

const (
	RoleAdmin    string = "admin"
	RoleHR       string = "hr"
	RoleManager  string = "manager"
	RoleEmployee string = "employee"
)

const (
	UserStatusActive   string = "active"
	UserStatusInactive string = "inactive"
)

type User struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"required"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

func (u *User) MarshalBinary() ([]byte, error) {
	return json.Marshal(u)
}

func (u *User) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, u)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserRoleUpdate struct {
	Role string `json:"role" validate:"required,oneof=admin hr manager employee"`
}

type UserStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
