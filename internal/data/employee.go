package data

import "encoding/json"

const (
	EmployeeStatusActive   string = "active"
	EmployeeStatusInactive string = "inactive"
	EmployeeStatusOnLeave  string = "on_leave"
)

type Employee struct {
	ID           string `json:"id" validate:"required"`
	EmployeeCode string `json:"employeeCode,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Department   string `json:"department,omitempty"`
	Designation  string `json:"designation,omitempty"`
	ManagerID    string `json:"managerId,omitempty"`
	Role         string `json:"role,omitempty"`
	Status       string `json:"status"`
	JoiningDate  int64  `json:"joiningDate,omitempty"` //unix seconds
}

func (e *Employee) FullName() string {
	switch {
	default:
		return e.FirstName + " " + e.LastName
	case e.LastName == "":
		return e.FirstName
	case e.FirstName == "":
		return e.LastName
	}
}

func (e *Employee) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Employee) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}

// EmployeePartial carries the mutable fields of an employee; nil fields are
// left untouched on update.
type EmployeePartial struct {
	FirstName   *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	ManagerID   *string `json:"managerId,omitempty"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=admin hr manager employee"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive on_leave"`
	JoiningDate *int64  `json:"joiningDate,omitempty"`
}

func (e *EmployeePartial) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

func (e *EmployeePartial) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, e)
}

type EmployeeStats struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Inactive     int            `json:"inactive"`
	OnLeave      int            `json:"onLeave"`
	ByDepartment map[string]int `json:"byDepartment,omitempty"`
}
