package store

import (
	"context"

	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Store holds the records served by the development backend.
type Store interface {
	UserCreate(ctx context.Context, user data.User, passwordHash []byte) (*data.User, error)
	UserRead(ctx context.Context, id string) (*data.User, error)
	UserReadByEmail(ctx context.Context, email string) (*data.User, []byte, error)
	UsersList(ctx context.Context) ([]*data.User, error)
	UserUpdate(ctx context.Context, id string, role, status *string) (*data.User, error)

	SessionCreate(ctx context.Context, userId string) (string, error)
	SessionRead(ctx context.Context, token string) (string, error)
	SessionDelete(ctx context.Context, token string) error

	EmployeeCreate(ctx context.Context, employeePartial data.EmployeePartial) (*data.Employee, error)
	EmployeeRead(ctx context.Context, id string) (*data.Employee, error)
	EmployeesSearch(ctx context.Context, search data.EmployeeSearch) ([]*data.Employee, error)
	EmployeeUpdate(ctx context.Context, id string, employeePartial data.EmployeePartial) (*data.Employee, error)
	EmployeeDelete(ctx context.Context, id string) error

	DocumentCreate(ctx context.Context, document data.Document, content []byte) (*data.Document, error)
	DocumentRead(ctx context.Context, id string) (*data.Document, []byte, error)
	DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error)
}

func copyUser(u *data.User) *data.User {
	user := &data.User{}
	*user = *u
	return user
}

func copyEmployee(e *data.Employee) *data.Employee {
	employee := &data.Employee{}
	*employee = *e
	return employee
}

func copyDocument(d *data.Document) *data.Document {
	document := &data.Document{}
	*document = *d
	return document
}

func applyPartial(employee *data.Employee, employeePartial data.EmployeePartial) {
	if employeePartial.FirstName != nil {
		employee.FirstName = *employeePartial.FirstName
	}
	if employeePartial.LastName != nil {
		employee.LastName = *employeePartial.LastName
	}
	if employeePartial.Email != nil {
		employee.Email = *employeePartial.Email
	}
	if employeePartial.Phone != nil {
		employee.Phone = *employeePartial.Phone
	}
	if employeePartial.Department != nil {
		employee.Department = *employeePartial.Department
	}
	if employeePartial.Designation != nil {
		employee.Designation = *employeePartial.Designation
	}
	if employeePartial.ManagerID != nil {
		employee.ManagerID = *employeePartial.ManagerID
	}
	if employeePartial.Role != nil {
		employee.Role = *employeePartial.Role
	}
	if employeePartial.Status != nil {
		employee.Status = *employeePartial.Status
	}
	if employeePartial.JoiningDate != nil {
		employee.JoiningDate = *employeePartial.JoiningDate
	}
}
