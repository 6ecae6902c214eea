package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:route GET /departments Reference ListDepartments
// responses:
//   200: DepartmentsResponseOk

// swagger:response DepartmentsResponseOk
type DepartmentsResponseOk struct {
	// in:body
	Body struct {
		Departments []data.Department `json:"departments"`
	}
}

// swagger:route GET /designations Reference ListDesignations
// responses:
//   200: DesignationsResponseOk

// swagger:response DesignationsResponseOk
type DesignationsResponseOk struct {
	// in:body
	Body struct {
		Designations []data.Designation `json:"designations"`
	}
}

// swagger:route GET /managers Reference ListManagers
// Lists employees holding the manager role.
//
// responses:
//   200: ManagersResponseOk

// swagger:response ManagersResponseOk
type ManagersResponseOk struct {
	// in:body
	Body struct {
		Managers []data.Manager `json:"managers"`
	}
}

// swagger:route GET /roles Reference ListRoles
// responses:
//   200: RolesResponseOk

// swagger:response RolesResponseOk
type RolesResponseOk struct {
	// in:body
	Body struct {
		Roles []data.Role `json:"roles"`
	}
}
