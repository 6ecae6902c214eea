package data

// APIPrefix is prepended to every route served by the backend.
const APIPrefix string = "/api"

const DefaultBaseURL string = "http://localhost:5000"

const (
	PathId         string = "id"
	PathEmployeeId string = "employeeId"
)

const (
	RouteHealth string = "/health"

	RouteAuth         string = "/auth"
	RouteAuthLogin    string = RouteAuth + "/login"
	RouteAuthRegister string = RouteAuth + "/register"
	RouteAuthLogout   string = RouteAuth + "/logout"

	RouteAdminUsers        string = "/admin/users"
	RouteAdminUsersRole    string = RouteAdminUsers + "/{" + PathId + "}/role"
	RouteAdminUsersRolef   string = RouteAdminUsers + "/%s/role"
	RouteAdminUsersStatus  string = RouteAdminUsers + "/{" + PathId + "}/status"
	RouteAdminUsersStatusf string = RouteAdminUsers + "/%s/status"

	RouteEmployees      string = "/employees"
	RouteEmployeesStats string = RouteEmployees + "/stats"
	RouteEmployeesId    string = RouteEmployees + "/{" + PathId + "}"
	RouteEmployeesIdf   string = RouteEmployees + "/%s"

	RouteDepartments  string = "/departments"
	RouteDesignations string = "/designations"
	RouteManagers     string = "/managers"
	RouteRoles        string = "/roles"

	RouteDocuments            string = "/documents"
	RouteDocumentsUpload      string = RouteDocuments + "/upload/{" + PathEmployeeId + "}"
	RouteDocumentsUploadf     string = RouteDocuments + "/upload/%s"
	RouteDocumentsEmployee    string = RouteDocuments + "/employee/{" + PathEmployeeId + "}"
	RouteDocumentsEmployeef   string = RouteDocuments + "/employee/%s"
	RouteDocumentsIdDownload  string = RouteDocuments + "/{" + PathId + "}/download"
	RouteDocumentsIdDownloadf string = RouteDocuments + "/%s/download"

	RouteDebugTimers   string = "/debug/timers"
	RouteDebugCounters string = "/debug/counters"
)

const (
	ParameterSearch     string = "search"
	ParameterDepartment string = "department"
	ParameterStatus     string = "status"
)

const (
	FormFieldFile         string = "file"
	FormFieldDocumentType string = "documentType"
)

const (
	CookieSession       string = "session"
	HeaderCorrelationId string = "Correlation-Id"
	HeaderContentType   string = "Content-Type"
)

const (
	ContentTypeJSON            string = "application/json"
	ContentTypeJSONCharsetUTF8 string = ContentTypeJSON + "; charset=utf-8"
	ContentTypeOctetStream     string = "application/octet-stream"
)

// MaxDocumentSize is the largest upload the backend accepts.
const MaxDocumentSize int64 = 32 << 20

// Message is the body used by the backend for acknowledgements and errors.
type Message struct {
	Message string `json:"message"`
}

// Response is the union of every envelope the backend replies with; only
// the fields relevant to a given route are populated.
type Response struct {
	Message      string         `json:"message,omitempty"`
	Version      string         `json:"version,omitempty"`
	User         *User          `json:"user,omitempty"`
	Users        []*User        `json:"users,omitempty" validate:"omitempty,dive,required"`
	Employee     *Employee      `json:"employee,omitempty"`
	Employees    []*Employee    `json:"employees,omitempty" validate:"omitempty,dive,required"`
	Stats        *EmployeeStats `json:"stats,omitempty"`
	Departments  []*Department  `json:"departments,omitempty" validate:"omitempty,dive,required"`
	Designations []*Designation `json:"designations,omitempty" validate:"omitempty,dive,required"`
	Managers     []*Manager     `json:"managers,omitempty" validate:"omitempty,dive,required"`
	Roles        []*Role        `json:"roles,omitempty" validate:"omitempty,dive,required"`
	Document     *Document      `json:"document,omitempty"`
	Documents    []*Document    `json:"documents,omitempty" validate:"omitempty,dive,required"`
}
