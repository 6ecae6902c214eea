package logic

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/store"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Logic interface {
	Register(ctx context.Context, request data.RegisterRequest) (*data.User, error)
	Login(ctx context.Context, request data.LoginRequest) (*data.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*data.User, error)

	UsersList(ctx context.Context, actor *data.User) ([]*data.User, error)
	UserRoleUpdate(ctx context.Context, actor *data.User, id string, update data.UserRoleUpdate) (*data.User, error)
	UserStatusUpdate(ctx context.Context, actor *data.User, id string, update data.UserStatusUpdate) (*data.User, error)

	EmployeeCreate(ctx context.Context, employeePartial data.EmployeePartial) (*data.Employee, error)
	EmployeeRead(ctx context.Context, id string) (*data.Employee, error)
	EmployeesSearch(ctx context.Context, search data.EmployeeSearch) ([]*data.Employee, error)
	EmployeeUpdate(ctx context.Context, id string, employeePartial data.EmployeePartial) (*data.Employee, error)
	EmployeeDelete(ctx context.Context, id string) error
	EmployeeStats(ctx context.Context) (*data.EmployeeStats, error)

	DepartmentsList(ctx context.Context) ([]*data.Department, error)
	DesignationsList(ctx context.Context) ([]*data.Designation, error)
	ManagersList(ctx context.Context) ([]*data.Manager, error)
	RolesList(ctx context.Context) ([]*data.Role, error)

	DocumentUpload(ctx context.Context, document data.Document, content []byte) (*data.Document, error)
	DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error)
	DocumentRead(ctx context.Context, id string) (*data.Document, []byte, error)
}

type logic struct {
	sync.RWMutex
	store  store.Store
	config struct {
		mutateDisabled    bool
		bcryptCost        int
		seedAdminEmail    string
		seedAdminPassword string
	}
	utilities.Logger
}

func NewLogic(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	Logic
} {
	l := &logic{}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case store.Store:
			l.store = p
		case utilities.Logger:
			l.Logger = p
		}
	}
	if l.Logger == nil {
		l.Logger = utilities.NewNopLogger()
	}
	l.config.bcryptCost = bcrypt.DefaultCost
	return l
}

func (l *logic) Configure(envs map[string]string) error {
	l.Lock()
	defer l.Unlock()

	if mutateDisabled, ok := envs["LOGIC_MUTATE_DISABLED"]; ok {
		l.config.mutateDisabled, _ = strconv.ParseBool(mutateDisabled)
	}
	if bcryptCost, ok := envs["LOGIC_BCRYPT_COST"]; ok && bcryptCost != "" {
		i, err := strconv.Atoi(bcryptCost)
		if err != nil {
			return errors.Wrap(err, "invalid LOGIC_BCRYPT_COST")
		}
		if i < bcrypt.MinCost || i > bcrypt.MaxCost {
			return errors.Errorf("LOGIC_BCRYPT_COST out of range: %d", i)
		}
		l.config.bcryptCost = i
	}
	if email, ok := envs["LOGIC_SEED_ADMIN_EMAIL"]; ok {
		l.config.seedAdminEmail = email
	}
	if password, ok := envs["LOGIC_SEED_ADMIN_PASSWORD"]; ok {
		l.config.seedAdminPassword = password
	}
	return nil
}

func (l *logic) Open(ctx context.Context) error {
	l.RLock()
	defer l.RUnlock()

	if l.store == nil {
		return errors.New("logic: store not set")
	}
	if l.config.mutateDisabled {
		l.Info(ctx, "logic: mutation disabled")
	}
	if l.config.seedAdminEmail == "" || l.config.seedAdminPassword == "" {
		return nil
	}
	if _, err := l.createUser(ctx, data.User{
		Name:   "Administrator",
		Email:  l.config.seedAdminEmail,
		Role:   data.RoleAdmin,
		Status: data.UserStatusActive,
	}, l.config.seedAdminPassword); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil
		}
		return errors.Wrap(err, "unable to seed administrator")
	}
	l.Info(ctx, "logic: seeded administrator %s", l.config.seedAdminEmail)
	return nil
}

func (l *logic) Close(ctx context.Context) error {
	return nil
}

func (l *logic) mutateDisabled() bool {
	l.RLock()
	defer l.RUnlock()

	return l.config.mutateDisabled
}

func (l *logic) createUser(ctx context.Context, user data.User, password string) (*data.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), l.config.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(ErrInvalid, err.Error())
	}
	return l.store.UserCreate(ctx, user, hash)
}

// Register creates an active user with the employee role; roles are only
// granted by an administrator.
func (l *logic) Register(ctx context.Context, request data.RegisterRequest) (*data.User, error) {
	if err := validateStruct(request); err != nil {
		return nil, err
	}
	l.RLock()
	defer l.RUnlock()

	user, err := l.createUser(ctx, data.User{
		Name:   strings.TrimSpace(request.Name),
		Email:  request.Email,
		Role:   data.RoleEmployee,
		Status: data.UserStatusActive,
	}, request.Password)
	if err != nil {
		return nil, err
	}
	l.Debug(ctx, "logic: registered user %s", user.ID)
	return user, nil
}

func (l *logic) Login(ctx context.Context, request data.LoginRequest) (*data.User, string, error) {
	if err := validateStruct(request); err != nil {
		return nil, "", err
	}
	user, hash, err := l.store.UserReadByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, "", errors.Wrap(ErrUnauthorized, "invalid email or password")
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(request.Password)); err != nil {
		return nil, "", errors.Wrap(ErrUnauthorized, "invalid email or password")
	}
	if user.Status != data.UserStatusActive {
		return nil, "", errors.Wrap(ErrForbidden, "account is inactive")
	}
	token, err := l.store.SessionCreate(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (l *logic) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := l.store.SessionDelete(ctx, token); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (l *logic) Authenticate(ctx context.Context, token string) (*data.User, error) {
	if token == "" {
		return nil, errors.Wrap(ErrUnauthorized, "not logged in")
	}
	userId, err := l.store.SessionRead(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.Wrap(ErrUnauthorized, "session expired")
		}
		return nil, err
	}
	user, err := l.store.UserRead(ctx, userId)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errors.Wrap(ErrUnauthorized, "session expired")
		}
		return nil, err
	}
	if user.Status != data.UserStatusActive {
		return nil, errors.Wrap(ErrUnauthorized, "account is inactive")
	}
	return user, nil
}

func requireAdmin(actor *data.User) error {
	if actor == nil || actor.Role != data.RoleAdmin {
		return errors.Wrap(ErrForbidden, "administrator role required")
	}
	return nil
}

func (l *logic) UsersList(ctx context.Context, actor *data.User) ([]*data.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return l.store.UsersList(ctx)
}

func (l *logic) UserRoleUpdate(ctx context.Context, actor *data.User, id string, update data.UserRoleUpdate) (*data.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(update); err != nil {
		return nil, err
	}
	if actor.ID == id && update.Role != data.RoleAdmin {
		return nil, errors.Wrap(ErrInvalid, "administrators cannot demote themselves")
	}
	return l.store.UserUpdate(ctx, id, &update.Role, nil)
}

func (l *logic) UserStatusUpdate(ctx context.Context, actor *data.User, id string, update data.UserStatusUpdate) (*data.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateStruct(update); err != nil {
		return nil, err
	}
	if actor.ID == id && update.Status != data.UserStatusActive {
		return nil, errors.Wrap(ErrInvalid, "administrators cannot deactivate themselves")
	}
	return l.store.UserUpdate(ctx, id, nil, &update.Status)
}

func emptyString(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func (l *logic) EmployeeCreate(ctx context.Context, employeePartial data.EmployeePartial) (*data.Employee, error) {
	if l.mutateDisabled() {
		return nil, ErrMutateDisabled
	}
	switch {
	case emptyString(employeePartial.FirstName):
		return nil, errors.Wrap(ErrInvalid, "firstName is required")
	case emptyString(employeePartial.LastName):
		return nil, errors.Wrap(ErrInvalid, "lastName is required")
	case emptyString(employeePartial.Email):
		return nil, errors.Wrap(ErrInvalid, "email is required")
	}
	if err := validateStruct(employeePartial); err != nil {
		return nil, err
	}
	employee, err := l.store.EmployeeCreate(ctx, employeePartial)
	if err != nil {
		return nil, err
	}
	l.Debug(ctx, "logic: created employee %s", employee.ID)
	return employee, nil
}

func (l *logic) EmployeeRead(ctx context.Context, id string) (*data.Employee, error) {
	return l.store.EmployeeRead(ctx, id)
}

func (l *logic) EmployeesSearch(ctx context.Context, search data.EmployeeSearch) ([]*data.Employee, error) {
	return l.store.EmployeesSearch(ctx, search)
}

func (l *logic) EmployeeUpdate(ctx context.Context, id string, employeePartial data.EmployeePartial) (*data.Employee, error) {
	if l.mutateDisabled() {
		return nil, ErrMutateDisabled
	}
	if employeePartial.FirstName != nil && emptyString(employeePartial.FirstName) {
		return nil, errors.Wrap(ErrInvalid, "firstName cannot be empty")
	}
	if employeePartial.LastName != nil && emptyString(employeePartial.LastName) {
		return nil, errors.Wrap(ErrInvalid, "lastName cannot be empty")
	}
	if err := validateStruct(employeePartial); err != nil {
		return nil, err
	}
	return l.store.EmployeeUpdate(ctx, id, employeePartial)
}

func (l *logic) EmployeeDelete(ctx context.Context, id string) error {
	if l.mutateDisabled() {
		return ErrMutateDisabled
	}
	return l.store.EmployeeDelete(ctx, id)
}

func (l *logic) EmployeeStats(ctx context.Context) (*data.EmployeeStats, error) {
	employees, err := l.store.EmployeesSearch(ctx, data.EmployeeSearch{})
	if err != nil {
		return nil, err
	}
	stats := &data.EmployeeStats{
		Total:        len(employees),
		ByDepartment: make(map[string]int),
	}
	for _, employee := range employees {
		switch employee.Status {
		case data.EmployeeStatusActive:
			stats.Active++
		case data.EmployeeStatusInactive:
			stats.Inactive++
		case data.EmployeeStatusOnLeave:
			stats.OnLeave++
		}
		if employee.Department != "" {
			stats.ByDepartment[employee.Department]++
		}
	}
	return stats, nil
}

func (l *logic) DepartmentsList(ctx context.Context) ([]*data.Department, error) {
	return departmentsList(), nil
}

func (l *logic) DesignationsList(ctx context.Context) ([]*data.Designation, error) {
	return designationsList(), nil
}

func (l *logic) RolesList(ctx context.Context) ([]*data.Role, error) {
	return rolesList(), nil
}

// ManagersList returns every employee holding the manager role.
func (l *logic) ManagersList(ctx context.Context) ([]*data.Manager, error) {
	employees, err := l.store.EmployeesSearch(ctx, data.EmployeeSearch{})
	if err != nil {
		return nil, err
	}
	managers := make([]*data.Manager, 0)
	for _, employee := range employees {
		if employee.Role != data.RoleManager {
			continue
		}
		managers = append(managers, &data.Manager{
			ID:         employee.ID,
			Name:       employee.FullName(),
			Department: employee.Department,
		})
	}
	return managers, nil
}

func (l *logic) DocumentUpload(ctx context.Context, document data.Document, content []byte) (*data.Document, error) {
	if l.mutateDisabled() {
		return nil, ErrMutateDisabled
	}
	switch document.DocumentType {
	default:
		return nil, errors.Wrapf(ErrInvalid, "unsupported document type: %q", document.DocumentType)
	case data.DocumentTypeContract, data.DocumentTypeIdentification,
		data.DocumentTypeCertificate, data.DocumentTypeOther:
	}
	if strings.TrimSpace(document.FileName) == "" {
		return nil, errors.Wrap(ErrInvalid, "fileName is required")
	}
	if int64(len(content)) > data.MaxDocumentSize {
		return nil, errors.Wrapf(ErrInvalid, "document exceeds %d bytes", data.MaxDocumentSize)
	}
	if document.ContentType == "" {
		document.ContentType = data.ContentTypeOctetStream
	}
	return l.store.DocumentCreate(ctx, document, content)
}

func (l *logic) DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error) {
	return l.store.DocumentsList(ctx, employeeId)
}

func (l *logic) DocumentRead(ctx context.Context, id string) (*data.Document, []byte, error) {
	return l.store.DocumentRead(ctx, id)
}
