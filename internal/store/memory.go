package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/pkg/errors"
)

type user struct {
	*data.User
	passwordHash []byte
}

type document struct {
	*data.Document
	content []byte
}

type memoryStore struct {
	sync.RWMutex
	users        map[string]*user              //map[id]user
	emails       map[string]string             //map[email]id
	sessions     map[string]string             //map[token]user_id
	employees    map[string]*data.Employee     //map[id]employee
	documents    map[string]*document          //map[id]document
	employeeDocs map[string]map[string]struct{} //map[employee_id][document_id]
	employeeSeq  int
	utilities.Logger
}

func NewMemory(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	internal.Clearer
	Store
} {
	s := &memoryStore{}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case utilities.Logger:
			s.Logger = p
		}
	}
	if s.Logger == nil {
		s.Logger = utilities.NewNopLogger()
	}
	s.reset()
	return s
}

func (s *memoryStore) reset() {
	s.users = make(map[string]*user)
	s.emails = make(map[string]string)
	s.sessions = make(map[string]string)
	s.employees = make(map[string]*data.Employee)
	s.documents = make(map[string]*document)
	s.employeeDocs = make(map[string]map[string]struct{})
	s.employeeSeq = 0
}

func (s *memoryStore) Configure(envs map[string]string) error {
	return nil
}

func (s *memoryStore) Open(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	s.reset()
	return nil
}

func (s *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	s.reset()
	s.Debug(ctx, "store: cleared")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *memoryStore) UserCreate(ctx context.Context, u data.User, passwordHash []byte) (*data.User, error) {
	s.Lock()
	defer s.Unlock()

	email := normalizeEmail(u.Email)
	if _, found := s.emails[email]; found {
		return nil, errors.Wrapf(ErrConflict, "user with email %s", email)
	}
	u.ID, u.Email = internal.GenerateId(), email
	u.CreatedAt = time.Now().Unix()
	s.users[u.ID] = &user{User: copyUser(&u), passwordHash: passwordHash}
	s.emails[email] = u.ID
	return copyUser(&u), nil
}

func (s *memoryStore) UserRead(ctx context.Context, id string) (*data.User, error) {
	s.RLock()
	defer s.RUnlock()

	u, found := s.users[id]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "user %s", id)
	}
	return copyUser(u.User), nil
}

func (s *memoryStore) UserReadByEmail(ctx context.Context, email string) (*data.User, []byte, error) {
	s.RLock()
	defer s.RUnlock()

	id, found := s.emails[normalizeEmail(email)]
	if !found {
		return nil, nil, errors.Wrapf(ErrNotFound, "user with email %s", email)
	}
	u := s.users[id]
	return copyUser(u.User), u.passwordHash, nil
}

func (s *memoryStore) UsersList(ctx context.Context) ([]*data.User, error) {
	s.RLock()
	defer s.RUnlock()

	users := make([]*data.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u.User))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt != users[j].CreatedAt {
			return users[i].CreatedAt < users[j].CreatedAt
		}
		return users[i].Email < users[j].Email
	})
	return users, nil
}

func (s *memoryStore) UserUpdate(ctx context.Context, id string, role, status *string) (*data.User, error) {
	s.Lock()
	defer s.Unlock()

	u, found := s.users[id]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "user %s", id)
	}
	if role != nil {
		u.Role = *role
	}
	if status != nil {
		u.Status = *status
	}
	return copyUser(u.User), nil
}

func (s *memoryStore) SessionCreate(ctx context.Context, userId string) (string, error) {
	s.Lock()
	defer s.Unlock()

	if _, found := s.users[userId]; !found {
		return "", errors.Wrapf(ErrNotFound, "user %s", userId)
	}
	token := internal.GenerateId()
	s.sessions[token] = userId
	return token, nil
}

func (s *memoryStore) SessionRead(ctx context.Context, token string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	userId, found := s.sessions[token]
	if !found {
		return "", errors.Wrap(ErrNotFound, "session")
	}
	return userId, nil
}

func (s *memoryStore) SessionDelete(ctx context.Context, token string) error {
	s.Lock()
	defer s.Unlock()

	if _, found := s.sessions[token]; !found {
		return errors.Wrap(ErrNotFound, "session")
	}
	delete(s.sessions, token)
	return nil
}

func (s *memoryStore) EmployeeCreate(ctx context.Context, employeePartial data.EmployeePartial) (*data.Employee, error) {
	s.Lock()
	defer s.Unlock()

	if employeePartial.Email != nil {
		email := normalizeEmail(*employeePartial.Email)
		for _, e := range s.employees {
			if e.Email == email {
				return nil, errors.Wrapf(ErrConflict, "employee with email %s", email)
			}
		}
		employeePartial.Email = &email
	}
	s.employeeSeq++
	employee := &data.Employee{
		ID:           internal.GenerateId(),
		EmployeeCode: fmt.Sprintf("EMP-%04d", s.employeeSeq),
		Status:       data.EmployeeStatusActive,
	}
	applyPartial(employee, employeePartial)
	s.employees[employee.ID] = employee
	return copyEmployee(employee), nil
}

func (s *memoryStore) EmployeeRead(ctx context.Context, id string) (*data.Employee, error) {
	s.RLock()
	defer s.RUnlock()

	employee, found := s.employees[id]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "employee %s", id)
	}
	return copyEmployee(employee), nil
}

func (s *memoryStore) EmployeesSearch(ctx context.Context, search data.EmployeeSearch) ([]*data.Employee, error) {
	s.RLock()
	defer s.RUnlock()

	employees := make([]*data.Employee, 0, len(s.employees))
	for _, employee := range s.employees {
		if search.Matches(employee) {
			employees = append(employees, copyEmployee(employee))
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].EmployeeCode < employees[j].EmployeeCode
	})
	return employees, nil
}

func (s *memoryStore) EmployeeUpdate(ctx context.Context, id string, employeePartial data.EmployeePartial) (*data.Employee, error) {
	s.Lock()
	defer s.Unlock()

	employee, found := s.employees[id]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "employee %s", id)
	}
	if employeePartial.Email != nil {
		email := normalizeEmail(*employeePartial.Email)
		for _, e := range s.employees {
			if e.ID != id && e.Email == email {
				return nil, errors.Wrapf(ErrConflict, "employee with email %s", email)
			}
		}
		employeePartial.Email = &email
	}
	applyPartial(employee, employeePartial)
	return copyEmployee(employee), nil
}

// EmployeeDelete removes the employee along with their documents.
func (s *memoryStore) EmployeeDelete(ctx context.Context, id string) error {
	s.Lock()
	defer s.Unlock()

	if _, found := s.employees[id]; !found {
		return errors.Wrapf(ErrNotFound, "employee %s", id)
	}
	delete(s.employees, id)
	for documentId := range s.employeeDocs[id] {
		delete(s.documents, documentId)
	}
	delete(s.employeeDocs, id)
	return nil
}

func (s *memoryStore) DocumentCreate(ctx context.Context, d data.Document, content []byte) (*data.Document, error) {
	s.Lock()
	defer s.Unlock()

	if _, found := s.employees[d.EmployeeID]; !found {
		return nil, errors.Wrapf(ErrNotFound, "employee %s", d.EmployeeID)
	}
	d.ID = internal.GenerateId()
	d.Size = int64(len(content))
	d.UploadedAt = time.Now().Unix()
	s.documents[d.ID] = &document{
		Document: copyDocument(&d),
		content:  append([]byte(nil), content...),
	}
	if _, found := s.employeeDocs[d.EmployeeID]; !found {
		s.employeeDocs[d.EmployeeID] = make(map[string]struct{})
	}
	s.employeeDocs[d.EmployeeID][d.ID] = struct{}{}
	return copyDocument(&d), nil
}

func (s *memoryStore) DocumentRead(ctx context.Context, id string) (*data.Document, []byte, error) {
	s.RLock()
	defer s.RUnlock()

	d, found := s.documents[id]
	if !found {
		return nil, nil, errors.Wrapf(ErrNotFound, "document %s", id)
	}
	return copyDocument(d.Document), append([]byte(nil), d.content...), nil
}

func (s *memoryStore) DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error) {
	s.RLock()
	defer s.RUnlock()

	if _, found := s.employees[employeeId]; !found {
		return nil, errors.Wrapf(ErrNotFound, "employee %s", employeeId)
	}
	documents := make([]*data.Document, 0, len(s.employeeDocs[employeeId]))
	for documentId := range s.employeeDocs[employeeId] {
		documents = append(documents, copyDocument(s.documents[documentId].Document))
	}
	sort.Slice(documents, func(i, j int) bool {
		if documents[i].UploadedAt != documents[j].UploadedAt {
			return documents[i].UploadedAt < documents[j].UploadedAt
		}
		return documents[i].FileName < documents[j].FileName
	})
	return documents, nil
}
