package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/logic"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

var (
	Version   string
	GitCommit string
	GitBranch string
)

func init() {
	if Version = data.Version; Version == "" {
		Version = "<no_version_provided>"
	}
	if GitCommit = data.GitCommit; GitCommit == "" {
		GitCommit = "<no_git_commit>"
	}
	if GitBranch = data.GitBranch; GitBranch == "" {
		GitBranch = "<no_git_branch>"
	}
}

type service struct {
	sync.RWMutex
	sync.WaitGroup
	config struct {
		address          string
		port             string
		shutdownTimeout  time.Duration
		allowedOrigins   []string
		allowedMethods   []string
		allowedHeaders   []string
		allowCredentials bool
		corsDisabled     bool
		corsDebug        bool
		timersEnabled    bool
		cookieSecure     bool
	}
	listener net.Listener
	router   *mux.Router
	server   *http.Server
	logic    logic.Logic
	counter  utilities.Counter
	timers   utilities.Timers
	utilities.Logger
}

func NewService(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	internal.Addresser
} {
	s := &service{}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case logic.Logic:
			s.logic = p
		case utilities.Counter:
			s.counter = p
		case utilities.Timers:
			s.timers = p
		case utilities.Logger:
			s.Logger = p
		}
	}
	if s.Logger == nil {
		s.Logger = utilities.NewNopLogger()
	}
	if s.counter == nil {
		s.counter = utilities.NewCounter()
	}
	if s.timers == nil {
		s.timers = utilities.NewTimers()
	}
	s.config.port = "5000"
	s.config.shutdownTimeout = 10 * time.Second
	s.config.allowCredentials = true
	s.config.allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions}
	s.config.allowedHeaders = []string{"Accept", data.HeaderContentType, data.HeaderCorrelationId}
	return s
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (s *service) Configure(envs map[string]string) error {
	s.Lock()
	defer s.Unlock()

	if address, ok := envs["SERVICE_ADDRESS"]; ok {
		s.config.address = address
	}
	if port, ok := envs["SERVICE_PORT"]; ok && port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return errors.Wrap(err, "invalid SERVICE_PORT")
		}
		s.config.port = port
	}
	if shutdownTimeoutString, ok := envs["SERVICE_SHUTDOWN_TIMEOUT"]; ok {
		if shutdownTimeoutInt, err := strconv.Atoi(shutdownTimeoutString); err == nil {
			if timeout := time.Duration(shutdownTimeoutInt) * time.Second; timeout > 0 {
				s.config.shutdownTimeout = timeout
			}
		}
	}
	if allowCredentialsString, ok := envs["SERVICE_CORS_ALLOW_CREDENTIALS"]; ok {
		if allowCredentials, err := strconv.ParseBool(allowCredentialsString); err == nil {
			s.config.allowCredentials = allowCredentials
		}
	}
	if allowedOrigins := splitList(envs["SERVICE_CORS_ALLOWED_ORIGINS"]); len(allowedOrigins) > 0 {
		s.config.allowedOrigins = allowedOrigins
	}
	if allowedMethods := splitList(envs["SERVICE_CORS_ALLOWED_METHODS"]); len(allowedMethods) > 0 {
		s.config.allowedMethods = allowedMethods
	}
	if allowedHeaders := splitList(envs["SERVICE_CORS_ALLOWED_HEADERS"]); len(allowedHeaders) > 0 {
		s.config.allowedHeaders = allowedHeaders
	}
	if corsDisabledString, ok := envs["SERVICE_CORS_DISABLED"]; ok {
		if corsDisabled, err := strconv.ParseBool(corsDisabledString); err == nil {
			s.config.corsDisabled = corsDisabled
		}
	}
	if corsDebug, ok := envs["SERVICE_CORS_DEBUG"]; ok {
		if corsDebug, err := strconv.ParseBool(corsDebug); err == nil {
			s.config.corsDebug = corsDebug
		}
	}
	if timersEnabled := envs["SERVICE_TIMERS_ENABLED"]; timersEnabled != "" {
		s.config.timersEnabled, _ = strconv.ParseBool(timersEnabled)
	}
	if cookieSecure := envs["SERVICE_COOKIE_SECURE"]; cookieSecure != "" {
		s.config.cookieSecure, _ = strconv.ParseBool(cookieSecure)
	}
	return nil
}

func (s *service) launchServer(ctx context.Context) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(s.config.address, s.config.port))
	if err != nil {
		return errors.Wrap(err, "unable to listen")
	}
	s.listener = listener
	s.Add(1)
	go func() {
		defer s.Done()

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Error(ctx, "server closed unexpectedly: %s", err)
		}
	}()
	s.Info(ctx, "started server: %s", listener.Addr())
	return nil
}

func (s *service) Open(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	if s.logic == nil {
		return errors.New("service: logic not set")
	}
	if s.server != nil {
		return errors.New("service: already open")
	}
	s.router = mux.NewRouter()
	s.buildRoutes()
	var handler http.Handler = s.router
	if !s.config.corsDisabled {
		handler = cors.New(cors.Options{
			AllowedOrigins:   s.config.allowedOrigins,
			AllowCredentials: s.config.allowCredentials,
			AllowedMethods:   s.config.allowedMethods,
			AllowedHeaders:   s.config.allowedHeaders,
			Debug:            s.config.corsDebug,
		}).Handler(s.router)
	}
	s.server = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.launchServer(ctx); err != nil {
		s.server = nil
		return err
	}
	return nil
}

func (s *service) Close(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()

	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.config.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		s.Error(ctx, "error while shutting down the server: %s", err)
	}
	s.Wait()
	s.server, s.listener = nil, nil
	return nil
}

// Address returns the host:port the service is listening on, empty when
// not open.
func (s *service) Address() string {
	s.RLock()
	defer s.RUnlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// serve wraps an endpoint with the correlation id, the timer and outcome
// counter for name and, when authenticated is set, the session check.
func (s *service) serve(name string, authenticated bool, endpoint http.HandlerFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx := internal.CtxWithCorrelationId(request.Context(),
			getCorrelationId(request))
		if s.config.timersEnabled {
			timerIndex := s.timers.Start(name)
			defer func() {
				elapsedTime := s.timers.Stop(name, timerIndex)
				s.Trace(ctx, "%s took %v", name, time.Duration(elapsedTime))
			}()
		}
		recorder := &responseRecorder{ResponseWriter: writer, statusCode: http.StatusOK}
		defer func() {
			if recorder.statusCode >= http.StatusBadRequest {
				s.counter.IncrementFailure(name)
				return
			}
			s.counter.IncrementSuccess(name)
		}()
		if authenticated {
			user, err := s.logic.Authenticate(ctx, sessionToken(request))
			if err != nil {
				handleResponse(recorder, http.StatusUnauthorized, err)
				return
			}
			ctx = ctxWithUser(ctx, user)
		}
		endpoint(recorder, request.WithContext(ctx))
		s.Trace(ctx, "executed %s: %d", name, recorder.statusCode)
	}
}

func methodNotAllowed(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusMethodNotAllowed)
}

func (s *service) endpointDefault(writer http.ResponseWriter, request *http.Request) {
	fmt.Fprintf(writer,
		"go-bizadmin\n"+
			"Version: \"%s\"\n"+
			"Git Commit: \"%s\"\n"+
			"Git Branch: \"%s\"\n",
		Version, GitCommit, GitBranch)
}

func (s *service) buildRoutes() {
	health := s.serve("health", false, s.endpointHealth)
	login := s.serve("auth_login", false, s.endpointLogin)
	register := s.serve("auth_register", false, s.endpointRegister)
	logout := s.serve("auth_logout", false, s.endpointLogout)
	usersList := s.serve("users_list", true, s.endpointUsersList)
	userRoleUpdate := s.serve("user_role_update", true, s.endpointUserRoleUpdate)
	userStatusUpdate := s.serve("user_status_update", true, s.endpointUserStatusUpdate)
	employeesSearch := s.serve("employees_search", true, s.endpointEmployeesSearch)
	employeeCreate := s.serve("employee_create", true, s.endpointEmployeeCreate)
	employeeRead := s.serve("employee_read", true, s.endpointEmployeeRead)
	employeeUpdate := s.serve("employee_update", true, s.endpointEmployeeUpdate)
	employeeDelete := s.serve("employee_delete", true, s.endpointEmployeeDelete)
	employeeStats := s.serve("employee_stats", true, s.endpointEmployeeStats)
	departmentsList := s.serve("departments_list", true, s.endpointDepartmentsList)
	designationsList := s.serve("designations_list", true, s.endpointDesignationsList)
	managersList := s.serve("managers_list", true, s.endpointManagersList)
	rolesList := s.serve("roles_list", true, s.endpointRolesList)
	documentUpload := s.serve("document_upload", true, s.endpointDocumentUpload)
	documentsList := s.serve("documents_list", true, s.endpointDocumentsList)
	documentDownload := s.serve("document_download", false, s.endpointDocumentDownload)

	s.router.HandleFunc("/", s.endpointDefault)
	api := s.router.PathPrefix(data.APIPrefix).Subrouter()
	api.HandleFunc(data.RouteHealth, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			health(w, r)
		}
	})
	api.HandleFunc(data.RouteAuthLogin, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPost:
			login(w, r)
		}
	})
	api.HandleFunc(data.RouteAuthRegister, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPost:
			register(w, r)
		}
	})
	api.HandleFunc(data.RouteAuthLogout, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPost:
			logout(w, r)
		}
	})
	api.HandleFunc(data.RouteAdminUsers, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			usersList(w, r)
		}
	})
	api.HandleFunc(data.RouteAdminUsersRole, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPatch:
			userRoleUpdate(w, r)
		}
	})
	api.HandleFunc(data.RouteAdminUsersStatus, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPatch:
			userStatusUpdate(w, r)
		}
	})
	api.HandleFunc(data.RouteEmployees, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			employeesSearch(w, r)
		case http.MethodPost:
			employeeCreate(w, r)
		}
	})
	//stats must be registered ahead of {id}
	api.HandleFunc(data.RouteEmployeesStats, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			employeeStats(w, r)
		}
	})
	api.HandleFunc(data.RouteEmployeesId, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			employeeRead(w, r)
		case http.MethodPut:
			employeeUpdate(w, r)
		case http.MethodDelete:
			employeeDelete(w, r)
		}
	})
	for route, endpoint := range map[string]http.HandlerFunc{
		data.RouteDepartments:  departmentsList,
		data.RouteDesignations: designationsList,
		data.RouteManagers:     managersList,
		data.RouteRoles:        rolesList,
	} {
		api.HandleFunc(route, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			default:
				methodNotAllowed(w)
			case http.MethodGet:
				endpoint(w, r)
			}
		})
	}
	api.HandleFunc(data.RouteDocumentsUpload, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodPost:
			documentUpload(w, r)
		}
	})
	api.HandleFunc(data.RouteDocumentsEmployee, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			documentsList(w, r)
		}
	})
	api.HandleFunc(data.RouteDocumentsIdDownload, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			documentDownload(w, r)
		}
	})
	api.HandleFunc(data.RouteDebugTimers, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			s.endpointTimersRead(w, r)
		case http.MethodDelete:
			s.endpointTimersClear(w, r)
		}
	})
	api.HandleFunc(data.RouteDebugCounters, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		default:
			methodNotAllowed(w)
		case http.MethodGet:
			s.endpointCountersRead(w, r)
		case http.MethodDelete:
			s.endpointCountersClear(w, r)
		}
	})
}
