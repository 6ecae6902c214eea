package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// Request describes a single call; Path is relative to the base url and
// api prefix, Method defaults to GET and Body (if any) is sent as JSON.
type Request struct {
	Path    string
	Method  string
	Body    any
	Headers http.Header
}

// UploadRequest describes a multipart upload of a single file tagged with a
// document type.
type UploadRequest struct {
	Path         string
	DocumentType string
	FileName     string
	File         io.Reader
	Headers      http.Header
}

// Requester performs the generic calls every typed method is built on.
type Requester interface {
	Do(ctx context.Context, request Request) (Envelope, error)
	Upload(ctx context.Context, request UploadRequest) (Envelope, error)
	URL(path string) string
}

type Client interface {
	Requester

	Health(ctx context.Context) (string, error)

	Login(ctx context.Context, request data.LoginRequest) (*data.User, error)
	Register(ctx context.Context, request data.RegisterRequest) (*data.User, error)
	Logout(ctx context.Context) error

	UsersList(ctx context.Context) ([]*data.User, error)
	UserRoleUpdate(ctx context.Context, id, role string) (*data.User, error)
	UserStatusUpdate(ctx context.Context, id, status string) (*data.User, error)

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

	DocumentUpload(ctx context.Context, employeeId, documentType, fileName string, file io.Reader) (*data.Document, error)
	DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error)
	DocumentDownloadURL(id string) string

	TimersRead(ctx context.Context) (*data.Timers, error)
	TimersClear(ctx context.Context) error
	CountersRead(ctx context.Context) (*data.Counters, error)
	CountersClear(ctx context.Context) error
}

type client struct {
	sync.RWMutex
	config struct {
		baseURL    string
		timeout    int64
		sslCaFile  string
		sslCrtFile string
		sslKeyFile string
	}
	address    string
	transport  http.RoundTripper
	httpClient *http.Client
	utilities.Logger
}

func NewClient(parameters ...any) interface {
	internal.Configurer
	internal.Opener
	Client
} {
	c := &client{}
	for _, parameter := range parameters {
		switch p := parameter.(type) {
		case utilities.Logger:
			c.Logger = p
		case http.RoundTripper:
			c.transport = p
		}
	}
	if c.Logger == nil {
		c.Logger = utilities.NewNopLogger()
	}
	c.config.baseURL = data.DefaultBaseURL
	return c
}

func (c *client) Configure(envs map[string]string) error {
	c.Lock()
	defer c.Unlock()

	if baseURL := envs["CLIENT_BASE_URL"]; baseURL != "" {
		c.config.baseURL = baseURL
	}
	if timeout, ok := envs["CLIENT_TIMEOUT"]; ok && timeout != "" {
		i, err := strconv.ParseInt(timeout, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid CLIENT_TIMEOUT")
		}
		c.config.timeout = i
	}
	if sslCaFile, ok := envs["SSL_CA_FILE"]; ok {
		c.config.sslCaFile = sslCaFile
	}
	if sslKeyFile, ok := envs["SSL_KEY_FILE"]; ok {
		c.config.sslKeyFile = sslKeyFile
	}
	if sslCrtFile, ok := envs["SSL_CRT_FILE"]; ok {
		c.config.sslCrtFile = sslCrtFile
	}
	return nil
}

func (c *client) Open(ctx context.Context) error {
	c.Lock()
	defer c.Unlock()

	baseURL, err := url.Parse(c.config.baseURL)
	if err != nil {
		return errors.Wrapf(err, "invalid base url: %s", c.config.baseURL)
	}
	switch baseURL.Scheme {
	default:
		return errors.Errorf("unsupported protocol: %s", baseURL.Scheme)
	case "http", "https":
	}
	if baseURL.Host == "" {
		return errors.Errorf("base url missing host: %s", c.config.baseURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return err
	}
	transport := c.transport
	if transport == nil {
		if transport, err = getTlsConfig(c.config.sslCaFile, c.config.sslCrtFile,
			c.config.sslKeyFile); err != nil {
			return err
		}
	}
	c.httpClient = &http.Client{
		Jar:       jar,
		Transport: transport,
		Timeout:   time.Duration(c.config.timeout) * time.Second,
	}
	c.address = strings.TrimRight(baseURL.String(), "/") + data.APIPrefix
	c.Info(ctx, "client: using %s", c.address)
	return nil
}

func (c *client) Close(ctx context.Context) error {
	c.Lock()
	defer c.Unlock()

	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	c.address, c.httpClient = "", nil
	return nil
}

func (c *client) opened() (string, *http.Client, error) {
	c.RLock()
	defer c.RUnlock()

	if c.httpClient == nil {
		return "", nil, ErrNotOpen
	}
	return c.address, c.httpClient, nil
}

// URL returns the absolute address of path, it performs no request.
func (c *client) URL(path string) string {
	c.RLock()
	defer c.RUnlock()

	return c.address + path
}

func setHeaders(ctx context.Context, request *http.Request, headers http.Header) {
	if correlationId := internal.CorrelationIdFromCtx(ctx); correlationId != "" {
		request.Header.Set(data.HeaderCorrelationId, correlationId)
	}
	for key, values := range headers {
		request.Header.Del(key)
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
}

// Do performs a single JSON request; it never retries.
func (c *client) Do(ctx context.Context, request Request) (Envelope, error) {
	var body io.Reader

	address, httpClient, err := c.opened()
	if err != nil {
		return nil, err
	}
	method := request.Method
	if method == "" {
		method = http.MethodGet
	}
	if request.Body != nil {
		byts, err := json.Marshal(request.Body)
		if err != nil {
			return nil, errors.Wrap(err, "unable to serialize request body")
		}
		body = bytes.NewReader(byts)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, method, address+request.Path, body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create request")
	}
	httpRequest.Header.Set(data.HeaderContentType, data.ContentTypeJSON)
	setHeaders(ctx, httpRequest, request.Headers)
	return doRequest(httpClient, httpRequest)
}

// Upload sends a multipart form with the file and document type; the
// content type (and boundary) is owned by the multipart writer.
func (c *client) Upload(ctx context.Context, request UploadRequest) (Envelope, error) {
	address, httpClient, err := c.opened()
	if err != nil {
		return nil, err
	}
	if request.File == nil {
		return nil, errors.New("upload requires a file")
	}
	fileName := request.FileName
	if fileName == "" {
		fileName = "file"
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(data.FormFieldFile, fileName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create form file")
	}
	if _, err := io.Copy(part, request.File); err != nil {
		return nil, errors.Wrap(err, "unable to read file")
	}
	if err := writer.WriteField(data.FormFieldDocumentType, request.DocumentType); err != nil {
		return nil, errors.Wrap(err, "unable to write document type")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "unable to close multipart body")
	}
	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, address+request.Path, body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create request")
	}
	httpRequest.Header.Set(data.HeaderContentType, writer.FormDataContentType())
	setHeaders(ctx, httpRequest, request.Headers)
	return doRequest(httpClient, httpRequest)
}

func doRequest(httpClient *http.Client, request *http.Request) (Envelope, error) {
	response, err := httpClient.Do(request)
	if err != nil {
		return nil, ErrNetwork
	}
	defer response.Body.Close()
	byts, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, ErrNetwork
	}
	envelope, err := parseEnvelope(response.Header.Get(data.HeaderContentType), byts)
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, newError(response.StatusCode, envelope)
	}
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

func (c *client) doResponse(ctx context.Context, request Request) (*data.Response, error) {
	envelope, err := c.Do(ctx, request)
	if err != nil {
		return nil, err
	}
	return decodeResponse(envelope)
}

func pathf(format string, ids ...string) string {
	escaped := make([]any, 0, len(ids))
	for _, id := range ids {
		escaped = append(escaped, url.PathEscape(id))
	}
	return fmt.Sprintf(format, escaped...)
}
