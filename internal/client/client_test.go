package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/client"
	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) client.Client {
	c := client.NewClient()
	err := c.Configure(map[string]string{
		"CLIENT_BASE_URL": baseURL,
		"CLIENT_TIMEOUT":  "10",
	})
	require.NoError(t, err)
	err = c.Open(context.TODO())
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := c.Close(context.TODO()); err != nil {
			t.Logf("error while closing client: %s", err)
		}
	})
	return c
}

func writeJSON(writer http.ResponseWriter, statusCode int, body string) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_, _ = io.WriteString(writer, body)
}

func TestClientOpen(t *testing.T) {
	ctx := context.TODO()

	t.Run("default base url", func(t *testing.T) {
		c := client.NewClient()
		require.NoError(t, c.Open(ctx))
		assert.Equal(t, "http://localhost:5000/api/employees", c.URL(data.RouteEmployees))
		assert.Equal(t, "http://localhost:5000/api/documents/a%2Fb/download",
			c.DocumentDownloadURL("a/b"))
	})
	t.Run("trailing slash", func(t *testing.T) {
		c := client.NewClient()
		require.NoError(t, c.Configure(map[string]string{"CLIENT_BASE_URL": "https://example.com/"}))
		require.NoError(t, c.Open(ctx))
		assert.Equal(t, "https://example.com/api/roles", c.URL(data.RouteRoles))
	})
	t.Run("unsupported protocol", func(t *testing.T) {
		c := client.NewClient()
		require.NoError(t, c.Configure(map[string]string{"CLIENT_BASE_URL": "ftp://example.com"}))
		assert.Error(t, c.Open(ctx))
	})
	t.Run("missing host", func(t *testing.T) {
		c := client.NewClient()
		require.NoError(t, c.Configure(map[string]string{"CLIENT_BASE_URL": "http://"}))
		assert.Error(t, c.Open(ctx))
	})
	t.Run("invalid timeout", func(t *testing.T) {
		c := client.NewClient()
		assert.Error(t, c.Configure(map[string]string{"CLIENT_TIMEOUT": "ten"}))
	})
	t.Run("not open", func(t *testing.T) {
		c := client.NewClient()
		_, err := c.Do(ctx, client.Request{Path: "/"})
		assert.ErrorIs(t, err, client.ErrNotOpen)
		_, err = c.Upload(ctx, client.UploadRequest{Path: "/", File: strings.NewReader("")})
		assert.ErrorIs(t, err, client.ErrNotOpen)
	})
}

func TestClientResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		default:
			writer.WriteHeader(http.StatusTeapot)
		case "/api/json":
			writeJSON(writer, http.StatusOK, `{"id":7,"tags":["a","b"],"nested":{"ok":true}}`)
		case "/api/json-array":
			writeJSON(writer, http.StatusOK, `[1,2,3]`)
		case "/api/json-suffix":
			writer.Header().Set("Content-Type", "application/vnd.api+json")
			_, _ = io.WriteString(writer, `{"id":"x"}`)
		case "/api/empty-json":
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusOK)
		case "/api/no-content":
			writer.WriteHeader(http.StatusNoContent)
		case "/api/text":
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = io.WriteString(writer, `{"looks":"like json"}`)
		case "/api/malformed":
			writeJSON(writer, http.StatusOK, `{"id":`)
		case "/api/not-found":
			writeJSON(writer, http.StatusNotFound, `{"message":"not found"}`)
		case "/api/server-error":
			writer.WriteHeader(http.StatusInternalServerError)
		case "/api/no-message":
			writeJSON(writer, http.StatusBadRequest, `{"error":"bad input"}`)
		case "/api/empty-message":
			writeJSON(writer, http.StatusConflict, `{"message":""}`)
		case "/api/object-message":
			writeJSON(writer, http.StatusUnprocessableEntity, `{"message":{"field":"name"}}`)
		case "/api/text-error":
			writer.Header().Set("Content-Type", "text/html")
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(writer, `<html>{"message":"nope"}</html>`)
		case "/api/malformed-error":
			writeJSON(writer, http.StatusForbidden, `{"message":`)
		case "/api/redirect-status":
			writer.WriteHeader(http.StatusNotModified)
		}
	}))
	defer server.Close()
	c := newClient(t, server.URL)
	ctx := context.TODO()

	t.Run("json body is returned unchanged", func(t *testing.T) {
		envelope, err := c.Do(ctx, client.Request{Path: "/json"})
		require.NoError(t, err)
		value, err := envelope.Value()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"id":     float64(7),
			"tags":   []any{"a", "b"},
			"nested": map[string]any{"ok": true},
		}, value)
		assert.JSONEq(t, `{"id":7,"tags":["a","b"],"nested":{"ok":true}}`, string(envelope))
	})
	t.Run("json array", func(t *testing.T) {
		envelope, err := c.Do(ctx, client.Request{Path: "/json-array"})
		require.NoError(t, err)
		var values []int
		require.NoError(t, envelope.Decode(&values))
		assert.Equal(t, []int{1, 2, 3}, values)
	})
	t.Run("json suffix content type", func(t *testing.T) {
		envelope, err := c.Do(ctx, client.Request{Path: "/json-suffix"})
		require.NoError(t, err)
		assert.False(t, envelope.Empty())
	})
	for _, path := range []string{"/empty-json", "/no-content", "/text"} {
		t.Run("empty result "+path, func(t *testing.T) {
			envelope, err := c.Do(ctx, client.Request{Path: path})
			require.NoError(t, err)
			assert.True(t, envelope.Empty())
			value, err := envelope.Value()
			assert.NoError(t, err)
			assert.Nil(t, value)
			assert.ErrorIs(t, envelope.Decode(&map[string]any{}), client.ErrMalformedResponse)
		})
	}
	t.Run("malformed json", func(t *testing.T) {
		_, err := c.Do(ctx, client.Request{Path: "/malformed"})
		assert.ErrorIs(t, err, client.ErrMalformedResponse)
	})
	t.Run("message from failed response", func(t *testing.T) {
		_, err := c.Do(ctx, client.Request{Path: "/not-found"})
		require.Error(t, err)
		assert.Equal(t, "not found", err.Error())
		assert.True(t, client.IsStatus(err, http.StatusNotFound))
		var e *client.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, http.StatusNotFound, e.StatusCode)
	})
	for path, statusCode := range map[string]int{
		"/server-error":    http.StatusInternalServerError,
		"/no-message":      http.StatusBadRequest,
		"/empty-message":   http.StatusConflict,
		"/object-message":  http.StatusUnprocessableEntity,
		"/text-error":      http.StatusBadGateway,
		"/malformed-error": http.StatusForbidden,
		"/redirect-status": http.StatusNotModified,
		"/unknown":         http.StatusTeapot,
	} {
		t.Run("generic message "+path, func(t *testing.T) {
			_, err := c.Do(ctx, client.Request{Path: path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), fmt.Sprint(statusCode))
			assert.True(t, client.IsStatus(err, statusCode))
			assert.NotErrorIs(t, err, client.ErrNetwork)
		})
	}
}

func TestClientRequests(t *testing.T) {
	type received struct {
		method        string
		path          string
		contentType   string
		custom        string
		correlationId string
		body          string
	}

	requests := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)
		requests <- received{
			method:        request.Method,
			path:          request.URL.Path,
			contentType:   request.Header.Get("Content-Type"),
			custom:        request.Header.Get("X-Custom"),
			correlationId: request.Header.Get(data.HeaderCorrelationId),
			body:          string(body),
		}
		switch request.Method {
		default:
			writeJSON(writer, http.StatusOK, `{}`)
		case http.MethodPost:
			writeJSON(writer, http.StatusCreated, `{"id":7}`)
		}
	}))
	defer server.Close()
	c := newClient(t, server.URL)
	ctx := context.TODO()

	t.Run("post body", func(t *testing.T) {
		envelope, err := c.Do(ctx, client.Request{
			Path:   "/things",
			Method: http.MethodPost,
			Body:   map[string]any{"a": 1},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":7}`, string(envelope))
		r := <-requests
		assert.Equal(t, http.MethodPost, r.method)
		assert.Equal(t, "/api/things", r.path)
		assert.Equal(t, "application/json", r.contentType)
		assert.JSONEq(t, `{"a":1}`, r.body)
	})
	t.Run("default method and headers", func(t *testing.T) {
		ctx := internal.CtxWithCorrelationId(ctx, "test_client")
		_, err := c.Do(ctx, client.Request{Path: "/things"})
		require.NoError(t, err)
		r := <-requests
		assert.Equal(t, http.MethodGet, r.method)
		assert.Equal(t, "application/json", r.contentType)
		assert.Equal(t, "test_client", r.correlationId)
		assert.Empty(t, r.body)
	})
	t.Run("headers override and extend", func(t *testing.T) {
		_, err := c.Do(ctx, client.Request{
			Path:   "/things",
			Method: http.MethodPut,
			Headers: http.Header{
				"content-type": {"text/plain"},
				"X-Custom":     {"custom"},
			},
		})
		require.NoError(t, err)
		r := <-requests
		assert.Equal(t, http.MethodPut, r.method)
		assert.Equal(t, "text/plain", r.contentType)
		assert.Equal(t, "custom", r.custom)
	})
	t.Run("unserializable body", func(t *testing.T) {
		_, err := c.Do(ctx, client.Request{
			Path:   "/things",
			Method: http.MethodPost,
			Body:   map[string]any{"fx": func() {}},
		})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, client.ErrNetwork)
		assert.Len(t, requests, 0)
	})
}

func TestClientNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	address := server.URL
	server.Close()
	c := newClient(t, address)
	ctx := context.TODO()

	for _, method := range []string{http.MethodDelete, http.MethodGet, http.MethodPost} {
		_, err := c.Do(ctx, client.Request{Path: "/employees/1", Method: method})
		require.Error(t, err)
		assert.ErrorIs(t, err, client.ErrNetwork)
		assert.Equal(t, client.ErrNetwork.Error(), err.Error())
	}
	_, err := c.Upload(ctx, client.UploadRequest{
		Path:         "/documents/upload/1",
		DocumentType: data.DocumentTypeOther,
		File:         strings.NewReader("content"),
	})
	assert.ErrorIs(t, err, client.ErrNetwork)
	_, err = c.EmployeeRead(ctx, "1")
	assert.ErrorIs(t, err, client.ErrNetwork)
}

func TestClientCancel(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-request.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)
	c := newClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.TODO(), 100*time.Millisecond)
	defer cancel()
	_, err := c.Do(ctx, client.Request{Path: "/slow"})
	assert.ErrorIs(t, err, client.ErrNetwork)
}

func TestClientCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/auth/login":
			http.SetCookie(writer, &http.Cookie{
				Name:     data.CookieSession,
				Value:    "token",
				Path:     "/",
				HttpOnly: true,
			})
			writeJSON(writer, http.StatusOK, `{"user":{"id":"1","email":"a@b.c"}}`)
		default:
			cookie, err := request.Cookie(data.CookieSession)
			if err != nil || cookie.Value != "token" {
				writeJSON(writer, http.StatusUnauthorized, `{"message":"unauthorized"}`)
				return
			}
			writeJSON(writer, http.StatusOK, `{"users":[{"id":"1","email":"a@b.c"}]}`)
		}
	}))
	defer server.Close()
	c := newClient(t, server.URL)
	ctx := context.TODO()

	_, err := c.UsersList(ctx)
	assert.Equal(t, "unauthorized", err.Error())
	user, err := c.Login(ctx, data.LoginRequest{Email: "a@b.c", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	users, err := c.UsersList(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestClientUpload(t *testing.T) {
	type received struct {
		contentType  string
		documentType string
		fileName     string
		content      string
	}

	requests := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		r := received{contentType: request.Header.Get("Content-Type")}
		if err := request.ParseMultipartForm(1 << 20); err != nil {
			writeJSON(writer, http.StatusBadRequest, `{"message":"not multipart"}`)
			requests <- r
			return
		}
		r.documentType = request.FormValue(data.FormFieldDocumentType)
		file, header, err := request.FormFile(data.FormFieldFile)
		if err == nil {
			content, _ := io.ReadAll(file)
			r.content, r.fileName = string(content), header.Filename
		}
		requests <- r
		writeJSON(writer, http.StatusCreated, fmt.Sprintf(
			`{"message":"uploaded","document":{"id":"d1","employeeId":"e1","documentType":%q,"fileName":%q,"size":%d}}`,
			r.documentType, r.fileName, len(r.content)))
	}))
	defer server.Close()
	c := newClient(t, server.URL)
	ctx := context.TODO()

	document, err := c.DocumentUpload(ctx, "e1", data.DocumentTypeContract,
		"contract.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	r := <-requests
	assert.True(t, strings.HasPrefix(r.contentType, "multipart/form-data; boundary="))
	assert.Equal(t, data.DocumentTypeContract, r.documentType)
	assert.Equal(t, "contract.pdf", r.fileName)
	assert.Equal(t, "%PDF-1.4", r.content)
	assert.Equal(t, &data.Document{
		ID:           "d1",
		EmployeeID:   "e1",
		DocumentType: data.DocumentTypeContract,
		FileName:     "contract.pdf",
		Size:         8,
	}, document)

	_, err = c.Upload(ctx, client.UploadRequest{Path: "/documents/upload/e1"})
	assert.Error(t, err)
	assert.Len(t, requests, 0)
}

func TestClientConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := strings.TrimPrefix(request.URL.Path, "/api/employees/")
		writeJSON(writer, http.StatusOK, fmt.Sprintf(`{"employee":{"id":%q}}`, id))
	}))
	defer server.Close()
	c := newClient(t, server.URL)
	ctx := context.TODO()

	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			employee, err := c.EmployeeRead(ctx, id)
			if err != nil {
				errs <- err
				return
			}
			if employee.ID != id {
				errs <- errors.Errorf("expected %s, got %s", id, employee.ID)
			}
		}(fmt.Sprint(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestEnvelopeMarshal(t *testing.T) {
	bytes, err := json.Marshal(struct {
		Empty client.Envelope `json:"empty"`
		Value client.Envelope `json:"value"`
	}{
		Value: client.Envelope(`{"a":1}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"empty":null,"value":{"a":1}}`, string(bytes))
}
