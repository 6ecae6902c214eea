package service

import (
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"

	"github.com/gorilla/mux"
)

func (s *service) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     data.CookieSession,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.config.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *service) endpointHealth(writer http.ResponseWriter, request *http.Request) {
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Message: "ok",
		Version: Version,
	})
}

func (s *service) endpointLogin(writer http.ResponseWriter, request *http.Request) {
	var loginRequest data.LoginRequest

	if err := readJSON(request, &loginRequest); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	user, token, err := s.logic.Login(request.Context(), loginRequest)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	http.SetCookie(writer, s.sessionCookie(token, 0))
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		User: user,
	})
}

func (s *service) endpointRegister(writer http.ResponseWriter, request *http.Request) {
	var registerRequest data.RegisterRequest

	if err := readJSON(request, &registerRequest); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	user, err := s.logic.Register(request.Context(), registerRequest)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusCreated, nil, &data.Response{
		User: user,
	})
}

// endpointLogout always expires the session cookie, even when the session is
// already gone.
func (s *service) endpointLogout(writer http.ResponseWriter, request *http.Request) {
	if err := s.logic.Logout(request.Context(), sessionToken(request)); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	http.SetCookie(writer, s.sessionCookie("", -1))
	handleResponse(writer, http.StatusOK, nil, &data.Message{
		Message: "logged out",
	})
}

func (s *service) endpointUsersList(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	users, err := s.logic.UsersList(ctx, userFromCtx(ctx))
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Users: users,
	})
}

func (s *service) endpointUserRoleUpdate(writer http.ResponseWriter, request *http.Request) {
	var update data.UserRoleUpdate

	ctx := request.Context()
	if err := readJSON(request, &update); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	user, err := s.logic.UserRoleUpdate(ctx, userFromCtx(ctx), mux.Vars(request)[data.PathId], update)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		User: user,
	})
}

func (s *service) endpointUserStatusUpdate(writer http.ResponseWriter, request *http.Request) {
	var update data.UserStatusUpdate

	ctx := request.Context()
	if err := readJSON(request, &update); err != nil {
		handleResponse(writer, 0, err)
		return
	}
	user, err := s.logic.UserStatusUpdate(ctx, userFromCtx(ctx), mux.Vars(request)[data.PathId], update)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		User: user,
	})
}
