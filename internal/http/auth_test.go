package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccessStartsSession(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	cookies := loginAdmin(t, handler)

	rec := doJSON(t, handler, http.MethodGet, "/api/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, testAdminUser, resp.User.Username)
	assert.NotEmpty(t, resp.User.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	rec := doJSON(t, handler, http.MethodPost, "/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginUnknownUserSameAnswerAsWrongPassword(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	wrongPass := doJSON(t, handler, http.MethodPost, "/login", map[string]string{
		"username": testAdminUser,
		"password": "wrong",
	}, nil)
	unknownUser := doJSON(t, handler, http.MethodPost, "/login", map[string]string{
		"username": "nobody",
		"password": "wrong",
	}, nil)
	assert.Equal(t, wrongPass.Code, unknownUser.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestLoginAcceptsFormBody(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	form := url.Values{}
	form.Set("username", testAdminUser)
	form.Set("password", testAdminPassword)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := newRecorderFor(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Result().Cookies())
}

func TestAdminRouteWithoutSession(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	rec := doJSON(t, handler, http.MethodGet, "/api/messages", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	cookies := loginAdmin(t, handler)
	rec := doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/logout", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/messages", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutWithoutSessionIsFine(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	rec := doJSON(t, handler, http.MethodGet, "/logout", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// a second logout with a dead cookie is just as fine
	cookies := loginAdmin(t, handler)
	doJSON(t, handler, http.MethodGet, "/logout", nil, cookies)
	rec = doJSON(t, handler, http.MethodGet, "/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestForgedCookieRejected(t *testing.T) {
	s := newTestServer(t)
	handler := s.Router()

	rec := doJSON(t, handler, http.MethodGet, "/api/messages", nil, []*http.Cookie{
		{Name: sessionCookieName, Value: "not-a-real-session"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
