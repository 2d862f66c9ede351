package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"pantry-backend-go/internal/services"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User services.Identity `json:"user"`
}

// Login verifies the admin credential and starts a session. Unknown username
// and wrong password answer identically.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := readLoginRequest(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		WriteError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	row := struct {
		ID           string `db:"id"`
		Username     string `db:"username"`
		PasswordHash string `db:"password_hash"`
	}{}
	if err := s.DB.Get(&row, `SELECT id, username, password_hash FROM admin_accounts WHERE username = ?`, username); err != nil {
		WriteError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if !services.VerifyPassword(req.Password, row.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	token, err := s.Sessions.Create(services.Identity{UserID: row.ID, Username: row.Username})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := setSessionCookie(w, s.Cookies, token); err != nil {
		s.Sessions.Invalidate(token)
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, LoginResponse{User: services.Identity{UserID: row.ID, Username: row.Username}})
}

// Logout invalidates whatever session the request carries; logging out
// without one is fine.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		var token string
		if err := s.Cookies.Decode(sessionCookieName, cookie.Value, &token); err == nil {
			s.Sessions.Invalidate(token)
		}
	}
	clearSessionCookie(w)
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, LoginResponse{User: CurrentIdentity(r)})
}

// The original login page posts a form; the admin console sends JSON. Both
// body shapes are accepted.
func readLoginRequest(r *http.Request) (LoginRequest, bool) {
	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return LoginRequest{}, false
		}
		return LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}, true
	case strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return LoginRequest{}, false
		}
		return LoginRequest{
			Username: r.FormValue("username"),
			Password: r.FormValue("password"),
		}, true
	}
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return LoginRequest{}, false
	}
	return req, true
}
