package httpapi

import (
	"context"
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/securecookie"

	"pantry-backend-go/internal/services"
)

const sessionCookieName = "pantry_session"

type contextKey string

const ctxIdentity contextKey = "identity"

// NewCookieCodec derives the securecookie keys from the configured session
// secret. The cookie only carries the opaque session token; validity is
// decided by the server-side store.
func NewCookieCodec(secret string) *securecookie.SecureCookie {
	hashKey := sha256.Sum256([]byte(secret))
	blockKey := sha256.Sum256([]byte(secret + ".block"))
	sc := securecookie.New(hashKey[:], blockKey[:])
	// Session lifetime is tied to the store, not to cookie age.
	sc.MaxAge(0)
	return sc
}

// WithAdmin admits only requests carrying a session cookie whose token the
// store still holds, and puts the admin identity on the request context.
func WithAdmin(sessions *services.SessionStore, codec *securecookie.SecureCookie) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := sessionIdentity(r, sessions, codec)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIdentity(r *http.Request, sessions *services.SessionStore, codec *securecookie.SecureCookie) (services.Identity, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return services.Identity{}, false
	}
	var token string
	if err := codec.Decode(sessionCookieName, cookie.Value, &token); err != nil {
		return services.Identity{}, false
	}
	return sessions.Lookup(token)
}

func CurrentIdentity(r *http.Request) services.Identity {
	if value, ok := r.Context().Value(ctxIdentity).(services.Identity); ok {
		return value
	}
	return services.Identity{}
}

func setSessionCookie(w http.ResponseWriter, codec *securecookie.SecureCookie, token string) error {
	encoded, err := codec.Encode(sessionCookieName, token)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
