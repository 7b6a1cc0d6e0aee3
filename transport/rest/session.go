package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
)

// sessionID returns the caller's session, issuing a new cookie when it has none.
// The session ID doubles as the game ID.
func (that *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if _, err = uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	that.logger.Info("session cookie not found, new one created", "session", id)

	return id
}
