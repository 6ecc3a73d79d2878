package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Keerthid-10/taylor/internal/domain"
	"github.com/Keerthid-10/taylor/internal/pkg/jwthelper"
	"github.com/Keerthid-10/taylor/internal/session"
)

const sessionContextKey = "session"

type Authenticator struct {
	signingKey []byte
	sessions   *session.Store
}

func NewAuthenticator(signingKey string, sessions *session.Store) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		sessions:   sessions,
	}
}

// ResolveSession turns a bearer token into the request's session. A
// missing, invalid or logged-out token resolves to the anonymous session
// rather than aborting: navigation is never blocked, the services decide
// what requires a login.
func (a *Authenticator) ResolveSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(sessionContextKey, a.resolve(ctx))
		ctx.Next()
	}
}

func (a *Authenticator) resolve(ctx *gin.Context) domain.Session {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return domain.Session{}
	}

	claims, err := jwthelper.ParseToken(a.signingKey, token)
	if err != nil {
		return domain.Session{}
	}

	user, ok := a.sessions.Get(claims.SessionKey)
	if !ok {
		// Logged out or restarted; the token no longer maps to anything.
		return domain.Session{}
	}

	return domain.Session{Key: claims.SessionKey, User: user}
}

// SessionFromContext returns the session ResolveSession stashed, or the
// anonymous session when the middleware did not run.
func SessionFromContext(ctx *gin.Context) domain.Session {
	value, ok := ctx.Get(sessionContextKey)
	if !ok {
		return domain.Session{}
	}

	sess, ok := value.(domain.Session)
	if !ok {
		return domain.Session{}
	}

	return sess
}
