package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/handler"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/model"
	"github.com/Freddy0703/Projet-d-etude-JUNIA/internal/session"
)

// Context keys for the resolved session.
const (
	ContextPrincipal    = "principal"
	ContextSessionToken = "session_token"
)

// Kind selects the rejection style of a guard: pages bounce the browser back
// to the login form, API routes answer JSON.
type Kind int

const (
	PageKind Kind = iota
	APIKind
)

const loginPath = "/connexion"

type SessionMiddleware struct {
	store      session.Store
	cookieName string
}

func NewSessionMiddleware(store session.Store, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cookieName,
	}
}

// Resolve looks the session cookie up in the store and puts the principal in
// the request context. The lookup happens on every request, so a role change
// written to the store is picked up on the next request, not at next login.
// Anonymous requests pass through; the guards decide what to do with them.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		principal, err := m.store.Get(c.Request.Context(), token)
		if err != nil {
			// Expired or revoked token: treat as anonymous.
			c.Next()
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

// RequireRole rejects requests whose session carries none of the given roles.
// Anonymous and wrong-role requests are rejected the same way: API routes get
// 403, pages bounce to the login form.
func (m *SessionMiddleware) RequireRole(kind Kind, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal != nil {
			for _, role := range roles {
				if principal.Role == role {
					c.Next()
					return
				}
			}
		}

		m.reject(c, kind, http.StatusForbidden, "access denied")
	}
}

func (m *SessionMiddleware) reject(c *gin.Context, kind Kind, status int, message string) {
	if kind == PageKind {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	c.JSON(status, handler.NewErrorResponse(message))
	c.Abort()
}

// Principal returns the session principal resolved for this request, or nil.
func Principal(c *gin.Context) *model.Principal {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	principal, _ := v.(*model.Principal)
	return principal
}

// SessionToken returns the raw session token for this request, or "".
func SessionToken(c *gin.Context) string {
	return c.GetString(ContextSessionToken)
}
