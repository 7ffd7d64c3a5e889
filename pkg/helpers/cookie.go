package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session_token"
	CSRFCookie    = "csrf_token"
)

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookieManager(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetSession sets the pair of auth cookies: the opaque session token
// (HttpOnly) and the anti-forgery token, which client-side script must be
// able to read and echo back, so it is deliberately not HttpOnly.
func (m *CookieManager) SetSession(c *gin.Context, sessionToken, csrfToken string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(ttl.Seconds())
	c.SetCookie(SessionCookie, sessionToken, maxAge, "/", m.Domain, m.Secure, true)
	c.SetCookie(CSRFCookie, csrfToken, maxAge, "/", m.Domain, m.Secure, false)
}

// Clear expires both auth cookies.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", m.Domain, m.Secure, true)
	c.SetCookie(CSRFCookie, "", -1, "/", m.Domain, m.Secure, false)
}
