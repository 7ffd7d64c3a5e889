package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/pkg/helpers"
	"github.com/plateforme/services-api/pkg/response"
	"github.com/plateforme/services-api/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin client provider"`
}

// Login verifies credentials for the claimed role and issues a session.
// Two cookies come back: the opaque session token (HttpOnly) and the CSRF
// token (readable by scripts).
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Cookies.SetSession(c, res.SessionToken, res.CSRFToken, h.Svc.Sessions.TTL())
	response.Success(c, http.StatusOK, gin.H{"user": res.User}, "login successful")
}

// Logout tears down the server-side session and expires both cookies. A
// request with no session cookie still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(helpers.SessionCookie)
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		h.Logger.WithError(err).Warn("failed to delete session")
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, nil, "logout successful")
}
