package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/internal/interface/middleware"
	"github.com/plateforme/services-api/pkg/response"
	"github.com/plateforme/services-api/pkg/validation"
)

type ProviderHandler struct {
	Svc    *application.ProviderService
	Logger *logrus.Logger
}

func NewProviderHandler(svc *application.ProviderService, logger *logrus.Logger) *ProviderHandler {
	return &ProviderHandler{Svc: svc, Logger: logger}
}

type createProviderRequest struct {
	Name        string  `json:"name" binding:"required"`
	Service     string  `json:"service" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
}

type updateProviderRequest struct {
	Name        *string `json:"name"`
	Service     *string `json:"service"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, providers, "providers retrieved")
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req createProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	provider, err := h.Svc.Register(c.Request.Context(), application.RegisterProviderInput{
		Name:        req.Name,
		Service:     req.Service,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, provider, "provider registered")
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	provider, err := h.Svc.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider, "provider retrieved")
}

func (h *ProviderHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	provider, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, application.UpdateProviderInput{
		Name:        req.Name,
		Service:     req.Service,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, provider, "provider updated")
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "provider deleted")
}

// Search queries the provider index by name, service, and email.
func (h *ProviderHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "validation failed", map[string]string{"q": "q is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "providers retrieved")
}
