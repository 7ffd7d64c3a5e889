package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/internal/interface/middleware"
	"github.com/plateforme/services-api/pkg/response"
	"github.com/plateforme/services-api/pkg/validation"
)

type ClientHandler struct {
	Svc    *application.ClientService
	Logger *logrus.Logger
}

func NewClientHandler(svc *application.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Logger: logger}
}

type createClientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	Username    string  `json:"username"`
	Password    string  `json:"password"`
}

type updateClientRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

// List is public: the directory of clients is visible to anyone.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, clients, "clients retrieved")
}

// Create is the open registration endpoint: it provisions a login identity
// and the client profile in one step.
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	client, err := h.Svc.Register(c.Request.Context(), application.RegisterClientInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, client, "client registered")
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	client, err := h.Svc.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, client, "client retrieved")
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	client, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, application.UpdateClientInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, client, "client updated")
}

// Delete removes the client profile and its login identity together.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "client deleted")
}
