package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/application"
	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/interface/middleware"
	"github.com/plateforme/services-api/pkg/response"
	"github.com/plateforme/services-api/pkg/validation"
)

type ReservationHandler struct {
	Svc    *application.ReservationService
	Logger *logrus.Logger
}

func NewReservationHandler(svc *application.ReservationService, logger *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

type createReservationRequest struct {
	Client   int64  `json:"client" binding:"required"`
	Provider int64  `json:"provider" binding:"required"`
	Service  string `json:"service" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Status   string `json:"status" binding:"omitempty"`
}

type updateReservationRequest struct {
	Service *string `json:"service"`
	Date    *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status  *string `json:"status"`
}

// List returns the reservations the caller is a party to. Admins see all of
// them; an authenticated user with no profile sees an empty list.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservations, "reservations retrieved")
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	date, err := entity.ParseDate(req.Date)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", map[string]string{"date": "date must be formatted as YYYY-MM-DD"})
		return
	}

	reservation, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), application.CreateReservationInput{
		ClientID:   req.Client,
		ProviderID: req.Provider,
		Service:    req.Service,
		Date:       date,
		Status:     entity.ReservationStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reservation, "reservation created")
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reservation, err := h.Svc.Get(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservation, "reservation retrieved")
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	in := application.UpdateReservationInput{Service: req.Service}
	if req.Date != nil {
		date, err := entity.ParseDate(*req.Date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "validation failed", map[string]string{"date": "date must be formatted as YYYY-MM-DD"})
			return
		}
		in.Date = &date
	}
	if req.Status != nil {
		status := entity.ReservationStatus(*req.Status)
		in.Status = &status
	}

	reservation, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reservation, "reservation updated")
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "reservation deleted")
}
