package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reliefmap/relief-coordination-api/internal/dto"
	apierrors "github.com/reliefmap/relief-coordination-api/internal/errors"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

// CampHandler coordinates relief camp HTTP handlers.
type CampHandler struct {
	campService *services.CampService
}

// NewCampHandler creates a new CampHandler.
func NewCampHandler(campService *services.CampService) *CampHandler {
	return &CampHandler{campService: campService}
}

func (h *CampHandler) List(c *gin.Context) {
	camps, err := h.campService.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list camps")
		apierrors.InternalError(c, "Failed to retrieve camps")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCampDTOs(camps), "")
}

func (h *CampHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "campId", "Invalid camp ID")
	if !ok {
		return
	}

	camp, err := h.campService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCampNotFound) {
			apierrors.NotFound(c, "Camp not found")
			return
		}
		logrus.WithError(err).Error("failed to get camp")
		apierrors.InternalError(c, "Failed to retrieve camp")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToCampDTO(*camp), "")
}

func (h *CampHandler) Create(c *gin.Context) {
	type CreateCampRequest struct {
		Name       string   `json:"name" binding:"required"`
		Lat        *float64 `json:"lat" binding:"required"`
		Lng        *float64 `json:"lng" binding:"required"`
		ApproxArea string   `json:"approxArea"`
		Capacity   int      `json:"capacity"`
		Contact    string   `json:"contact"`
	}

	var req CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	camp, err := h.campService.Create(services.CreateCampInput{
		Name:       req.Name,
		Lat:        *req.Lat,
		Lng:        *req.Lng,
		ApproxArea: req.ApproxArea,
		Capacity:   req.Capacity,
		Contact:    req.Contact,
	})
	if err != nil {
		if errors.Is(err, services.ErrCampNameRequired) {
			apierrors.BadRequest(c, "Camp name is required")
			return
		}
		logrus.WithError(err).Error("failed to create camp")
		apierrors.InternalError(c, "Failed to create camp")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToCampDTO(*camp), "Camp created successfully")
}
