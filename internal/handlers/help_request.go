package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reliefmap/relief-coordination-api/internal/dto"
	apierrors "github.com/reliefmap/relief-coordination-api/internal/errors"
	"github.com/reliefmap/relief-coordination-api/internal/middleware"
	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

// HelpRequestHandler coordinates help request HTTP handlers.
type HelpRequestHandler struct {
	helpRequestService *services.HelpRequestService
}

// NewHelpRequestHandler creates a new HelpRequestHandler.
func NewHelpRequestHandler(helpRequestService *services.HelpRequestService) *HelpRequestHandler {
	return &HelpRequestHandler{
		helpRequestService: helpRequestService,
	}
}

// List returns OPEN help requests inside the active window, filtered by the
// optional urgency and district query parameters.
func (h *HelpRequestHandler) List(c *gin.Context) {
	input := services.ListHelpRequestsInput{
		District: c.Query("district"),
	}
	if raw := c.Query("urgency"); raw != "" {
		urgency := models.Urgency(raw)
		input.Urgency = &urgency
	}

	helpRequests, err := h.helpRequestService.ListOpen(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUrgency) {
			apierrors.BadRequest(c, "Urgency must be LOW, MEDIUM or HIGH")
			return
		}
		logrus.WithError(err).Error("failed to list help requests")
		apierrors.InternalError(c, "Failed to retrieve help requests")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToHelpRequestDTOs(helpRequests), "")
}

// Get returns a single help request.
func (h *HelpRequestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "helpRequestId", "Invalid help request ID")
	if !ok {
		return
	}

	helpRequest, err := h.helpRequestService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrHelpRequestNotFound) {
			apierrors.NotFound(c, "Help request not found")
			return
		}
		logrus.WithError(err).Error("failed to get help request")
		apierrors.InternalError(c, "Failed to retrieve help request")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToHelpRequestDTO(*helpRequest), "")
}

// Create stores a new help request. Authentication is optional; authenticated
// callers become the owner, anonymous requests have no owner.
func (h *HelpRequestHandler) Create(c *gin.Context) {
	type CreateHelpRequestRequest struct {
		Lat         *float64 `json:"lat" binding:"required"`
		Lng         *float64 `json:"lng" binding:"required"`
		Urgency     string   `json:"urgency" binding:"required"`
		ShortNote   string   `json:"shortNote"`
		ApproxArea  string   `json:"approxArea"`
		ContactType string   `json:"contactType"`
		Contact     string   `json:"contact"`
		Name        string   `json:"name"`
		TotalPeople int      `json:"totalPeople"`
		Elders      int      `json:"elders"`
		Children    int      `json:"children"`
		Pets        int      `json:"pets"`
		RationItems []string `json:"rationItems"`
	}

	var req CreateHelpRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.CreateHelpRequestInput{
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Urgency:     models.Urgency(req.Urgency),
		ShortNote:   req.ShortNote,
		ApproxArea:  req.ApproxArea,
		ContactType: req.ContactType,
		Contact:     req.Contact,
		Name:        req.Name,
		TotalPeople: req.TotalPeople,
		Elders:      req.Elders,
		Children:    req.Children,
		Pets:        req.Pets,
		RationItems: req.RationItems,
	}
	if userID, exists := middleware.GetUserID(c); exists {
		input.UserID = &userID
	}

	helpRequest, err := h.helpRequestService.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUrgency) {
			apierrors.BadRequest(c, "Urgency must be LOW, MEDIUM or HIGH")
			return
		}
		logrus.WithError(err).Error("failed to create help request")
		apierrors.InternalError(c, "Failed to create help request")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToHelpRequestDTO(*helpRequest), "Help request created successfully")
}

// Summary returns aggregate statistics over the active window.
func (h *HelpRequestHandler) Summary(c *gin.Context) {
	summary, err := h.helpRequestService.Summary()
	if err != nil {
		logrus.WithError(err).Error("failed to compute help request summary")
		apierrors.InternalError(c, "Failed to retrieve summary")
		return
	}

	respondSuccess(c, http.StatusOK, summary, "")
}

// parseIDParam parses a numeric path segment, replying 400 on garbage before
// any business logic runs.
func parseIDParam(c *gin.Context, name, message string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, message)
		return 0, false
	}
	return id, true
}
