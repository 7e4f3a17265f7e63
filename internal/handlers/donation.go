package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/reliefmap/relief-coordination-api/internal/dto"
	apierrors "github.com/reliefmap/relief-coordination-api/internal/errors"
	"github.com/reliefmap/relief-coordination-api/internal/middleware"
	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/services"
)

// DonationHandler coordinates donation HTTP handlers.
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// List returns all donations for a help request. The donator's contact number
// is only included when the requester owns the help request.
func (h *DonationHandler) List(c *gin.Context) {
	helpRequestID, ok := parseIDParam(c, "helpRequestId", "Invalid help request ID")
	if !ok {
		return
	}

	var requesterID *uint64
	if userID, exists := middleware.GetUserID(c); exists {
		requesterID = &userID
	}

	listing, err := h.donationService.ListByHelpRequest(helpRequestID, requesterID)
	if err != nil {
		if errors.Is(err, services.ErrHelpRequestNotFound) {
			apierrors.NotFound(c, "Help request not found")
			return
		}
		logrus.WithError(err).Error("failed to list donations")
		apierrors.InternalError(c, "Failed to retrieve donations")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToDonationDTOs(listing.Donations, listing.RequesterIsOwner), "")
}

// Create pledges a donation against a help request. Requires authentication.
func (h *DonationHandler) Create(c *gin.Context) {
	helpRequestID, ok := parseIDParam(c, "helpRequestId", "Invalid help request ID")
	if !ok {
		return
	}

	donatorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "User not authenticated")
		return
	}

	type CreateDonationRequest struct {
		RationItems map[string]int64 `json:"rationItems" binding:"required"`
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Ration items are required")
		return
	}

	donation, err := h.donationService.Create(helpRequestID, donatorID, req.RationItems)
	if err != nil {
		respondDonationError(c, err, "Failed to create donation")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToDonationDTO(*donation, false), "Donation created successfully")
}

// MarkAsScheduled marks a donation as scheduled by its donator.
func (h *DonationHandler) MarkAsScheduled(c *gin.Context) {
	h.updateFlag(c, h.donationService.MarkAsScheduled, "Donation marked as scheduled")
}

// MarkAsCompletedByDonator marks a donation as completed by its donator.
func (h *DonationHandler) MarkAsCompletedByDonator(c *gin.Context) {
	h.updateFlag(c, h.donationService.MarkAsCompletedByDonator, "Donation marked as completed")
}

// MarkAsCompletedByOwner marks a donation as completed by the help request owner.
func (h *DonationHandler) MarkAsCompletedByOwner(c *gin.Context) {
	h.updateFlag(c, h.donationService.MarkAsCompletedByOwner, "Donation marked as completed")
}

func (h *DonationHandler) updateFlag(
	c *gin.Context,
	update func(donationID, requesterID uint64) (*models.Donation, error),
	message string,
) {
	donationID, ok := parseIDParam(c, "donationId", "Invalid donation ID")
	if !ok {
		return
	}

	requesterID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "User not authenticated")
		return
	}

	donation, err := update(donationID, requesterID)
	if err != nil {
		respondDonationError(c, err, "Failed to update donation")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToDonationDTO(*donation, false), message)
}

func respondDonationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrDonationNotFound):
		apierrors.NotFound(c, "Donation not found")
	case errors.Is(err, services.ErrHelpRequestNotFound):
		apierrors.NotFound(c, "Help request not found")
	case errors.Is(err, services.ErrRationItemsRequired):
		apierrors.BadRequest(c, "Ration items are required")
	// Wrong actor is a plain failure, not a 403, so donation existence is not
	// leaked to other users.
	case errors.Is(err, services.ErrNotDonationDonator),
		errors.Is(err, services.ErrNotHelpRequestOwner):
		apierrors.BadRequest(c, fallback)
	default:
		logrus.WithError(err).Error("donation operation failed")
		apierrors.InternalError(c, fallback)
	}
}
