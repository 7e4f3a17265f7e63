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

// ItemHandler coordinates ration item catalog HTTP handlers.
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

type itemRequest struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

func (r itemRequest) toInput() services.CreateItemInput {
	return services.CreateItemInput{
		Name:        r.Name,
		Unit:        r.Unit,
		Description: r.Description,
		Active:      r.Active,
	}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List()
	if err != nil {
		logrus.WithError(err).Error("failed to list items")
		apierrors.InternalError(c, "Failed to retrieve items")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToItemDTOs(items), "")
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId", "Invalid item ID")
	if !ok {
		return
	}

	item, err := h.itemService.Get(id)
	if err != nil {
		respondItemError(c, err, "Failed to retrieve item")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToItemDTO(*item), "")
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(req.toInput())
	if err != nil {
		respondItemError(c, err, "Failed to create item")
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToItemDTO(*item), "Item created successfully")
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId", "Invalid item ID")
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(id, req.toInput())
	if err != nil {
		respondItemError(c, err, "Failed to update item")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToItemDTO(*item), "Item updated successfully")
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId", "Invalid item ID")
	if !ok {
		return
	}

	if err := h.itemService.Delete(id); err != nil {
		respondItemError(c, err, "Failed to delete item")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Item deleted successfully")
}

func respondItemError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, "Item not found")
	case errors.Is(err, services.ErrItemNameRequired):
		apierrors.BadRequest(c, "Item name is required")
	case errors.Is(err, services.ErrItemNameTaken):
		apierrors.BadRequest(c, "Item name already exists")
	default:
		logrus.WithError(err).Error("item operation failed")
		apierrors.InternalError(c, fallback)
	}
}
