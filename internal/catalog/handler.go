package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public: list menu
// --------------------------------------------------
func (h *Handler) ListMenu(c *gin.Context) {

	availableOnly := c.Query("available") == "true"

	items, err := h.service.ListMenu(c.Request.Context(), availableOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Public: generic add-on list
// --------------------------------------------------
func (h *Handler) ListAddOns(c *gin.Context) {

	addOns, err := h.service.ListAddOns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"add_ons": addOns})
}

// --------------------------------------------------
// Admin: create or edit a catalog entry
// --------------------------------------------------
func (h *Handler) SaveItem(c *gin.Context) {

	var item MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.SaveItem(c.Request.Context(), &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// --------------------------------------------------
// Admin: delete a catalog entry
// --------------------------------------------------
func (h *Handler) DeleteItem(c *gin.Context) {

	id := c.Param("id")

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrItemNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
