package order

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
// Create order from a cart
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {

	var req struct {
		Lines []CartLine `json:"lines"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.Create(c.Request.Context(), req.Lines)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrUnknownItem) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": o})
}

// --------------------------------------------------
// List orders (?status=pending for the barista queue,
// ?today=true for the dashboard scope)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {

	var (
		orders []Order
		err    error
	)

	switch {
	case c.Query("status") == string(StatusPending):
		orders, err = h.service.ListPending(c.Request.Context())
	case c.Query("today") == "true":
		orders, err = h.service.ListToday(c.Request.Context())
	default:
		orders, err = h.service.ListAll(c.Request.Context())
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Get a single order
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {

	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

// --------------------------------------------------
// Mark an order done (barista queue)
// --------------------------------------------------
func (h *Handler) MarkDone(c *gin.Context) {

	err := h.service.MarkDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrInvalidState):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": StatusDone})
}
