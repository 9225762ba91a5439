package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oceanbrew/internal/order"
)

type Handler struct {
	service *Service
	orders  *order.Service
}

func NewHandler(service *Service, orders *order.Service) *Handler {
	return &Handler{service: service, orders: orders}
}

// --------------------------------------------------
// Sales reports (day/month/item/category breakdowns)
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {

	summary, err := h.service.BuildSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// Dashboard (today's orders only)
// --------------------------------------------------
func (h *Handler) Dashboard(c *gin.Context) {

	today, err := h.orders.ListToday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.BuildDashboard(today))
}

// --------------------------------------------------
// Export download (?from=2026-02-10&to=2026-02-12&format=csv)
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
		return
	}

	filename, body, err := h.service.Export(
		c.Request.Context(),
		c.Query("from"),
		c.Query("to"),
		format,
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrBadDateRange) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == "json" {
		contentType = "application/json"
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
