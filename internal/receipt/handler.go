package receipt

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oceanbrew/internal/order"
	"oceanbrew/internal/settings"
)

type Handler struct {
	printer  *Printer
	orders   *order.Service
	settings *settings.Service
}

func NewHandler(printer *Printer, orders *order.Service, settings *settings.Service) *Handler {
	return &Handler{printer: printer, orders: orders, settings: settings}
}

// --------------------------------------------------
// Print an order's receipt. On transport failure the
// response still carries the receipt text to display.
// --------------------------------------------------
func (h *Handler) Print(c *gin.Context) {

	ctx := c.Request.Context()

	o, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, order.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	s, err := h.settings.Get(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.printer.Print(ctx, o, s)
	if err != nil {
		// Degrade to display, not an error response.
		c.JSON(http.StatusOK, gin.H{
			"receipt": result,
			"warning": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": result})
}
