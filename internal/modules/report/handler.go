package report

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clubradar/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/payouts.xlsx", h.ExportPayouts)
}

func (h *Handler) ExportPayouts(c *gin.Context) {
	var venueID *int64
	if raw := c.Query("venue_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid venue_id")
			return
		}
		venueID = &id
	}

	data, filename, err := h.service.PayoutsXLSX(c.Request.Context(), c.Query("status"), venueID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export payouts")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
