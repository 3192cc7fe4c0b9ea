package payout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clubradar/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterReadRoutes expects an admin-guarded group.
func (h *Handler) RegisterReadRoutes(rg *gin.RouterGroup) {
	rg.GET("/payouts", h.ListPayouts)
	rg.GET("/payouts/:id", h.GetPayout)
}

// RegisterMutationRoutes expects a group additionally guarded by the
// payout allowlist policy.
func (h *Handler) RegisterMutationRoutes(rg *gin.RouterGroup) {
	rg.POST("/payouts", h.CreatePayout)
	rg.POST("/payouts/bulk", h.BulkCreate)
	rg.PATCH("/payouts/:id/settle", h.SettlePayout)
}

func (h *Handler) CreatePayout(c *gin.Context) {
	var req CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	start, err := parseDate(req.PeriodStartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period_start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.PeriodEndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period_end_date must be YYYY-MM-DD")
		return
	}

	p, err := h.service.CreatePayout(c.Request.Context(), CreatePayoutInput{
		VenueID:        req.VenueID,
		PeriodStart:    start,
		PeriodEnd:      end,
		CommissionRate: parseRate(req.CommissionRate),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payout": p})
}

func (h *Handler) BulkCreate(c *gin.Context) {
	var req BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	start, err := parseDate(req.PeriodStartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period_start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.PeriodEndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "period_end_date must be YYYY-MM-DD")
		return
	}

	res, err := h.service.BulkCreate(c.Request.Context(), BulkCreateInput{
		PeriodStart:    start,
		PeriodEnd:      end,
		CommissionRate: parseRate(req.CommissionRate),
		VenueIDs:       req.VenueIDs,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) SettlePayout(c *gin.Context) {
	payoutID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payout ID")
		return
	}

	var req SettlePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	in := SettleInput{
		Status:        req.Status,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}
	if req.TransactionDate != nil {
		td, err := time.Parse(time.RFC3339, *req.TransactionDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "transaction_date must be RFC3339")
			return
		}
		in.TransactionDate = &td
	}

	p, err := h.service.SettlePayout(c.Request.Context(), payoutID, in, c.GetString("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payout": p})
}

func (h *Handler) ListPayouts(c *gin.Context) {
	var q ListPayoutsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	page, err := h.service.ListPayouts(c.Request.Context(), ListFilter{
		Status:  q.Status,
		VenueID: q.VenueID,
		Page:    q.Page,
		Limit:   q.Limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

func (h *Handler) GetPayout(c *gin.Context) {
	payoutID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payout ID")
		return
	}

	p, err := h.service.GetPayout(c.Request.Context(), payoutID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payout": p})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payout parameters")
	case errors.Is(err, ErrVenueNotFound):
		response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
	case errors.Is(err, ErrPayoutNotFound):
		response.Error(c, http.StatusNotFound, "PAYOUT_NOT_FOUND", "Payout not found")
	case errors.Is(err, ErrDuplicatePeriod):
		response.Error(c, http.StatusConflict, "DUPLICATE_PAYOUT_PERIOD", "Payout already exists for this period")
	case errors.Is(err, ErrNoApprovedVenues):
		response.Error(c, http.StatusNotFound, "NO_APPROVED_VENUES", "No approved venues found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Payout operation failed")
	}
}
