package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubradar/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/init", h.InitPayment)
}

// RegisterCallbackRoutes is mounted without auth middleware. The
// gateway authenticates with its signature, not a bearer token.
func (h *Handler) RegisterCallbackRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/callback", h.Callback)
}

func (h *Handler) InitPayment(c *gin.Context) {
	var req InitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	resp, err := h.service.InitPayment(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Booking is not awaiting payment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to initialize payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": resp})
}

func (h *Handler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	ack, err := h.service.HandleCallback(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature):
			c.String(http.StatusForbidden, "invalid signature")
		case errors.Is(err, ErrOrderNotFound):
			c.String(http.StatusNotFound, "unknown reference")
		case errors.Is(err, ErrAmountMismatch):
			c.String(http.StatusConflict, "amount mismatch")
		default:
			c.String(http.StatusInternalServerError, "error")
		}
		return
	}

	// Plain-text acknowledgement is what the gateway expects back.
	c.String(http.StatusOK, ack)
}
