package payment

type InitPaymentRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type InitPaymentResponse struct {
	Reference  string `json:"reference"`
	PaymentURL string `json:"payment_url"`
	Amount     string `json:"amount"`
	Signature  string `json:"signature"`
	Status     string `json:"status"`
}

type CallbackRequest struct {
	Reference string `form:"reference" json:"reference" binding:"required"`
	Amount    string `form:"amount" json:"amount" binding:"required"`
	Status    string `form:"status" json:"status" binding:"required"`
	Signature string `form:"signature" json:"signature" binding:"required"`
}
