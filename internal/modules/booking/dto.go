package booking

type CreateBookingRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
}

type ListBookingsQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
