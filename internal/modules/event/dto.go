package event

import "time"

type CreateEventRequest struct {
	VenueID     int64     `json:"venue_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	TicketPrice float64   `json:"ticket_price" binding:"required,gte=0"`
	Capacity    int       `json:"capacity"`
}
