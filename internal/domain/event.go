package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID          int64           `json:"id"`
	VenueID     int64           `json:"venue_id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	StartsAt    time.Time       `json:"starts_at"`
	TicketPrice decimal.Decimal `json:"ticket_price" gorm:"type:numeric(12,2)"`
	Capacity    int             `json:"capacity,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}
