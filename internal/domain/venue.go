package domain

import "time"

type VenueStatus string

const (
	VenuePending  VenueStatus = "pending"
	VenueApproved VenueStatus = "approved"
	VenueRejected VenueStatus = "rejected"
)

type Venue struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Address     string      `json:"address,omitempty"`
	City        string      `json:"city,omitempty"`
	Status      VenueStatus `json:"status"`

	// Bank settlement details. Snapshotted into payouts at creation time,
	// so edits here never change historical payout records.
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	IFSCCode          string `json:"ifsc_code,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`

	RejectedReason string    `json:"rejected_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
