package venue

type RegisterVenueRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"required"`

	BankAccountNumber string `json:"bank_account_number" binding:"required"`
	IFSCCode          string `json:"ifsc_code" binding:"required"`
	AccountHolderName string `json:"account_holder_name" binding:"required"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	City        *string `json:"city"`

	BankAccountNumber *string `json:"bank_account_number"`
	IFSCCode          *string `json:"ifsc_code"`
	AccountHolderName *string `json:"account_holder_name"`
}

type RejectVenueRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ListVenuesQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
