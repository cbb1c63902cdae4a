package dto

// CreateTransactionRequest records an income or expense.
type CreateTransactionRequest struct {
	AppointmentID *string `json:"appointment_id" binding:"omitempty,uuid"`
	Type          string  `json:"type"           binding:"required,oneof=income expense"`
	Amount        float64 `json:"amount"         binding:"required,gt=0"`
	Description   string  `json:"description"    binding:"required,max=500"`
	Date          string  `json:"date"           binding:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest patches a financial record; nil fields are kept.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type"        binding:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount"      binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Date        *string  `json:"date"        binding:"omitempty,datetime=2006-01-02"`
}

// TransactionListRequest filters the financial listing.
type TransactionListRequest struct {
	PaginationRequest
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}

// TransactionSummaryRequest bounds the summary period.
type TransactionSummaryRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the public view of a financial record.
type TransactionResponse struct {
	ID            string  `json:"id"`
	AppointmentID *string `json:"appointment_id,omitempty"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"created_at"`
}

// TransactionSummaryResponse aggregates the period's totals.
type TransactionSummaryResponse struct {
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
