package dto

// CreateServiceRequest adds a bookable catalog entry.
type CreateServiceRequest struct {
	Name        string  `json:"name"        binding:"required,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Duration    int     `json:"duration"    binding:"required,min=5,max=480"` // minutes
	Price       float64 `json:"price"       binding:"required,gt=0"`
}

// UpdateServiceRequest patches a catalog entry; nil fields are kept.
type UpdateServiceRequest struct {
	Name        *string  `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Duration    *int     `json:"duration"    binding:"omitempty,min=5,max=480"`
	Price       *float64 `json:"price"       binding:"omitempty,gt=0"`
	Active      *bool    `json:"active"`
}

// ServiceResponse is the public view of a catalog entry.
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}

// ServiceBrief is the embedded view used inside other responses.
type ServiceBrief struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}
