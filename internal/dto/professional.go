package dto

// CreateProfessionalRequest registers a new staff member.
type CreateProfessionalRequest struct {
	Name           string  `json:"name"            binding:"required,min=2,max=100"`
	Phone          string  `json:"phone"           binding:"required,max=30"`
	Email          string  `json:"email"           binding:"required,email"`
	CPF            string  `json:"cpf"             binding:"required,min=11,max=14"`
	Address        string  `json:"address"         binding:"required,max=255"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url,max=500"`
}

// UpdateProfessionalRequest patches a staff member; nil fields are kept.
type UpdateProfessionalRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=2,max=100"`
	Phone          *string `json:"phone"           binding:"omitempty,max=30"`
	Email          *string `json:"email"           binding:"omitempty,email"`
	Address        *string `json:"address"         binding:"omitempty,max=255"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url,max=500"`
	Active         *bool   `json:"active"`
}

// LinkServiceRequest attaches a catalog service to a professional.
type LinkServiceRequest struct {
	ServiceID  string  `json:"service_id" binding:"required,uuid"`
	Commission float64 `json:"commission" binding:"omitempty,gte=0"`
}

// ProfessionalResponse is the public view of a staff member.
type ProfessionalResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	CPF            string  `json:"cpf"`
	Address        string  `json:"address"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Active         bool    `json:"active"`
	CreatedAt      string  `json:"created_at"`
}

// ProfessionalBrief is the embedded view used inside other responses.
type ProfessionalBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
