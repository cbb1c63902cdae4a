package dto

// UserListRequest filters the admin user listing.
type UserListRequest struct {
	PaginationRequest
	Role string `form:"role" binding:"omitempty,oneof=client admin"`
}

// UpdateUserRequest patches profile fields; nil fields are left untouched.
type UpdateUserRequest struct {
	Name           *string `json:"name"            binding:"omitempty,min=2,max=100"`
	Email          *string `json:"email"           binding:"omitempty,email"`
	Phone          *string `json:"phone"           binding:"omitempty,max=30"`
	Address        *string `json:"address"         binding:"omitempty,max=255"`
	Instagram      *string `json:"instagram"       binding:"omitempty,max=100"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url,max=500"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	Role           string  `json:"role"`
	Instagram      *string `json:"instagram,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
