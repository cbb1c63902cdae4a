package dto

// CreateAppointmentRequest books a slot. The end time is derived from the
// service duration server-side.
type CreateAppointmentRequest struct {
	ProfessionalID string  `json:"professional_id" binding:"required,uuid"`
	ServiceID      string  `json:"service_id"      binding:"required,uuid"`
	Date           string  `json:"date"            binding:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time"      binding:"required"` // "HH:mm"
	Notes          *string `json:"notes"           binding:"omitempty,max=1000"`
}

// UpdateAppointmentStatusRequest moves an appointment through its lifecycle.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled no-show"`
}

// AppointmentListRequest filters the admin appointment listing.
type AppointmentListRequest struct {
	PaginationRequest
	ProfessionalID string `form:"professional_id" binding:"omitempty,uuid"`
	Date           string `form:"date"            binding:"omitempty,datetime=2006-01-02"`
	Status         string `form:"status"          binding:"omitempty,oneof=scheduled completed cancelled no-show"`
}

// AvailabilityRequest asks for open slots of one professional on one day.
type AvailabilityRequest struct {
	ServiceID string `form:"service_id" binding:"required,uuid"`
	Date      string `form:"date"       binding:"required,datetime=2006-01-02"`
}

// AppointmentResponse is the public view of a booking.
type AppointmentResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Professional *ProfessionalBrief `json:"professional,omitempty"`
	Service      *ServiceBrief      `json:"service,omitempty"`
	Date         string             `json:"date"`
	StartTime    string             `json:"start_time"`
	EndTime      string             `json:"end_time"`
	Status       string             `json:"status"`
	Notes        *string            `json:"notes,omitempty"`
	CreatedAt    string             `json:"created_at"`
}

// AvailabilityResponse lists the bookable start times for the day.
type AvailabilityResponse struct {
	ProfessionalID string   `json:"professional_id"`
	ServiceID      string   `json:"service_id"`
	Date           string   `json:"date"`
	Slots          []string `json:"slots"` // "HH:mm", ascending
}
