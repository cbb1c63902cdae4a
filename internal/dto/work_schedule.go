package dto

// CreateWorkScheduleRequest adds a recurring weekly open window.
type CreateWorkScheduleRequest struct {
	ProfessionalID string  `json:"professional_id"  binding:"required,uuid"`
	DayOfWeek      int     `json:"day_of_week"      binding:"min=0,max=6"` // 0 = Sunday
	StartTime      string  `json:"start_time"       binding:"required"`    // "HH:mm"
	EndTime        string  `json:"end_time"         binding:"required"`
	LunchStartTime *string `json:"lunch_start_time" binding:"omitempty"`
	LunchEndTime   *string `json:"lunch_end_time"   binding:"omitempty"`
}

// UpdateWorkScheduleRequest patches a weekly window; nil fields are kept.
type UpdateWorkScheduleRequest struct {
	DayOfWeek      *int    `json:"day_of_week"      binding:"omitempty,min=0,max=6"`
	StartTime      *string `json:"start_time"       binding:"omitempty"`
	EndTime        *string `json:"end_time"         binding:"omitempty"`
	LunchStartTime *string `json:"lunch_start_time" binding:"omitempty"`
	LunchEndTime   *string `json:"lunch_end_time"   binding:"omitempty"`
}

// WorkScheduleResponse is the public view of a weekly window.
type WorkScheduleResponse struct {
	ID             string  `json:"id"`
	ProfessionalID string  `json:"professional_id"`
	DayOfWeek      int     `json:"day_of_week"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	LunchStartTime *string `json:"lunch_start_time,omitempty"`
	LunchEndTime   *string `json:"lunch_end_time,omitempty"`
}
