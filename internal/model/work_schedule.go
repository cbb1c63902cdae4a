package model

// WorkSchedule is a professional's recurring weekly open window - table
// work_schedules. Times are wall-clock "HH:mm" strings; the optional lunch
// window is carved out of availability when both bounds are set.
type WorkSchedule struct {
	WorkScheduleID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"work_schedule_id"`
	ProfessionalID string  `gorm:"type:uuid;not null"                             json:"professional_id"`
	DayOfWeek      int     `gorm:"type:smallint;not null"                         json:"day_of_week"` // 0-6, Sunday-Saturday
	StartTime      string  `gorm:"type:time;not null"                             json:"start_time"`
	EndTime        string  `gorm:"type:time;not null"                             json:"end_time"`
	LunchStartTime *string `gorm:"type:time"                                      json:"lunch_start_time,omitempty"`
	LunchEndTime   *string `gorm:"type:time"                                      json:"lunch_end_time,omitempty"`
	VersionedModel

	Professional *Professional `gorm:"foreignKey:ProfessionalID;references:ProfessionalID" json:"professional,omitempty"`
}

// TableName sets the table name.
func (WorkSchedule) TableName() string { return "work_schedules" }

// HasLunchBreak reports whether both lunch bounds are set.
func (w *WorkSchedule) HasLunchBreak() bool {
	return w.LunchStartTime != nil && w.LunchEndTime != nil
}
