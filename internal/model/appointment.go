package model

import "time"

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// OccupyingStatuses are the statuses that keep a time slot blocked.
// Cancelled and no-show appointments release the slot for rebooking.
var OccupyingStatuses = []string{StatusScheduled, StatusCompleted}

// Appointment is a booked service execution - table appointments.
// Date is the calendar day (the DATE column scans as time.Time), times
// are "HH:mm" wall-clock strings; an appointment never spans midnight.
type Appointment struct {
	AppointmentID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"appointment_id"`
	UserID         string    `gorm:"type:uuid;not null"                             json:"user_id"`
	ProfessionalID string    `gorm:"type:uuid;not null"                             json:"professional_id"`
	ServiceID      string    `gorm:"type:uuid;not null"                             json:"service_id"`
	Date           time.Time `gorm:"type:date;not null"                             json:"date"`
	StartTime      string    `gorm:"type:time;not null"                             json:"start_time"`
	EndTime        string    `gorm:"type:time;not null"                             json:"end_time"`
	Status         string    `gorm:"type:varchar(20);not null;default:'scheduled'"  json:"status"`
	Notes          *string   `gorm:"type:varchar(1000)"                             json:"notes,omitempty"`
	VersionedModel

	User         *User         `gorm:"foreignKey:UserID;references:UserID"                 json:"user,omitempty"`
	Professional *Professional `gorm:"foreignKey:ProfessionalID;references:ProfessionalID" json:"professional,omitempty"`
	Service      *Service      `gorm:"foreignKey:ServiceID;references:ServiceID"           json:"service,omitempty"`
}

// TableName sets the table name.
func (Appointment) TableName() string { return "appointments" }

// Occupies reports whether this appointment blocks its time slot.
func (a *Appointment) Occupies() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}
