package model

// Service is a bookable catalog entry - table services.
// Duration (minutes) is what the availability calculator consumes.
type Service struct {
	ServiceID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"service_id"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description *string `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	Duration    int     `gorm:"not null"                                       json:"duration"` // minutes
	Price       float64 `gorm:"type:numeric(10,2);not null"                    json:"price"`
	Active      bool    `gorm:"not null;default:true"                          json:"active"`
	VersionedModel
}

// TableName sets the table name.
func (Service) TableName() string { return "services" }
