package model

// Professional is a staff member offering services - table professionals.
// Inactive professionals stay out of the public booking flow but keep
// their history.
type Professional struct {
	ProfessionalID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"professional_id"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone          string  `gorm:"type:varchar(30);not null"                      json:"phone"`
	Email          string  `gorm:"type:varchar(255);not null"                     json:"email"`
	CPF            string  `gorm:"type:varchar(14);not null;column:cpf"           json:"cpf"`
	Address        string  `gorm:"type:varchar(255);not null"                     json:"address"`
	ProfilePicture *string `gorm:"type:varchar(500)"                              json:"profile_picture,omitempty"`
	Active         bool    `gorm:"not null;default:true"                          json:"active"`
	VersionedModel
}

// TableName sets the table name.
func (Professional) TableName() string { return "professionals" }

// ProfessionalService links a professional to a service they perform,
// with the commission paid per execution - table professional_services.
type ProfessionalService struct {
	ProfessionalServiceID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"professional_service_id"`
	ProfessionalID        string  `gorm:"type:uuid;not null"                             json:"professional_id"`
	ServiceID             string  `gorm:"type:uuid;not null"                             json:"service_id"`
	Commission            float64 `gorm:"type:numeric(10,2);not null;default:0"          json:"commission"`
	BaseModel

	Professional *Professional `gorm:"foreignKey:ProfessionalID;references:ProfessionalID" json:"professional,omitempty"`
	Service      *Service      `gorm:"foreignKey:ServiceID;references:ServiceID"           json:"service,omitempty"`
}

// TableName sets the table name.
func (ProfessionalService) TableName() string { return "professional_services" }
