package model

// User is a client or admin account - table users.
type User struct {
	UserID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username       string  `gorm:"type:varchar(50);not null"                      json:"username"`
	Name           string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email          string  `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Phone          *string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	Address        *string `gorm:"type:varchar(255)"                              json:"address,omitempty"`
	Role           string  `gorm:"type:varchar(20);not null;default:'client'"     json:"role"` // client | admin
	Instagram      *string `gorm:"type:varchar(100)"                              json:"instagram,omitempty"`
	ProfilePicture *string `gorm:"type:varchar(500)"                              json:"profile_picture,omitempty"`
	VersionedModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
