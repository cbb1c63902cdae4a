package model

import "time"

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a financial record, optionally tied to an appointment -
// table transactions.
type Transaction struct {
	TransactionID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"transaction_id"`
	AppointmentID *string   `gorm:"type:uuid"                                      json:"appointment_id,omitempty"`
	Type          string    `gorm:"type:varchar(10);not null"                      json:"type"` // income | expense
	Amount        float64   `gorm:"type:numeric(10,2);not null"                    json:"amount"`
	Description   string    `gorm:"type:varchar(500);not null"                     json:"description"`
	Date          time.Time `gorm:"type:date;not null"                             json:"date"`
	BaseModel

	Appointment *Appointment `gorm:"foreignKey:AppointmentID;references:AppointmentID" json:"appointment,omitempty"`
}

// TableName sets the table name.
func (Transaction) TableName() string { return "transactions" }
