package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User                UserRepository
	Professional        ProfessionalRepository
	Service             ServiceRepository
	ProfessionalService ProfessionalServiceRepository
	WorkSchedule        WorkScheduleRepository
	Appointment         AppointmentRepository
	Transaction         TransactionRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:                NewUserRepo(db),
		Professional:        NewProfessionalRepo(db),
		Service:             NewServiceRepo(db),
		ProfessionalService: NewProfessionalServiceRepo(db),
		WorkSchedule:        NewWorkScheduleRepo(db),
		Appointment:         NewAppointmentRepo(db),
		Transaction:         NewTransactionRepo(db),
	}
}
