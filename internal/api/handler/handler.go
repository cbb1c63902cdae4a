package handler

import "salon-agenda/internal/service"

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Professional *ProfessionalHandler
	Service      *ServiceHandler
	WorkSchedule *WorkScheduleHandler
	Appointment  *AppointmentHandler
	Transaction  *TransactionHandler
	Export       *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Professional: NewProfessionalHandler(svc.Professional, svc.Availability, svc.Calendar, svc.WorkSchedule),
		Service:      NewServiceHandler(svc.Catalog),
		WorkSchedule: NewWorkScheduleHandler(svc.WorkSchedule),
		Appointment:  NewAppointmentHandler(svc.Appointment),
		Transaction:  NewTransactionHandler(svc.Transaction),
		Export:       NewExportHandler(svc.Export),
	}
}
