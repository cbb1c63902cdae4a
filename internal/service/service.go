package service

import (
	"go.uber.org/zap"

	"salon-agenda/config"
	"salon-agenda/internal/repository"
	"salon-agenda/pkg/jwt"
	"salon-agenda/pkg/redis"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Auth         AuthService
	User         UserService
	Professional ProfessionalService
	Catalog      CatalogService
	WorkSchedule WorkScheduleService
	Availability AvailabilityService
	Appointment  AppointmentService
	Transaction  TransactionService
	Export       ExportService
	Calendar     CalendarService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Professional: NewProfessionalService(repo, logger),
		Catalog:      NewCatalogService(repo, logger),
		WorkSchedule: NewWorkScheduleService(repo, logger),
		Availability: NewAvailabilityService(cfg, repo, logger),
		Appointment:  NewAppointmentService(repo, logger),
		Transaction:  NewTransactionService(repo, logger),
		Export:       NewExportService(repo, logger),
		Calendar:     NewCalendarService(repo, logger),
	}
}
