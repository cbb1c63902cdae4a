package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/scheduling"
	"salon-agenda/internal/service"
	pkgerrors "salon-agenda/pkg/errors"
	"salon-agenda/pkg/response"
)

// AppointmentHandler serves the booking endpoints.
type AppointmentHandler struct {
	apptSvc service.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(apptSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptSvc: apptSvc}
}

// Create books a slot for the caller.
// POST /api/v1/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "invalid request body")
		return
	}

	appt, err := h.apptSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.Created(c, appt)
}

// ListMine lists the caller's appointments.
// GET /api/v1/appointments/my
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	appts, err := h.apptSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": appts})
}

// List lists appointments with admin filters.
// GET /api/v1/appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	var req dto.AppointmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 15001, "invalid query parameters")
		return
	}

	appts, total, err := h.apptSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, appts, total, req.GetPage(), req.GetPageSize())
}

// Get returns one appointment; clients only see their own.
// GET /api/v1/appointments/:id
func (h *AppointmentHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	appt, err := h.apptSvc.GetByID(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, appt)
}

// UpdateStatus moves an appointment through its lifecycle.
// PUT /api/v1/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 15001, "invalid request body")
		return
	}

	appt, err := h.apptSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, appt)
}

// Cancel cancels an appointment; clients may only cancel their own.
// DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.apptSvc.Cancel(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		h.handleAppointmentError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *AppointmentHandler) handleAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		response.NotFound(c, 15003, "appointment not found")
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 12002, "professional not found")
	case errors.Is(err, service.ErrServiceNotFound):
		response.NotFound(c, 13002, "service not found")
	case errors.Is(err, pkgerrors.ErrSlotTaken):
		response.Conflict(c, 15004, "time slot is already booked")
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 15005, "appointment was modified concurrently, retry")
	case errors.Is(err, service.ErrNotAppointmentOwner):
		response.Forbidden(c, 15006, "appointment belongs to another user")
	case errors.Is(err, service.ErrOutsideWorkingHours),
		errors.Is(err, service.ErrBookingInPast),
		errors.Is(err, service.ErrBadStatusTransition),
		errors.Is(err, service.ErrProfessionalInactive),
		errors.Is(err, service.ErrServiceInactive),
		errors.Is(err, service.ErrServiceNotOffered),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, scheduling.ErrPastMidnight),
		errors.Is(err, scheduling.ErrBadClock):
		response.BadRequest(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}
