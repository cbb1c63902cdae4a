package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/service"
	"salon-agenda/pkg/response"
)

// ProfessionalHandler serves staff management, availability lookups and the
// calendar feed.
type ProfessionalHandler struct {
	profSvc         service.ProfessionalService
	availabilitySvc service.AvailabilityService
	calendarSvc     service.CalendarService
	scheduleSvc     service.WorkScheduleService
}

// NewProfessionalHandler creates a ProfessionalHandler.
func NewProfessionalHandler(
	profSvc service.ProfessionalService,
	availabilitySvc service.AvailabilityService,
	calendarSvc service.CalendarService,
	scheduleSvc service.WorkScheduleService,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		profSvc:         profSvc,
		availabilitySvc: availabilitySvc,
		calendarSvc:     calendarSvc,
		scheduleSvc:     scheduleSvc,
	}
}

// Create registers a staff member.
// POST /api/v1/professionals
func (h *ProfessionalHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	prof, err := h.profSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, prof)
}

// List lists staff. Admins may pass ?include_inactive=true.
// GET /api/v1/professionals
func (h *ProfessionalHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	if includeInactive {
		role, ok := MustGetRole(c)
		if !ok {
			return
		}
		if role != "admin" {
			includeInactive = false
		}
	}

	profs, err := h.profSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": profs})
}

// Get returns one staff member.
// GET /api/v1/professionals/:id
func (h *ProfessionalHandler) Get(c *gin.Context) {
	prof, err := h.profSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}
	response.OK(c, prof)
}

// Update patches a staff member.
// PUT /api/v1/professionals/:id
func (h *ProfessionalHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	prof, err := h.profSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}
	response.OK(c, prof)
}

// Delete soft-deletes a staff member.
// DELETE /api/v1/professionals/:id
func (h *ProfessionalHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.profSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleProfessionalError(c, err)
		return
	}
	response.OK(c, nil)
}

// LinkService attaches a catalog service.
// POST /api/v1/professionals/:id/services
func (h *ProfessionalHandler) LinkService(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.LinkServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "invalid request body")
		return
	}

	err := h.profSvc.LinkService(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfessionalNotFound):
			response.NotFound(c, 12002, "professional not found")
		case errors.Is(err, service.ErrServiceNotFound):
			response.NotFound(c, 13002, "service not found")
		case errors.Is(err, service.ErrServiceAlreadyLinked):
			response.Conflict(c, 12003, "service is already linked")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, nil)
}

// UnlinkService detaches a catalog service.
// DELETE /api/v1/professionals/:id/services/:service_id
func (h *ProfessionalHandler) UnlinkService(c *gin.Context) {
	err := h.profSvc.UnlinkService(c.Request.Context(), c.Param("id"), c.Param("service_id"))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			response.NotFound(c, 12004, "service is not linked to this professional")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListServices lists the services a professional offers.
// GET /api/v1/professionals/:id/services
func (h *ProfessionalHandler) ListServices(c *gin.Context) {
	svcs, err := h.profSvc.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}
	response.OK(c, gin.H{"list": svcs})
}

// ListWorkSchedules lists a professional's weekly windows.
// GET /api/v1/professionals/:id/work-schedules
func (h *ProfessionalHandler) ListWorkSchedules(c *gin.Context) {
	rows, err := h.scheduleSvc.ListByProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}
	response.OK(c, gin.H{"list": rows})
}

// Availability returns the open slots for a service on a date.
// GET /api/v1/professionals/:id/availability?service_id=&date=
func (h *ProfessionalHandler) Availability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 15001, "service_id and date are required")
		return
	}

	resp, err := h.availabilitySvc.GetAvailableSlots(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfessionalNotFound):
			response.NotFound(c, 12002, "professional not found")
		case errors.Is(err, service.ErrServiceNotFound):
			response.NotFound(c, 13002, "service not found")
		case errors.Is(err, service.ErrProfessionalInactive),
			errors.Is(err, service.ErrServiceInactive),
			errors.Is(err, service.ErrServiceNotOffered),
			errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 15002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}

// CalendarFeed serves the professional's agenda as an iCalendar file.
// GET /api/v1/professionals/:id/calendar.ics
func (h *ProfessionalHandler) CalendarFeed(c *gin.Context) {
	feed, err := h.calendarSvc.ProfessionalFeed(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="agenda.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}

func (h *ProfessionalHandler) handleProfessionalError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfessionalNotFound) {
		response.NotFound(c, 12002, "professional not found")
		return
	}
	response.InternalError(c)
}
