package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/service"
	"salon-agenda/pkg/response"
)

// ServiceHandler serves the catalog endpoints.
type ServiceHandler struct {
	catalogSvc service.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(catalogSvc service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogSvc: catalogSvc}
}

// Create adds a catalog entry.
// POST /api/v1/services
func (h *ServiceHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "invalid request body")
		return
	}

	svc, err := h.catalogSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, svc)
}

// List lists catalog entries. Admins may pass ?include_inactive=true.
// GET /api/v1/services
func (h *ServiceHandler) List(c *gin.Context) {
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

	svcs, err := h.catalogSvc.List(c.Request.Context(), includeInactive)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": svcs})
}

// Get returns one catalog entry.
// GET /api/v1/services/:id
func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.catalogSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, svc)
}

// Update patches a catalog entry.
// PUT /api/v1/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13001, "invalid request body")
		return
	}

	svc, err := h.catalogSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, svc)
}

// Delete soft-deletes a catalog entry.
// DELETE /api/v1/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.catalogSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListProfessionals lists who performs a service.
// GET /api/v1/services/:id/professionals
func (h *ServiceHandler) ListProfessionals(c *gin.Context) {
	profs, err := h.catalogSvc.ListProfessionals(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": profs})
}

func (h *ServiceHandler) handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrServiceNotFound) {
		response.NotFound(c, 13002, "service not found")
		return
	}
	response.InternalError(c)
}
