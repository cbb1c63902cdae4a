package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/service"
	"salon-agenda/pkg/response"
)

// TransactionHandler serves the financial record endpoints.
type TransactionHandler struct {
	trSvc service.TransactionService
}

// NewTransactionHandler creates a TransactionHandler.
func NewTransactionHandler(trSvc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{trSvc: trSvc}
}

// Create records an income or expense.
// POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "invalid request body")
		return
	}

	tr, err := h.trSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.Created(c, tr)
}

// List lists financial records with period filters.
// GET /api/v1/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var req dto.TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 16001, "invalid query parameters")
		return
	}

	trs, total, err := h.trSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.OKPage(c, trs, total, req.GetPage(), req.GetPageSize())
}

// Get returns one financial record.
// GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	tr, err := h.trSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.OK(c, tr)
}

// Update patches a financial record.
// PUT /api/v1/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 16001, "invalid request body")
		return
	}

	tr, err := h.trSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.OK(c, tr)
}

// Delete removes a financial record.
// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.trSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.OK(c, nil)
}

// Summary aggregates income and expense over a period.
// GET /api/v1/transactions/summary
func (h *TransactionHandler) Summary(c *gin.Context) {
	var req dto.TransactionSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 16001, "invalid query parameters")
		return
	}

	summary, err := h.trSvc.Summarize(c.Request.Context(), &req)
	if err != nil {
		h.handleTransactionError(c, err)
		return
	}
	response.OK(c, summary)
}

func (h *TransactionHandler) handleTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		response.NotFound(c, 16002, "transaction not found")
	case errors.Is(err, service.ErrAppointmentNotFound):
		response.NotFound(c, 15003, "appointment not found")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 16003, err.Error())
	default:
		response.InternalError(c)
	}
}
