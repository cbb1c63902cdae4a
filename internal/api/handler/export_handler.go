package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/service"
	"salon-agenda/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the Excel report endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Appointments exports a professional's agenda from a date onward.
// GET /api/v1/export/appointments?professional_id=&from=
func (h *ExportHandler) Appointments(c *gin.Context) {
	professionalID := c.Query("professional_id")
	if professionalID == "" {
		response.BadRequest(c, 17001, "professional_id is required")
		return
	}
	from := c.Query("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}

	buf, filename, err := h.exportSvc.ExportAppointments(c.Request.Context(), professionalID, from)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Transactions exports financial records for a period.
// GET /api/v1/export/transactions?from=&to=
func (h *ExportHandler) Transactions(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.BadRequest(c, 17001, "from and to are required")
		return
	}

	buf, filename, err := h.exportSvc.ExportTransactions(c.Request.Context(), from, to)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 12002, "professional not found")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 17001, err.Error())
	case errors.Is(err, service.ErrExportNoRows):
		response.NotFound(c, 17002, "nothing to export for the requested period")
	default:
		response.InternalError(c)
	}
}
