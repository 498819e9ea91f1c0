package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/response"
)

// CashRegisterHandler serves the date-wise cash and UPI totals
type CashRegisterHandler struct {
	reportService *service.ReportService
}

// NewCashRegisterHandler creates a new cash register handler
func NewCashRegisterHandler(reportService *service.ReportService) *CashRegisterHandler {
	return &CashRegisterHandler{reportService: reportService}
}

// Get returns every day's totals plus the ?date= card when requested
func (h *CashRegisterHandler) Get(c *gin.Context) {
	report, err := h.reportService.CashRegister(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash register retrieved successfully", report)
}

// Export downloads the date-wise totals as CSV
func (h *CashRegisterHandler) Export(c *gin.Context) {
	export, err := h.reportService.ExportCashRegister(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, export.FileName, export.ContentType, []byte(export.Content))
}
