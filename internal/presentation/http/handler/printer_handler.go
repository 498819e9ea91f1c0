package handler

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.printerService.GetStatus())
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// The receipt is still useful when no printer is attached
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": receipt,
	})
}

// PrintReceipt prints one or more copies of a bill's thermal receipt.
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	var receipt *entity.Receipt
	for i := 0; i < req.CopyCount(); i++ {
		printed, err := h.printerService.PrintBillReceipt(c.Request.Context(), c.Param("id"))
		if err != nil {
			if printed != nil {
				response.OK(c, "Receipt generated but printing failed", gin.H{
					"receipt": printed,
					"warning": err.Error(),
				})
				return
			}
			response.Error(c, err)
			return
		}
		receipt = printed
	}

	log.Printf("[printer] %s printed %d receipt(s) for bill #%d", actor(c), req.CopyCount(), receipt.BillNo)
	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
		"copies":  req.CopyCount(),
	})
}
