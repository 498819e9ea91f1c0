package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/response"
	"github.com/sangkips/snacksbunk-pos/pkg/pagination"
)

// BillHandler handles cart, billing and bill history HTTP requests
type BillHandler struct {
	billingService  *service.BillingService
	menuService     *service.MenuService
	settingsService *service.SettingsService
	reportService   *service.ReportService
	documentService *service.DocumentService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(
	billingService *service.BillingService,
	menuService *service.MenuService,
	settingsService *service.SettingsService,
	reportService *service.ReportService,
	documentService *service.DocumentService,
) *BillHandler {
	return &BillHandler{
		billingService:  billingService,
		menuService:     menuService,
		settingsService: settingsService,
		reportService:   reportService,
		documentService: documentService,
	}
}

// PreviewCart prices a cart with the current settings without storing it
func (h *BillHandler) PreviewCart(c *gin.Context) {
	var req request.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cash, err := request.ParseCash(req.CashReceived)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	cart, err := h.menuService.ResolveCart(ctx, req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	preview, err := h.billingService.PreviewCart(ctx, cart, cash)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart priced successfully", preview)
}

// Create generates and stores a bill from the cart
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	cash, err := request.ParseCash(req.CashReceived)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	cart, err := h.menuService.ResolveCart(ctx, req.Items)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.billingService.GenerateBill(ctx, &service.GenerateBillInput{
		Cart:          cart,
		PaymentMethod: req.Method(),
		CashReceived:  cash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Bill generated successfully", result)
}

// List returns the bill history, most recent first
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	bills, err := h.billingService.ListBills(c.Request.Context(), service.DateRange{
		Start:    filter.StartDate,
		End:      filter.EndDate,
		Location: h.reportService.Location(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, "Bills retrieved successfully", pagination.Paginate(bills, &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}))
}

// Export downloads the filtered bill history as CSV
func (h *BillHandler) Export(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	export, err := h.reportService.ExportBills(c.Request.Context(), filter.StartDate, filter.EndDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, export.FileName, export.ContentType, []byte(export.Content))
}

// Get returns one bill
func (h *BillHandler) Get(c *gin.Context) {
	bill, err := h.billingService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill retrieved successfully", bill)
}

// Patch applies a partial update to a bill
func (h *BillHandler) Patch(c *gin.Context) {
	var patch entity.BillPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.PatchBill(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill updated successfully", bill)
}

func (h *BillHandler) billWithSettings(c *gin.Context) (*entity.Bill, entity.Settings, bool) {
	ctx := c.Request.Context()
	bill, err := h.billingService.GetBill(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return nil, entity.Settings{}, false
	}
	settings, err := h.settingsService.GetSettings(ctx)
	if err != nil {
		response.Error(c, err)
		return nil, entity.Settings{}, false
	}
	return bill, settings, true
}

// PrintHTML renders the printable bill page
func (h *BillHandler) PrintHTML(c *gin.Context) {
	bill, settings, ok := h.billWithSettings(c)
	if !ok {
		return
	}

	html, err := h.documentService.BillHTML(bill, settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDF renders the printable bill page as a PDF download
func (h *BillHandler) PDF(c *gin.Context) {
	bill, settings, ok := h.billWithSettings(c)
	if !ok {
		return
	}

	pdf, err := h.documentService.BillPDF(c.Request.Context(), bill, settings)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, billFileName(bill), "application/pdf", pdf)
}

func billFileName(bill *entity.Bill) string {
	return fmt.Sprintf("bill-%d.pdf", bill.BillNumber)
}
