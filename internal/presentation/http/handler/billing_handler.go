package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/request"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/response"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/pagination"
)

// BillingHandler handles billing history and receipt HTTP requests
type BillingHandler struct {
	checkoutService *service.CheckoutService
	receiptService  *service.ReceiptService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(checkoutService *service.CheckoutService, receiptService *service.ReceiptService) *BillingHandler {
	return &BillingHandler{
		checkoutService: checkoutService,
		receiptService:  receiptService,
	}
}

// List returns the paginated checkout history
// @Summary List billings
// @Tags billings
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Bill number or guest name"
// @Param room_id query string false "Room filter"
// @Param start_date query string false "Checkout date lower bound (YYYY-MM-DD)"
// @Param end_date query string false "Checkout date upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /billings [get]
func (h *BillingHandler) List(c *gin.Context) {
	var p pagination.PaginationParams
	if err := c.ShouldBindQuery(&p); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	p.Validate()

	params := &domainRepo.BillingFilterParams{
		Pagination: &p,
		Search:     c.Query("search"),
	}
	if s := c.Query("room_id"); s != "" {
		roomID, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid room ID")
			return
		}
		params.RoomID = &roomID
	}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid start date")
			return
		}
		params.StartDate = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.BadRequest(c, "Invalid end date")
			return
		}
		end := t.Add(24*time.Hour - time.Second)
		params.EndDate = &end
	}

	billings, total, err := h.checkoutService.ListBillings(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(billings, pagination.NewPagination(p.Page, p.PerPage, total))
	response.SuccessWithPagination(c, 200, "Billings retrieved", result)
}

// Get returns a billing record by ID
// @Summary Get billing
// @Tags billings
// @Produce json
// @Param id path string true "Billing ID"
// @Success 200 {object} response.APIResponse
// @Router /billings/{id} [get]
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	billing, err := h.checkoutService.GetBilling(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Billing retrieved", billing)
}

// Receipt returns the receipt for a billing record
// @Summary Get receipt
// @Tags billings
// @Produce json
// @Param id path string true "Billing ID"
// @Success 200 {object} response.APIResponse
// @Router /billings/{id}/receipt [get]
func (h *BillingHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved", receipt)
}

// PrintReceipt sends the receipt to the thermal printer
// @Summary Print receipt
// @Tags billings
// @Produce json
// @Param id path string true "Billing ID"
// @Success 200 {object} response.APIResponse
// @Router /billings/{id}/receipt/print [post]
func (h *BillingHandler) PrintReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	receipt, err := h.receiptService.PrintReceipt(c.Request.Context(), id)
	if err != nil {
		// receipt may still be present so the screen can show it
		if receipt != nil {
			response.OK(c, "Printer unavailable, receipt returned", receipt)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt printed", receipt)
}

// ReceiptPDF streams the receipt as a PDF download
// @Summary Download receipt PDF
// @Tags billings
// @Produce application/pdf
// @Param id path string true "Billing ID"
// @Success 200 {file} binary
// @Router /billings/{id}/receipt/pdf [get]
func (h *BillingHandler) ReceiptPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	data, filename, err := h.receiptService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/pdf", data)
}

// EmailReceipt sends the receipt PDF to the given address
// @Summary Email receipt
// @Tags billings
// @Accept json
// @Produce json
// @Param id path string true "Billing ID"
// @Param request body request.EmailReceiptRequest true "Recipient"
// @Success 200 {object} response.APIResponse
// @Router /billings/{id}/receipt/email [post]
func (h *BillingHandler) EmailReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid billing ID")
		return
	}

	var req request.EmailReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.EmailReceipt(c.Request.Context(), id, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt emailed", receipt)
}

// PrinterStatus reports printer configuration and connectivity
// @Summary Printer status
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *BillingHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", h.receiptService.GetPrinterStatus())
}

// TestPrint sends a sample receipt to the printer
// @Summary Test print
// @Tags printer
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/test [post]
func (h *BillingHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page printed", receipt)
}
