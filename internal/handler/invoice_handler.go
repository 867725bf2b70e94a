package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"billkit/internal/billing"
	"billkit/internal/domain"
	"billkit/internal/port"
	"billkit/internal/service"
)

// InvoiceHandler handles invoice computation and lifecycle endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Compute handles POST /api/v1/invoices/compute
// @Summary Compute invoice totals
// @Description Compute subtotal, discount, GST split, TDS/TCS, total and amount in words without saving anything
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body ComputeRequest true "Line items and adjustments"
// @Success 200 {object} Response{data=domain.InvoiceTotals} "Computed totals"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 422 {object} ErrorResponseBody "Place of supply could not be resolved"
// @Router /invoices/compute [post]
func (h *InvoiceHandler) Compute(c *gin.Context) {
	var input service.ComputeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	totals, err := h.invoiceService.Compute(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, totals)
}

// AmountInWords handles GET /api/v1/amount-in-words
// @Summary Amount in words
// @Description Render an amount in Indian English words with lakh and crore grouping
// @Tags invoices
// @Produce json
// @Param amount query string true "Amount, e.g. 1180.50"
// @Success 200 {object} Response{data=AmountInWordsResponse} "Amount in words"
// @Failure 400 {object} ErrorResponseBody "Invalid amount"
// @Router /amount-in-words [get]
func (h *InvoiceHandler) AmountInWords(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("amount"))
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_AMOUNT", "amount must be a decimal number")
		return
	}

	RespondOK(c, AmountInWordsResponse{
		Amount: billing.RoundMoney(amount).StringFixed(2),
		Words:  billing.AmountToWords(amount),
	})
}

// Create handles POST /api/v1/invoices
// @Summary Create an invoice
// @Description Compute totals and store a new invoice in draft, or sent when send_immediately is set
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} Response{data=domain.Invoice} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Invoice number already exists"
// @Failure 422 {object} ErrorResponseBody "Place of supply could not be resolved"
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, inv)
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List invoices, newest issue date first
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status"
// @Param profile_id query string false "Filter by recurring profile ID"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Invoice,meta=PagMeta} "List of invoices"
// @Failure 400 {object} ErrorResponseBody "Invalid filter"
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	filter, ok := invoiceFilter(c)
	if !ok {
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

func invoiceFilter(c *gin.Context) (port.InvoiceFilter, bool) {
	filter := port.InvoiceFilter{Status: domain.InvoiceStatus(c.Query("status"))}
	if raw := c.Query("profile_id"); raw != "" {
		profileID, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
			return filter, false
		}
		filter.ProfileID = &profileID
	}
	return filter, true
}

// GetByID handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}

// TransitionStatus handles POST /api/v1/invoices/:id/status
// @Summary Change invoice status
// @Description Move an invoice through its lifecycle. Requesting the current status is a no-op.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID (UUID)"
// @Param request body TransitionRequest true "Requested status"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice updated"
// @Failure 400 {object} ErrorResponseBody "Unknown status"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Failure 409 {object} ErrorResponseBody "Version conflict"
// @Failure 422 {object} ErrorResponseBody "Transition not allowed"
// @Router /invoices/{id}/status [post]
func (h *InvoiceHandler) TransitionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	var input service.TransitionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.TransitionStatus(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, inv)
}
