package handler

import (
	"github.com/gin-gonic/gin"
	purchasingapp "github.com/pobuilder/backend/internal/application/purchasing"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
)

// PricingHandler computes totals for orders that are not held in a session
type PricingHandler struct {
	BaseHandler
	editorService *purchasingapp.EditorService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(editorService *purchasingapp.EditorService) *PricingHandler {
	return &PricingHandler{editorService: editorService}
}

// QuoteItemRequest is one priced line
// @Description Quote line
type QuoteItemRequest struct {
	Qty       dto.Number `json:"qty" swaggertype:"number" example:"2"`
	UnitPrice dto.Number `json:"unit_price" swaggertype:"number" example:"450"`
}

// QuoteRequest represents a stateless pricing request
// @Description Stateless quote. Currency defaults to USD.
type QuoteRequest struct {
	Currency   string             `json:"currency" binding:"omitempty,catalog_currency" example:"EUR"`
	VATRate    dto.Number         `json:"vat_rate" swaggertype:"number" example:"10"`
	OtherCosts dto.Number         `json:"other_costs" swaggertype:"number" example:"0"`
	Items      []QuoteItemRequest `json:"items" binding:"max=1000"`
}

// QuoteResponse represents computed totals and their printed forms
// @Description Quote result
type QuoteResponse struct {
	Currency   CurrencyResponse              `json:"currency"`
	Subtotal   dto.Number                    `json:"subtotal" swaggertype:"number" example:"900"`
	VATAmount  dto.Number                    `json:"vat_amount" swaggertype:"number" example:"90"`
	GrandTotal dto.Number                    `json:"grand_total" swaggertype:"number" example:"990"`
	Formatted  purchasingapp.FormattedTotals `json:"formatted"`
}

// Quote godoc
// @ID           quotePricing
// @Summary      Price a list of lines
// @Description  Computes subtotal, VAT and grand total without opening a session
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request body QuoteRequest true "Quote request"
// @Success      200 {object} APIResponse[QuoteResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	appReq := purchasingapp.QuoteRequest{
		Currency:   req.Currency,
		VATRate:    req.VATRate.Float64(),
		OtherCosts: req.OtherCosts.Float64(),
		Lines:      make([]purchasingapp.QuoteLine, len(req.Items)),
	}
	for i, item := range req.Items {
		appReq.Lines[i] = purchasingapp.QuoteLine{Qty: item.Qty.Float64(), UnitPrice: item.UnitPrice.Float64()}
	}

	view, err := h.editorService.Quote(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, QuoteResponse{
		Currency:   toCurrencyResponse(view.Currency),
		Subtotal:   dto.Number(view.Totals.Subtotal),
		VATAmount:  dto.Number(view.Totals.VATAmount),
		GrandTotal: dto.Number(view.Totals.GrandTotal),
		Formatted:  view.Formatted,
	})
}
