package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
)

// CurrencyLister is the part of the editor service the currency handler needs
type CurrencyLister interface {
	Currencies() []valueobject.Currency
}

// CurrencyHandler serves the currency catalog
type CurrencyHandler struct {
	BaseHandler
	catalog CurrencyLister
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(catalog CurrencyLister) *CurrencyHandler {
	return &CurrencyHandler{catalog: catalog}
}

// CurrencyResponse is a catalog entry
// @Description Supported currency
type CurrencyResponse struct {
	Code           string `json:"code" example:"USD"`
	Symbol         string `json:"symbol" example:"$"`
	Locale         string `json:"locale" example:"en-US"`
	FractionDigits int    `json:"fraction_digits" example:"2"`
}

func toCurrencyResponse(c valueobject.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:           string(c.Code),
		Symbol:         c.Symbol,
		Locale:         c.Locale,
		FractionDigits: c.Code.FractionDigits(),
	}
}

// List godoc
// @ID           listCurrencies
// @Summary      List supported currencies
// @Description  Returns the closed currency catalog in display order
// @Tags         currencies
// @Produce      json
// @Success      200 {object} APIResponse[[]CurrencyResponse]
// @Router       /currencies [get]
func (h *CurrencyHandler) List(c *gin.Context) {
	currencies := h.catalog.Currencies()
	resp := make([]CurrencyResponse, 0, len(currencies))
	for _, cur := range currencies {
		resp = append(resp, toCurrencyResponse(cur))
	}
	h.Success(c, resp)
}
