package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	purchasingapp "github.com/pobuilder/backend/internal/application/purchasing"
	"github.com/pobuilder/backend/internal/infrastructure/session"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingRouter() *gin.Engine {
	svc := purchasingapp.NewEditorService(session.NewInMemorySessionStore())
	h := NewPricingHandler(svc)

	r := gin.New()
	r.POST("/pricing/quote", h.Quote)
	return r
}

func postQuote(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pricing/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type quoteBody struct {
	Currency   CurrencyResponse              `json:"currency"`
	Subtotal   any                           `json:"subtotal"`
	VATAmount  any                           `json:"vat_amount"`
	GrandTotal any                           `json:"grand_total"`
	Formatted  purchasingapp.FormattedTotals `json:"formatted"`
}

func decodeQuote(t *testing.T, w *httptest.ResponseRecorder) quoteBody {
	t.Helper()
	var resp struct {
		Success bool      `json:"success"`
		Data    quoteBody `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestPricingHandler_Quote(t *testing.T) {
	r := newPricingRouter()

	t.Run("defaults to USD", func(t *testing.T) {
		w := postQuote(r, `{"vat_rate":10,"other_costs":5,"items":[{"qty":2,"unit_price":450},{"qty":1,"unit_price":1234.5}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		q := decodeQuote(t, w)
		assert.Equal(t, "USD", q.Currency.Code)
		assert.Equal(t, 2134.5, q.Subtotal)
		assert.InDelta(t, 213.45, q.VATAmount, 1e-9)
		assert.InDelta(t, 2352.95, q.GrandTotal, 1e-9)
		assert.Equal(t, "$ 2,134.50", q.Formatted.Subtotal)
		assert.Equal(t, "10%", q.Formatted.VATLabel)
		assert.Equal(t, "$ 5.00", q.Formatted.OtherCosts)
	})

	t.Run("currency is case insensitive", func(t *testing.T) {
		w := postQuote(r, `{"currency":"krw","vat_rate":0,"items":[{"qty":3,"unit_price":1000}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		q := decodeQuote(t, w)
		assert.Equal(t, "KRW", q.Currency.Code)
		assert.Equal(t, 0, q.Currency.FractionDigits)
		assert.Equal(t, float64(3000), q.GrandTotal)
	})

	t.Run("numeric strings are read leniently", func(t *testing.T) {
		w := postQuote(r, `{"vat_rate":"10%","items":[{"qty":"2 pcs","unit_price":"450"}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		q := decodeQuote(t, w)
		assert.Equal(t, float64(900), q.Subtotal)
		assert.InDelta(t, 90, q.VATAmount, 1e-9)
	})

	t.Run("NaN propagates to totals", func(t *testing.T) {
		w := postQuote(r, `{"vat_rate":10,"items":[{"qty":"abc","unit_price":10}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		q := decodeQuote(t, w)
		assert.Equal(t, "NaN", q.Subtotal)
		assert.Equal(t, "NaN", q.GrandTotal)
	})

	t.Run("no items", func(t *testing.T) {
		w := postQuote(r, `{"vat_rate":10,"other_costs":25}`)
		require.Equal(t, http.StatusOK, w.Code)

		q := decodeQuote(t, w)
		assert.Equal(t, float64(0), q.Subtotal)
		assert.Equal(t, float64(25), q.GrandTotal)
	})

	t.Run("unsupported currency", func(t *testing.T) {
		w := postQuote(r, `{"currency":"GBP","items":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidCurrency, resp.Error.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := postQuote(r, `{"items":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidJSON, decodeResponse(t, w).Error.Code)
	})
}
