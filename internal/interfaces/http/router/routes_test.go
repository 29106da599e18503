package router

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	purchasingapp "github.com/pobuilder/backend/internal/application/purchasing"
	"github.com/pobuilder/backend/internal/infrastructure/session"
	"github.com/pobuilder/backend/internal/interfaces/http/handler"
	"github.com/pobuilder/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T, orderMiddleware ...gin.HandlerFunc) (*gin.Engine, *Router) {
	t.Helper()
	middleware.SetupValidator()

	store := session.NewInMemorySessionStore()
	svc := purchasingapp.NewEditorService(store)

	engine := gin.New()
	r := NewRouter(engine)
	r.Register(NewAPIGroups(Handlers{
		Orders:     handler.NewPurchaseOrderHandler(svc),
		Pricing:    handler.NewPricingHandler(svc),
		Currencies: handler.NewCurrencyHandler(svc),
		System:     handler.NewSystemHandler("po-builder", "test", store),
	}, orderMiddleware...)...)
	r.Setup()
	return engine, r
}

func TestNewAPIGroups_Routes(t *testing.T) {
	_, r := newAPI(t)

	var got []string
	for _, route := range r.Routes() {
		got = append(got, route.Method+" "+route.Path)
	}
	assert.Equal(t, []string{
		"GET /currencies",
		"POST /pricing/quote",
		"POST /orders",
		"GET /orders/:session_id",
		"PATCH /orders/:session_id",
		"DELETE /orders/:session_id",
		"POST /orders/:session_id/reset",
		"POST /orders/:session_id/items",
		"PATCH /orders/:session_id/items/:item_id",
		"DELETE /orders/:session_id/items/:item_id",
		"GET /system/info",
		"GET /system/ping",
	}, got)
}

func TestNewAPIGroups_Serves(t *testing.T) {
	engine, _ := newAPI(t)

	w := serve(engine, http.MethodGet, "/api/v1/currencies")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodPost, "/api/v1/orders")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			SessionID string `json:"session_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.SessionID)

	w = serve(engine, http.MethodGet, "/api/v1/orders/"+created.Data.SessionID)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/api/v1/system/ping")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewAPIGroups_OrderMiddleware(t *testing.T) {
	engine, _ := newAPI(t, func(c *gin.Context) {
		c.Header("X-Order-Scope", "yes")
		c.Next()
	})

	w := serve(engine, http.MethodPost, "/api/v1/orders")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "yes", w.Header().Get("X-Order-Scope"))

	w = serve(engine, http.MethodGet, "/api/v1/currencies")
	assert.Empty(t, w.Header().Get("X-Order-Scope"))
}
