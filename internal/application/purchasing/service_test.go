package purchasing

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/pobuilder/backend/internal/domain/purchasing"
	"github.com/pobuilder/backend/internal/domain/shared"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
	"github.com/pobuilder/backend/internal/infrastructure/session"
	"github.com/pobuilder/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, order purchasing.PurchaseOrder) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) Get(ctx context.Context, sessionID string) (purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, sessionID string, fn purchasing.TransitionFunc) (purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, sessionID, fn)
	return args.Get(0).(purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) *EditorService {
	t.Helper()
	svc := NewEditorService(session.NewInMemorySessionStore())
	svc.SetClock(func() time.Time { return fixedNow })
	return svc
}

func startSession(t *testing.T, svc *EditorService) *OrderView {
	t.Helper()
	view, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, view.SessionID)
	return view
}

func TestEditorService_StartSession(t *testing.T) {
	svc := newTestService(t)
	view := startSession(t, svc)

	assert.Equal(t, "PO-2024-1001", view.Order.PONumber)
	assert.Equal(t, "2024-03-15", view.Order.Date)
	assert.Equal(t, valueobject.USD, view.Order.Currency)
	assert.Len(t, view.Order.Items, 3)

	assert.Equal(t, 2880.0, view.Totals.Subtotal)
	assert.InDelta(t, 288.0, view.Totals.VATAmount, 1e-9)
	assert.InDelta(t, 3168.0, view.Totals.GrandTotal, 1e-9)

	doc := view.Document
	assert.Equal(t, DocumentTitle, doc.Title)
	assert.Equal(t, "USD ($) Currency", doc.CurrencyBadge)
	assert.False(t, doc.ShowDeliveryDate)
	assert.Equal(t, "$ 2,880.00", doc.Totals.Subtotal)
	assert.Equal(t, "10%", doc.Totals.VATLabel)
	assert.Equal(t, "$ 288.00", doc.Totals.VATAmount)
	assert.Equal(t, "$ 0.00", doc.Totals.OtherCosts)
	assert.Equal(t, "$ 3,168.00", doc.Totals.GrandTotal)
	assert.Equal(t, []string{"Approver", "Purchasing", "Inspection", "Stamp"}, doc.ApprovalRoles)

	require.Len(t, doc.Rows, 3)
	assert.Equal(t, 1, doc.Rows[0].No)
	assert.Equal(t, view.Order.Items[0].ID, doc.Rows[0].ItemID)
	assert.Equal(t, "5", doc.Rows[0].Qty)
	assert.Equal(t, "450.00", doc.Rows[0].UnitPrice)
	assert.Equal(t, "$ 2,250.00", doc.Rows[0].Amount)
	assert.Empty(t, doc.EmptyItemsNotice)
}

func TestEditorService_StartSession_Limit(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.MaxSessions = 1
	svc := NewEditorService(session.NewInMemorySessionStore(session.WithConfig(cfg)))

	_, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	_, err = svc.StartSession(context.Background())
	assert.ErrorIs(t, err, shared.ErrSessionLimit)
}

func TestEditorService_GetSession(t *testing.T) {
	svc := newTestService(t)
	started := startSession(t, svc)

	t.Run("returns the current snapshot", func(t *testing.T) {
		view, err := svc.GetSession(context.Background(), started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, started.Order, view.Order)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.GetSession(context.Background(), "missing")
		assert.ErrorIs(t, err, shared.ErrSessionNotFound)
	})
}

func TestEditorService_UpdateField(t *testing.T) {
	ctx := context.Background()

	t.Run("text field", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		view, err := svc.UpdateField(ctx, sid, EditInput{Field: "supplier", Text: "ACME"})
		require.NoError(t, err)
		assert.Equal(t, "ACME", view.Order.Supplier)
		assert.Equal(t, "ACME", view.Document.Supplier)
		assert.False(t, view.Document.SupplierIsEmpty)
	})

	t.Run("delivery date shows on the document", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		view, err := svc.UpdateField(ctx, sid, EditInput{Field: "delivery_date", Text: "2024-04-01"})
		require.NoError(t, err)
		assert.True(t, view.Document.ShowDeliveryDate)
		assert.Equal(t, "2024-04-01", view.Document.DeliveryDate)
	})

	t.Run("vat rate recomputes totals", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		view, err := svc.UpdateField(ctx, sid, EditInput{Field: "vat_rate", Number: 0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, view.Totals.VATAmount)
		assert.Equal(t, 2880.0, view.Totals.GrandTotal)
		assert.Equal(t, "0%", view.Document.Totals.VATLabel)
	})

	t.Run("currency changes formatting only", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		view, err := svc.UpdateField(ctx, sid, EditInput{Field: "currency", Text: "krw"})
		require.NoError(t, err)
		assert.Equal(t, valueobject.KRW, view.Order.Currency)
		assert.Equal(t, 2880.0, view.Totals.Subtotal)
		assert.Equal(t, "KRW (₩) Currency", view.Document.CurrencyBadge)
		assert.Equal(t, "₩ 2,880", view.Document.Totals.Subtotal)
	})

	t.Run("unknown currency is rejected", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		_, err := svc.UpdateField(ctx, sid, EditInput{Field: "currency", Text: "GBP"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeInvalidCurrency, domainErr.Code)

		view, err := svc.GetSession(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, valueobject.USD, view.Order.Currency)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		_, err := svc.UpdateField(ctx, sid, EditInput{Field: "items"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeInvalidField, domainErr.Code)
	})

	t.Run("NaN propagates into totals", func(t *testing.T) {
		svc := newTestService(t)
		sid := startSession(t, svc).SessionID

		view, err := svc.UpdateField(ctx, sid, EditInput{Field: "other_costs", Number: math.NaN()})
		require.NoError(t, err)
		assert.True(t, math.IsNaN(view.Totals.GrandTotal))
		assert.Equal(t, "$ NaN", view.Document.Totals.GrandTotal)
		assert.Equal(t, 2880.0, view.Totals.Subtotal)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc := newTestService(t)
		_, err := svc.UpdateField(ctx, "missing", EditInput{Field: "buyer", Text: "x"})
		assert.ErrorIs(t, err, shared.ErrSessionNotFound)
	})
}

func TestEditorService_UpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("qty updates line and totals", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)
		id := started.Order.Items[1].ID

		view, err := svc.UpdateItem(ctx, started.SessionID, id, EditInput{Field: "qty", Number: 2})
		require.NoError(t, err)

		item, ok := view.Order.Item(id)
		require.True(t, ok)
		assert.Equal(t, 2.0, item.Qty)
		assert.Equal(t, 2250.0+51.0+120.0, view.Totals.Subtotal)
		assert.Equal(t, "$ 51.00", view.Document.Rows[1].Amount)
	})

	t.Run("unknown item leaves order unchanged", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		_, err := svc.UpdateItem(ctx, started.SessionID, "nope123", EditInput{Field: "name", Text: "x"})
		assert.ErrorIs(t, err, shared.ErrItemNotFound)

		view, err := svc.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, started.Order, view.Order)
	})

	t.Run("id is not editable", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		_, err := svc.UpdateItem(ctx, started.SessionID, started.Order.Items[0].ID, EditInput{Field: "id", Text: "x"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeInvalidField, domainErr.Code)
	})
}

func TestEditorService_AddItem(t *testing.T) {
	svc := newTestService(t)
	started := startSession(t, svc)

	view, item, err := svc.AddItem(context.Background(), started.SessionID)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Len(t, view.Order.Items, 4)
	assert.Equal(t, *item, view.Order.Items[3])
	assert.Len(t, item.ID, purchasing.IDLength)
	assert.Zero(t, item.Qty)
	assert.Zero(t, item.UnitPrice)
	assert.Equal(t, started.Totals, view.Totals)
	assert.Equal(t, 4, view.Document.Rows[3].No)

	for _, existing := range started.Order.Items {
		assert.NotEqual(t, existing.ID, item.ID)
	}
}

func TestEditorService_DeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an item without confirmation when others remain", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		view, err := svc.DeleteItem(ctx, started.SessionID, started.Order.Items[0].ID, false)
		require.NoError(t, err)
		assert.Len(t, view.Order.Items, 2)
		assert.Equal(t, started.Order.Items[1], view.Order.Items[0])
	})

	t.Run("last item needs confirmation", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)
		sid := started.SessionID

		for _, item := range started.Order.Items[:2] {
			_, err := svc.DeleteItem(ctx, sid, item.ID, false)
			require.NoError(t, err)
		}
		last := started.Order.Items[2].ID

		_, err := svc.DeleteItem(ctx, sid, last, false)
		require.ErrorIs(t, err, shared.ErrConfirmationRequired)
		assert.Equal(t, purchasing.PromptDeleteLastItem, err.Error())

		view, err := svc.GetSession(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, view.Order.Items, 1)

		view, err = svc.DeleteItem(ctx, sid, last, true)
		require.NoError(t, err)
		assert.Empty(t, view.Order.Items)
		assert.Equal(t, 0.0, view.Totals.GrandTotal)
		assert.Equal(t, PlaceholderNoItems, view.Document.EmptyItemsNotice)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		_, err := svc.DeleteItem(ctx, started.SessionID, "nope123", true)
		assert.ErrorIs(t, err, shared.ErrItemNotFound)
	})
}

func TestEditorService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("declined", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		_, err := svc.Reset(ctx, started.SessionID, false)
		require.ErrorIs(t, err, shared.ErrConfirmationRequired)
		assert.Equal(t, purchasing.PromptReset, err.Error())

		view, err := svc.GetSession(ctx, started.SessionID)
		require.NoError(t, err)
		assert.Equal(t, started.Order, view.Order)
	})

	t.Run("confirmed", func(t *testing.T) {
		svc := newTestService(t)
		started := startSession(t, svc)

		view, err := svc.Reset(ctx, started.SessionID, true)
		require.NoError(t, err)

		assert.Empty(t, view.Order.PONumber)
		assert.Empty(t, view.Order.Supplier)
		assert.Empty(t, view.Order.Buyer)
		assert.Empty(t, view.Order.Items)
		assert.Empty(t, view.Order.Terms)
		assert.Empty(t, view.Order.DeliveryDate)
		assert.Equal(t, started.Order.Date, view.Order.Date)
		assert.Equal(t, started.Order.Currency, view.Order.Currency)
		assert.Equal(t, started.Order.VATRate, view.Order.VATRate)

		doc := view.Document
		assert.Equal(t, PlaceholderPONumber, doc.PONumber)
		assert.Equal(t, PlaceholderSupplier, doc.Supplier)
		assert.True(t, doc.SupplierIsEmpty)
		assert.Equal(t, PlaceholderBuyer, doc.Buyer)
		assert.Equal(t, PlaceholderTerms, doc.Terms)
		assert.Equal(t, "$ 0.00", doc.Totals.GrandTotal)
	})
}

func TestEditorService_EndSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	started := startSession(t, svc)

	require.NoError(t, svc.EndSession(ctx, started.SessionID))

	_, err := svc.GetSession(ctx, started.SessionID)
	assert.ErrorIs(t, err, shared.ErrSessionNotFound)
	assert.ErrorIs(t, svc.EndSession(ctx, started.SessionID), shared.ErrSessionNotFound)
}

func TestEditorService_Quote(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("computes and formats totals", func(t *testing.T) {
		view, err := svc.Quote(ctx, QuoteRequest{
			Currency: "EUR",
			VATRate:  10,
			Lines:    []QuoteLine{{Qty: 2, UnitPrice: 100}, {Qty: 3, UnitPrice: 50}},
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.EUR, view.Currency.Code)
		assert.Equal(t, 350.0, view.Totals.Subtotal)
		assert.InDelta(t, 35.0, view.Totals.VATAmount, 1e-9)
		assert.InDelta(t, 385.0, view.Totals.GrandTotal, 1e-9)
		assert.Equal(t, "€ 385,00", view.Formatted.GrandTotal)
	})

	t.Run("defaults to USD", func(t *testing.T) {
		view, err := svc.Quote(ctx, QuoteRequest{})
		require.NoError(t, err)
		assert.Equal(t, valueobject.USD, view.Currency.Code)
		assert.Equal(t, "$ 0.00", view.Formatted.GrandTotal)
	})

	t.Run("unknown currency", func(t *testing.T) {
		_, err := svc.Quote(ctx, QuoteRequest{Currency: "XYZ"})
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeInvalidCurrency, domainErr.Code)
	})
}

func TestEditorService_Currencies(t *testing.T) {
	svc := newTestService(t)
	codes := make([]valueobject.CurrencyCode, 0, 5)
	for _, c := range svc.Currencies() {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []valueobject.CurrencyCode{valueobject.USD, valueobject.KRW, valueobject.EUR, valueobject.JPY, valueobject.CNY}, codes)
}

func TestEditorService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("store unavailable")

	t.Run("create failure", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("purchasing.PurchaseOrder")).Return("", boom)

		_, err := NewEditorService(repo).StartSession(ctx)
		assert.ErrorIs(t, err, boom)
		repo.AssertExpectations(t)
	})

	t.Run("update failure", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Update", mock.Anything, "s1", mock.Anything).Return(purchasing.PurchaseOrder{}, boom)

		_, err := NewEditorService(repo).Reset(ctx, "s1", true)
		assert.ErrorIs(t, err, boom)
		repo.AssertExpectations(t)
	})

	t.Run("delete failure", func(t *testing.T) {
		repo := new(MockSessionRepository)
		repo.On("Delete", mock.Anything, "s1").Return(boom)

		assert.ErrorIs(t, NewEditorService(repo).EndSession(ctx, "s1"), boom)
		repo.AssertExpectations(t)
	})
}

func TestEditorService_Metrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	em, err := telemetry.NewEditorMetrics(telemetry.EditorMetricsConfig{Meter: provider.Meter("test")})
	require.NoError(t, err)

	svc := newTestService(t)
	svc.SetEditorMetrics(em)

	started := startSession(t, svc)
	_, _, err = svc.AddItem(ctx, started.SessionID)
	require.NoError(t, err)
	_, err = svc.Reset(ctx, started.SessionID, false)
	require.Error(t, err)
	require.NoError(t, svc.EndSession(ctx, started.SessionID))
	svc.SessionExpired("other")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	sums := map[string]int64{}
	declined := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range data.DataPoints {
				sums[m.Name] += dp.Value
				if m.Name == "pob_confirmations_declined_total" {
					action, _ := dp.Attributes.Value(attribute.Key("action"))
					declined[action.AsString()] += dp.Value
				}
			}
		}
	}

	assert.Equal(t, int64(2), sums["pob_edit_events_total"])
	assert.Equal(t, map[string]int64{EventReset: 1}, declined)
	assert.Equal(t, int64(-1), sums["pob_sessions_active"])
}
