package purchasing

import (
	"context"
	"errors"
	"time"

	"github.com/pobuilder/backend/internal/domain/purchasing"
	"github.com/pobuilder/backend/internal/domain/shared"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
	"github.com/pobuilder/backend/internal/infrastructure/logger"
	"github.com/pobuilder/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const spanService = "purchase_order"

// Edit events reported to metrics and logs
const (
	EventSessionStarted = "session_started"
	EventFieldUpdated   = "field_updated"
	EventItemUpdated    = "item_updated"
	EventItemAdded      = "item_added"
	EventItemDeleted    = "item_deleted"
	EventReset          = "reset"
)

// EditorService keeps one purchase order per editing session and applies
// edit events to it. Every operation answers with the snapshot it produced.
type EditorService struct {
	sessions      purchasing.SessionRepository
	editorMetrics *telemetry.EditorMetrics
	now           func() time.Time
}

// NewEditorService creates a new EditorService
func NewEditorService(sessions purchasing.SessionRepository) *EditorService {
	return &EditorService{
		sessions: sessions,
		now:      time.Now,
	}
}

// SetEditorMetrics sets the editor metrics recorder
func (s *EditorService) SetEditorMetrics(em *telemetry.EditorMetrics) {
	s.editorMetrics = em
}

// SetClock replaces the clock used to date new orders
func (s *EditorService) SetClock(now func() time.Time) {
	s.now = now
}

// SessionExpired is meant to be registered as the session store eviction hook
func (s *EditorService) SessionExpired(sessionID string) {
	ctx := logger.WithSessionID(context.Background(), sessionID)
	logger.L(ctx).Debug("Editing session expired")
	if s.editorMetrics != nil {
		s.editorMetrics.SessionEnded(ctx, "expired")
	}
}

// StartSession opens a session seeded with the default order dated today
func (s *EditorService) StartSession(ctx context.Context) (*OrderView, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, "start_session")
	defer span.End()

	order := purchasing.DefaultOrder(s.now())
	id, err := s.sessions.Create(ctx, order)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	ctx = logger.WithSessionID(ctx, id)

	if s.editorMetrics != nil {
		s.editorMetrics.SessionStarted(ctx)
	}
	s.recordEdit(ctx, EventSessionStarted, order)
	telemetry.SetOK(span)

	view := ToOrderView(id, order)
	return &view, nil
}

// GetSession returns the current snapshot of a session
func (s *EditorService) GetSession(ctx context.Context, sessionID string) (*OrderView, error) {
	order, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := ToOrderView(sessionID, order)
	return &view, nil
}

// UpdateField sets one header field of the order
func (s *EditorService) UpdateField(ctx context.Context, sessionID string, in EditInput) (*OrderView, error) {
	field, err := purchasing.ParseOrderField(in.Field)
	if err != nil {
		return nil, err
	}
	value, err := toValue(field.Kind(), in)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, sessionID, EventFieldUpdated, func(o purchasing.PurchaseOrder) (purchasing.PurchaseOrder, error) {
		return o.Apply(field, value)
	}, attribute.String("field", string(field)))
}

// UpdateItem sets one column of the line item with the given id
func (s *EditorService) UpdateItem(ctx context.Context, sessionID, itemID string, in EditInput) (*OrderView, error) {
	field, err := purchasing.ParseItemField(in.Field)
	if err != nil {
		return nil, err
	}
	value, err := toValue(field.Kind(), in)
	if err != nil {
		return nil, err
	}

	return s.transition(ctx, sessionID, EventItemUpdated, func(o purchasing.PurchaseOrder) (purchasing.PurchaseOrder, error) {
		return o.ApplyItem(itemID, field, value)
	}, attribute.String("field", string(field)), attribute.String("item_id", itemID))
}

// AddItem appends an empty line item and returns the order with the new item
func (s *EditorService) AddItem(ctx context.Context, sessionID string) (*OrderView, *purchasing.LineItem, error) {
	var added purchasing.LineItem
	view, err := s.transition(ctx, sessionID, EventItemAdded, func(o purchasing.PurchaseOrder) (purchasing.PurchaseOrder, error) {
		next, item := o.AddItem()
		added = item
		return next, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return view, &added, nil
}

// DeleteItem removes a line item. Deleting the last remaining item needs
// confirm to be true, otherwise CONFIRMATION_REQUIRED is returned and the
// order is left as it was.
func (s *EditorService) DeleteItem(ctx context.Context, sessionID, itemID string, confirm bool) (*OrderView, error) {
	return s.transition(ctx, sessionID, EventItemDeleted, func(o purchasing.PurchaseOrder) (purchasing.PurchaseOrder, error) {
		return o.RemoveItem(itemID, purchasing.Answer(confirm))
	}, attribute.String("item_id", itemID))
}

// Reset clears the order back to an empty form. Requires confirm to be true.
func (s *EditorService) Reset(ctx context.Context, sessionID string, confirm bool) (*OrderView, error) {
	return s.transition(ctx, sessionID, EventReset, func(o purchasing.PurchaseOrder) (purchasing.PurchaseOrder, error) {
		return o.Reset(purchasing.Answer(confirm))
	})
}

// EndSession discards a session
func (s *EditorService) EndSession(ctx context.Context, sessionID string) error {
	ctx = logger.WithSessionID(ctx, sessionID)
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	logger.L(ctx).Debug("Editing session closed")
	if s.editorMetrics != nil {
		s.editorMetrics.SessionEnded(ctx, "closed")
	}
	return nil
}

// Currencies lists the supported currencies in catalog order
func (s *EditorService) Currencies() []valueobject.Currency {
	return valueobject.Currencies()
}

// Quote computes and formats totals for lines that are not held in a session
func (s *EditorService) Quote(ctx context.Context, req QuoteRequest) (*TotalsView, error) {
	code := valueobject.DefaultCurrency
	if req.Currency != "" {
		parsed, err := valueobject.ParseCurrencyCode(req.Currency)
		if err != nil {
			return nil, err
		}
		code = parsed
	}

	items := make([]purchasing.LineItem, len(req.Lines))
	for i, line := range req.Lines {
		items[i] = purchasing.LineItem{Qty: line.Qty, UnitPrice: line.UnitPrice}
	}
	totals := purchasing.ComputeTotals(items, req.VATRate, req.OtherCosts)

	if s.editorMetrics != nil {
		s.editorMetrics.RecordQuote(ctx, string(code), len(items))
	}

	view := ToTotalsView(code, req.VATRate, req.OtherCosts, totals)
	return &view, nil
}

// transition runs fn against the session snapshot and reports the outcome
func (s *EditorService) transition(
	ctx context.Context,
	sessionID, event string,
	fn purchasing.TransitionFunc,
	attrs ...attribute.KeyValue,
) (*OrderView, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	ctx, span := telemetry.StartServiceSpan(ctx, spanService, event,
		append(attrs, attribute.String("session_id", sessionID))...)
	defer span.End()

	order, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		if errors.Is(err, shared.ErrConfirmationRequired) {
			logger.L(ctx).Info("Edit not confirmed", zap.String("event", event))
			if s.editorMetrics != nil {
				s.editorMetrics.RecordDeclined(ctx, event)
			}
		} else {
			telemetry.RecordError(span, err)
		}
		return nil, err
	}

	s.recordEdit(ctx, event, order)
	telemetry.SetOK(span)

	view := ToOrderView(sessionID, order)
	return &view, nil
}

func (s *EditorService) recordEdit(ctx context.Context, event string, order purchasing.PurchaseOrder) {
	logger.L(ctx).Debug("Order updated",
		zap.String("event", event),
		zap.Int("items", len(order.Items)),
		zap.String("currency", string(order.Currency)),
	)
	if s.editorMetrics != nil {
		s.editorMetrics.RecordEdit(ctx, event, string(order.Currency), len(order.Items))
	}
}

// toValue converts client input into a value of the field's kind
func toValue(kind purchasing.FieldKind, in EditInput) (purchasing.Value, error) {
	switch kind {
	case purchasing.KindNumber:
		return purchasing.NumberValue(in.Number), nil
	case purchasing.KindCurrency:
		code, err := valueobject.ParseCurrencyCode(in.Text)
		if err != nil {
			return purchasing.Value{}, err
		}
		return purchasing.CurrencyValue(code), nil
	default:
		return purchasing.TextValue(in.Text), nil
	}
}
