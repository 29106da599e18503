package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

var (
	editEventsInstrument = Instrument{
		Name:        "pob_edit_events_total",
		Description: "Total number of applied purchase order edit events",
		Unit:        "{events}",
	}
	declinedConfirmsInstrument = Instrument{
		Name:        "pob_confirmations_declined_total",
		Description: "Destructive edits that were not confirmed",
		Unit:        "{events}",
	}
	quoteRequestsInstrument = Instrument{
		Name:        "pob_quote_requests_total",
		Description: "Stateless totals calculations",
		Unit:        "{requests}",
	}
	activeSessionsInstrument = Instrument{
		Name:        "pob_sessions_active",
		Description: "Editing sessions currently held in memory",
		Unit:        "{sessions}",
	}
	lineItemsInstrument = Instrument{
		Name:        "pob_order_line_items",
		Description: "Number of line items on an order after an edit",
		Unit:        "{items}",
		Buckets:     LineCountBuckets,
	}
)

// EditorMetrics records what happens in purchase order editing sessions.
type EditorMetrics struct {
	editEvents       metric.Int64Counter
	declinedConfirms metric.Int64Counter
	quoteRequests    metric.Int64Counter
	activeSessions   metric.Int64UpDownCounter
	lineItems        metric.Float64Histogram
}

// EditorMetricsConfig holds configuration for editor metrics.
type EditorMetricsConfig struct {
	Meter  metric.Meter
	Logger *zap.Logger
}

// NewEditorMetrics creates the editor instruments on cfg.Meter.
func NewEditorMetrics(cfg EditorMetricsConfig) (*EditorMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	in := NewInstruments(cfg.Meter)
	em := &EditorMetrics{
		editEvents:       in.Counter(editEventsInstrument),
		declinedConfirms: in.Counter(declinedConfirmsInstrument),
		quoteRequests:    in.Counter(quoteRequestsInstrument),
		activeSessions:   in.UpDownCounter(activeSessionsInstrument),
		lineItems:        in.Histogram(lineItemsInstrument),
	}
	if err := in.Err(); err != nil {
		return nil, err
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("Editor metrics registered")
	}
	return em, nil
}

// RecordEdit counts an applied edit event and the resulting order size.
func (em *EditorMetrics) RecordEdit(ctx context.Context, event, currency string, lineItems int) {
	em.editEvents.Add(ctx, 1, metric.WithAttributes(AttrEvent.String(event), AttrCurrency.String(currency)))
	em.lineItems.Record(ctx, float64(lineItems), metric.WithAttributes(AttrEvent.String(event)))
}

// RecordDeclined counts a destructive edit that was not confirmed.
func (em *EditorMetrics) RecordDeclined(ctx context.Context, action string) {
	em.declinedConfirms.Add(ctx, 1, metric.WithAttributes(AttrAction.String(action)))
}

// RecordQuote counts a stateless totals request.
func (em *EditorMetrics) RecordQuote(ctx context.Context, currency string, lineItems int) {
	em.quoteRequests.Add(ctx, 1, metric.WithAttributes(AttrCurrency.String(currency)))
	em.lineItems.Record(ctx, float64(lineItems), metric.WithAttributes(AttrEvent.String("quote")))
}

// SessionStarted increments the live session count.
func (em *EditorMetrics) SessionStarted(ctx context.Context) {
	em.activeSessions.Add(ctx, 1)
}

// SessionEnded decrements the live session count. outcome is "closed" or "expired".
func (em *EditorMetrics) SessionEnded(ctx context.Context, outcome string) {
	em.activeSessions.Add(ctx, -1, metric.WithAttributes(AttrOutcome.String(outcome)))
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewEditorMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
