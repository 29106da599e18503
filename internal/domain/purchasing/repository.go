package purchasing

import "context"

// TransitionFunc maps the current snapshot of a session to the next one.
// Returning an error leaves the stored snapshot as it was.
type TransitionFunc func(current PurchaseOrder) (PurchaseOrder, error)

// SessionRepository holds one purchase order per editing session.
// Implementations must serialise Update calls on the same session so that
// every transition sees the snapshot produced by the previous one.
type SessionRepository interface {
	// Create stores order under a new session id and returns the id
	Create(ctx context.Context, order PurchaseOrder) (string, error)
	// Get returns the current snapshot
	Get(ctx context.Context, sessionID string) (PurchaseOrder, error)
	// Update applies fn to the current snapshot and stores the result
	Update(ctx context.Context, sessionID string, fn TransitionFunc) (PurchaseOrder, error)
	// Delete ends the session
	Delete(ctx context.Context, sessionID string) error
	// Count returns the number of live sessions
	Count(ctx context.Context) int
}
