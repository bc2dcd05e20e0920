package audit

import "context"

// Repository provides persistence for the audit trail.
type Repository interface {
	Log(ctx context.Context, tenantID string, entry *Entry) error
	List(ctx context.Context, tenantID string, opts ListOptions) ([]Entry, error)
}

// ListOptions provides filtering options for listing audit entries.
type ListOptions struct {
	OrderID   string
	SessionID *string
	EventType *EventType
	Limit     int
	Offset    int
}
