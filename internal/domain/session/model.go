package session

import "time"

// SessionStatus represents the lifecycle status of an inspection session
type SessionStatus string

const (
	StatusOpen   SessionStatus = "open"
	StatusClosed SessionStatus = "closed"
)

// Session represents the inspection context (line, table, color, inspector)
// under which defect and measurement entries are recorded. Once closed it is
// immutable; entries can only be recorded against an open session.
type Session struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	OrderID     string        `json:"order_id"`
	Line        string        `json:"line"`
	Table       string        `json:"table"`
	Color       string        `json:"color"`
	InspectorID string        `json:"inspector_id"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ClosedAt    *time.Time    `json:"closed_at,omitempty"`
}

// Open reports whether entries may still be recorded under the session.
func (s *Session) Open() bool {
	return s.Status == StatusOpen
}
