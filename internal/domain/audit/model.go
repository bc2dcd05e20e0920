package audit

import "time"

// EventType represents the type of audit event
type EventType string

const (
	TypeSessionStarted    EventType = "session_started"
	TypeSessionClosed     EventType = "session_closed"
	TypeEntryRecorded     EventType = "entry_recorded"
	TypeCheckAppended     EventType = "check_appended"
	TypeDecisionEvaluated EventType = "decision_evaluated"
	TypeAnomalyDetected   EventType = "anomaly_detected"
)

// Entry represents an event in the audit trail. Data-integrity anomalies
// (overlapping AQL rows, defects recorded without a plan) land here so catalog
// maintainers can find them.
type Entry struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id"`
	OrderID   string    `json:"order_id"`
	SessionID *string   `json:"session_id,omitempty"`
	EventType EventType `json:"type"`
	Summary   string    `json:"summary"`
	Details   string    `json:"details,omitempty"` // JSON string
	CreatedAt time.Time `json:"created_at"`
}
