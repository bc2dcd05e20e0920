package ledger

import (
	"fmt"
	"time"
)

// Check is one immutable snapshot of a repeated inspection reading for an
// item. Items and versions are keyed by integer index; the "Item 3" / "Check
// 2" labels the paper forms use are formatted at the transport edge only.
type Check struct {
	TenantID   string            `json:"tenant_id"`
	ItemIndex  int               `json:"item_index"`
	Version    int               `json:"version"`
	SessionID  string            `json:"session_id,omitempty"`
	Readings   map[string]string `json:"readings"`
	RecordedAt time.Time         `json:"recorded_at"`
}

// ItemLabel renders the paper-form item label.
func (c Check) ItemLabel() string { return fmt.Sprintf("Item %d", c.ItemIndex) }

// CheckLabel renders the paper-form check label.
func (c Check) CheckLabel() string { return fmt.Sprintf("Check %d", c.Version) }
