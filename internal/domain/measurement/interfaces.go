package measurement

import "context"

// SpecRepository provides measurement spec catalog access.
type SpecRepository interface {
	Get(ctx context.Context, tenantID, id string) (*Spec, error)
	List(ctx context.Context, tenantID string) ([]Spec, error)
}
