package domain

import "time"

// AuditFields holds the creation and modification timestamps embedded in every
// persisted entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
