package models

import "time"

// AuditLog records an administrative action, currently canonical rate
// changes. Best-effort: a failed audit write never fails the action.
type AuditLog struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
