package models

import "time"

// Audit actions recorded for privileged routes.
const (
	AuditActionInviteCreate = "INVITE_CREATE"
)

// AuditLog represents an audit trail record.
type AuditLog struct {
	ID        string    `db:"id" json:"id"`
	Action    string    `db:"action" json:"action"`
	Resource  string    `db:"resource" json:"resource"`
	Actor     string    `db:"actor" json:"actor"`
	Payload   []byte    `db:"payload" json:"payload,omitempty"`
	IPAddress string    `db:"ip_address" json:"ip_address"`
	UserAgent string    `db:"user_agent" json:"user_agent"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
