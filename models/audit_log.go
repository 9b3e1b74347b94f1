package models

import "time"

// AuditLogEntry represents a single HTTP mutation event.
// Sensitive form fields are redacted before the entry is built.
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	UserEmail string
	Method    string
	Path      string
	FormData  string
	UserAgent string
	IPAddress string
}
