package models

import "time"

// AuditEntry is the GORM model for the console's mutation audit trail.
// One row per admin write: who did what to which resource, and how it went.
type AuditEntry struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor    string    `gorm:"size:100;not null;index"  json:"actor"`
	Action   string    `gorm:"size:50;not null"         json:"action"`   // create | delete | save
	Resource string    `gorm:"size:50;not null;index"   json:"resource"` // products | users | orders | shipping | payment-methods
	TargetID string    `gorm:"size:100"                 json:"target_id"`
	Outcome  string    `gorm:"size:20;not null"         json:"outcome"` // ok | error
	Detail   string    `gorm:"type:text"                json:"detail"`
	At       time.Time `gorm:"autoCreateTime;index"     json:"at"`
}

func (AuditEntry) TableName() string { return "console_audit_entries" }
