// internal/models/audit.go
package models

import (
	"github.com/google/uuid"
)

// AuditLog records every mutating API request (cart changes, checkouts,
// status updates). Written asynchronously by the audit middleware.
type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Action       string     `json:"action" gorm:"size:100;not null;index"`
	ResourceType string     `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   *uuid.UUID `json:"resource_id" gorm:"type:uuid;index"`
	NewValues    JSONB      `json:"new_values" gorm:"type:jsonb"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"type:text"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
