package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin       = "user.login"
	AuditActionUserLogout      = "user.logout"
	AuditActionUserLogoutAll   = "user.logout_all"
	AuditActionUserSignup      = "user.signup"
	AuditActionPatientCreate   = "patient.create"
	AuditActionPatientUpdate   = "patient.update"
	AuditActionPatientDelete   = "patient.delete"
	AuditActionFoodChartCreate = "food_chart.create"
	AuditActionFoodChartUpdate = "food_chart.update"
	AuditActionFoodChartDelete = "food_chart.delete"
	AuditActionStaffCreate     = "pantry_staff.create"
	AuditActionStaffUpdate     = "pantry_staff.update"
	AuditActionStaffDelete     = "pantry_staff.delete"
	AuditActionDeliveryCreate  = "delivery.create"
	AuditActionDeliveryUpdate  = "delivery.update"
	AuditActionDeliveryDelete  = "delivery.delete"
	AuditActionTaskAssign      = "task.assign"
	AuditActionTaskStatus      = "task.status"
)
