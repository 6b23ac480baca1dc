package models

import "time"

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Cancelled rows leave the slot index so the time can be booked again.
	WorkerID string  `gorm:"type:uuid;not null;uniqueIndex:idx_appointment_worker_start,where:status <> 'CANCELLED'" json:"worker_id"`
	Worker   *Worker `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"worker,omitempty"`

	ServiceID string   `gorm:"type:uuid" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// ClientID belongs to the external identity provider.
	ClientID string `gorm:"size:100;not null;index" json:"client_id"`

	StartTime time.Time `gorm:"not null;uniqueIndex:idx_appointment_worker_start" json:"start_time"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
