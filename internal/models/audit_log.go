package models

import "time"

type AuditLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ActorID  string `gorm:"size:100;index" json:"actor_id"`
	Action   string `gorm:"size:50;not null" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:100" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
