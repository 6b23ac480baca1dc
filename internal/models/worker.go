package models

import "time"

type Worker struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	Specialty *string `gorm:"size:100" json:"specialty"`
	Active    bool    `gorm:"default:true" json:"active"`

	Services []Service `gorm:"many2many:worker_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
