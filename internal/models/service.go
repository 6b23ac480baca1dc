package models

import "time"

type Service struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"not null;check:duration_min > 0" json:"duration_min"`
	Price       float64 `json:"price"`

	Workers []Worker `gorm:"many2many:worker_services;" json:"workers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
