package models

import "time"

// GlobalClosedDay blocks every worker on Date.
type GlobalClosedDay struct {
	ID     string    `gorm:"type:uuid;primaryKey" json:"id"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Reason *string   `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// WorkerClosedDay blocks a single worker on Date.
type WorkerClosedDay struct {
	ID       string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID string    `gorm:"type:uuid;not null;uniqueIndex:idx_worker_closed_day" json:"worker_id"`
	Worker   *Worker   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_worker_closed_day" json:"date"`
	Reason   *string   `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// SpecialDay overrides the working-hours window of a worker on Date.
// Nil bounds fall back to the salon defaults.
type SpecialDay struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	WorkerID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_special_day" json:"worker_id"`
	Worker    *Worker   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_special_day" json:"date"`
	OpenTime  *string   `gorm:"size:5" json:"open_time"`
	CloseTime *string   `gorm:"size:5" json:"close_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
