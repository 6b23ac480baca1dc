package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills an empty string primary key before insert.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	newID(&w.ID)
	return nil
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}

func (d *GlobalClosedDay) BeforeCreate(tx *gorm.DB) error {
	newID(&d.ID)
	return nil
}

func (d *WorkerClosedDay) BeforeCreate(tx *gorm.DB) error {
	newID(&d.ID)
	return nil
}

func (d *SpecialDay) BeforeCreate(tx *gorm.DB) error {
	newID(&d.ID)
	return nil
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	newID(&l.ID)
	return nil
}
