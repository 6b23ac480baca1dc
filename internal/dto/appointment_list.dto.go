package dto

import "time"

type AppointmentListDTO struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"start_time"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	DurationMin int       `json:"duration_min"`
	Status      string    `json:"status"`
	ClientID    string    `json:"client_id"`
	WorkerID    string    `json:"worker_id"`
	WorkerName  string    `json:"worker_name"`
	ServiceName string    `json:"service_name"`
}
