package models

import "time"

// Hospital - учреждение-ответчик. Движок читает только id, координаты,
// доступность и контактные поля; остальным владеет внешняя система.
type Hospital struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ContactNumber string    `json:"contact_number"`
	Available     bool      `json:"available"`
	Specialties   []string  `json:"specialties,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
