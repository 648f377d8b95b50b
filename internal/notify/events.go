package notify

import "time"

// Типы событий диспетчеризации
const (
	EventNewEmergencyRequest      = "NewEmergencyRequest"
	EventHospitalAccepted         = "HospitalAccepted"
	EventEmergencyRequestRejected = "EmergencyRequestRejected"
	EventAllHospitalsRejected     = "AllHospitalsRejected"
	EventLocationUpdated          = "LocationUpdated"
)

// Event - конверт события для логических каналов (больница/пользователь/наблюдатели запроса).
// Доставка best-effort: получатели обязаны сверяться с авторитетным статусом запроса.
type Event struct {
	Type      string    `json:"type"`
	RequestID int64     `json:"request_id"`
	Channel   string    `json:"channel,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// Location - координаты в составе событий
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HospitalInfo - сведения о больнице в составе событий
type HospitalInfo struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ContactNumber string  `json:"contact_number,omitempty"`
	DistanceKm    float64 `json:"distance_km"`
}

// NewEmergencyRequestPayload отправляется в канал каждой оповещаемой больницы
type NewEmergencyRequestPayload struct {
	PatientLocation   Location `json:"patient_location"`
	InjuryDescription string   `json:"injury_description,omitempty"`
	Priority          int      `json:"priority"`
	DistanceKm        float64  `json:"distance_km"`
	HasMedicalHistory bool     `json:"has_medical_history"`
}

// HospitalAcceptedPayload отправляется пользователю и наблюдателям запроса
type HospitalAcceptedPayload struct {
	Hospital                     HospitalInfo `json:"hospital"`
	EstimatedResponseTimeMinutes int          `json:"estimated_response_time_minutes"`
	AmbulanceAvailable           bool         `json:"ambulance_available"`
	Message                      string       `json:"message,omitempty"`
}

// AllHospitalsRejectedPayload отправляется пользователю с номером экстренной службы
type AllHospitalsRejectedPayload struct {
	Message        string `json:"message"`
	FallbackNumber string `json:"fallback_number"`
}

// LocationUpdatedPayload отправляется наблюдателям запроса
type LocationUpdatedPayload struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
