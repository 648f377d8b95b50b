package v1

import (
	"encoding/json"
	"time"
)

// CreateEmergencyRequest DTO для создания экстренного запроса
// @Description DTO для создания экстренного запроса
type CreateEmergencyRequest struct {
	UserID               string   `json:"user_id" validate:"required"`
	InjuryDescription    string   `json:"injury_description,omitempty"`
	InjuryPhotoData      string   `json:"injury_photo_data,omitempty"`
	MedicalHistoryQRCode string   `json:"medical_history_qr_code,omitempty"`
	MedicalHistoryToken  string   `json:"medical_history_token,omitempty"`
	UserLatitude         *float64 `json:"user_latitude,omitempty"`
	UserLongitude        *float64 `json:"user_longitude,omitempty"`
	Priority             int      `json:"priority,omitempty" validate:"omitempty,gte=1"`
}

// TargetHospitalResponse - больница, оповещенная о запросе
type TargetHospitalResponse struct {
	HospitalID    int64    `json:"hospital_id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	DistanceKm    float64  `json:"distance_km"`
	ContactNumber string   `json:"contact_number,omitempty"`
	Specialties   []string `json:"specialties,omitempty"`
}

// CreateEmergencyResponse DTO ответа на создание запроса
// @Description DTO ответа на создание запроса
type CreateEmergencyResponse struct {
	RequestID       int64                    `json:"request_id"`
	TrackingID      string                   `json:"tracking_id"`
	TargetHospitals []TargetHospitalResponse `json:"target_hospitals"`
	Message         string                   `json:"message"`
}

// HospitalRespondRequest DTO ответа больницы на запрос
// @Description DTO ответа больницы на запрос
type HospitalRespondRequest struct {
	RequestID                    int64  `json:"request_id" validate:"required,gt=0"`
	HospitalID                   int64  `json:"hospital_id" validate:"required,gt=0"`
	IsAccepted                   bool   `json:"is_accepted"`
	ResponseMessage              string `json:"response_message,omitempty"`
	EstimatedResponseTimeMinutes int    `json:"estimated_response_time_minutes,omitempty"`
	AmbulanceAvailable           bool   `json:"ambulance_available,omitempty"`
}

// UpdateLocationRequest DTO обновления местоположения пациента
// @Description DTO обновления местоположения пациента
type UpdateLocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required"`
	Longitude *float64   `json:"longitude" validate:"required"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// CompleteRequestRequest DTO закрытия запроса владельцем
// @Description DTO закрытия запроса владельцем
type CompleteRequestRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// RequestStatusResponse DTO статуса запроса
// @Description DTO статуса запроса
type RequestStatusResponse struct {
	RequestID           int64                   `json:"request_id"`
	Status              string                  `json:"status"`
	CreatedAt           time.Time               `json:"created_at"`
	WaitingMinutes      int                     `json:"waiting_minutes"`
	HasHospitalResponse bool                    `json:"has_hospital_response"`
	AcceptedHospital    *TargetHospitalResponse `json:"accepted_hospital,omitempty"`
	Latitude            float64                 `json:"latitude"`
	Longitude           float64                 `json:"longitude"`
}

// HospitalViewItemResponse - открытый запрос в выдаче больницы
type HospitalViewItemResponse struct {
	RequestID         int64     `json:"request_id"`
	Priority          int       `json:"priority"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	DistanceKm        float64   `json:"distance_km"`
	InjuryDescription string    `json:"injury_description,omitempty"`
	HasMedicalHistory bool      `json:"has_medical_history"`
	Targeted          bool      `json:"targeted"`
	CreatedAt         time.Time `json:"created_at"`
}

// RequestDetailsResponse DTO полных деталей запроса для предпросмотра больницей
// @Description DTO полных деталей запроса для предпросмотра больницей
type RequestDetailsResponse struct {
	RequestID         int64           `json:"request_id"`
	Priority          int             `json:"priority"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	DistanceKm        float64         `json:"distance_km"`
	InjuryDescription string          `json:"injury_description,omitempty"`
	InjuryPhotoRef    string          `json:"injury_photo_ref,omitempty"`
	MedicalSnapshot   json.RawMessage `json:"medical_snapshot,omitempty"`
	MedicalSource     string          `json:"medical_source,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// StatsResponse DTO сводки по диспетчеризации
// @Description DTO сводки по диспетчеризации
type StatsResponse struct {
	WindowMinutes    int `json:"window_minutes"`
	CreatedCount     int `json:"created_count"`
	AcceptedCount    int `json:"accepted_count"`
	OpenPendingCount int `json:"open_pending_count"`
}
