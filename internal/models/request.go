package models

import (
	"encoding/json"
	"time"
)

// RequestStatus - статус экстренного запроса
type RequestStatus string

const (
	RequestPending     RequestStatus = "pending"
	RequestAccepted    RequestStatus = "accepted"
	RequestCompleted   RequestStatus = "completed"
	RequestAllRejected RequestStatus = "all_rejected"
)

// IsOpen сообщает, считается ли запрос открытым (пользователь может иметь только один открытый запрос)
func (s RequestStatus) IsOpen() bool {
	return s == RequestPending || s == RequestAccepted
}

// IsTerminal сообщает, является ли статус конечным
func (s RequestStatus) IsTerminal() bool {
	return s == RequestCompleted || s == RequestAllRejected
}

// EmergencyRequest - экстренный запрос на помощь.
// NotifiedHospitalIDs фиксируется при создании и больше не меняется;
// RejectedHospitalIDs только растет; AcceptedHospitalID выставляется не более одного раза.
type EmergencyRequest struct {
	ID                  int64           `json:"id"`
	RequesterID         string          `json:"requester_id"`
	Status              RequestStatus   `json:"status"`
	Priority            int             `json:"priority"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	LocationUpdatedAt   time.Time       `json:"location_updated_at"`
	InjuryDescription   string          `json:"injury_description,omitempty"`
	InjuryPhotoRef      string          `json:"injury_photo_ref,omitempty"`
	MedicalSnapshot     json.RawMessage `json:"medical_snapshot,omitempty"`
	MedicalSource       string          `json:"medical_source,omitempty"`
	NotifiedHospitalIDs []int64         `json:"notified_hospital_ids"`
	RejectedHospitalIDs []int64         `json:"rejected_hospital_ids"`
	AcceptedHospitalID  *int64          `json:"accepted_hospital_id,omitempty"`
	HospitalResponseAt  *time.Time      `json:"hospital_response_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// IsNotified сообщает, входит ли больница в зафиксированный список оповещенных
func (r *EmergencyRequest) IsNotified(hospitalID int64) bool {
	return containsID(r.NotifiedHospitalIDs, hospitalID)
}

// IsRejectedBy сообщает, отклоняла ли больница этот запрос
func (r *EmergencyRequest) IsRejectedBy(hospitalID int64) bool {
	return containsID(r.RejectedHospitalIDs, hospitalID)
}

// AllNotifiedRejected проверяет условие эскалации: все оповещенные больницы отказались
func AllNotifiedRejected(notified, rejected []int64) bool {
	if len(notified) == 0 {
		return false
	}
	for _, id := range notified {
		if !containsID(rejected, id) {
			return false
		}
	}
	return true
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
