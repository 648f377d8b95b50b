package v1

import "github.com/shenikar/emergency_dispatch_system/internal/service"

// TargetToResponse преобразует сводку больницы из сервиса в DTO
func TargetToResponse(target service.HospitalTarget) TargetHospitalResponse {
	return TargetHospitalResponse{
		HospitalID:    target.HospitalID,
		Name:          target.Name,
		Latitude:      target.Latitude,
		Longitude:     target.Longitude,
		DistanceKm:    target.DistanceKm,
		ContactNumber: target.ContactNumber,
		Specialties:   target.Specialties,
	}
}

// CreateResultToResponse преобразует результат создания запроса в DTO
func CreateResultToResponse(result *service.CreateRequestResult) *CreateEmergencyResponse {
	targets := make([]TargetHospitalResponse, len(result.TargetHospitals))
	for i, target := range result.TargetHospitals {
		targets[i] = TargetToResponse(target)
	}
	return &CreateEmergencyResponse{
		RequestID:       result.RequestID,
		TrackingID:      result.TrackingID,
		TargetHospitals: targets,
		Message:         result.Message,
	}
}

// StatusToResponse преобразует статус запроса в DTO
func StatusToResponse(status *service.RequestStatusResult) *RequestStatusResponse {
	resp := &RequestStatusResponse{
		RequestID:           status.RequestID,
		Status:              string(status.Status),
		CreatedAt:           status.CreatedAt,
		WaitingMinutes:      status.WaitingMinutes,
		HasHospitalResponse: status.HasHospitalResponse,
		Latitude:            status.Latitude,
		Longitude:           status.Longitude,
	}
	if status.AcceptedHospital != nil {
		target := TargetToResponse(*status.AcceptedHospital)
		resp.AcceptedHospital = &target
	}
	return resp
}

// ViewItemsToResponses преобразует выдачу больницы в слайс DTO
func ViewItemsToResponses(items []*service.HospitalViewItem) []HospitalViewItemResponse {
	responses := make([]HospitalViewItemResponse, len(items))
	for i, item := range items {
		responses[i] = HospitalViewItemResponse{
			RequestID:         item.RequestID,
			Priority:          item.Priority,
			Latitude:          item.Latitude,
			Longitude:         item.Longitude,
			DistanceKm:        item.DistanceKm,
			InjuryDescription: item.InjuryDescription,
			HasMedicalHistory: item.HasMedicalHistory,
			Targeted:          item.Targeted,
			CreatedAt:         item.CreatedAt,
		}
	}
	return responses
}

// DetailsToResponse преобразует детали запроса в DTO
func DetailsToResponse(details *service.RequestDetails) *RequestDetailsResponse {
	return &RequestDetailsResponse{
		RequestID:         details.RequestID,
		Priority:          details.Priority,
		Latitude:          details.Latitude,
		Longitude:         details.Longitude,
		DistanceKm:        details.DistanceKm,
		InjuryDescription: details.InjuryDescription,
		InjuryPhotoRef:    details.InjuryPhotoRef,
		MedicalSnapshot:   details.MedicalSnapshot,
		MedicalSource:     details.MedicalSource,
		CreatedAt:         details.CreatedAt,
	}
}
